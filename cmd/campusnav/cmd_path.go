package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/render"
)

func newPathCmd(opts *rootOptions) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "path <start> <end>",
		Short: "Show the fastest walk between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, _, err := openBackend(cmd, opts)
			if err != nil {
				return err
			}
			start, end := args[0], args[1]
			out := cmd.OutOrStdout()

			if !plain {
				html, err := render.New(b).ShortestPathResponseHTML(start, end)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, html)
				return nil
			}

			path := b.FindLocationsOnShortestPath(start, end)
			if len(path) == 0 {
				return fmt.Errorf("no path from %q to %q", start, end)
			}
			times := b.FindTimesOnShortestPath(start, end)
			fmt.Fprintln(out, path[0])
			for i := 1; i < len(path); i++ {
				fmt.Fprintf(out, "%s (+%ss)\n", path[i], strconv.FormatFloat(times[i-1], 'f', -1, 64))
			}
			total, err := b.TotalTimeOnShortestPath(start, end)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "total: %s seconds\n", strconv.FormatFloat(total, 'f', -1, 64))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print one location per line instead of HTML")

	return cmd
}
