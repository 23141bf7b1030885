package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLongestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "longest <from>",
		Short: "Show the longest shortest-path location list from a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, _, err := openBackend(cmd, opts)
			if err != nil {
				return err
			}
			list, err := b.LongestLocationListFrom(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, l := range list {
				fmt.Fprintf(out, "%d. %s\n", i+1, l)
			}
			fmt.Fprintf(out, "total locations: %d\n", len(list))
			return nil
		},
	}
}
