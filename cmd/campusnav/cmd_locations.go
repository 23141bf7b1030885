package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List every location in the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, _, _, err := openBackend(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range b.ListOfAllLocations() {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}
}
