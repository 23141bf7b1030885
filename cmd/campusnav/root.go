package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	graph      string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "campusnav",
		Short: "Shortest walking routes between campus locations",
		Long: "campusnav loads a DOT graph of walking times between campus\n" +
			"locations and answers shortest-path questions on the command line or over HTTP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.StringVar(&opts.graph, "graph", "", "DOT graph file (overrides config)")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		newLocationsCmd(opts),
		newPathCmd(opts),
		newLongestCmd(opts),
		newServeCmd(opts),
	)

	return root
}
