package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/config"
)

// resolveConfig reads --config (or the defaults) and applies flag overrides.
func resolveConfig(opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if opts.graph != "" {
		cfg.Graph = opts.graph
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	return cfg, cfg.Validate()
}

// openBackend builds a backend from the resolved config and loads its graph.
// Logs go to the command's stderr.
func openBackend(cmd *cobra.Command, opts *rootOptions) (*campus.Backend, config.Config, *slog.Logger, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, cfg, nil, err
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	b, err := campus.New(cfg.Capacity,
		campus.WithLogger(logger),
		campus.WithParallelism(cfg.Parallelism),
	)
	if err != nil {
		return nil, cfg, nil, err
	}
	if err := b.LoadGraphData(cfg.Graph); err != nil {
		return nil, cfg, nil, fmt.Errorf("load graph: %w", err)
	}

	return b, cfg, logger, nil
}
