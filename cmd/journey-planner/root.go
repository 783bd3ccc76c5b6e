package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/journey-planner/config"
	"github.com/theoremus-urban-solutions/journey-planner/internal"
	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
	"github.com/theoremus-urban-solutions/journey-planner/source"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg *config.AppConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "journey-planner",
		Short:        "Plan journeys on a fixed-route transit network",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: $"+config.EnvConfigPath+" or ./config.yml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	root.AddCommand(
		newServeCmd(a),
		newPlanCmd(a),
		newStationsCmd(a),
		newSnapshotCmd(a),
	)
	return root
}

// init loads the configuration and installs the default logger. Logs go to
// stderr so command output on stdout stays clean.
func (a *app) init(cmd *cobra.Command) error {
	var paths []string
	if a.configPath != "" {
		paths = append(paths, a.configPath)
	}
	cfg, err := config.LoadAppConfig(paths...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	a.log = internal.NewLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	slog.SetDefault(a.log)
	return nil
}

// bootstrap loads the dataset and assembles the planner, wrapped in the
// result cache unless it is disabled. The cache is dropped on every reload.
func (a *app) bootstrap(ctx context.Context) (*source.Dataset, planner.JourneyPlanner, *planner.Cache, error) {
	ds, err := source.NewDataset(ctx, source.Loader(a.cfg.Network), a.log)
	if err != nil {
		return nil, nil, nil, err
	}
	opts := a.cfg.Planner.Options(a.log)
	p := planner.New(ds, ds, opts)
	if a.cfg.Planner.DisableCache {
		return ds, p, nil, nil
	}
	cache := planner.NewCache(p, opts)
	ds.OnReload(func(*network.Network) { cache.Invalidate() })
	return ds, cache, cache, nil
}
