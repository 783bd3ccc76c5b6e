package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/journey-planner/internal"
	"github.com/theoremus-urban-solutions/journey-planner/server"
	"github.com/theoremus-urban-solutions/journey-planner/source"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	a.log = internal.InitLogging(a.cfg.Log.Level, a.cfg.Log.Format)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, p, cache, err := a.bootstrap(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Network.Watch {
		if _, err := os.Stat(a.cfg.Network.Path); err != nil {
			a.log.Warn("dataset is not a local file, watch disabled", slog.String("path", a.cfg.Network.Path))
		} else {
			w, err := source.NewWatcher(a.cfg.Network.Path, ds, a.cfg.Network.Debounce, a.log)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()
		}
	}
	go reloadOnHangup(ctx, ds, a.log)

	srv := server.New(a.cfg.Server, server.Deps{
		Planner:    p,
		Dataset:    ds,
		Cache:      cache,
		MaxResults: a.cfg.Planner.MaxResults,
		Logger:     a.log,
	})
	return srv.ListenAndServe(ctx)
}

// reloadOnHangup reloads the dataset on every SIGHUP until ctx is done.
func reloadOnHangup(ctx context.Context, r source.Reloader, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			logger.Info("SIGHUP received, reloading dataset")
			_ = r.Reload(ctx)
		}
	}
}
