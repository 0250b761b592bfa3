package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"daily-task-agent/internal/httpserver"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			if port != 0 {
				a.cfg.HTTPServer.Port = port
			}

			a.l.Info(ctx, "Starting daily task agent...")
			a.l.Infof(ctx, "Environment: %s", a.cfg.Environment.Name)
			a.l.Infof(ctx, "Task store: %s", a.cfg.Storage.Path)

			srv, err := httpserver.New(a.l, httpserver.Config{
				Port:            a.cfg.HTTPServer.Port,
				Mode:            a.cfg.HTTPServer.Mode,
				Environment:     a.cfg.Environment.Name,
				RateLimitPerMin: a.cfg.RateLimit.RequestsPerMin,
				Metrics:         a.metrics,
				TaskUC:          a.taskUC,
				PlanningUC:      a.planningUC,
			})
			if err != nil {
				return err
			}

			if err := srv.Run(ctx); err != nil {
				return err
			}

			a.l.Info(context.Background(), "Server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port, overrides http_server.port")

	return cmd
}
