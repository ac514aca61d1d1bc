package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quickcalc/quickcalc/internal/api"
	"github.com/quickcalc/quickcalc/internal/cli/config"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP evaluation API",
		Long: `Start an HTTP server exposing the evaluator.

  POST /api/v1/eval  {"expression": "(2+3)×4"}
  GET  /healthz

The server shuts down gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(api.Config{
				Host:      cfg.Serve.Host,
				Port:      cfg.Serve.Port,
				Precision: cfg.Precision,
				Logger:    logger,
			})
			return srv.Serve(ctx)
		},
	}
}
