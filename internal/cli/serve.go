package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deck/internal/server"
)

// serveCommand creates the serve command for running the layout service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout service",
		Long: `Run the HTTP layout service.

Every request carries a workspace document and is answered without keeping
state:

  POST /v1/arrange?mode=grid        transforms for every card
  POST /v1/snap?card=id&x=..&y=..   snapped position and guides
  GET  /healthz                     liveness and build info

The service stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config)")

	return cmd
}

// runServe builds the server from the configuration and runs it until ctx
// is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	ctx = withLogger(ctx, c.Logger)
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	scfg := server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.ReadTimeout(),
		ShutdownTimeout: cfg.ShutdownTimeout(),
		Workspace:       cfg.WorkspaceOptions(nil),
	}
	if addr != "" {
		scfg.Addr = addr
	}
	logger.Debug("starting layout service", "addr", scfg.Addr, "read_timeout", scfg.ReadTimeout)
	return server.New(scfg, logger).Run(ctx)
}
