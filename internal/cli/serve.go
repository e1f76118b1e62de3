package cli

import (
	"github.com/spf13/cobra"

	"github.com/vitrine-dev/vitrine/internal/server"
	"github.com/vitrine-dev/vitrine/pkg/engine"
)

// newServeCmd creates the serve command, which runs the HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			c, err := openCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			logger.Info("starting server",
				"addr", cfg.Server.Addr,
				"cache", cfg.Cache.Backend,
				"store", cfg.Store.Backend)

			runner := engine.NewRunner(c, nil, nil, logger)
			runner.TTL = cfg.Cache.TTL.Std()
			return server.New(runner, st, logger).ListenAndServe(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
