package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcoot/soccermanager/internal/api"
	"github.com/mcoot/soccermanager/internal/factory"
)

func newServeCmd(v *viper.Viper, defaults *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the roster as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cfg.newLogger(cmd.ErrOrStderr())
			slog.SetDefault(logger)

			app := factory.New(factory.Config{Logger: logger})

			router := api.NewRouter(api.RouterConfig{
				Logger: logger,
				Roster: app.SharedRoster,
			})

			serverConfig := api.DefaultServerConfig()
			serverConfig.Addr = cfg.Addr
			server := api.NewServer(router, serverConfig, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx); err != nil {
				logger.Error("server error", slog.String("error", err.Error()))
				return err
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().String(keyAddr, defaults.Addr, "Listen address (env: SOCCER_ADDR)")
	mustBindPFlag(v, keyAddr, cmd.Flags().Lookup(keyAddr))

	return cmd
}
