package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mutepass/mutepass-go/internal/config"
	"github.com/mutepass/mutepass-go/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		Long: `Run the HTTP API exposing POST /api/v1/generate and POST /api/v1/analyze.
Configuration comes from the environment (PORT, ENV, RATE_LIMIT_RPS,
RATE_LIMIT_BURST, SHUTDOWN_TIMEOUT), optionally loaded from a .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("no .env file found, using environment variables", "path", envFile)
			}

			cfg := config.Load()
			slog.SetDefault(newLogger(cfg))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to a .env file")
	return cmd
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	opts.Level = slog.LevelDebug
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
