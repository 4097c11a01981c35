// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gapwriter/internal/secrets"
	"github.com/pdiddy/gapwriter/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve exposes GET /api/search, POST /api/generate-blog, GET /api/gaps,
GET /healthz, and GET /metrics. It shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Search.APIKey == "" {
			slog.Warn("search API key is not configured; /api/search will fail", "env", secrets.BraveEnv)
		}
		if cfg.Completion.APIKey == "" {
			slog.Warn("completion API key is not configured; /api/generate-blog will fail", "env", secrets.TogetherEnv)
		}

		sb, cb := newBackends()
		return server.New(cfg.Server, sb, cb).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :3000)")
	serveCmd.Flags().Float64("rate-limit", 0, "per-client requests per second on /api (0 disables)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.rate_limit", serveCmd.Flags().Lookup("rate-limit"))

	rootCmd.AddCommand(serveCmd)
}
