// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gapwriter CLI.
// gapwriter serves the search, blog generation, and content gap API and
// exposes the same operations as subcommands.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gapwriter/internal/completion"
	"github.com/pdiddy/gapwriter/internal/httputil"
	applog "github.com/pdiddy/gapwriter/internal/log"
	"github.com/pdiddy/gapwriter/internal/search"
	"github.com/pdiddy/gapwriter/internal/secrets"
	"github.com/pdiddy/gapwriter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is populated from viper and the secrets directory before any
// subcommand runs.
var cfg types.AppConfig

// rootCmd is the base command for the gapwriter CLI.
var rootCmd = &cobra.Command{
	Use:   "gapwriter",
	Short: "Keyword research relay and blog post drafting",
	Long: `gapwriter relays keyword searches to the Brave Search API, drafts blog
posts through the Together completions API, and suggests content gaps for a
keyword.

Run "gapwriter serve" for the HTTP API, or use the search, gaps, and generate
subcommands directly. API keys come from BRAVE_API_KEY and TOGETHER_API_KEY or
from files in the secrets directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./gapwriter.yaml or $XDG_CONFIG_HOME/gapwriter/gapwriter.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: json or text")
	pf.String("secrets-dir", "", "directory holding brave-api-key and together-api-key files")

	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("secrets_dir", pf.Lookup("secrets-dir"))
}

func setDefaults() {
	viper.SetDefault("server.addr", ":3000")
	viper.SetDefault("server.rate_limit", 0)
	viper.SetDefault("server.rate_burst", 10)
	viper.SetDefault("server.shutdown_timeout", "10s")
	viper.SetDefault("http.timeout", "0s")
	viper.SetDefault("http.user_agent", "gapwriter/"+version)
	viper.SetDefault("search.endpoint", search.DefaultBraveEndpoint)
	viper.SetDefault("completion.endpoint", completion.DefaultTogetherEndpoint)
	viper.SetDefault("completion.model", completion.DefaultModel)
	viper.SetDefault("completion.max_tokens", completion.DefaultMaxTokens)
	viper.SetDefault("completion.temperature", completion.DefaultTemperature)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("secrets_dir", ".secrets")
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gapwriter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "gapwriter"))
	}

	viper.SetEnvPrefix("GAPWRITER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Reading config:", err)
		}
	}
}

// loadConfig decodes viper into cfg, resolves API keys, and installs the
// logger. Keys are registered with the logger so they are never printed.
func loadConfig() error {
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	keys, err := secrets.Resolve(viper.GetString("secrets_dir"), os.LookupEnv)
	if err != nil {
		return err
	}
	cfg.Search.APIKey = keys.Brave
	cfg.Completion.APIKey = keys.Together

	applog.Setup(cfg.Log, os.Stderr, keys.Brave, keys.Together)
	if f := viper.ConfigFileUsed(); f != "" {
		slog.Debug("using config file", "path", f)
	}
	slog.Debug("resolved API keys", "keys", keys.Sources())
	return nil
}

// newBackends builds the search and completion backends from cfg, sharing
// one HTTP client.
func newBackends() (*search.BraveBackend, *completion.TogetherBackend) {
	client := httputil.NewClient(cfg.HTTP.Timeout)
	return search.NewBraveBackend(client, cfg.Search, cfg.HTTP),
		completion.NewTogetherBackend(client, cfg.Completion, cfg.HTTP)
}

// describe adds the upstream body to an upstream error for terminal output.
func describe(err error) error {
	var upErr *httputil.UpstreamError
	if errors.As(err, &upErr) && upErr.Body != "" {
		return fmt.Errorf("%w: %s", err, upErr.Body)
	}
	var shapeErr *completion.ShapeError
	if errors.As(err, &shapeErr) {
		return fmt.Errorf("%w: %s", err, shapeErr.Raw)
	}
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
