package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/callsdk/internal/catalog"
	"github.com/danmuck/callsdk/internal/config"
	"github.com/danmuck/callsdk/internal/inspect"
	"github.com/danmuck/callsdk/internal/observability"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	configPath string
	envFile    string
	addr       string
	watch      bool
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the record inspector HTTP service",
		Example: `  # Defaults (":9300")
  callsdk serve

  # Config file with hot reload
  callsdk serve --config callsdk.toml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			observability.InitLogger("callsdk")
			srv, path, err := buildServer(opts, os.Getenv)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if opts.watch && path != "" {
				if err := srv.WatchConfig(ctx, path); err != nil {
					return err
				}
				log.Info().Str("path", path).Msg("watching config")
			}
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file (default $"+config.EnvConfig+")")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, overrides config and $"+config.EnvAddr)
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the config file when it changes")
	return cmd
}

// buildServer resolves configuration from dotenv, the config file, the
// environment and flags, in that order. It returns the config path in use,
// empty when running on defaults.
func buildServer(opts serveOptions, getenv func(string) string) (*inspect.Server, string, error) {
	if opts.envFile != "" {
		if err := config.LoadDotEnv(opts.envFile); err != nil {
			return nil, "", err
		}
	}

	cfg := config.Default()
	path := opts.configPath
	if path == "" {
		path = config.PathFromEnv(getenv, "")
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
	}
	cfg = config.ApplyEnv(cfg, getenv)
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}

	srv, err := inspect.New(cfg, catalog.Registry())
	if err != nil {
		return nil, "", err
	}
	srv.RegisterRoutes()
	return srv, path, nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
