package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/multislider/internal/config"
	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/internal/logging"
	"github.com/vango-dev/multislider/pkg/icons"
	"github.com/vango-dev/multislider/pkg/server"
	"github.com/vango-dev/multislider/pkg/session"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		Long: `Run the demo server.

Configuration is read from --config, or multislider.yaml in the working
directory, falling back to built-in defaults when neither exists.

Examples:
  multislider serve
  multislider serve --port=8080
  multislider serve --config=deploy/multislider.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to multislider.yaml")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	return cmd
}

// loadConfig reads path, or multislider.yaml in the working directory
// when path is empty. A missing default file yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.Load(".")
	if err != nil {
		var se *errors.SliderError
		if stderrors.As(err, &se) && se.Code == "E141" {
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func iconStore(cfg *config.Config) (icons.Store, error) {
	if cfg.Icons.S3.Enabled() {
		s3 := cfg.Icons.S3
		return icons.NewS3Store(icons.NewS3Client(s3), s3.Bucket, s3.Prefix), nil
	}
	if dir := cfg.IconsPath(); dir != "" {
		return icons.NewDirStore(dir)
	}
	return nil, nil
}

func runServe(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer := logging.New(cfg.Log, os.Stderr)
	defer closer.Close()

	opts := []server.Option{server.WithLogger(logger)}
	store, err := iconStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		opts = append(opts, server.WithIconStore(store))
	}

	if cfg.Server.Redis.Enabled() {
		sessions := session.NewRedisStore(cfg.Server.Redis)
		defer sessions.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := sessions.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("session store: %w", err)
		}
		opts = append(opts, server.WithSessionStore(sessions))
	}

	srv, err := server.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printBanner()
	success("Serving %d sliders", len(cfg.Demo.Sliders))
	info("Open %s", cfg.URL())
	if cfg.Metrics.Enabled {
		info("Metrics at %s%s", cfg.URL(), cfg.Metrics.Path)
	}

	return srv.Run(ctx)
}
