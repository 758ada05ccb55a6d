// Package main starts an HTTP server that renders a country's GDP over time
// as an SVG scatter plot, with a population vs GDP tooltip chart. The dataset
// is loaded once at startup.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gdpscope/core/cmd/api/middleware"
	"github.com/gdpscope/core/internal/app"
	"github.com/gdpscope/core/internal/config"
	"github.com/gdpscope/core/internal/handlers"
	"github.com/gdpscope/core/internal/logging"
	"github.com/gdpscope/core/internal/parser"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	dataPath   string
	addr       string
	country    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "gdpscope",
		Short:         "Serve the GDP through time charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	cmd.Flags().StringVarP(&f.dataPath, "data", "d", "", "Path to the GDP/population CSV (overrides config)")
	cmd.Flags().StringVarP(&f.addr, "addr", "a", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&f.country, "country", "", "Country selected by default (overrides config)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	return cmd
}

// loadConfig reads the config file and applies the flags on top.
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.dataPath != "" {
		cfg.Data.Path = f.dataPath
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.country != "" {
		cfg.Data.DefaultCountry = f.country
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}

	if cfg.LogLevel != "" && !logging.SetLogLevelName(cfg.LogLevel) {
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return cfg, nil
}

// buildHandler loads the dataset. A load failure does not stop the server:
// the returned handler shows the error to every visitor.
func buildHandler(cfg *config.Config) *handlers.Handler {
	logger := logging.Logger()

	dir, name := filepath.Split(cfg.Data.Path)
	if dir == "" {
		dir = "."
	}

	ds, _, err := parser.LoadDataset(os.DirFS(dir), name)
	if err != nil {
		logger.Error("dataset load failed", "path", cfg.Data.Path, "error", err)
		return handlers.NewUnavailable(err)
	}

	a, err := app.New(ds, cfg.MainChart, cfg.TooltipChart, cfg.Data.DefaultCountry)
	if err != nil {
		logger.Error("chart setup failed", "error", err)
		return handlers.NewUnavailable(err)
	}

	return handlers.New(a)
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := buildHandler(cfg).Routes()
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           middleware.NewCors(cfg.Server.CorsAllowedOrigin)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger().Info("server starting", "addr", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logging.Logger().Info("server shutting down")
	return server.Shutdown(shutdownCtx)
}
