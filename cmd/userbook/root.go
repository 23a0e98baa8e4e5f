package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/userbook/internal/assets"
	"github.com/alfagnish/userbook/internal/config"
	"github.com/alfagnish/userbook/internal/logging"
	"github.com/alfagnish/userbook/internal/server"
	"github.com/alfagnish/userbook/internal/store"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		port     string
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "userbook",
		Short: "Serve the user directory over HTTP",
		Long:  "Runs an HTTP server with pages to list, add, update and delete users kept in a JSON collection.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(envFile); err != nil {
				return err
			}

			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("data-file") {
				cfg.DataFile = dataFile
			}

			return run(cfg, logging.New(cfg.LogLevel, cfg.LogFormat))
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment (ignored when missing)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	cmd.Flags().StringVarP(&dataFile, "data-file", "d", "", "JSON collection for the file backend (overrides DATA_FILE)")
	return cmd
}

// loadEnvFile applies a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// openStore builds the configured backend. The returned close function
// releases any connection the backend holds.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendFile:
		return store.NewFileStore(cfg.DataFile), func() {}, nil
	case config.BackendRedis:
		rs, err := store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisKey)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { rs.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	// 1. Open the record store.
	st, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	// 2. Resolve the static pages.
	fsys, err := assets.New(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("open assets: %w", err)
	}

	log.WithFields(logrus.Fields{
		"listen":  cfg.ListenAddr(),
		"backend": cfg.StoreBackend,
		"data":    cfg.DataFile,
		"static":  cfg.StaticDir,
	}).Info("config loaded")

	// 3. Start the HTTP server.
	srv := &http.Server{
		Addr:        cfg.ListenAddr(),
		Handler:     server.New(cfg, st, fsys, log),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
		ErrorLog:    stdLogger(log),
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-done:
	}
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("graceful shutdown error")
	}

	log.Info("server stopped")
	return nil
}

// stdLogger routes net/http's internal error log through logrus.
func stdLogger(log *logrus.Logger) *stdlog.Logger {
	return stdlog.New(log.WriterLevel(logrus.WarnLevel), "", 0)
}
