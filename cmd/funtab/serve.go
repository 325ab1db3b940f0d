package main

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tnguyen21/funtab/internal/logging"
	"github.com/tnguyen21/funtab/internal/server"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve funtab over SSH",
		Long: `Starts an SSH server. Every session gets its own tab strip and pages,
rendered for the client's terminal. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}

			logger, closer, err := serveLogger(cmd, cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, srv, logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override listen port")
	return cmd
}

// serveLogger logs to the log file when one is configured, else to stderr.
func serveLogger(cmd *cobra.Command, path, level string) (*log.Logger, io.Closer, error) {
	if path != "" {
		return logging.Open(path, level)
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, nil, err
	}
	return logger, io.NopCloser(nil), nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *server.Server, logger *log.Logger) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stopped")
	return nil
}
