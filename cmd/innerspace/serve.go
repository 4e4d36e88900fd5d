package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"innerspace.app/site/internal/app"
	"innerspace.app/site/internal/appconf"
	"innerspace.app/site/internal/landing"
	"innerspace.app/site/internal/logging"
	"innerspace.app/site/internal/webui"
)

func serveCmd(v *viper.Viper) *cobra.Command {
	defaults := appconf.Default()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromViper(v)
			if err != nil {
				return err
			}

			application := &app.Application{
				Config: cfg,
				Logger: logging.ForEnvironment(cmd.OutOrStdout(), cfg.Env),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, application)
		},
	}

	cmd.Flags().Int("port", defaults.Port, "HTTP server port")
	cmd.Flags().Int("rate-limit", defaults.RateLimit, "requests per second per client (negative disables)")
	cmd.Flags().Int("gzip-min-size", defaults.GzipMinSize, "smallest response in bytes to gzip")
	return cmd
}

func serve(ctx context.Context, application *app.Application) error {
	logger := application.Logger

	for _, anchor := range landing.DanglingAnchors() {
		logger.Warn("navigation anchor has no matching section",
			slog.String("anchor", anchor),
			slog.String("component", "landing"))
	}

	webUI, err := webui.NewWebUI(application)
	if err != nil {
		return err
	}
	defer webUI.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      webUI.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logging.LogError(logger, "server stopped", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server", "addr", srv.Addr)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
