package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"uniformnavi/internal/app"
	"uniformnavi/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchContent bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.InitApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if watchContent {
			go func() {
				if err := a.Posts.Watch(ctx, cfg.ContentDir); err != nil {
					logger.Log.Error("content watcher stopped", zap.Error(err))
				}
			}()
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           a.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("server started", zap.String("port", cfg.Port), zap.Bool("watch", watchContent))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&watchContent, "watch", false, "reload posts when files in the content directory change")
}
