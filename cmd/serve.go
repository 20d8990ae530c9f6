package main

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wound-analyzer/internal/api/rest"
	"wound-analyzer/internal/api/telegram"
	applog "wound-analyzer/internal/infrastructure/logger"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (and the Telegram bot when TELEGRAM_TOKEN is set)",
		Example: `  # Listen on 0.0.0.0:5000
  wound-analyzer serve

  # Custom port and storage directory
  PORT=8080 SAVE_DIR=/data/captures wound-analyzer serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer applog.Sync(rt.logger)

			ctx := cmd.Context()
			cfg := rt.cfg
			logger := rt.logger

			handler := rest.NewHandler(rt.app.WoundService, rt.app.NoteService, logger.Named("http"))
			router := rest.NewRouter(handler, rest.RouterConfig{
				Mode:         cfg.Server.Mode,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
			}, logger.Named("http"))

			server := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      router,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			if cfg.Telegram.Token != "" {
				bot, err := telegram.NewBot(cfg.Telegram.Token, rt.app, logger.Named("telegram"))
				if err != nil {
					return err
				}
				go func() {
					if err := bot.Run(ctx); err != nil {
						logger.Error("telegram bot stopped", zap.Error(err))
					}
				}()
			}

			serverErr := make(chan error, 1)
			go func() {
				abs, _ := filepath.Abs(rt.store.BaseDir())
				logger.Info("server starting",
					zap.String("addr", cfg.Addr()),
					zap.String("save_dir", abs),
					zap.String("llm_provider", cfg.LLM.Provider))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error("server shutdown failed", zap.Error(err))
					return err
				}
				logger.Info("server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}
}
