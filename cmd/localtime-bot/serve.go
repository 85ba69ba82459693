package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aidar/localtime-bot/internal/app"
	"github.com/aidar/localtime-bot/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot and the admin HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Загружаем конфигурацию, без токена бота дальше не идем
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}

			// Ctrl+C или SIGTERM останавливают опрос и HTTP сервер
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := application.Initialize(ctx); err != nil {
				return err
			}

			if err := application.Run(ctx); err != nil {
				return err
			}

			application.Logger().Info("Bot stopped")
			return nil
		},
	}
}
