package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"dalle-telegram-bot/internal/adapter/openai"
	"dalle-telegram-bot/internal/adapter/telegram"
	"dalle-telegram-bot/internal/config"
	"dalle-telegram-bot/internal/logger"
	"dalle-telegram-bot/internal/plugin"
	"dalle-telegram-bot/internal/plugin/dalle"
	"dalle-telegram-bot/internal/usecase/image"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	lg := logger.New(cfg.LogLevel, cfg.LogFormat)

	registry := plugin.NewRegistry()
	dallePlugin := dalle.NewFromFile(cfg.PluginConfigPath, func(pc config.PluginConfig) image.Client {
		return openai.NewClient(pc.DalleBaseURL, pc.OpenAIAPIKey)
	}, lg)
	if err := registry.Register(dallePlugin); err != nil {
		lg.Fatalf("failed to register plugin: %v", err)
	}

	bot, err := telegram.NewBot(cfg, registry, lg)
	if err != nil {
		lg.Fatalf("failed to init telegram bot: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := bot.Run(ctx); err != nil {
		if ctx.Err() != nil {
			lg.Infof("shutdown: %v", err)
			return
		}
		lg.Fatalf("bot stopped with error: %v", err)
	}
}
