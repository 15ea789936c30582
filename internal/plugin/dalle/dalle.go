// Package dalle forwards "$ht" prompts to a third-party image API and lets
// chat users switch the model with "$setmodel".
package dalle

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"dalle-telegram-bot/internal/adapter/memory"
	"dalle-telegram-bot/internal/command"
	"dalle-telegram-bot/internal/config"
	"dalle-telegram-bot/internal/domain"
	"dalle-telegram-bot/internal/plugin"
	"dalle-telegram-bot/internal/usecase/image"
)

const (
	FallbackText     = "我累了，请休息一会再试吧。"
	modelChangedText = "模型已更改为: "
)

var meta = plugin.Meta{
	Name:     "dalle",
	Priority: 1,
	Hidden:   true,
	Desc:     "一个可以调用第三方画图API的插件",
	Version:  "1.0",
	Author:   "Pi",
}

type Plugin struct {
	settings domain.SettingsStore
	images   *image.Service
	log      logrus.FieldLogger
}

func New(settings domain.SettingsStore, images *image.Service, log logrus.FieldLogger) *Plugin {
	return &Plugin{
		settings: settings,
		images:   images,
		log:      log.WithField("plugin", meta.Name),
	}
}

// NewFromFile loads the plugin config at path and wires the plugin with
// newClient built from it. A missing or broken file is logged and the
// plugin starts with an empty credential and URL.
func NewFromFile(path string, newClient func(config.PluginConfig) image.Client, log logrus.FieldLogger) *Plugin {
	cfg, err := config.LoadPlugin(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("dalle plugin config not found, check that config.json is in place")
	}

	settings := memory.NewSettings(cfg)
	return New(settings, image.NewService(newClient(cfg), settings), log)
}

func (p *Plugin) Meta() plugin.Meta {
	return meta
}

func (p *Plugin) Handle(ctx context.Context, ec *domain.EventContext) {
	cmd := command.Parse(ec.Content())

	switch cmd.Kind {
	case command.Image:
		ec.SetReply(p.generate(ctx, cmd.Arg))
	case command.SetModel:
		p.images.SetModel(cmd.Arg)
		p.log.WithField("model", cmd.Arg).Info("dalle model changed")
		ec.SetReply(domain.TextReply(modelChangedText + cmd.Arg))
	}
}

func (p *Plugin) generate(ctx context.Context, prompt string) domain.Reply {
	url, err := p.images.Generate(ctx, prompt)
	if err == nil {
		return domain.ImageReply(url)
	}

	entry := p.log.WithError(err).WithField("model", p.settings.Model())
	var upErr *image.UpstreamError
	if errors.As(err, &upErr) {
		entry = entry.WithFields(logrus.Fields{
			"status": upErr.StatusCode,
			"body":   upErr.Body,
		})
	}
	entry.Error("failed to call dalle api")

	return domain.TextReply(FallbackText)
}
