package domain

import "dalle-telegram-bot/internal/config"

// SettingsStore holds the plugin configuration for the life of the process.
type SettingsStore interface {
	Model() string
	SetModel(model string)
	Snapshot() config.PluginConfig
}
