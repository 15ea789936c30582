package memory

import (
	"sync"

	"dalle-telegram-bot/internal/config"
)

// Settings keeps the plugin config in process memory. Changes are never
// written back to the config file.
type Settings struct {
	mu  sync.RWMutex
	cfg config.PluginConfig
}

func NewSettings(cfg config.PluginConfig) *Settings {
	return &Settings{cfg: cfg}
}

func (s *Settings) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.DalleModel
}

func (s *Settings) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.DalleModel = model
}

func (s *Settings) Snapshot() config.PluginConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
