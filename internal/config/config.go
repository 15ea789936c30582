package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// DefaultDalleModel is used when the plugin config does not name a model.
const DefaultDalleModel = "dalle-mini"

type Config struct {
	TelegramToken    string
	AdminUserIDs     []int64
	AllowedUserIDs   []int64
	AllowedChatIDs   []int64
	PluginConfigPath string
	LogLevel         string
	LogFormat        string
}

// PluginConfig is the content of the dalle plugin's config.json.
type PluginConfig struct {
	OpenAIAPIKey string `json:"openai_api_key"`
	DalleBaseURL string `json:"dalle_base_url"`
	DalleModel   string `json:"dalle_model"`
}

func Load(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		log.WithError(err).Warn("could not read .env, using environment")
	}

	cfg := Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		PluginConfigPath: getenvDefault("DALLE_PLUGIN_CONFIG", "config.json"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFormat:        getenvDefault("LOG_FORMAT", "text"),
	}
	if cfg.TelegramToken == "" {
		return cfg, errors.New("telegram token is required")
	}

	cfg.AdminUserIDs = parseIDs(os.Getenv("ADMIN_USER_IDS"))
	cfg.AllowedUserIDs = parseIDs(os.Getenv("ALLOWED_TELEGRAM_USER_IDS"))
	cfg.AllowedChatIDs = parseIDs(os.Getenv("ALLOWED_TELEGRAM_CHAT_IDS"))

	return cfg, nil
}

// LoadPlugin reads the plugin config file. The returned config is always
// usable: on error it holds the defaults.
func LoadPlugin(path string) (PluginConfig, error) {
	cfg := PluginConfig{DalleModel: DefaultDalleModel}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read plugin config: %w", err)
	}

	var raw PluginConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("decode plugin config %s: %w", path, err)
	}
	if strings.TrimSpace(raw.DalleModel) == "" {
		raw.DalleModel = DefaultDalleModel
	}
	return raw, nil
}

func parseIDs(raw string) []int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			log.WithError(err).Warnf("skipping user id %q", p)
			continue
		}
		ids = append(ids, v)
	}
	return ids
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
