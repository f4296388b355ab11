// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/datealingo/pkg/models"
	"github.com/kpauljoseph/datealingo/pkg/utils"
)

const (
	EnvConfigPath = "DATEALINGO_CONFIG"
	EnvDataDir    = "DATEALINGO_DATA_DIR"

	DefaultConfigPath  = "datealingo.yaml"
	DefaultPromptCount = 30
	DefaultPromptTopic = "daily conversation"
)

type Config struct {
	DataDir       string           `yaml:"data_dir"`
	HideMemorized *bool            `yaml:"hide_memorized"`
	FrontMode     models.FrontMode `yaml:"front_mode"`
	Prompt        struct {
		Count int    `yaml:"count"`
		Topic string `yaml:"topic"`
	} `yaml:"prompt"`
}

// Load reads the YAML file at path and fills defaults. A missing file yields
// the defaults. Values from a .env file in the working directory or the
// process environment override the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}

	if cfg.DataDir == "" {
		cfg.DataDir = utils.GetDefaultDataDir()
	}
	if cfg.HideMemorized == nil {
		hide := true
		cfg.HideMemorized = &hide
	}
	if cfg.FrontMode == "" {
		cfg.FrontMode = models.FrontJP
	}
	if _, ok := models.ParseFrontMode(string(cfg.FrontMode)); !ok {
		return nil, fmt.Errorf("front_mode must be %q or %q, got %q", models.FrontJP, models.FrontEN, cfg.FrontMode)
	}
	if cfg.Prompt.Count <= 0 {
		cfg.Prompt.Count = DefaultPromptCount
	}
	if cfg.Prompt.Topic == "" {
		cfg.Prompt.Topic = DefaultPromptTopic
	}

	return &cfg, nil
}

func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", c.DataDir, err)
	}
	return nil
}
