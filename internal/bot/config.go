// Package bot wires the symposium schedule bot: configuration,
// command and callback registration, and the conversational flows used
// by the admin to manage series and events.
package bot

import (
	"fmt"

	coreconfig "symposiumbot/core/config"
	coredatabase "symposiumbot/core/database"
)

// BotConfig holds settings specific to the symposium bot.
type BotConfig struct {
	// DefaultLogo is used for series and events without their own image.
	DefaultLogo string `yaml:"default_logo" envconfig:"BOT_DEFAULT_LOGO"`
	// SeedDemo fills an empty database with a sample symposium on startup.
	SeedDemo bool `yaml:"seed_demo" envconfig:"BOT_SEED_DEMO"`
}

// Config is the full application configuration: the shared core
// sections plus the database and bot-specific ones.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	Bot      BotConfig           `yaml:"bot"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Config
}

// LoadConfig reads the application configuration from a YAML file and
// the environment.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.LoadInto(path, &cfg); err != nil {
		return nil, err
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: database host is required")
	}
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("config: database name is required")
	}
	return &cfg, nil
}
