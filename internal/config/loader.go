package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads tool configuration from a YAML file and environment variables,
// ENV taking priority over the file and env-default tags over both. The
// file path comes from SOUND_CONFIG (fallback "./sound.yaml"). A missing
// file is only an error when SOUND_CONFIG named it explicitly; otherwise
// configuration comes from ENV and defaults alone.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("SOUND_CONFIG")
	explicit := path != ""
	if !explicit {
		path = "./sound.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
