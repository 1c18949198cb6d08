package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if c.Lexicon.TopN <= 0 {
		return fmt.Errorf("lexicon.top_n must be > 0 (got %d)", c.Lexicon.TopN)
	}
	if c.Lexicon.MinScore < 0 || c.Lexicon.MinScore > 1 {
		return fmt.Errorf("lexicon.min_score must be in [0, 1] (got %v)", c.Lexicon.MinScore)
	}

	return nil
}
