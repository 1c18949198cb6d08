// Package config holds configuration for the command-line tools. The
// library packages take no configuration; everything tunable lives behind
// the binaries in cmd/.
package config

// Config is the root tool configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Lexicon LexiconConfig `yaml:"lexicon"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LexiconConfig holds settings for tools that load a pronouncing
// dictionary.
type LexiconConfig struct {
	// Path is the CMU-format dictionary file to load.
	Path string `yaml:"path" env:"LEXICON_PATH"`
	// TopN is how many ranked results rhyme search prints.
	TopN int `yaml:"top_n" env:"LEXICON_TOP_N" env-default:"20"`
	// MinScore filters rhyme candidates below this similarity.
	MinScore float64 `yaml:"min_score" env:"LEXICON_MIN_SCORE" env-default:"0.0"`
}
