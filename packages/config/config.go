package config

// Config is the runtime configuration of the checker and its CLI.
type Config struct {
	Log    LogConfig    `koanf:"log"    yaml:"log"`
	Check  CheckConfig  `koanf:"check"  yaml:"check"`
	Output OutputConfig `koanf:"output" yaml:"output"`
}

type LogConfig struct {
	Level string `koanf:"level" yaml:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"  yaml:"json"`
}

// CheckConfig bounds the work a single check may do.
type CheckConfig struct {
	// MaxVariables rejects sentences with more distinct variables; the
	// enumeration visits 2^n models.
	MaxVariables int `koanf:"max_variables" yaml:"max_variables" validate:"min=1,max=62"`
	// CacheSize is the number of analyses kept by canonical form; 0
	// disables the cache.
	CacheSize int `koanf:"cache_size" yaml:"cache_size" validate:"min=0"`
	// Parallel is the number of sentences a batch checks at once.
	Parallel int `koanf:"parallel" yaml:"parallel" validate:"min=1,max=1024"`
}

type OutputConfig struct {
	Format string `koanf:"format" yaml:"format" validate:"oneof=text json yaml"`
	Color  string `koanf:"color"  yaml:"color"  validate:"oneof=auto always never"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Check: CheckConfig{
			MaxVariables: 24,
			CacheSize:    256,
			Parallel:     4,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}
