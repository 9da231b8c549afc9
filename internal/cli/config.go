package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is the fixed result file name used when neither flag nor
// config names one. The interactive session always writes here by default.
const DefaultOutput = "result.txt"

// defaultConfigPath is probed when --config is not given.
const defaultConfigPath = "spmat.yaml"

// Config holds file-based defaults for the CLI. Flags override config
// values; config values override the built-in defaults.
type Config struct {
	// Output is the result file path used when -o is not given.
	Output string `yaml:"output"`

	// Format is the default output format ("text" or "json").
	Format string `yaml:"format"`
}

// LoadConfig reads a spmat.yaml config. With an empty path the default
// location is probed and a missing file is not an error; an explicit path
// must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
		Format: "text",
	}
}
