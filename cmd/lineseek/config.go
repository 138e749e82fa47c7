package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds defaults for the command line options. Flags that were set
// explicitly take precedence over values read from a config file.
type Config struct {
	Position    string `toml:"position"`
	Direction   string `toml:"direction"`
	MaxPosition string `toml:"max_position"`
	Number      bool   `toml:"number"`
}

// loadConfig parses the TOML file at configPath, rejecting unknown keys so
// that typos do not silently fall back to defaults.
func loadConfig(configPath string) (Config, error) {
	config := Config{}
	m, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return Config{}, err
	}

	unknownKeys := m.Undecoded()
	if len(unknownKeys) > 0 {
		keys := make([]string, 0, len(unknownKeys))
		for _, key := range unknownKeys {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("unknown keys in config file: %s", strings.Join(keys, ", "))
	}

	return config, nil
}
