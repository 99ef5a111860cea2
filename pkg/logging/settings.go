package logging

import (
	"fmt"

	"go-simpler.org/env"
)

// Settings holds the environment-controlled logging defaults used by Setup
// when no explicit arguments are given.
type Settings struct {
	Level string `env:"EADLANGCHAIN_LOG_LEVEL" default:"INFO"`
	File  string `env:"EADLANGCHAIN_LOG_FILE"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Load(&s, nil); err != nil {
		return nil, fmt.Errorf("load logging settings: %w", err)
	}
	return &s, nil
}
