package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// ApplyEnv overrides cfg with any USER_IDLE_* variables that are set.
// Unset variables leave the current values in place.
func ApplyEnv(cfg *Config) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read environment overrides: %w", err)
	}
	return nil
}
