// Package keystore provides at-rest encrypted storage of PhantasmaKeys,
// bbolt-backed.
package keystore

import (
	"fmt"
	"strings"
)

// Config configures a Store, following a Config +
// node.ValidateConfig shape.
type Config struct {
	Path           string
	PBKDF2Iterations int
}

// DefaultConfig returns a Config with a conservative PBKDF2 iteration
// count for a dev/test keystore file.
func DefaultConfig(path string) Config {
	return Config{
		Path:             path,
		PBKDF2Iterations: 210000,
	}
}

// ValidateConfig returns the first violated field constraint, or nil.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if cfg.PBKDF2Iterations < 100000 {
		return fmt.Errorf("pbkdf2_iterations must be >= 100000, got %d", cfg.PBKDF2Iterations)
	}
	return nil
}
