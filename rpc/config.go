package rpc

import (
	"fmt"
	"strings"
)

// ClientConfig configures a Client, following a Config +
// node.ValidateConfig shape (plain fields, a Default constructor, a
// Validate function returning the first violation).
type ClientConfig struct {
	Nexus    string
	LogLevel string
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// DefaultClientConfig returns a ClientConfig suitable for a devnet client.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Nexus:    "testnet",
		LogLevel: "info",
	}
}

// ValidateClientConfig returns the first violated field constraint, or nil.
func ValidateClientConfig(cfg ClientConfig) error {
	if strings.TrimSpace(cfg.Nexus) == "" {
		return fmt.Errorf("nexus is required")
	}
	logLevel := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	return nil
}
