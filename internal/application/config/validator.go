// Package config validates the loaded configuration before a check runs.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/stackwatch/checkstack/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.Defaults.TimeoutSeconds <= 0 {
		return fmt.Errorf("defaults.timeout must be positive, got %d", cfg.Defaults.TimeoutSeconds)
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	return validateEndpoints(cfg.Endpoints)
}

func validateLogging(settings domain.LogSettings) error {
	switch strings.ToLower(settings.Level) {
	case "", "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not a recognized level", settings.Level)
	}
}

func validateEndpoints(endpoints map[string]string) error {
	for name, endpoint := range endpoints {
		if _, ok := domain.ParseServiceKind(name); !ok {
			return fmt.Errorf("endpoints.%s is not a supported service", name)
		}
		parsed, err := url.Parse(endpoint)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("endpoints.%s %q is not an absolute URL", name, endpoint)
		}
	}
	return nil
}
