package domain

import "time"

// Config mirrors ~/.checkstack/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Defaults            Defaults          `yaml:"defaults"`
	Endpoints           map[string]string `yaml:"endpoints"`
	Logging             LogSettings       `yaml:"logging"`
}

// Defaults captures check-level toggles applied when flags are omitted.
type Defaults struct {
	TimeoutSeconds int  `yaml:"timeout"`
	Insecure       bool `yaml:"insecure"`
}

// LogSettings configures the diagnostic log sink. The status line itself
// always goes to stdout regardless of these settings.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Timeout returns the configured default timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Defaults.TimeoutSeconds) * time.Second
}

// EndpointFor returns the configured default base URL for a service, or ""
// when none is set.
func (c Config) EndpointFor(kind ServiceKind) string {
	return c.Endpoints[string(kind)]
}
