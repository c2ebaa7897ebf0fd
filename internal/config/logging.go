package config

import "strings"

// LogFormat selects the slog handler.
type LogFormat int

const (
	LogText LogFormat = iota
	LogJSON
)

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string // debug|info|warn|error
	Format        string // text|json
	IncludeCaller bool
}

// NewLoggingConfig creates a LoggingConfig with default values.
func NewLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "warn",
		Format: "text",
	}
}

// ParseLogFormat maps a format name to a LogFormat. Empty means text.
func ParseLogFormat(name string) (LogFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return LogText, true
	case "json":
		return LogJSON, true
	default:
		return LogText, false
	}
}
