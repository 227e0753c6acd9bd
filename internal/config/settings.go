package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"
)

// Settings holds process configuration
type Settings struct {
	// HTTP API
	ListenAddr string

	// Optional external content directory; empty means embedded tables only
	ContentDir      string
	ContentPatterns []string

	// Output
	NoColor bool

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		ListenAddr:      ":8390",
		ContentDir:      "",
		ContentPatterns: []string{},
		NoColor:         false,
		LogLevel:        slog.LevelError,
		LogFormat:       "text",
		LogFile:         "",
	}
}

// LoadSettings creates settings from defaults and applies environment
// variable overrides
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if addr := os.Getenv("TOOLBRIDGE_LISTEN_ADDR"); addr != "" {
		settings.ListenAddr = addr
	}

	if contentDir := os.Getenv("TOOLBRIDGE_CONTENT_DIR"); contentDir != "" {
		settings.ContentDir = contentDir
	}

	if patterns := os.Getenv("TOOLBRIDGE_CONTENT_PATTERNS"); patterns != "" {
		settings.ContentPatterns = strings.Split(patterns, ",")
		for i, pattern := range settings.ContentPatterns {
			settings.ContentPatterns[i] = strings.TrimSpace(pattern)
		}
	}

	if noColor := os.Getenv("TOOLBRIDGE_NO_COLOR"); noColor != "" {
		settings.NoColor = strings.ToLower(noColor) == "true"
	}

	if logLevel := os.Getenv("TOOLBRIDGE_LOG_LEVEL"); logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("TOOLBRIDGE_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("TOOLBRIDGE_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// ConfigureLogger sets up the global logger based on settings
func (s *Settings) ConfigureLogger() *slog.Logger {
	var handler slog.Handler

	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	opts := &slog.HandlerOptions{
		Level: s.LogLevel,
	}

	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
