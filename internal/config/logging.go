package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO if invalid/empty
	}
}

// GetLogLevel returns the log level from LOG_LEVEL environment variable
// Defaults to INFO if not set or invalid
func GetLogLevel() slog.Level {
	return parseLogLevel(os.Getenv("LOG_LEVEL"))
}

// NewLogger creates a new structured logger writing to stderr so stdout stays
// free for command output and the MCP stdio transport.
// In stdio mode the level comes from LOG_LEVEL; otherwise it defaults to WARN
// unless LOG_LEVEL is set. LOG_FORMAT=json switches to JSON records.
func NewLogger(isStdioMode bool) *slog.Logger {
	if isStdioMode {
		return newHandlerLogger(os.Stderr, GetLogLevel())
	}
	return NewCLILogger(os.Stderr)
}

// NewCLILogger creates a logger for interactive commands.
// Only warnings and errors are shown unless LOG_LEVEL asks for more.
func NewCLILogger(output io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("LOG_LEVEL") != "" {
		level = GetLogLevel()
	}
	return newHandlerLogger(output, level)
}

func newHandlerLogger(output io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		return slog.New(slog.NewJSONHandler(output, opts))
	}
	return slog.New(slog.NewTextHandler(output, opts))
}

// NewTextLogger creates a text-based logger with the configured log level
func NewTextLogger(output io.Writer) *slog.Logger {
	level := GetLogLevel()

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(output, opts))
}

// NewTestLogger creates a logger for testing with configurable level and output
// If level is empty, uses LOG_LEVEL environment variable
func NewTestLogger(output io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	if level == "" {
		logLevel = GetLogLevel()
	} else {
		logLevel = parseLogLevel(level)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	return slog.New(slog.NewTextHandler(output, opts))
}
