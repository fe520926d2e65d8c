package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// LogLevelToZerolog translates a log level enum to the equivalent zerolog.Level
func LogLevelToZerolog(level int) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.TraceLevel
	}
}

var setTimeFormat sync.Once

// NewLogger builds a structured logger writing JSON to stderr at InfoLevel.
// PRETTY=1 switches to human-readable console output, and DEBUG=1 lowers the level to DebugLevel.
func NewLogger() zerolog.Logger {
	setTimeFormat.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	})
	level := InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = DebugLevel
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(LogLevelToZerolog(level))
	if os.Getenv("PRETTY") == "1" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}
