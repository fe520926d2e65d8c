package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	require.Equal(t, "TRACE", LogLevelToString(TraceLevel))
	require.Equal(t, "WARN", LogLevelToString(WarnLevel))
	require.Equal(t, zerolog.TraceLevel, LogLevelToZerolog(TraceLevel))
	require.Equal(t, zerolog.DebugLevel, LogLevelToZerolog(DebugLevel))
	require.Equal(t, zerolog.FatalLevel, LogLevelToZerolog(FatalLevel))
}

func TestNewLoggerRespectsDebug(t *testing.T) {
	t.Setenv("DEBUG", "1")
	logger := NewLogger()
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	t.Setenv("DEBUG", "")
	logger = NewLogger()
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLoggerSetsTimeFormatOnce(t *testing.T) {
	NewLogger()
	original := zerolog.TimeFieldFormat
	defer func() { zerolog.TimeFieldFormat = original }()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	NewLogger()
	require.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
}
