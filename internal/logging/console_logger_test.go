package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	logger.Verbose("loaded %d blocks", 3)

	assert.Equal(t, "[VERBOSE] loaded 3 blocks\n", buf.String())
}

func TestConsoleLogger_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Verbose("should not appear")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("plain message")
	logger.Error("boom: %v", "details")

	assert.Equal(t, "plain message\n[ERROR] boom: details\n", buf.String())
}

func TestConsoleLogger_NoArgsWithPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	// A literal % must survive when no format args are given.
	logger.Info("coverage 100%")

	assert.Equal(t, "coverage 100%\n", buf.String())
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("x")
	logger.Info("y")
	logger.Error("z")
}
