package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"stocktracker/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	require.Equal(t, slog.LevelWarn, logging.ParseLevel(" warning "))
	require.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestNewWriter_JSON(t *testing.T) {
	t.Parallel()

	// Arrange
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, logging.Config{Level: "info", Format: "json"})

	// Act
	logger.Debug("hidden")
	logger.Info("quote served", slog.String("symbol", "AAPL"))

	// Assert: debug is filtered and the record is JSON
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "quote served", rec["msg"])
	require.Equal(t, "AAPL", rec["symbol"])
}

func TestNewWriter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, logging.Config{Level: "debug", Format: "TEXT"})

	logger.Debug("upstream call", slog.Int("status", 200))

	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "status=200")
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	// Arrange: a log file inside a directory that does not exist yet
	path := filepath.Join(t.TempDir(), "logs", "stocktracker.log")

	// Act
	logger, closer, err := logging.New(logging.Config{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)
	logger.Info("written to file")
	require.NoError(t, closer.Close())

	// Assert
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "written to file")
}

func TestNew_Stdout(t *testing.T) {
	t.Parallel()

	logger, closer, err := logging.New(logging.Config{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NoError(t, closer.Close())
}
