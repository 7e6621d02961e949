package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/netquiz/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	c := logger.DefaultConfig()
	c.Format = "json"
	c.Level = "warn"

	l, err := logger.New(&buf, c)
	require.NoError(t, err)
	l.Info().Msg("hidden")
	l.Warn().Str("stage", "layout").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "layout", entry["stage"])
	assert.Equal(t, "shown", entry["message"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(&buf, logger.DefaultConfig())
	require.NoError(t, err)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_Invalid(t *testing.T) {
	c := logger.DefaultConfig()
	c.Level = "loud"
	_, err := logger.New(&bytes.Buffer{}, c)
	assert.Error(t, err)

	c = logger.DefaultConfig()
	c.Format = "xml"
	_, err = logger.New(&bytes.Buffer{}, c)
	assert.Error(t, err)
}

func TestInitLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "netquiz.log")
	c := logger.DefaultConfig()
	c.Format = "json"
	c.Output = "file"
	c.FilePath = path

	require.NoError(t, logger.InitLogger(c))
	logger.Logger.Info().Msg("to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	c.FilePath = ""
	assert.Error(t, logger.InitLogger(c))
}
