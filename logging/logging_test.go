package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(config.Log{Level: "info", Format: "auto"}, &buf)
	require.NoError(t, err)

	logger.Info().Str("session", "brave-otter").Msg("session started")
	logger.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session started", entry["message"])
	assert.Equal(t, "brave-otter", entry["session"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(config.Log{Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := logging.New(config.Log{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logging.New(config.Log{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	logger, closer, err := logging.ToFile(config.Log{Level: "debug", Format: "console"}, path)
	require.NoError(t, err)
	logger.Debug().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
}
