package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestSetAndGet(t *testing.T) {
	prev := *Get()
	defer Set(prev)

	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	Get().Info().Str("isbn", "978-0").Msg("book created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "book created", entry["message"])
	assert.Equal(t, "978-0", entry["isbn"])
}

func TestInitFileOutput(t *testing.T) {
	prev := *Get()
	defer Set(prev)

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Init(Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	Get().Info().Msg("filtered")
	Get().Warn().Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered")
	assert.Contains(t, string(data), "kept")
}
