package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	for _, name := range []string{"error", "warn", "info", "debug", "trace"} {
		level, err := ParseLogLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}

	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0, LogLevelWarn)

	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("shown %d", 1)
	l.Error("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 1", entry["msg"])
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "", 0, LogLevelInfo)
	child := parent.With("match", "abc")

	child.Info("point")
	parent.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "abc", first["match"])
	assert.NotContains(t, second, "match")
}

func TestSetDefaultLogger(t *testing.T) {
	prev := Default()
	defer SetDefaultLogger(prev)

	var buf bytes.Buffer
	SetDefaultLogger(New(&buf, "", 0, LogLevelTrace))

	Trace("deep")
	assert.Contains(t, buf.String(), `"msg":"deep"`)
}
