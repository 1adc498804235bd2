package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersBeforeInit(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Debug("debug")
		Info("info")
		Warn("warn")
		Error("error", "err", "boom")
	})
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init(Config{Level: "chatty"}))
}

func TestInitDebugOverridesLevel(t *testing.T) {
	require.NoError(t, Init(Config{Level: "error", Debug: true}))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easecalc.log")
	require.NoError(t, Init(Config{Level: "info", File: path}))
	t.Cleanup(func() { Logger = nil })

	Info("curve accepted", "curve", "Linear")
	Debug("hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "curve accepted")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.WarnLevel, false)

	l.Info("quiet")
	l.Warn("loud", "key", "value")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "key=value")
}
