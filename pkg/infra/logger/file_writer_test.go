package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.log")

	w, err := NewFileWriter(path, 1024)
	require.NoError(t, err)

	_, err = w.Write([]byte("first entry\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second entry\n"))
	require.NoError(t, err)

	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first entry")
	assert.Contains(t, string(data), "second entry")
	assert.Equal(t, int64(0), w.Dropped())
}

func TestFileWriterCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.log")

	w, err := NewFileWriter(path, 1024)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.Error(t, w.Close())
}

func TestConsoleHookLevels(t *testing.T) {
	h := NewConsoleHook(logrus.InfoLevel)

	assert.Contains(t, h.Levels(), logrus.ErrorLevel)
	assert.Contains(t, h.Levels(), logrus.InfoLevel)
	assert.NotContains(t, h.Levels(), logrus.DebugLevel)
}

func TestConsoleHookFire(t *testing.T) {
	var buf bytes.Buffer
	h := &ConsoleHook{out: &buf, levels: logrus.AllLevels}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(h)
	logger.Info("console mirror check")

	assert.Contains(t, buf.String(), "console mirror check")
}
