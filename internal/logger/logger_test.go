package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("development is text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		log, closer := New(&buf, Options{IsDev: true})
		defer closer.Close()

		log.Debug("loaded", "entity", "tasks")
		assert.Contains(t, buf.String(), "msg=loaded")
		assert.Contains(t, buf.String(), "entity=tasks")
	})

	t.Run("production is json at info", func(t *testing.T) {
		var buf bytes.Buffer
		log, closer := New(&buf, Options{})
		defer closer.Close()

		log.Debug("hidden")
		log.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("log file mirror", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "app.log")
		log, closer := New(&buf, Options{LogFile: path})

		log.Warn("fallback used")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "fallback used")
		assert.Contains(t, buf.String(), "fallback used")
	})
}
