package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gradviz/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Writer(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := logger.Setup(logger.Config{Writer: &buf})
	require.NoError(t, err)

	logger.L().Debug("hidden")
	logger.L().Info("pipeline.loaded", "samples", 3)
	require.NoError(t, cleanup())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug is filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "pipeline.loaded", rec["msg"])
	assert.Equal(t, float64(3), rec["samples"])
	assert.True(t, strings.HasSuffix(rec["time"].(string), "Z"), "UTC timestamps")

	logger.L().Info("after cleanup")
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 1)
}

func TestSetup_FileDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gradviz.log")
	cleanup, err := logger.Setup(logger.Config{File: path, Debug: true})
	require.NoError(t, err)

	logger.L().Debug("pipeline.debug")
	require.NoError(t, cleanup())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"logger.initialized"`)
	assert.Contains(t, string(b), `"msg":"pipeline.debug"`)
	assert.Contains(t, string(b), `"source"`)
}
