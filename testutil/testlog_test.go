package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "app.yaml", "name: demo\n")
	assert.Equal(t, "app.yaml", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: demo\n", string(data))
}

func TestLoggerWritesThroughT(t *testing.T) {
	logger := Logger(t)
	assert.NotPanics(t, func() {
		logger.Debug().Int("readers", 4).Msg("test logger")
	})
}
