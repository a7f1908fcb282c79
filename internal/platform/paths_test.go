package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStateDirContainsAppName(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	dir, err := NewService().GetStateDir("pomodoro")

	require.NoError(t, err)
	assert.Contains(t, filepath.ToSlash(dir), "pomodoro")
}

func TestGetConfigDir(t *testing.T) {
	dir, err := NewService().GetConfigDir()

	require.NoError(t, err)
	assert.NotEmpty(t, dir)
}
