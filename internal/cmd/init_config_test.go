package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/personacheck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigCommand(t *testing.T) {
	root := t.TempDir()

	out, _, err := execute(t, "init-config", root)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote ")

	suite, err := config.LoadSuiteFromDir(root)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSuite(), suite)

	_, _, err = execute(t, "init-config", root)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("title: Old\n"), 0644))
	_, _, err = execute(t, "init-config", "--force", root)
	require.NoError(t, err)

	suite, err = config.LoadSuiteFromDir(root)
	require.NoError(t, err)
	assert.Equal(t, "PersonaHub", suite.Title)
}
