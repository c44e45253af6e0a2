package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "init-config")
}

func TestRootCommand_Version(t *testing.T) {
	assert.NotEmpty(t, Version)

	out, _, err := execute(t, "--version")
	assert.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestRootCommand_UnknownArgs(t *testing.T) {
	_, _, err := execute(t, "validate", "a", "b")
	assert.Error(t, err)
}
