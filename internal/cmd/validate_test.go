package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/personacheck/internal/config"
	"github.com/harrison/personacheck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, text string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
}

// setupRepo creates a repository that passes the default PersonaHub suite
func setupRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, name := range config.DefaultSuite().AgentFiles {
		agentName := strings.TrimSuffix(name, ".md")
		writeFile(t, root, name, "---\nname: "+agentName+"\ndescription: PersonaHub agent\nmodel: sonnet\n---\n\n# "+agentName+"\n\nAdvancing pattern with 🌸 Miette.\n")
	}
	writeFile(t, root, "framework/personahub/README.md",
		"# PersonaHub Framework\n\n## Framework Architecture\n\n```mermaid\ngraph LR\n  A --> B\n```\n\n## Core Components\n\n## Creative Orientation\n")
	writeFile(t, root, "framework/personahub/configuration.md",
		"# Configuration\n\n```yaml\npersonahub_framework:\n  quality_framework:\n    threshold: 0.9\n  scaling:\n    workers: 4\n```\n")
	writeFile(t, root, "framework/personahub/examples.md",
		"# Examples\n\n## Basic Persona Generation\n\n## Multi-Modal Generation\n\n## Integration\n")
	writeFile(t, root, "README.md",
		"# mia-agents\n\n## PersonaHub\n\nSee [the framework](framework/personahub/README.md) and persona-synthesis-orchestrator.\n")

	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCommand_AllPassed(t *testing.T) {
	root := setupRepo(t)

	out, _, err := execute(t, "validate", root)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "🌸 PersonaHub Framework Validation\n"))
	assert.Contains(t, out, "✅ persona-hub-architect.md\n")
	assert.Contains(t, out, "✅ framework/personahub/README.md\n")
	assert.Contains(t, out, "✅ README.md integration\n")
	assert.Contains(t, out, "✅ File naming consistency\n")
	assert.Contains(t, out, "🎯 Overall Result: 10/10 checks passed\n")
	assert.True(t, strings.HasSuffix(out, "🎉 PersonaHub framework validation PASSED! All components are properly implemented.\n"))
	assert.NotContains(t, out, "\x1b[")
}

func TestValidateCommand_Idempotent(t *testing.T) {
	root := setupRepo(t)
	require.NoError(t, os.Remove(filepath.Join(root, "framework/personahub/examples.md")))

	first, _, err := execute(t, "validate", "--verbose", root)
	require.NoError(t, err)
	second, _, err := execute(t, "validate", "--verbose", root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidateCommand_FailuresArePrintOnly(t *testing.T) {
	root := setupRepo(t)
	writeFile(t, root, "persona-hub-architect.md", "---\nname: a\ndescription: b\n---\n")
	writeFile(t, root, "synthetic-data-composer.md", "no metadata")

	out, _, err := execute(t, "validate", root)
	require.NoError(t, err)

	assert.Contains(t, out, "❌ persona-hub-architect.md: Missing required fields: [model]\n")
	assert.Contains(t, out, "❌ synthetic-data-composer.md: Missing YAML frontmatter\n")
	assert.Contains(t, out, "🎯 Overall Result: 8/10 checks passed\n")
	assert.Contains(t, out, "⚠️  PersonaHub framework validation needs attention. 2 issues found.\n")
}

func TestValidateCommand_Strict(t *testing.T) {
	root := setupRepo(t)

	_, _, err := execute(t, "validate", "--strict", root)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "README.md")))
	out, _, err := execute(t, "validate", "--strict", root)
	require.Error(t, err)
	assert.Equal(t, "validation failed: 1 of 10 checks failed", err.Error())
	assert.Contains(t, out, "❌ README.md integration: Main README.md not found\n")
}

func TestValidateCommand_JSONOut(t *testing.T) {
	root := setupRepo(t)
	jsonPath := filepath.Join(t.TempDir(), "report.json")

	_, _, err := execute(t, "validate", "--json-out", jsonPath, root)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var run models.ValidationRun
	require.NoError(t, json.Unmarshal(data, &run))
	assert.Equal(t, 10, run.Total)
	assert.Equal(t, 10, run.Passed)
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, "sonnet", run.Agents[0].Metadata["model"])
	assert.Contains(t, run.Frameworks[0].Headings, "## Core Components")
}

func TestValidateCommand_ConfigFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "agents/alpha-agent.md", "---\nname: alpha\ndescription: a\nmodel: m\n---\n")
	writeFile(t, root, "agents/Beta.md", "---\nname: beta\ndescription: b\nmodel: m\n---\n")
	writeFile(t, root, "docs/overview.md", "## Architecture\n")
	writeFile(t, root, "README.md", "Team agents: see docs/overview.md")
	writeFile(t, root, config.FileName, `title: Team
agent_dir: agents
agent_files: [alpha-agent.md]
framework_files: [docs/overview.md]
framework_rules:
  overview.md:
    sections: [Architecture]
keyword: Team
framework_link: docs/
`)

	out, _, err := execute(t, "validate", root)
	require.NoError(t, err)
	assert.Contains(t, out, "🌸 Team Framework Validation\n")
	assert.Contains(t, out, "✅ agents/alpha-agent.md\n")
	assert.Contains(t, out, "✅ docs/overview.md\n")
	assert.Contains(t, out, "🎯 Overall Result: 4/4 checks passed\n")

	out, _, err = execute(t, "validate", "--discover", root)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ agents/Beta.md\n")
	assert.Contains(t, out, "❌ File naming consistency: [Beta.md doesn't follow kebab-case pattern]\n")
	assert.Contains(t, out, "🎯 Overall Result: 4/5 checks passed\n")
}

func TestValidateCommand_ExplicitConfigPath(t *testing.T) {
	root := setupRepo(t)
	cfgPath := filepath.Join(t.TempDir(), "suite.yaml")
	writeFile(t, filepath.Dir(cfgPath), "suite.yaml", "required_fields: [name, owner]\n")

	out, _, err := execute(t, "validate", "--config", cfgPath, root)
	require.NoError(t, err)
	assert.Contains(t, out, "❌ persona-hub-architect.md: Missing required fields: [owner]\n")
}

func TestValidateCommand_BadConfig(t *testing.T) {
	root := setupRepo(t)
	writeFile(t, root, config.FileName, "naming_pattern: \"[a-z\"\n")

	_, _, err := execute(t, "validate", root)
	assert.ErrorContains(t, err, "naming_pattern")
}

func TestValidateCommand_BadLogLevelFlag(t *testing.T) {
	_, _, err := execute(t, "validate", "--log-level", "chatty", setupRepo(t))
	assert.ErrorContains(t, err, "log_level")
}

func TestValidateCommand_LogLevelFlagOverridesConfig(t *testing.T) {
	root := setupRepo(t)
	writeFile(t, root, config.FileName, "log_level: chatty\n")

	_, _, err := execute(t, "validate", root)
	assert.ErrorContains(t, err, "log_level")

	out, errOut, err := execute(t, "validate", "--log-level", "debug", root)
	require.NoError(t, err)
	assert.Contains(t, out, "10/10 checks passed")
	assert.Contains(t, errOut, "[DEBUG]")
}

func TestValidateCommand_DebugLogGoesToStderr(t *testing.T) {
	root := setupRepo(t)

	out, errOut, err := execute(t, "validate", "--log-level", "debug", root)
	require.NoError(t, err)

	assert.Contains(t, errOut, "[DEBUG] agent persona-hub-architect.md: ok")
	assert.Contains(t, errOut, "[DEBUG] readme README.md: ok")
	assert.NotContains(t, out, "[DEBUG]")
}

func TestValidateCommand_InvalidRoot(t *testing.T) {
	_, _, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to access root")

	root := setupRepo(t)
	_, _, err = execute(t, "validate", filepath.Join(root, "README.md"))
	assert.ErrorContains(t, err, "root is not a directory")
}

func TestUseColor(t *testing.T) {
	assert.False(t, useColor(&bytes.Buffer{}, false))
	assert.False(t, useColor(os.Stdout, true))
}
