// Package validator runs the documentation checks of a suite against a root
// directory and collects them into a models.ValidationRun.
//
// Checks run sequentially and never share state: every file is read, checked
// and released on its own, and a failure in one file never stops the others.
package validator

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/harrison/personacheck/internal/agent"
	"github.com/harrison/personacheck/internal/config"
	"github.com/harrison/personacheck/internal/fileutil"
	"github.com/harrison/personacheck/internal/framework"
	"github.com/harrison/personacheck/internal/models"
	"github.com/harrison/personacheck/internal/naming"
	"github.com/harrison/personacheck/internal/readme"
)

// Logger receives diagnostics while checks run
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
	LogFileCheck(kind, path string, valid bool, reason string)
}

type nopLogger struct{}

func (nopLogger) LogTrace(string)                           {}
func (nopLogger) LogDebug(string)                           {}
func (nopLogger) LogWarn(string)                            {}
func (nopLogger) LogFileCheck(string, string, bool, string) {}

// Validator checks one root directory against one suite
type Validator struct {
	root      string
	suite     *config.Suite
	log       Logger
	agents    *agent.Checker
	framework *framework.Checker
	naming    *naming.Checker
}

// New creates a Validator for root. A nil logger discards diagnostics.
func New(root string, suite *config.Suite, log Logger) (*Validator, error) {
	if suite == nil {
		suite = config.DefaultSuite()
	}
	if log == nil {
		log = nopLogger{}
	}

	namingChecker, err := naming.NewChecker(suite.NamingPattern)
	if err != nil {
		return nil, err
	}

	return &Validator{
		root:      root,
		suite:     suite,
		log:       log,
		agents:    agent.NewChecker(suite.RequiredFields, suite.ContentMarkers),
		framework: framework.NewChecker(suite.FrameworkRules, suite.DiagramMarker),
		naming:    namingChecker,
	}, nil
}

// AgentFiles returns the agent file labels in report order: the configured
// files first, then any discovered ones not already listed.
func (v *Validator) AgentFiles() []string {
	files := make([]string, 0, len(v.suite.AgentFiles))
	seen := make(map[string]bool)
	for _, name := range v.suite.AgentFiles {
		label := v.agentLabel(name)
		if !seen[label] {
			files = append(files, label)
			seen[label] = true
		}
	}

	if !v.suite.DiscoverAgents {
		return files
	}

	dir := filepath.Join(v.root, v.suite.AgentDir)
	result, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions:   []string{".md"},
		ExcludeNames: []string{"README.md"},
	})
	if err != nil {
		v.log.LogWarn(fmt.Sprintf("agent discovery skipped: %v", err))
		return files
	}
	for _, scanErr := range result.Errors {
		v.log.LogWarn(fmt.Sprintf("agent discovery: %v", scanErr))
	}

	for _, name := range result.Files {
		label := v.agentLabel(name)
		if !seen[label] {
			v.log.LogDebug(fmt.Sprintf("discovered agent file %s", label))
			files = append(files, label)
			seen[label] = true
		}
	}

	return files
}

func (v *Validator) agentLabel(name string) string {
	return filepath.ToSlash(filepath.Join(v.suite.AgentDir, name))
}

func (v *Validator) resolve(rel string) string {
	return filepath.Join(v.root, filepath.FromSlash(rel))
}

// ValidateSingleAgent checks one agent file given relative to the root
func (v *Validator) ValidateSingleAgent(rel string) models.AgentFile {
	result := v.agents.CheckFile(v.resolve(rel))
	result.Path = rel
	v.log.LogFileCheck("agent", rel, result.Valid, result.Error)

	for _, group := range v.suite.ContentMarkers {
		if result.Valid {
			v.log.LogTrace(fmt.Sprintf("agent %s marker %s: %t", rel, group.Name, result.ContentChecks[group.Name]))
		}
	}

	return result
}

// ValidateAgentFiles checks every agent file in report order
func (v *Validator) ValidateAgentFiles() []models.AgentFile {
	files := v.AgentFiles()
	results := make([]models.AgentFile, 0, len(files))
	for _, rel := range files {
		results = append(results, v.ValidateSingleAgent(rel))
	}
	return results
}

// ValidateFrameworkFile checks one framework file given relative to the root
func (v *Validator) ValidateFrameworkFile(rel string) models.FrameworkFile {
	result := v.framework.CheckFile(v.resolve(rel))
	result.Path = rel

	reason := ""
	if err := v.framework.Problem(result); err != nil {
		reason = err.Error()
	}
	v.log.LogFileCheck("framework", rel, result.Valid, reason)

	return result
}

// ValidateFrameworkFiles checks every framework file in configured order
func (v *Validator) ValidateFrameworkFiles() []models.FrameworkFile {
	results := make([]models.FrameworkFile, 0, len(v.suite.FrameworkFiles))
	for _, rel := range v.suite.FrameworkFiles {
		results = append(results, v.ValidateFrameworkFile(rel))
	}
	return results
}

// ValidateReadmeIntegration checks the README against the suite keyword and link
func (v *Validator) ValidateReadmeIntegration(agentFiles []string) models.ReadmeIntegration {
	checker := &readme.Checker{
		Keyword:    v.suite.Keyword,
		Link:       v.suite.FrameworkLink,
		AgentFiles: agentFiles,
	}
	result := checker.CheckFile(v.resolve(v.suite.Readme))
	result.Path = v.suite.Readme
	v.log.LogFileCheck("readme", v.suite.Readme, result.Valid, result.Error)
	return result
}

// ValidateNaming checks agent file base names against the naming pattern
func (v *Validator) ValidateNaming(agentFiles []string) models.NamingReport {
	names := make([]string, 0, len(agentFiles))
	for _, file := range agentFiles {
		names = append(names, filepath.Base(file))
	}
	report := v.naming.Check(names)
	v.log.LogDebug(fmt.Sprintf("naming: %d issue(s)", len(report.Issues)))
	return report
}

// Run executes the full suite and tallies the results
func (v *Validator) Run() *models.ValidationRun {
	agentFiles := v.AgentFiles()

	run := &models.ValidationRun{
		RunID:  uuid.NewString(),
		Root:   v.root,
		Title:  v.suite.Title,
		Agents: make([]models.AgentFile, 0, len(agentFiles)),
	}
	for _, rel := range agentFiles {
		run.Agents = append(run.Agents, v.ValidateSingleAgent(rel))
	}
	run.Frameworks = v.ValidateFrameworkFiles()
	run.Readme = v.ValidateReadmeIntegration(agentFiles)
	run.Naming = v.ValidateNaming(agentFiles)
	run.Tally()

	return run
}
