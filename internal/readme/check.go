// Package readme checks that the repository README links the framework documentation.
package readme

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/personacheck/internal/fileutil"
	"github.com/harrison/personacheck/internal/models"
)

// Checker holds what the README must mention
type Checker struct {
	Keyword    string
	Link       string
	AgentFiles []string
}

// CheckFile loads the README at path and checks it
func (c *Checker) CheckFile(path string) models.ReadmeIntegration {
	text, err := fileutil.ReadText(path)
	if err != nil {
		if errors.Is(err, fileutil.ErrNotFound) {
			return models.ReadmeIntegration{Error: fmt.Sprintf("Main %s not found", filepath.Base(path))}
		}
		return models.ReadmeIntegration{Error: fmt.Sprintf("Error reading README: %v", errors.Unwrap(err))}
	}
	return c.CheckText(text)
}

// CheckText checks already loaded README text.
// Agent mentions are informational and do not affect validity.
func (c *Checker) CheckText(text string) models.ReadmeIntegration {
	result := models.ReadmeIntegration{
		KeywordMentions:  countMentions(text, c.Keyword),
		HasFrameworkLink: strings.Contains(text, c.Link),
		HasAgentMentions: c.mentionsAgent(text),
	}
	result.Valid = result.KeywordMentions > 0 && result.HasFrameworkLink

	if !result.Valid {
		var reasons []string
		if result.KeywordMentions == 0 {
			reasons = append(reasons, fmt.Sprintf("keyword %q mentioned 0 times", c.Keyword))
		}
		if !result.HasFrameworkLink {
			reasons = append(reasons, fmt.Sprintf("missing link %q", c.Link))
		}
		result.Error = strings.Join(reasons, "; ")
	}

	return result
}

func (c *Checker) mentionsAgent(text string) bool {
	for _, file := range c.AgentFiles {
		name := strings.TrimSuffix(filepath.Base(file), ".md")
		if name != "" && strings.Contains(text, name) {
			return true
		}
	}
	return false
}

// countMentions counts non-overlapping occurrences. An empty keyword never counts.
func countMentions(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	return strings.Count(text, keyword)
}
