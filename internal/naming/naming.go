// Package naming checks agent file names against a naming convention.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/harrison/personacheck/internal/models"
)

// KebabCase matches lowercase letter groups joined by single hyphens, ending in .md
const KebabCase = `^[a-z]+(-[a-z]+)*\.md$`

// Checker validates file base names against a compiled pattern
type Checker struct {
	pattern *regexp.Regexp
	issue   string
}

// issueSuffix names the convention in issue text
func issueSuffix(pattern string) string {
	if pattern == KebabCase {
		return "doesn't follow kebab-case pattern"
	}
	return "doesn't match naming pattern " + pattern
}

// NewChecker compiles pattern. An empty pattern falls back to KebabCase.
func NewChecker(pattern string) (*Checker, error) {
	if pattern == "" {
		pattern = KebabCase
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid naming pattern %q: %w", pattern, err)
	}
	return &Checker{pattern: re, issue: issueSuffix(pattern)}, nil
}

// Matches reports whether the base name of file follows the convention
func (c *Checker) Matches(file string) bool {
	return c.pattern.MatchString(filepath.Base(file))
}

// Check reports every file whose base name breaks the convention, in input order
func (c *Checker) Check(files []string) models.NamingReport {
	issues := make([]string, 0)
	for _, file := range files {
		if !c.Matches(file) {
			issues = append(issues, file+" "+c.issue)
		}
	}
	return models.NamingReport{
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}
