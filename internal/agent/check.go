// Package agent validates agent documents: a "---" delimited YAML metadata
// block with required keys, followed by a free-form markdown body.
package agent

import (
	"github.com/harrison/personacheck/internal/content"
	"github.com/harrison/personacheck/internal/fileutil"
	"github.com/harrison/personacheck/internal/models"
)

// Checker validates agent documents against a fixed set of required keys
// and informational marker groups
type Checker struct {
	RequiredFields []string
	Markers        []content.MarkerGroup
}

// NewChecker creates a Checker
func NewChecker(requiredFields []string, markers []content.MarkerGroup) *Checker {
	return &Checker{
		RequiredFields: requiredFields,
		Markers:        markers,
	}
}

// CheckFile loads and validates the agent document at path.
// Every failure is reported on the result; CheckFile never returns an error.
func (c *Checker) CheckFile(path string) models.AgentFile {
	result := models.AgentFile{Path: path}

	text, err := fileutil.ReadText(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	return c.CheckText(path, text)
}

// CheckText validates already loaded agent text
func (c *Checker) CheckText(path, text string) models.AgentFile {
	result := models.AgentFile{Path: path}

	doc, err := ParseMetadata(text, c.RequiredFields)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	// Markers are searched in the whole text, metadata included.
	result.Valid = true
	result.Metadata = doc.Metadata
	result.ContentChecks = content.Check(text, c.Markers)
	result.Size = len(text)
	return result
}
