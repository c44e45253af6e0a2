package framework

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/personacheck/internal/content"
	"github.com/harrison/personacheck/internal/fileutil"
	"github.com/harrison/personacheck/internal/models"
)

// MissingSectionsError lists required sections absent from a framework file
type MissingSectionsError struct {
	Sections []string
}

// Error implements the error interface
func (e *MissingSectionsError) Error() string {
	return fmt.Sprintf("Missing %s", models.FormatList(e.Sections))
}

// Checker validates framework files by base name
type Checker struct {
	Rules         Rules
	DiagramMarker string
}

// NewChecker creates a Checker. An empty diagramMarker falls back to DefaultDiagramMarker.
func NewChecker(rules Rules, diagramMarker string) *Checker {
	if diagramMarker == "" {
		diagramMarker = DefaultDiagramMarker
	}
	return &Checker{
		Rules:         rules,
		DiagramMarker: diagramMarker,
	}
}

// CheckFile loads and validates the framework file at path
func (c *Checker) CheckFile(path string) models.FrameworkFile {
	text, err := fileutil.ReadText(path)
	if err != nil {
		return models.FrameworkFile{Path: path, Error: err.Error()}
	}
	return c.CheckText(path, text)
}

// CheckText validates already loaded framework text.
// The rule is chosen by the base name of path.
func (c *Checker) CheckText(path, text string) models.FrameworkFile {
	rule := c.Rules.For(filepath.Base(path))

	missing := content.MissingSubstrings(text, rule.RequiredSections)
	hasDiagram := true
	if rule.RequireDiagram {
		hasDiagram = strings.Contains(text, c.DiagramMarker)
	}

	result := models.FrameworkFile{
		Path:            path,
		Valid:           len(missing) == 0 && hasDiagram,
		MissingSections: missing,
		HasDiagram:      hasDiagram,
		Size:            len(text),
	}

	// The outline is informational; a failed walk leaves it empty.
	if headings, err := Outline([]byte(text)); err == nil {
		result.Headings = headings
	}

	return result
}

// Problem describes why a checked framework file failed, or returns nil when it passed
func (c *Checker) Problem(result models.FrameworkFile) error {
	return Describe(result, c.DiagramMarker)
}

// Describe explains a framework result. A read failure is returned as is;
// otherwise the missing sections are listed, followed by the diagram when absent.
func Describe(result models.FrameworkFile, diagramMarker string) error {
	if result.Valid {
		return nil
	}
	if result.Error != "" {
		return errors.New(result.Error)
	}
	if diagramMarker == "" {
		diagramMarker = DefaultDiagramMarker
	}

	missing := append([]string(nil), result.MissingSections...)
	if !result.HasDiagram {
		missing = append(missing, diagramMarker+" diagram")
	}
	return &MissingSectionsError{Sections: missing}
}
