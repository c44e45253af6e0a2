package models

import "strings"

// AgentFile is the result of checking a single agent document
type AgentFile struct {
	Path          string          `json:"path"`
	Valid         bool            `json:"valid"`
	Error         string          `json:"error,omitempty"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
	ContentChecks map[string]bool `json:"content_checks,omitempty"`
	Size          int             `json:"file_size"`
}

// FrameworkFile is the result of checking a framework documentation file
type FrameworkFile struct {
	Path            string   `json:"path"`
	Valid           bool     `json:"valid"`
	Error           string   `json:"error,omitempty"`
	MissingSections []string `json:"missing_sections"`
	HasDiagram      bool     `json:"has_diagram"`
	Headings        []string `json:"headings,omitempty"`
	Size            int      `json:"file_size"`
}

// ReadmeIntegration is the result of checking the top-level README
type ReadmeIntegration struct {
	Path             string `json:"path"`
	Valid            bool   `json:"valid"`
	Error            string `json:"error,omitempty"`
	KeywordMentions  int    `json:"keyword_mentions"`
	HasFrameworkLink bool   `json:"has_framework_link"`
	HasAgentMentions bool   `json:"has_agent_mentions"`
}

// NamingReport lists agent file names that break the naming convention
type NamingReport struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"naming_issues"`
}

// ValidationRun aggregates every check of a single invocation.
// Agents and Frameworks keep the configured file order.
type ValidationRun struct {
	RunID      string            `json:"run_id"`
	Root       string            `json:"root"`
	Title      string            `json:"title"`
	Agents     []AgentFile       `json:"agent_files"`
	Frameworks []FrameworkFile   `json:"framework_files"`
	Readme     ReadmeIntegration `json:"readme_integration"`
	Naming     NamingReport      `json:"naming_consistency"`
	Total      int               `json:"total_checks"`
	Passed     int               `json:"passed_checks"`
}

// Tally recomputes Total and Passed: one unit per agent file, one per
// framework file, and one each for the README and naming checks.
func (r *ValidationRun) Tally() {
	r.Total = len(r.Agents) + len(r.Frameworks) + 2
	r.Passed = 0
	for _, a := range r.Agents {
		if a.Valid {
			r.Passed++
		}
	}
	for _, f := range r.Frameworks {
		if f.Valid {
			r.Passed++
		}
	}
	if r.Readme.Valid {
		r.Passed++
	}
	if r.Naming.Valid {
		r.Passed++
	}
}

// AllPassed reports whether every check passed
func (r *ValidationRun) AllPassed() bool {
	return r.Passed == r.Total
}

// Failed returns the number of failed checks
func (r *ValidationRun) Failed() int {
	return r.Total - r.Passed
}

// FormatList renders items as "[a, b]" for report lines
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
