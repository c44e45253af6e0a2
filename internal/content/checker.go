// Package content checks documents for the presence of marker substrings.
package content

import "strings"

// MarkerGroup is a named set of alternative substrings.
// The group is satisfied when any one alternative occurs in the text.
type MarkerGroup struct {
	Name string   `yaml:"name" json:"name"`
	Any  []string `yaml:"any" json:"any"`
}

// Matches reports whether at least one alternative is a substring of text.
// A group with no alternatives never matches.
func (g MarkerGroup) Matches(text string) bool {
	for _, alt := range g.Any {
		if strings.Contains(text, alt) {
			return true
		}
	}
	return false
}

// Check evaluates every group against text and returns group name -> matched
func Check(text string, groups []MarkerGroup) map[string]bool {
	results := make(map[string]bool, len(groups))
	for _, g := range groups {
		results[g.Name] = g.Matches(text)
	}
	return results
}

// Missing returns the names of groups that matched nothing, in group order
func Missing(results map[string]bool, groups []MarkerGroup) []string {
	var missing []string
	for _, g := range groups {
		if !results[g.Name] {
			missing = append(missing, g.Name)
		}
	}
	return missing
}

// MissingSubstrings returns the required substrings not found in text, preserving order
func MissingSubstrings(text string, required []string) []string {
	missing := make([]string, 0)
	for _, s := range required {
		if !strings.Contains(text, s) {
			missing = append(missing, s)
		}
	}
	return missing
}
