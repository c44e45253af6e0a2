// Package framework validates framework documentation files against
// declarative per-filename rules.
//
// A Rule names the literal section substrings a file must contain and whether
// it must carry a diagram fence. Rules are looked up by the file's base name;
// a file with no rule has no requirements and is always valid once readable.
package framework

// DefaultDiagramMarker is the fenced code block opener of a mermaid diagram
const DefaultDiagramMarker = "```mermaid"

// Rule is the requirement set for one framework file
type Rule struct {
	RequiredSections []string `yaml:"sections" json:"sections"`
	RequireDiagram   bool     `yaml:"require_diagram" json:"require_diagram"`
}

// Rules maps exact file base names to their rule
type Rules map[string]Rule

// For returns the rule for a base name, or the empty rule when none is configured
func (r Rules) For(name string) Rule {
	rule, ok := r[name]
	if !ok {
		return Rule{}
	}
	return rule
}
