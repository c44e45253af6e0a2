package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/harrison/personacheck/internal/content"
	"github.com/harrison/personacheck/internal/framework"
	"github.com/harrison/personacheck/internal/naming"
	"gopkg.in/yaml.v3"
)

// FileName is the suite file looked up in the validated root
const FileName = ".personacheck.yaml"

// Suite describes which documents are validated and what they must contain
type Suite struct {
	// Title names the suite in report banners
	Title string `yaml:"title"`

	// AgentDir is the directory holding agent files, relative to the root
	AgentDir string `yaml:"agent_dir"`

	// AgentFiles are agent file names inside AgentDir, in report order
	AgentFiles []string `yaml:"agent_files"`

	// DiscoverAgents adds every markdown file found in AgentDir to AgentFiles
	DiscoverAgents bool `yaml:"discover_agents"`

	// FrameworkFiles are framework documentation paths relative to the root, in report order
	FrameworkFiles []string `yaml:"framework_files"`

	// FrameworkRules maps framework file base names to their requirements
	FrameworkRules framework.Rules `yaml:"framework_rules"`

	// DiagramMarker is the literal diagram fence looked for where a rule requires one
	DiagramMarker string `yaml:"diagram_marker"`

	// Readme is the README path relative to the root
	Readme string `yaml:"readme"`

	// Keyword must be mentioned in the README at least once
	Keyword string `yaml:"keyword"`

	// FrameworkLink must appear in the README
	FrameworkLink string `yaml:"framework_link"`

	// RequiredFields are metadata keys every agent file must define
	RequiredFields []string `yaml:"required_fields"`

	// ContentMarkers are informational marker groups searched in agent files
	ContentMarkers []content.MarkerGroup `yaml:"content_markers"`

	// NamingPattern is the regex agent file names must match
	NamingPattern string `yaml:"naming_pattern"`

	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultSuite returns the PersonaHub documentation suite
func DefaultSuite() *Suite {
	return &Suite{
		Title: "PersonaHub",
		AgentFiles: []string{
			"persona-hub-architect.md",
			"persona-corpus-generator.md",
			"synthetic-data-composer.md",
			"poly-modal-persona-designer.md",
			"persona-synthesis-orchestrator.md",
		},
		FrameworkFiles: []string{
			"framework/personahub/README.md",
			"framework/personahub/configuration.md",
			"framework/personahub/examples.md",
		},
		FrameworkRules: framework.Rules{
			"README.md": {
				RequiredSections: []string{"Framework Architecture", "Core Components", "Creative Orientation"},
				RequireDiagram:   true,
			},
			"configuration.md": {
				RequiredSections: []string{"personahub_framework", "quality_framework", "scaling"},
			},
			"examples.md": {
				RequiredSections: []string{"Basic Persona Generation", "Multi-Modal Generation", "Integration"},
			},
		},
		DiagramMarker:  framework.DefaultDiagramMarker,
		Readme:         "README.md",
		Keyword:        "PersonaHub",
		FrameworkLink:  "framework/personahub",
		RequiredFields: []string{"name", "description", "model"},
		ContentMarkers: []content.MarkerGroup{
			{Name: "creative_orientation", Any: []string{"creative orientation", "advancing pattern", "structural tension"}},
			{Name: "personahub_concepts", Any: []string{"PersonaHub", "petascale", "multi-modal", "poly-modal", "elastic synthesis"}},
			{Name: "mia_miette_integration", Any: []string{"🧠", "🌸", "Mia", "Miette"}},
		},
		NamingPattern: naming.KebabCase,
		LogLevel:      "warn",
	}
}

// LoadSuite loads a suite from the specified file path.
// If the file doesn't exist, returns the default suite without error.
// Keys present in the file replace the default value wholesale; lists are not merged.
// The result is not validated: callers apply flag overrides first, then call Validate.
func LoadSuite(path string) (*Suite, error) {
	suite := DefaultSuite()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return suite, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Rules from the file replace the defaults instead of merging by file name
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if _, exists := rawMap["framework_rules"]; exists {
		suite.FrameworkRules = nil
	}

	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return suite, nil
}

// LoadSuiteFromDir loads .personacheck.yaml from the specified directory
func LoadSuiteFromDir(dir string) (*Suite, error) {
	return LoadSuite(filepath.Join(dir, FileName))
}

// Validate validates the suite values
func (s *Suite) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len(s.RequiredFields) == 0 {
		return fmt.Errorf("required_fields cannot be empty")
	}

	if _, err := regexp.Compile(s.NamingPattern); err != nil {
		return fmt.Errorf("invalid naming_pattern %q: %w", s.NamingPattern, err)
	}

	for i, group := range s.ContentMarkers {
		if group.Name == "" {
			return fmt.Errorf("content_markers[%d] has no name", i)
		}
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[s.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", s.LogLevel)
	}

	return nil
}

// MergeWithFlags applies CLI overrides. Nil values leave the suite unchanged.
func (s *Suite) MergeWithFlags(logLevel *string, discover *bool) {
	if logLevel != nil {
		s.LogLevel = *logLevel
	}
	if discover != nil {
		s.DiscoverAgents = *discover
	}
}

// Marshal renders the suite as YAML
func (s *Suite) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
