package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for personacheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personacheck",
		Short: "Lint agent and framework documentation conventions",
		Long: `personacheck checks that the agent and framework documents of a repository
follow their structural conventions:

  - agent files start with a YAML metadata block defining name, description and model
  - framework files contain their required sections (and diagram, where required)
  - the README mentions the framework and links its documentation
  - agent file names are kebab-case

The checked file set is read from .personacheck.yaml in the validated root and
defaults to the PersonaHub suite.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewInitConfigCommand())

	return cmd
}
