package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/personacheck/internal/config"
	"github.com/harrison/personacheck/internal/logger"
	"github.com/harrison/personacheck/internal/models"
	"github.com/harrison/personacheck/internal/report"
	"github.com/harrison/personacheck/internal/validator"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// validateOptions holds the flags of the validate command
type validateOptions struct {
	configPath string
	strict     bool
	jsonOut    string
	verbose    bool
	noColor    bool
	logLevel   string
	discover   bool
}

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [root]",
		Short: "Validate the documentation suite under a root directory",
		Long: `Run every check of the suite against root (default: current directory)
and print one line per check followed by a summary.

Checks:
  - each agent file: metadata block and required fields
  - each framework file: required sections and diagram
  - README integration: keyword mentioned and framework link present
  - naming consistency: agent files are kebab-case

Exit code: 0 even when checks fail, unless --strict is given`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			var logLevel *string
			if cmd.Flags().Changed("log-level") {
				logLevel = &opts.logLevel
			}
			var discover *bool
			if cmd.Flags().Changed("discover") {
				discover = &opts.discover
			}

			return runValidate(root, opts, logLevel, discover, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "suite config file (default <root>/"+config.FileName+")")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any check fails")
	cmd.Flags().StringVar(&opts.jsonOut, "json-out", "", "also write the results as JSON to this path")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show marker warnings and framework outlines")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "diagnostic log level on stderr (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.discover, "discover", false, "also validate every markdown file found in agent_dir")

	return cmd
}

// runValidate loads the suite, runs it and prints the report.
// Output writers are parameters so tests can capture them.
func runValidate(root string, opts *validateOptions, logLevel *string, discover *bool, out, errOut io.Writer) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", root)
	}

	var suite *config.Suite
	if opts.configPath != "" {
		suite, err = config.LoadSuite(opts.configPath)
	} else {
		suite, err = config.LoadSuiteFromDir(root)
	}
	if err != nil {
		return err
	}
	suite.MergeWithFlags(logLevel, discover)
	if err := suite.Validate(); err != nil {
		return fmt.Errorf("invalid suite config: %w", err)
	}

	log := logger.NewConsoleLogger(errOut, suite.LogLevel)
	log.LogDebug(fmt.Sprintf("validating %s with suite %q", root, suite.Title))

	v, err := validator.New(root, suite, log)
	if err != nil {
		return err
	}
	run := v.Run()

	printer := report.NewPrinter(out, useColor(out, opts.noColor), opts.verbose)
	printer.DiagramMarker = suite.DiagramMarker
	printer.Markers = suite.ContentMarkers
	printer.Print(run)

	if opts.jsonOut != "" {
		if err := report.WriteJSON(opts.jsonOut, run); err != nil {
			return err
		}
		log.LogInfo(fmt.Sprintf("wrote JSON report to %s", opts.jsonOut))
	}

	if opts.strict && !run.AllPassed() {
		return strictError(run)
	}
	return nil
}

func strictError(run *models.ValidationRun) error {
	return fmt.Errorf("validation failed: %d of %d checks failed", run.Failed(), run.Total)
}

// useColor enables color only for a terminal stdout that has not opted out
func useColor(out io.Writer, disabled bool) bool {
	if disabled || color.NoColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
