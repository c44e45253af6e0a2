package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harrison/personacheck/internal/config"
	"github.com/harrison/personacheck/internal/filelock"
	"github.com/spf13/cobra"
)

// NewInitConfigCommand creates the init-config subcommand
func NewInitConfigCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [root]",
		Short: "Write the default suite to " + config.FileName,
		Long: `Write the built-in PersonaHub suite as YAML to <root>/` + config.FileName + `
so it can be edited. Refuses to overwrite an existing file unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return writeDefaultConfig(root, force, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}

func writeDefaultConfig(root string, force bool, out io.Writer) error {
	path := filepath.Join(root, config.FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := config.DefaultSuite().Marshal()
	if err != nil {
		return err
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "✓ Wrote %s\n", path)
	return nil
}
