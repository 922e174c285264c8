package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andywolf/skillseed/internal/config"
	seederr "github.com/andywolf/skillseed/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize project configuration",
	Long: `Create a .skillseed.yaml file in the current directory holding the default
settings, ready to customize.

Example:
  skillseed init
  skillseed init --input-dir data/skills --force`,
	Args: cobra.NoArgs,
	RunE: initProject,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite existing config")
}

func initProject(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", config.FileName)
	force, _ := cmd.Flags().GetBool("force")

	// Flags given on this command line end up in the written file.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Verbose = false
	cfg.LogJSON = false

	if err := cfg.Validate(); err != nil {
		return seederr.ConfigError("invalid configuration", err)
	}
	if err := cfg.WriteFile(configPath, force); err != nil {
		return seederr.ConfigError("failed to initialize", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Put a1.json ... c1.json into %s\n", cfg.InputDir)
	fmt.Fprintln(out, "  2. Run 'skillseed generate'")

	return nil
}
