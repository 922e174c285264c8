package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andywolf/skillseed/internal/config"
	seederr "github.com/andywolf/skillseed/internal/errors"
	"github.com/andywolf/skillseed/internal/logging"
	"github.com/andywolf/skillseed/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "skillseed",
	Short: "skillseed - SQL seed generator for the skills catalog",
	Long: `skillseed reads the per-level skill files (a1.json ... c1.json), places every
skill into the learning tracks and writes a SQL seed script for the skills
schema.

Running skillseed without a subcommand is the same as 'skillseed generate'.

Example:
  skillseed
  skillseed --input-dir refs/skills --output database/seed_skills.sql
  skillseed generate --output - > seed.sql`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(viper.GetBool("verbose"), viper.GetBool("log_json"), cmd.ErrOrStderr())
		if used := viper.ConfigFileUsed(); used != "" {
			logging.Debug("using config file", "path", used)
		}
	},
	RunE: runGenerate,
}

// Execute runs the root command. Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is "+config.FileName+")")
	flags.String("input-dir", config.DefaultInputDir, "directory holding the level files")
	flags.StringP("output", "o", config.DefaultOutput, "output SQL file, - for stdout")
	flags.StringSlice("levels", nil, "level files to read, in order (default a1,a2,b1,b2,c1)")
	flags.Bool("verbose", false, "enable verbose output")
	flags.Bool("log-json", false, "log in JSON format")

	rootCmd.Flags().Bool("report-json", false, "print the summary as JSON")

	_ = viper.BindPFlag("input_dir", flags.Lookup("input-dir"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("levels", flags.Lookup("levels"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(seederr.ExitConfigError)
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".skillseed")
	}

	viper.SetEnvPrefix("SKILLSEED")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
			os.Exit(seederr.ExitConfigError)
		}
	}
}

// loadConfig returns the merged configuration of file, environment and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, seederr.ConfigError("failed to load configuration", err)
	}
	return cfg, nil
}
