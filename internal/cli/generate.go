package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andywolf/skillseed/internal/generator"
	"github.com/andywolf/skillseed/internal/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the SQL seed file",
	Long: `Load every level file, classify the skills into learning tracks and write
the seed script. A summary of the generated data is printed afterwards.

The output file is replaced only when generation succeeds.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Bool("report-json", false, "print the summary as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g, err := generator.New(cfg, generator.WithStdout(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	outcome, err := g.Run(cmd.Context())
	if err != nil {
		return err
	}

	// The report must not mix with SQL written to stdout.
	out := cmd.OutOrStdout()
	if cfg.WriteToStdout() {
		out = cmd.ErrOrStderr()
	}
	if asJSON, _ := cmd.Flags().GetBool("report-json"); asJSON {
		doc, err := report.JSON(outcome.Summary)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, doc)
		return nil
	}
	report.Print(out, outcome.Summary)

	return nil
}
