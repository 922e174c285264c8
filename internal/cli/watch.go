package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/andywolf/skillseed/internal/generator"
	"github.com/andywolf/skillseed/internal/logging"
	"github.com/andywolf/skillseed/internal/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the seed whenever a level file changes",
	Long: `Generate the seed once, then watch the input directory and regenerate
after every change to a level file. Failed runs are logged and leave the
previous output in place. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("debounce", 250*time.Millisecond, "quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	debounce, _ := cmd.Flags().GetDuration("debounce")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g, err := generator.New(cfg, generator.WithStdout(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	return g.Watch(cmd.Context(), debounce, func(outcome *generator.Outcome, err error) {
		if err != nil {
			logging.Error("generation failed", "err", err)
			return
		}
		if !cfg.WriteToStdout() {
			report.Print(cmd.OutOrStdout(), outcome.Summary)
		}
	})
}
