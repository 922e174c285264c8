package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andywolf/skillseed/internal/compare"
	seederr "github.com/andywolf/skillseed/internal/errors"
)

var diffCmd = &cobra.Command{
	Use:   "diff FILE_A FILE_B",
	Short: "Compare two seed files ignoring generated identifiers",
	Long: `Compare two generated seed files. Every UUID is replaced by a placeholder
numbered by first appearance before comparing, so two runs over the same
input compare equal.

Exits with status 1 when the files differ.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	res, err := compare.Files(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.String())
	if !res.Equal {
		return seederr.New(seederr.ExitGeneralError, "seed files differ")
	}
	return nil
}
