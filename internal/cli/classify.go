package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andywolf/skillseed/internal/generator"
	"github.com/andywolf/skillseed/internal/tracks"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show the learning tracks of every skill",
	Long: `Load the level files and print each skill code with the tracks it is
placed in. No SQL is written.

Example:
  skillseed classify
  skillseed classify --track interview_90_days`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().String("track", "", "only list skills in this track")
}

func runClassify(cmd *cobra.Command, args []string) error {
	manifest, err := tracks.LoadManifest()
	if err != nil {
		return err
	}

	var def tracks.Definition
	filter, _ := cmd.Flags().GetString("track")
	if filter != "" {
		var ok bool
		if def, ok = manifest.Get(tracks.Code(filter)); !ok {
			return fmt.Errorf("unknown track %q", filter)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g, err := generator.New(cfg)
	if err != nil {
		return err
	}

	all, err := g.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if filter != "" {
		fmt.Fprintf(out, "# %s\n", def.Label)
	}
	for i := range all {
		codes := tracks.Classify(&all[i])
		if filter != "" && !containsCode(codes, tracks.Code(filter)) {
			continue
		}

		names := make([]string, len(codes))
		for j, c := range codes {
			names[j] = string(c)
		}
		fmt.Fprintf(out, "%s\t%s\n", all[i].Code, strings.Join(names, ","))
	}

	return nil
}

func containsCode(codes []tracks.Code, c tracks.Code) bool {
	for _, code := range codes {
		if code == c {
			return true
		}
	}
	return false
}
