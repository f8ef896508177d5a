package cmd

import (
	"fmt"

	"github.com/josephgoksu/promptwing/internal/logger"
	"github.com/josephgoksu/promptwing/internal/score"
	"github.com/josephgoksu/promptwing/internal/ui"
	"github.com/spf13/cobra"
)

var scoreOutputLanguage string

var scoreCmd = &cobra.Command{
	Use:   "score <prompt>",
	Short: "Score a prompt against the 0-100 rubric",
	Long: `Score a prompt for clarity, context, constraints, quality bars and
process, and list what is missing.

Pass "-" to read the prompt from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := promptArg(cmd, args)
		if err != nil {
			return err
		}
		logger.SetLastInput(prompt)

		cat, err := catalogFor(scoreOutputLanguage)
		if err != nil {
			return err
		}
		report, err := score.ScorePrompt(cat, prompt)
		if err != nil {
			return err
		}

		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), report)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderScore(report))
		return err
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreOutputLanguage, "output-language", "", "language of the missing-item labels: zh or en")
}
