package cmd

import (
	"fmt"

	"github.com/josephgoksu/promptwing/internal/optimize"
	"github.com/spf13/cobra"
)

var verifyOutputLanguage string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print the implementation review prompt",
	Long: `Print the reviewer prompt used to check a finished implementation
against its plan: requirements, gates, edge cases, accessibility and
performance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogFor(verifyOutputLanguage)
		if err != nil {
			return err
		}
		prompt := optimize.VerificationPrompt(cat)

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]string{"verificationPrompt": prompt})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return err
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyOutputLanguage, "output-language", "", "prompt language: zh or en")
}
