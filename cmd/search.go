/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/ui"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/cobra"
)

var searchOutputLanguage string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search guardrails, questions and gates",
	Long: `Search the active prompt catalog, including project overrides, for
guardrails, clarifying questions and approval gates whose id or text
contains the term. The search is case-insensitive.

Examples:
  promptwing search a11y
  promptwing search --output-language en "approval"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.TrimSpace(strings.Join(args, " "))
		if term == "" {
			return types.NewArgumentError("term", "must not be blank")
		}

		cat, err := catalogFor(searchOutputLanguage)
		if err != nil {
			return err
		}
		matches := cat.Search(term)

		if wantJSON(cmd) {
			if matches == nil {
				matches = []locale.Match{}
			}
			return printJSON(cmd.OutOrStdout(), matches)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderSearch(matches))
		return err
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchOutputLanguage, "output-language", "", "catalog language: zh or en")
}
