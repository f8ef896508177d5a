package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/josephgoksu/promptwing/internal/ui"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Detect the frontend stack from package.json",
	Long: `Read package.json (and config and lock files) in a directory and report
framework, language, styling, state management, router, build tool,
package manager and monorepo layout.

A directory without package.json yields an empty result, not an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", dir, err)
		}

		pc, err := project.NewDetector(appFs).Detect(abs)
		if err != nil {
			return fmt.Errorf("detect project: %w", err)
		}

		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), pc)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderDetect(pc))
		return err
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
