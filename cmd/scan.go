package cmd

import (
	"fmt"
	"os"

	"github.com/josephgoksu/promptwing/internal/scan"
	"github.com/josephgoksu/promptwing/internal/ui"
	"github.com/spf13/cobra"
)

var (
	scanDepth      int
	scanMaxEntries int
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Print a bounded tree of a project directory",
	Long: `Print a depth- and size-bounded tree of a directory inside the working
directory, skipping dependency and build folders. Also reports CLAUDE.md
files and the files worth reading first.

Examples:
  promptwing scan
  promptwing scan web --depth 2
  promptwing scan --max-entries 300 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		opts := scanOptions(cmd)
		if len(args) == 1 {
			opts.RootDir = args[0]
		}
		report, err := newScanner(cwd).Scan(opts)
		if err != nil {
			return err
		}

		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), report)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderScan(report))
		return err
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVar(&scanDepth, "depth", scan.DefaultMaxDepth, "maximum directory depth (0-10)")
	scanCmd.Flags().IntVar(&scanMaxEntries, "max-entries", scan.DefaultMaxEntries, "maximum tree lines (50-5000)")
}

// newScanner returns a scanner confined to cwd whose limits default to the
// configured ones.
func newScanner(cwd string) *scan.Scanner {
	cfg := GetConfig()
	return scan.New(appFs, cwd).WithDefaults(cfg.Scan.MaxDepth, cfg.Scan.MaxEntries)
}

// scanOptions sets the limits given as flags. The rest come from config.
func scanOptions(cmd *cobra.Command) scan.Options {
	var opts scan.Options
	if cmd.Flags().Changed("depth") {
		opts.MaxDepth = &scanDepth
	}
	if cmd.Flags().Changed("max-entries") {
		opts.MaxEntries = &scanMaxEntries
	}
	return opts
}
