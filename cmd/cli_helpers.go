package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephgoksu/promptwing/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

// wantJSON reports whether cmd should print JSON: always with --json,
// otherwise whenever its output is not a terminal.
func wantJSON(cmd *cobra.Command) bool {
	if isJSON() {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return !ok || !ui.IsTerminal(f)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// promptArg joins positional args into one prompt. "-" reads stdin.
func promptArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read prompt from stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
