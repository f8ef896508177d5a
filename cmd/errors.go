package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/promptwing/internal/mcp"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/viper"
)

// errToolFailed is returned by `mcp call` when the tool produced an error result.
var errToolFailed = errors.New("tool returned an error result")

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}

// describeError turns a command error into the line shown without --verbose.
func describeError(err error) string {
	var argErr *types.ArgumentError
	var pathErr *types.PathEscapeError
	switch {
	case errors.As(err, &argErr):
		return fmt.Sprintf("Invalid %s: %s", argErr.Field, argErr.Message)
	case errors.As(err, &pathErr):
		return fmt.Sprintf("Refusing to read %q: it is outside %s", pathErr.Requested, pathErr.Base)
	case errors.Is(err, types.ErrUnknownOperation):
		names := make([]string, 0, len(mcp.AllToolNames()))
		for _, n := range mcp.AllToolNames() {
			names = append(names, string(n))
		}
		return fmt.Sprintf("%v\nAvailable tools: %s", err, strings.Join(names, ", "))
	case errors.Is(err, errToolFailed):
		return ""
	default:
		return "Error: " + err.Error()
	}
}

// exitCode is 2 for usage problems and 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, types.ErrInvalidArgument) || errors.Is(err, types.ErrUnknownOperation) {
		return 2
	}
	return 1
}
