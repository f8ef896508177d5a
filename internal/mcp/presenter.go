package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/josephgoksu/promptwing/types"
)

// === Error Formatters ===

// FormatError returns a standardized Markdown error message.
// Use this for all MCP tool error responses to ensure consistency.
func FormatError(message string) string {
	return fmt.Sprintf("## ❌ Error\n\n**Details**: %s", message)
}

// FormatValidationError returns a Markdown error for validation failures.
func FormatValidationError(field, message string) string {
	return fmt.Sprintf("## ❌ Validation Error\n\n**Field**: `%s`\n**Details**: %s", field, message)
}

// FormatToolError picks the formatter for err: argument errors name their
// field, everything else is prefixed with its error code.
func FormatToolError(err error) string {
	var argErr *types.ArgumentError
	if errors.As(err, &argErr) {
		return FormatValidationError(argErr.Field, argErr.Message)
	}
	mcpErr := types.ToMCPError(err)
	return FormatError(fmt.Sprintf("[%s] %s", mcpErr.Code, mcpErr.Message))
}

// FormatJSON renders v as indented JSON without HTML escaping, so prompt
// text with < and > stays readable.
func FormatJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
