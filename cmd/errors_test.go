package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestPrintError(t *testing.T) {
	// Save original stderr
	originalStderr := os.Stderr

	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:         "normal mode with error",
			userMsg:      "User friendly message",
			technicalErr: nil,
			verbose:      false,
			expectedOut:  "User friendly message",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "User friendly message",
			technicalErr: errors.New("technical details"),
			verbose:      true,
			expectedOut:  "Error: technical details",
		},
		{
			name:         "normal mode with technical error",
			userMsg:      "User friendly message",
			technicalErr: errors.New("technical details"),
			verbose:      false,
			expectedOut:  "User friendly message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			// Capture stderr output
			r, w, _ := os.Pipe()
			os.Stderr = w

			PrintError(tt.userMsg, tt.technicalErr)

			_ = w.Close()
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := strings.TrimSpace(buf.String())

			// Restore stderr
			os.Stderr = originalStderr

			if !strings.Contains(output, tt.expectedOut) {
				t.Errorf("PrintError() output = %q, want to contain %q", output, tt.expectedOut)
			}
		})
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"argument", types.NewArgumentError("userPrompt", "is required"), "Invalid userPrompt: is required"},
		{"path escape", fmt.Errorf("scan: %w", &types.PathEscapeError{Requested: "../x", Base: "/work"}), `Refusing to read "../x": it is outside /work`},
		{"unknown tool", fmt.Errorf("%w: %q", types.ErrUnknownOperation, "nope"), "Available tools: optimize_frontend_prompt"},
		{"tool failed", errToolFailed, ""},
		{"other", errors.New("disk full"), "Error: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeError(tt.err)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(types.NewArgumentError("x", "bad")))
	assert.Equal(t, 2, exitCode(fmt.Errorf("%w: x", types.ErrUnknownOperation)))
	assert.Equal(t, 1, exitCode(errToolFailed))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
