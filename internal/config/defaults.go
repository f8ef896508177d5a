// Package config provides centralized configuration constants for promptwing.
// All default values should be defined here to ensure a single source of truth.
package config

import "github.com/josephgoksu/promptwing/types"

// Configuration keys, as written in .promptwing.yaml. Environment variables
// use the PROMPTWING_ prefix with dots replaced by underscores.
const (
	KeyOutputLanguage  = "output.language"
	KeyOutputFormat    = "output.format"
	KeyOutputCodeStyle = "output.codeStyle"

	KeyMustAskClarifyingQuestions = "optimize.mustAskClarifyingQuestions"
	KeyRequireApprovalGates       = "optimize.requireApprovalGates"

	KeyScanMaxDepth   = "scan.maxDepth"
	KeyScanMaxEntries = "scan.maxEntries"

	KeyDataDir = "data.dir"
)

// Output defaults
const (
	DefaultOutputLanguage = "zh"
	DefaultOutputFormat   = "both"
	DefaultCodeStyle      = "diff"
)

// Scan defaults
const (
	DefaultScanMaxDepth   = 4
	DefaultScanMaxEntries = 1200
)

// DefaultDataDir is the project-local prompt override directory.
const DefaultDataDir = ".shared/frontend-prompt/data"

// Defaults returns every configuration key with its default value.
func Defaults() map[string]any {
	return map[string]any{
		KeyOutputLanguage:             DefaultOutputLanguage,
		KeyOutputFormat:               DefaultOutputFormat,
		KeyOutputCodeStyle:            DefaultCodeStyle,
		KeyMustAskClarifyingQuestions: true,
		KeyRequireApprovalGates:       true,
		KeyScanMaxDepth:               DefaultScanMaxDepth,
		KeyScanMaxEntries:             DefaultScanMaxEntries,
		KeyDataDir:                    DefaultDataDir,
	}
}

// DefaultAppConfig returns the configuration used when nothing is set.
func DefaultAppConfig() types.AppConfig {
	return types.AppConfig{
		Output: types.OutputConfig{
			Language:  DefaultOutputLanguage,
			Format:    DefaultOutputFormat,
			CodeStyle: DefaultCodeStyle,
		},
		Optimize: types.OptimizeConfig{
			MustAskClarifyingQuestions: true,
			RequireApprovalGates:       true,
		},
		Scan: types.ScanConfig{
			MaxDepth:   DefaultScanMaxDepth,
			MaxEntries: DefaultScanMaxEntries,
		},
		Data: types.DataConfig{Dir: DefaultDataDir},
	}
}
