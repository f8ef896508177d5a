/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose" yaml:"-" json:"-"`
	Config   string         `mapstructure:"config" yaml:"-" json:"-"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" json:"output" validate:"required"`
	Optimize OptimizeConfig `mapstructure:"optimize" yaml:"optimize" json:"optimize"`
	Scan     ScanConfig     `mapstructure:"scan" yaml:"scan" json:"scan"`
	Data     DataConfig     `mapstructure:"data" yaml:"data" json:"data" validate:"required"`
}

// OutputConfig holds the defaults applied to optimize requests
type OutputConfig struct {
	Language  string `mapstructure:"language" yaml:"language" json:"language" validate:"required,oneof=zh en"`
	Format    string `mapstructure:"format" yaml:"format" json:"format" validate:"required,oneof=step_by_step direct both"`
	CodeStyle string `mapstructure:"codeStyle" yaml:"codeStyle" json:"codeStyle" validate:"required,oneof=diff full_files snippets"`
}

// OptimizeConfig holds the boolean request defaults
type OptimizeConfig struct {
	MustAskClarifyingQuestions bool `mapstructure:"mustAskClarifyingQuestions" yaml:"mustAskClarifyingQuestions" json:"mustAskClarifyingQuestions"`
	RequireApprovalGates       bool `mapstructure:"requireApprovalGates" yaml:"requireApprovalGates" json:"requireApprovalGates"`
}

// ScanConfig holds directory scan limits
type ScanConfig struct {
	MaxDepth   int `mapstructure:"maxDepth" yaml:"maxDepth" json:"maxDepth" validate:"min=0,max=10"`
	MaxEntries int `mapstructure:"maxEntries" yaml:"maxEntries" json:"maxEntries" validate:"min=50,max=5000"`
}

// DataConfig points at the project-local override directory
type DataConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir" validate:"required"`
}
