// Package optimize turns a raw frontend development request into a
// structured prompt package for a coding agent.
package optimize

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/utils"
	"github.com/josephgoksu/promptwing/internal/workflow"
	"github.com/josephgoksu/promptwing/types"
)

// Request is the caller's input to Optimize. Only UserPrompt is required.
type Request struct {
	UserPrompt      string   `json:"userPrompt" validate:"required"`
	ProjectContext  string   `json:"projectContext,omitempty"`
	TechStack       string   `json:"techStack,omitempty"`
	Framework       string   `json:"framework,omitempty"`
	Language        string   `json:"language,omitempty" validate:"omitempty,oneof=ts js"`
	Styling         string   `json:"styling,omitempty"`
	StateManagement string   `json:"stateManagement,omitempty"`
	Router          string   `json:"router,omitempty"`
	Constraints     []string `json:"constraints,omitempty"`
	TaskType        string   `json:"taskType,omitempty" validate:"omitempty,oneof=new_feature optimize_existing refactor bugfix performance ui_polish dependency_upgrade test_addition"`
	OutputLanguage  string   `json:"outputLanguage,omitempty" validate:"omitempty,oneof=zh en"`
	OutputFormat    string   `json:"outputFormat,omitempty" validate:"omitempty,oneof=step_by_step direct both"`
	CodeStyle       string   `json:"codeStyle,omitempty" validate:"omitempty,oneof=diff full_files snippets"`

	MustAskClarifyingQuestions *bool `json:"mustAskClarifyingQuestions,omitempty"`
	RequireApprovalGates       *bool `json:"requireApprovalGates,omitempty"`
}

// Output format and code style values.
const (
	FormatStepByStep = "step_by_step"
	FormatDirect     = "direct"
	FormatBoth       = "both"

	StyleDiff      = "diff"
	StyleFullFiles = "full_files"
	StyleSnippets  = "snippets"
)

// Task type provenance reported in Meta.
const (
	SourceExplicit = "explicit"
	SourceInferred = "inferred"
)

// Defaults fill the request fields a caller left unset.
type Defaults struct {
	OutputLanguage             string
	OutputFormat               string
	CodeStyle                  string
	MustAskClarifyingQuestions bool
	RequireApprovalGates       bool
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		OutputLanguage:             string(locale.DefaultLanguage),
		OutputFormat:               FormatBoth,
		CodeStyle:                  StyleDiff,
		MustAskClarifyingQuestions: true,
		RequireApprovalGates:       true,
	}
}

// Resolved is a validated request with every default applied. Hints the
// caller did not give stay empty.
type Resolved struct {
	UserPrompt      string
	ProjectContext  string
	TechStack       string
	Framework       string
	Language        string
	Styling         string
	StateManagement string
	Router          string
	Constraints     []string

	TaskType       workflow.TaskType
	TaskTypeSource string

	OutputLanguage             locale.Language
	OutputFormat               string
	CodeStyle                  string
	MustAskClarifyingQuestions bool
	RequireApprovalGates       bool
}

// ExplicitTaskType reports whether the caller named the task type.
func (r Resolved) ExplicitTaskType() bool {
	return r.TaskTypeSource == SourceExplicit
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Resolve validates r and applies defaults. Hints and constraints are
// trimmed; blank constraints are dropped. Invalid input yields a
// *types.ArgumentError naming the field.
func (r Request) Resolve(d Defaults) (Resolved, error) {
	r.UserPrompt = strings.TrimSpace(r.UserPrompt)
	r.Language = strings.TrimSpace(r.Language)
	r.TaskType = strings.TrimSpace(r.TaskType)
	r.OutputLanguage = strings.TrimSpace(r.OutputLanguage)
	r.OutputFormat = strings.TrimSpace(r.OutputFormat)
	r.CodeStyle = strings.TrimSpace(r.CodeStyle)

	if err := validate.Struct(r); err != nil {
		return Resolved{}, argumentError(err)
	}

	out := Resolved{
		UserPrompt:                 r.UserPrompt,
		ProjectContext:             strings.TrimSpace(r.ProjectContext),
		TechStack:                  strings.TrimSpace(r.TechStack),
		Framework:                  strings.TrimSpace(r.Framework),
		Language:                   r.Language,
		Styling:                    strings.TrimSpace(r.Styling),
		StateManagement:            strings.TrimSpace(r.StateManagement),
		Router:                     strings.TrimSpace(r.Router),
		Constraints:                utils.NonEmpty(r.Constraints),
		OutputLanguage:             locale.Language(firstNonEmpty(r.OutputLanguage, d.OutputLanguage, string(locale.DefaultLanguage))),
		OutputFormat:               firstNonEmpty(r.OutputFormat, d.OutputFormat, FormatBoth),
		CodeStyle:                  firstNonEmpty(r.CodeStyle, d.CodeStyle, StyleDiff),
		MustAskClarifyingQuestions: boolOr(r.MustAskClarifyingQuestions, d.MustAskClarifyingQuestions),
		RequireApprovalGates:       boolOr(r.RequireApprovalGates, d.RequireApprovalGates),
	}
	if !out.OutputLanguage.IsValid() {
		return Resolved{}, types.NewArgumentError("outputLanguage", fmt.Sprintf("must be one of zh, en (got %q)", out.OutputLanguage))
	}

	if r.TaskType != "" {
		out.TaskType = workflow.TaskType(r.TaskType)
		out.TaskTypeSource = SourceExplicit
	} else {
		out.TaskType = workflow.Classify(out.UserPrompt)
		out.TaskTypeSource = SourceInferred
	}
	return out, nil
}

func argumentError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return types.NewArgumentError("request", err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return types.NewArgumentError(fe.Field(), "is required and must not be blank")
	case "oneof":
		return types.NewArgumentError(fe.Field(), fmt.Sprintf("must be one of %s (got %q)", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value()))
	default:
		return types.NewArgumentError(fe.Field(), fmt.Sprintf("failed %q validation", fe.Tag()))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
