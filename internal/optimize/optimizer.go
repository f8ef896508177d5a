package optimize

import (
	"fmt"
	"slices"
	"strings"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/workflow"
)

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message of the package.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Meta echoes the resolved request. Hints the caller did not give are null.
type Meta struct {
	Framework                  *string           `json:"framework"`
	TechStack                  *string           `json:"techStack"`
	Language                   *string           `json:"language"`
	Styling                    *string           `json:"styling"`
	StateManagement            *string           `json:"stateManagement"`
	Router                     *string           `json:"router"`
	TaskType                   workflow.TaskType `json:"taskType"`
	TaskTypeSource             string            `json:"taskTypeSource"`
	RequireApprovalGates       bool              `json:"requireApprovalGates"`
	MustAskClarifyingQuestions bool              `json:"mustAskClarifyingQuestions"`
	OutputLanguage             locale.Language   `json:"outputLanguage"`
	OutputFormat               string            `json:"outputFormat"`
	CodeStyle                  string            `json:"codeStyle"`
}

// Package is the optimized prompt handed to a coding agent.
type Package struct {
	OptimizedPrompt     string            `json:"optimizedPrompt"`
	Messages            []Message         `json:"messages"`
	Workflow            workflow.Workflow `json:"workflow"`
	Guardrails          []string          `json:"guardrails"`
	ClarifyingQuestions []string          `json:"clarifyingQuestions"`
	Checklist           []string          `json:"checklist"`
	Meta                Meta              `json:"meta"`
}

// Optimizer builds prompt packages from a catalog set.
type Optimizer struct {
	catalogs *locale.Set
	defaults Defaults
}

// New creates an Optimizer. A nil set uses the built-in catalogs.
func New(catalogs *locale.Set, defaults Defaults) *Optimizer {
	if catalogs == nil {
		catalogs = locale.BuiltinSet()
	}
	return &Optimizer{catalogs: catalogs, defaults: defaults}
}

// Optimize validates req and assembles its prompt package.
func (o *Optimizer) Optimize(req Request) (*Package, error) {
	r, err := req.Resolve(o.defaults)
	if err != nil {
		return nil, err
	}
	cat, err := o.catalogs.Catalog(r.OutputLanguage)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return Assemble(cat, r), nil
}

// Assemble builds the package for an already resolved request.
func Assemble(cat *locale.Catalog, r Resolved) *Package {
	w := workflow.Build(cat, r.TaskType, r.RequireApprovalGates)
	guardrails := BuildGuardrails(cat, r)
	questions := BuildQuestions(cat, r)
	c := cat.Core

	system := []string{c.Persona, c.ConstraintsHeader}
	for _, g := range guardrails {
		system = append(system, "- "+g)
	}
	gateMode := c.GateDisabled
	if r.RequireApprovalGates {
		gateMode = c.GateEnabled
	}
	system = append(system,
		fmt.Sprintf("- %s: %s", c.TaskType, r.TaskType),
		fmt.Sprintf("- %s: %s", c.ApprovalGate, gateMode),
	)

	user := []string{"## " + c.OriginalQuestion, r.UserPrompt}
	if r.ProjectContext != "" {
		user = append(user, "\n## "+c.ProjectContext, r.ProjectContext)
	}
	user = append(user,
		"\n## "+c.ExpectedOutput,
		c.OutputIntro,
		"\n## "+c.OutputFormat,
		fmt.Sprintf("- %s: %s", c.OutputMode, r.OutputFormat),
		fmt.Sprintf("- %s: %s", c.CodeStyle, r.CodeStyle),
		"- "+c.MustInclude,
		"- "+c.FileChange,
		"\n## "+c.StructuredTemplate,
		RenderTemplate(cat, r, w),
	)
	if r.MustAskClarifyingQuestions && len(questions) > 0 {
		user = append(user, "\n## "+c.ClarifyingHeader)
		for _, q := range questions {
			user = append(user, "- "+q)
		}
	}

	messages := []Message{
		{Role: RoleSystem, Content: strings.Join(system, "\n")},
		{Role: RoleUser, Content: strings.Join(user, "\n")},
	}

	return &Package{
		OptimizedPrompt:     JoinMessages(messages),
		Messages:            messages,
		Workflow:            w,
		Guardrails:          guardrails,
		ClarifyingQuestions: questions,
		Checklist:           slices.Clone(cat.Checklist),
		Meta: Meta{
			Framework:                  optional(r.Framework),
			TechStack:                  optional(r.TechStack),
			Language:                   optional(r.Language),
			Styling:                    optional(r.Styling),
			StateManagement:            optional(r.StateManagement),
			Router:                     optional(r.Router),
			TaskType:                   r.TaskType,
			TaskTypeSource:             r.TaskTypeSource,
			RequireApprovalGates:       r.RequireApprovalGates,
			MustAskClarifyingQuestions: r.MustAskClarifyingQuestions,
			OutputLanguage:             r.OutputLanguage,
			OutputFormat:               r.OutputFormat,
			CodeStyle:                  r.CodeStyle,
		},
	}
}

// JoinMessages renders messages as "[ROLE]\ncontent" blocks separated by a
// blank line.
func JoinMessages(messages []Message) string {
	blocks := make([]string, len(messages))
	for i, m := range messages {
		blocks[i] = "[" + strings.ToUpper(m.Role) + "]\n" + m.Content
	}
	return strings.Join(blocks, "\n\n")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
