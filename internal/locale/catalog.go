// Package locale holds the display strings used to build prompt packages.
//
// A Catalog is a plain value: builders receive it explicitly and never
// reach for package state. Built-in catalogs exist for Chinese and English;
// project-local override files produce modified copies (see Load).
package locale

import (
	"fmt"
	"slices"
	"strings"
)

// Language identifies an output language.
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// DefaultLanguage is used when a request does not name one.
const DefaultLanguage = Chinese

// Languages returns the supported output languages.
func Languages() []Language {
	return []Language{Chinese, English}
}

// IsValid checks if the language has a built-in catalog.
func (l Language) IsValid() bool {
	switch l {
	case Chinese, English:
		return true
	}
	return false
}

// Placeholders substituted in parameterized guardrails.
const (
	FrameworkPlaceholder = "{{framework}}"
	StylingPlaceholder   = "{{styling}}"
)

// Rule is one guardrail line with a stable identifier.
type Rule struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// GateText is the display text of a workflow gate.
type GateText struct {
	Title string `json:"title" yaml:"title"`
	When  string `json:"when" yaml:"when"`
}

// GuardrailText holds the baseline rules and the conditional rule templates.
type GuardrailText struct {
	Baseline     []Rule
	TypedDefault string
	Framework    string
	Styling      string
}

// FrameworkRule renders the framework best-practice rule.
func (g GuardrailText) FrameworkRule(framework string) string {
	return strings.ReplaceAll(g.Framework, FrameworkPlaceholder, framework)
}

// StylingRule renders the styling compliance rule.
func (g GuardrailText) StylingRule(styling string) string {
	return strings.ReplaceAll(g.Styling, StylingPlaceholder, styling)
}

// SectionText is the heading and bullet list of one task-specific template section.
// UntypedItems replaces Items when the request targets plain JavaScript.
type SectionText struct {
	Heading      string
	Items        []string
	UntypedItems []string
}

// TemplateText holds the fixed parts of the structured output template.
type TemplateText struct {
	StructureHeader string
	WorkflowHeader  string

	ClassificationHeader string
	GoalLine             string
	NonGoalLine          string

	PlanHeader string
	PlanItems  []string

	TaskListHeader string
	TaskListItems  []string

	UnderstandingHeader string
	UnderstandingItems  []string

	RiskHeader string
	RiskItems  []string

	GateInstructionOn  string
	GateInstructionOff string
	GateStop           string
	StopGenerating     string
	PassThrough        string
	GateTag            string
	AfterGate          string

	Sections   map[string]SectionText
	References string
}

// CoreText holds the message scaffolding of the assembled prompt.
type CoreText struct {
	Persona            string
	ConstraintsHeader  string
	TaskType           string
	ApprovalGate       string
	GateEnabled        string
	GateDisabled       string
	OriginalQuestion   string
	ProjectContext     string
	ExpectedOutput     string
	OutputIntro        string
	OutputFormat       string
	OutputMode         string
	CodeStyle          string
	MustInclude        string
	FileChange         string
	StructuredTemplate string
	ClarifyingHeader   string
}

// ScoreText holds the scorer's labels for missing signals and its fixed suggestions.
type ScoreText struct {
	Missing     map[string]string
	Suggestions []string
}

// Catalog is the complete set of display strings for one language.
type Catalog struct {
	Language     Language
	Guardrails   GuardrailText
	Questions    map[string]string
	Gates        map[string]GateText
	Steps        map[string]string
	Template     TemplateText
	Core         CoreText
	Score        ScoreText
	Checklist    []string
	Verification string
}

// Builtin returns a fresh copy of the built-in catalog for lang.
func Builtin(lang Language) (*Catalog, error) {
	switch lang {
	case Chinese:
		return chinese(), nil
	case English:
		return english(), nil
	}
	return nil, fmt.Errorf("unsupported output language %q", lang)
}

// MustBuiltin is Builtin for callers that pass a known language.
func MustBuiltin(lang Language) *Catalog {
	c, err := Builtin(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Question returns the question text for a topic id.
func (c *Catalog) Question(id string) string {
	return c.Questions[id]
}

// Gate returns the text for a gate id; unknown ids fall back to the id itself.
func (c *Catalog) Gate(id string) GateText {
	if g, ok := c.Gates[id]; ok {
		return g
	}
	return GateText{Title: id, When: id}
}

// Step returns the title for a step title key.
func (c *Catalog) Step(key string) string {
	if s, ok := c.Steps[key]; ok {
		return s
	}
	return key
}

// Section returns the template section for key.
func (c *Catalog) Section(key string) SectionText {
	return c.Template.Sections[key]
}

// Clone returns a deep copy so overrides never touch the receiver.
func (c *Catalog) Clone() *Catalog {
	out := *c
	out.Guardrails.Baseline = slices.Clone(c.Guardrails.Baseline)
	out.Questions = cloneMap(c.Questions)
	out.Gates = cloneMap(c.Gates)
	out.Steps = cloneMap(c.Steps)
	out.Checklist = slices.Clone(c.Checklist)
	out.Score.Missing = cloneMap(c.Score.Missing)
	out.Score.Suggestions = slices.Clone(c.Score.Suggestions)

	t := c.Template
	t.PlanItems = slices.Clone(t.PlanItems)
	t.TaskListItems = slices.Clone(t.TaskListItems)
	t.UnderstandingItems = slices.Clone(t.UnderstandingItems)
	t.RiskItems = slices.Clone(t.RiskItems)
	t.Sections = make(map[string]SectionText, len(c.Template.Sections))
	for k, s := range c.Template.Sections {
		s.Items = slices.Clone(s.Items)
		s.UntypedItems = slices.Clone(s.UntypedItems)
		t.Sections[k] = s
	}
	out.Template = t
	return &out
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Set holds one catalog per supported language.
type Set struct {
	catalogs map[Language]*Catalog
}

// BuiltinSet returns a Set of the unmodified built-in catalogs.
func BuiltinSet() *Set {
	s := &Set{catalogs: make(map[Language]*Catalog, 2)}
	for _, lang := range Languages() {
		s.catalogs[lang] = MustBuiltin(lang)
	}
	return s
}

// Catalog returns the catalog for lang.
func (s *Set) Catalog(lang Language) (*Catalog, error) {
	c, ok := s.catalogs[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported output language %q", lang)
	}
	return c, nil
}
