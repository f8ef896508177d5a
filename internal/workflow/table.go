package workflow

import (
	"fmt"

	"github.com/josephgoksu/promptwing/internal/locale"
)

// GateMarker prefixes every gate sentinel line in a rendered template.
const GateMarker = "<<<MCP:GATE"

// Gate is an approval checkpoint the agent must stop at.
type Gate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	When  string `json:"when"`
}

// Step is one stage of a workflow. GateID, when set, names a gate of the
// same workflow.
type Step struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	GateID string `json:"gateId,omitempty"`
}

// Workflow is the staged plan for one task type.
type Workflow struct {
	TaskType             TaskType `json:"taskType"`
	RequireApprovalGates bool     `json:"requireApprovalGates"`
	GateMarker           string   `json:"gateMarker"`
	Gates                []Gate   `json:"gates"`
	Steps                []Step   `json:"steps"`
}

// FirstGate returns the gate that must pass before any code is written.
func (w Workflow) FirstGate() (Gate, bool) {
	if len(w.Gates) == 0 {
		return Gate{}, false
	}
	return w.Gates[0], true
}

// Section is one task-specific template section, in render order.
// Key selects the catalog text; GateID is set on the section that opens
// a gated step. AfterGate marks sections the agent writes only once the
// preceding gate has passed.
type Section struct {
	Key       string
	GateID    string
	AfterGate bool
}

type sectionDef struct {
	key       string
	afterGate bool
}

type stepDef struct {
	id       string
	titleKey string
	gate     string
	sections []sectionDef
}

func sec(key string) sectionDef {
	return sectionDef{key: key}
}

// afterGate marks a section that is rendered after its step's gate.
func afterGate(key string) sectionDef {
	return sectionDef{key: key, afterGate: true}
}

var understandingSteps = []stepDef{
	{id: "task_classification", titleKey: "task_classification"},
	{id: "project_understanding", titleKey: "project_understanding"},
}

// table is the single source for steps, gates and template sections.
var table = map[TaskType][]stepDef{
	NewFeature: {
		{id: "risk_constraints", titleKey: "risk_constraints"},
		{id: "design", titleKey: "design", gate: "new_feature_design", sections: []sectionDef{sec("design")}},
		{id: "plan", titleKey: "plan", gate: "new_feature_plan", sections: []sectionDef{sec("plan")}},
		{id: "implementation", titleKey: "implementation", sections: []sectionDef{afterGate("implementation"), sec("typecheck")}},
		{id: "acceptance", titleKey: "acceptance", gate: "new_feature_accept", sections: []sectionDef{sec("acceptance")}},
		{id: "docs", titleKey: "docs", sections: []sectionDef{sec("docs")}},
	},
	OptimizeExisting: {
		{id: "current_understanding", titleKey: "current_understanding", sections: []sectionDef{sec("current_understanding")}},
		{id: "change_doc", titleKey: "change_doc", gate: "opt_change_doc", sections: []sectionDef{sec("change_doc")}},
		{id: "plan", titleKey: "opt_plan", gate: "opt_plan", sections: []sectionDef{sec("opt_plan")}},
		{id: "implementation", titleKey: "implementation_verification", sections: []sectionDef{afterGate("opt_implementation")}},
	},
	Refactor: {
		{id: "scope_understanding", titleKey: "scope_understanding", sections: []sectionDef{sec("scope_understanding")}},
		{id: "refactor_doc", titleKey: "refactor_doc", gate: "refactor_doc", sections: []sectionDef{sec("refactor_doc")}},
		{id: "migration", titleKey: "migration", gate: "refactor_migration", sections: []sectionDef{sec("migration")}},
		{id: "execution", titleKey: "execution", sections: []sectionDef{afterGate("execution")}},
	},
	Bugfix: {
		{id: "repro_rootcause", titleKey: "repro_rootcause", sections: []sectionDef{sec("repro_rootcause")}},
		{id: "plan", titleKey: "bugfix_plan", gate: "bugfix_plan", sections: []sectionDef{sec("bugfix_plan")}},
		{id: "implementation", titleKey: "implementation_verification", sections: []sectionDef{afterGate("bugfix_implementation")}},
	},
	Performance: {
		{id: "metrics", titleKey: "metrics", sections: []sectionDef{sec("metrics")}},
		{id: "plan", titleKey: "perf_plan", gate: "perf_plan", sections: []sectionDef{sec("perf_plan")}},
		{id: "implementation", titleKey: "implementation_comparison", sections: []sectionDef{afterGate("perf_implementation")}},
	},
	UIPolish: {
		{id: "issues", titleKey: "issues", sections: []sectionDef{sec("issues")}},
		{id: "plan", titleKey: "ui_polish_plan", gate: "ui_polish_plan", sections: []sectionDef{sec("ui_polish_plan")}},
		{id: "implementation", titleKey: "implementation_acceptance", sections: []sectionDef{afterGate("ui_implementation")}},
	},
	DependencyUpgrade: {
		{id: "risk", titleKey: "risk", sections: []sectionDef{sec("risk")}},
		{id: "plan", titleKey: "dep_upgrade_plan", gate: "dep_upgrade_plan", sections: []sectionDef{sec("dep_upgrade_plan")}},
		{id: "implementation", titleKey: "implementation_verification", sections: []sectionDef{afterGate("dep_implementation")}},
	},
	TestAddition: {
		{id: "plan", titleKey: "test_plan", gate: "test_plan", sections: []sectionDef{sec("test_plan")}},
		{id: "implementation", titleKey: "implementation_verification", sections: []sectionDef{afterGate("test_implementation")}},
	},
}

func stepsFor(t TaskType) []stepDef {
	specific, ok := table[t]
	if !ok {
		specific = table[DefaultTaskType]
	}
	out := make([]stepDef, 0, len(understandingSteps)+len(specific))
	out = append(out, understandingSteps...)
	return append(out, specific...)
}

// Build returns the workflow for t with titles from cat. Unknown task
// types fall back to new_feature.
func Build(cat *locale.Catalog, t TaskType, requireApprovalGates bool) Workflow {
	if !t.IsValid() {
		t = DefaultTaskType
	}
	defs := stepsFor(t)

	w := Workflow{
		TaskType:             t,
		RequireApprovalGates: requireApprovalGates,
		GateMarker:           GateMarker,
		Gates:                []Gate{},
		Steps:                make([]Step, 0, len(defs)),
	}
	seen := make(map[string]bool)
	for _, d := range defs {
		w.Steps = append(w.Steps, Step{ID: d.id, Title: cat.Step(d.titleKey), GateID: d.gate})
		if d.gate == "" || seen[d.gate] {
			continue
		}
		seen[d.gate] = true
		g := cat.Gate(d.gate)
		w.Gates = append(w.Gates, Gate{ID: d.gate, Title: g.Title, When: g.When})
	}
	return w
}

// Sections returns the task-specific template sections of t in order.
func Sections(t TaskType) []Section {
	if !t.IsValid() {
		t = DefaultTaskType
	}
	var out []Section
	for _, d := range stepsFor(t) {
		for i, s := range d.sections {
			section := Section{Key: s.key, AfterGate: s.afterGate}
			if i == 0 {
				section.GateID = d.gate
			}
			out = append(out, section)
		}
	}
	return out
}

// Validate checks that every gated step of every task type resolves to a
// gate with catalog text and every section has catalog text.
func Validate(cat *locale.Catalog) error {
	for _, t := range AllTaskTypes() {
		w := Build(cat, t, true)
		gates := make(map[string]bool, len(w.Gates))
		for _, g := range w.Gates {
			if _, ok := cat.Gates[g.ID]; !ok {
				return fmt.Errorf("%s: gate %q has no catalog text", t, g.ID)
			}
			gates[g.ID] = true
		}
		for _, s := range w.Steps {
			if s.GateID != "" && !gates[s.GateID] {
				return fmt.Errorf("%s: step %q references unknown gate %q", t, s.ID, s.GateID)
			}
		}
		for _, s := range Sections(t) {
			if _, ok := cat.Template.Sections[s.Key]; !ok {
				return fmt.Errorf("%s: section %q has no catalog text", t, s.Key)
			}
		}
	}
	return nil
}
