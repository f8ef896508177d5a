package optimize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/workflow"
)

// firstTaskSection is the number of the first task-specific section; 0-4
// are shared by every task type.
const firstTaskSection = 5

// GateOpenMarker is the sentinel line placed right before a gated section.
func GateOpenMarker(gateID string) string {
	return fmt.Sprintf(`%s id="%s" action="WAIT_FOR_USER_APPROVAL">>>`, workflow.GateMarker, gateID)
}

// GateWaitMarker is the sentinel line closing a gated section.
func GateWaitMarker(gateID string) string {
	return fmt.Sprintf(`<<<MCP:WAIT gate_id="%s" action="WAIT_FOR_USER_APPROVAL">>>`, gateID)
}

type machineWorkflow struct {
	TaskType             workflow.TaskType `json:"task_type"`
	RequireApprovalGates bool              `json:"require_approval_gates"`
	Gates                []workflow.Gate   `json:"gates"`
}

// RenderTemplate renders the structured Markdown template the agent must
// follow for w.
func RenderTemplate(cat *locale.Catalog, r Resolved, w workflow.Workflow) string {
	t := cat.Template

	lines := []string{
		t.StructureHeader,
		t.WorkflowHeader,
		"- mcp_workflow: " + workflowJSON(w),
		"- gate_marker_prefix: " + GateOpenMarker("..."),
	}

	lines = append(lines, heading(0, t.ClassificationHeader),
		"- task_type: "+workflow.Placeholder(),
		t.GoalLine,
		t.NonGoalLine,
		"",
	)
	lines = appendBlock(lines, heading(1, t.PlanHeader), t.PlanItems)
	lines = appendBlock(lines, heading(2, t.TaskListHeader), t.TaskListItems)
	lines = appendBlock(lines, heading(3, t.UnderstandingHeader), t.UnderstandingItems)
	lines = appendBlock(lines, heading(4, t.RiskHeader), t.RiskItems)

	if w.RequireApprovalGates {
		lines = append(lines, t.GateInstructionOn)
	} else {
		lines = append(lines, t.GateInstructionOff)
	}
	lines = append(lines, t.GateStop)

	n := firstTaskSection
	for _, s := range workflow.Sections(w.TaskType) {
		text := cat.Section(s.Key)
		items := text.Items
		if r.Language == "js" && len(text.UntypedItems) > 0 {
			items = text.UntypedItems
		}

		lines = append(lines, "")
		switch {
		case s.GateID != "":
			lines = append(lines,
				GateOpenMarker(s.GateID),
				fmt.Sprintf("%s **[%s]**", heading(n, text.Heading), t.GateTag),
			)
			lines = append(lines, items...)
			if w.RequireApprovalGates {
				lines = append(lines, t.StopGenerating)
			} else {
				lines = append(lines, t.PassThrough)
			}
			lines = append(lines, GateWaitMarker(s.GateID))
		case s.AfterGate:
			lines = append(lines, heading(n, text.Heading)+t.AfterGate)
			lines = append(lines, items...)
		default:
			lines = append(lines, heading(n, text.Heading))
			lines = append(lines, items...)
		}
		n++
	}

	if t.References != "" {
		lines = append(lines, "", t.References)
	}
	return strings.Join(lines, "\n")
}

func heading(n int, title string) string {
	return fmt.Sprintf("## %d. %s", n, title)
}

func appendBlock(lines []string, header string, items []string) []string {
	lines = append(lines, header)
	lines = append(lines, items...)
	return append(lines, "")
}

// workflowJSON renders the compact workflow summary. HTML escaping is off
// so the marker-like characters survive verbatim.
func workflowJSON(w workflow.Workflow) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(machineWorkflow{
		TaskType:             w.TaskType,
		RequireApprovalGates: w.RequireApprovalGates,
		Gates:                w.Gates,
	}); err != nil {
		return "{}"
	}
	return strings.TrimRight(buf.String(), "\n")
}
