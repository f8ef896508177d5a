package optimize

import (
	"strings"

	"github.com/josephgoksu/promptwing/internal/project"
)

// ApplyProjectContext fills the hints the caller left blank from a detected
// project. Explicit hints always win.
func (r *Request) ApplyProjectContext(pc *project.Context) {
	if pc == nil || pc.Empty() {
		return
	}
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	fill(&r.Framework, pc.Framework)
	fill(&r.Language, pc.Language)
	fill(&r.Styling, pc.Styling)
	fill(&r.StateManagement, pc.StateManagement)
	fill(&r.Router, pc.Router)

	stack := pc.TechStackSummary
	if tooling := pc.TechStack(); tooling != "" {
		stack += " (" + tooling + ")"
	}
	fill(&r.TechStack, stack)
}
