package optimize

import "github.com/josephgoksu/promptwing/internal/locale"

// BuildGuardrails returns the rules the agent must follow: the catalog
// baseline, then the typed-language rule (unless the request targets
// plain JavaScript), the framework and styling rules when those hints are
// set, then the caller's own constraints verbatim.
func BuildGuardrails(cat *locale.Catalog, r Resolved) []string {
	g := cat.Guardrails
	out := make([]string, 0, len(g.Baseline)+3+len(r.Constraints))
	for _, rule := range g.Baseline {
		out = append(out, rule.Content)
	}

	if r.Language == "" || r.Language == "ts" {
		out = append(out, g.TypedDefault)
	}
	if r.Framework != "" {
		out = append(out, g.FrameworkRule(r.Framework))
	}
	if r.Styling != "" {
		out = append(out, g.StylingRule(r.Styling))
	}
	return append(out, r.Constraints...)
}
