package locale

import (
	"slices"
	"strings"
)

// Entry kinds returned by Search.
const (
	KindGuardrail = "guardrail"
	KindQuestion  = "question"
	KindGate      = "gate"
)

// Match is one catalog entry found by Search.
type Match struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Search returns guardrails, questions and gates whose id or text contains
// term, ignoring case. An empty term lists every entry.
func (c *Catalog) Search(term string) []Match {
	term = strings.ToLower(strings.TrimSpace(term))
	hit := func(id, text string) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(id), term) ||
			strings.Contains(strings.ToLower(text), term)
	}

	var out []Match
	rules := append(slices.Clone(c.Guardrails.Baseline),
		Rule{ID: "ts_default", Content: c.Guardrails.TypedDefault},
		Rule{ID: "framework_practice", Content: c.Guardrails.Framework},
		Rule{ID: "styling_req", Content: c.Guardrails.Styling},
	)
	for _, r := range rules {
		if hit(r.ID, r.Content) {
			out = append(out, Match{Kind: KindGuardrail, ID: r.ID, Text: r.Content})
		}
	}

	for _, id := range sortedKeys(c.Questions) {
		if q := c.Questions[id]; hit(id, q) {
			out = append(out, Match{Kind: KindQuestion, ID: id, Text: q})
		}
	}

	for _, id := range sortedKeys(c.Gates) {
		g := c.Gates[id]
		text := g.Title + ": " + g.When
		if hit(id, text) {
			out = append(out, Match{Kind: KindGate, ID: id, Text: text})
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
