// Package score rates how well a frontend prompt constrains a coding agent.
//
// The rubric is keyword and length based: eleven boolean signals feed five
// capped sub-scores whose sum is the overall score. Identical text always
// yields an identical report.
package score

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/utils"
	"github.com/josephgoksu/promptwing/types"
)

// Sub-score caps.
const (
	MaxClarity     = 30
	MaxContext     = 30
	MaxConstraints = 30
	MaxQualityBars = 15
	MaxProcess     = 20
	MaxScore       = 100
)

// Length thresholds, counted in runes of the trimmed text.
const (
	contextLength = 200
	clarityLength = 80
)

// Signals are the rubric's boolean observations about a prompt.
type Signals struct {
	HasContext          bool `json:"hasContext"`
	HasStack            bool `json:"hasStack"`
	HasConstraints      bool `json:"hasConstraints"`
	HasDeliverables     bool `json:"hasDeliverables"`
	HasEdgeCases        bool `json:"hasEdgeCases"`
	HasA11y             bool `json:"hasA11y"`
	HasPerformance      bool `json:"hasPerformance"`
	HasTesting          bool `json:"hasTesting"`
	HasGates            bool `json:"hasGates"`
	HasScanProject      bool `json:"hasScanProject"`
	HasTemplateSections bool `json:"hasTemplateSections"`
}

// Breakdown holds the capped sub-scores.
type Breakdown struct {
	Clarity     int `json:"clarity"`
	Context     int `json:"context"`
	Constraints int `json:"constraints"`
	QualityBars int `json:"qualityBars"`
	Process     int `json:"process"`
}

// Sum adds the sub-scores.
func (b Breakdown) Sum() int {
	return b.Clarity + b.Context + b.Constraints + b.QualityBars + b.Process
}

// Report is the result of scoring one prompt.
type Report struct {
	Score       int       `json:"score"`
	Breakdown   Breakdown `json:"breakdown"`
	Signals     Signals   `json:"signals"`
	Missing     []string  `json:"missing"`
	Suggestions []string  `json:"suggestions"`
}

var (
	contextWords     = []string{"背景", "上下文", "context", "existing", "现有"}
	stackWords       = []string{"react", "vue", "angular", "svelte", "next", "nuxt", "vite", "webpack"}
	constraintWords  = []string{"必须", "禁止", "约束", "constraint", "don’t", "don't", "do not", "avoid"}
	deliverableWords = []string{"输出", "deliver", "code", "diff", "文件", "file", "目录", "structure"}
	edgeCaseWords    = []string{"边界", "edge", "error", "异常", "fallback", "loading"}
	a11yWords        = []string{"a11y", "accessibility", "aria", "无障碍"}
	performanceWords = []string{"performance", "性能", "lcp", "cls", "memo", "virtualize", "debounce"}
	testingWords     = []string{"test", "jest", "vitest", "cypress", "playwright"}
	gateWords        = []string{"<<<mcp:gate", "<<<mcp:wait", "[gate", "need user approval", "审批", "等待用户", "同意后"}
	scanProjectWords = []string{"scan_project", "项目理解", "目录树", "架构"}
	templateWords    = []string{"## 0.", "## 1.", "## 2.", "## 3.", "输出结构（必须严格遵守）"}
)

// Detect computes the signals for text.
func Detect(text string) Signals {
	text = strings.TrimSpace(text)
	length := utf8.RuneCountInString(text)
	return Signals{
		HasContext:          length >= contextLength || utils.IncludesAny(text, contextWords),
		HasStack:            utils.IncludesAny(text, stackWords),
		HasConstraints:      utils.IncludesAny(text, constraintWords),
		HasDeliverables:     utils.IncludesAny(text, deliverableWords),
		HasEdgeCases:        utils.IncludesAny(text, edgeCaseWords),
		HasA11y:             utils.IncludesAny(text, a11yWords),
		HasPerformance:      utils.IncludesAny(text, performanceWords),
		HasTesting:          utils.IncludesAny(text, testingWords),
		HasGates:            utils.IncludesAny(text, gateWords),
		HasScanProject:      utils.IncludesAny(text, scanProjectWords),
		HasTemplateSections: utils.IncludesAny(text, templateWords),
	}
}

func pick(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}

// Weigh maps signals to capped sub-scores. length is the rune count of the
// trimmed prompt.
func Weigh(s Signals, length int) Breakdown {
	return Breakdown{
		Clarity:     utils.Clamp(pick(length >= clarityLength, 20, 10)+pick(s.HasDeliverables, 10, 0), 0, MaxClarity),
		Context:     utils.Clamp(pick(s.HasContext, 20, 8)+pick(s.HasStack, 10, 0), 0, MaxContext),
		Constraints: utils.Clamp(pick(s.HasConstraints, 18, 6)+pick(s.HasEdgeCases, 6, 0), 0, MaxConstraints),
		QualityBars: utils.Clamp(pick(s.HasA11y, 5, 0)+pick(s.HasPerformance, 5, 0)+pick(s.HasTesting, 5, 0), 0, MaxQualityBars),
		Process:     utils.Clamp(pick(s.HasGates, 8, 0)+pick(s.HasScanProject, 6, 0)+pick(s.HasTemplateSections, 6, 0), 0, MaxProcess),
	}
}

// Missing lists the catalog labels of absent signals, in rubric order.
func Missing(cat *locale.Catalog, s Signals) []string {
	checks := []struct {
		key     string
		present bool
	}{
		{"stack", s.HasStack},
		{"constraints", s.HasConstraints},
		{"deliverables", s.HasDeliverables},
		{"edge_cases", s.HasEdgeCases},
		{"a11y", s.HasA11y},
		{"performance", s.HasPerformance},
		{"scan_project", s.HasScanProject},
		{"gates", s.HasGates},
		{"template", s.HasTemplateSections},
	}
	out := []string{}
	for _, c := range checks {
		if !c.present {
			out = append(out, cat.Score.Missing[c.key])
		}
	}
	return out
}

// Score applies the rubric to text. Any text, including an empty one, is
// accepted.
func Score(cat *locale.Catalog, text string) *Report {
	s := Detect(text)
	b := Weigh(s, utf8.RuneCountInString(strings.TrimSpace(text)))
	return &Report{
		Score:       utils.Clamp(b.Sum(), 0, MaxScore),
		Breakdown:   b,
		Signals:     s,
		Missing:     Missing(cat, s),
		Suggestions: slices.Clone(cat.Score.Suggestions),
	}
}

// ScorePrompt is Score for callers that must supply a prompt: blank text
// is rejected with an argument error.
func ScorePrompt(cat *locale.Catalog, text string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, types.NewArgumentError("prompt", "is required and must not be blank")
	}
	return Score(cat, text), nil
}
