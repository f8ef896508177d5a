package score

import (
	"errors"
	"strings"
	"testing"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/optimize"
	"github.com/josephgoksu/promptwing/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var en = locale.MustBuiltin(locale.English)

func assertWithinCaps(t *testing.T, r *Report) {
	t.Helper()
	b := r.Breakdown
	assert.GreaterOrEqual(t, b.Clarity, 0)
	assert.LessOrEqual(t, b.Clarity, MaxClarity)
	assert.LessOrEqual(t, b.Context, MaxContext)
	assert.LessOrEqual(t, b.Constraints, MaxConstraints)
	assert.LessOrEqual(t, b.QualityBars, MaxQualityBars)
	assert.LessOrEqual(t, b.Process, MaxProcess)
	assert.Equal(t, min(max(b.Sum(), 0), MaxScore), r.Score)
}

func TestScore_Empty(t *testing.T) {
	r := Score(en, "")

	assert.Equal(t, Breakdown{Clarity: 10, Context: 8, Constraints: 6}, r.Breakdown)
	assert.Equal(t, 24, r.Score)
	assertWithinCaps(t, r)

	require.Len(t, r.Missing, 9)
	for _, key := range []string{"stack", "constraints", "deliverables", "a11y", "performance", "scan_project", "gates", "template"} {
		assert.Contains(t, r.Missing, en.Score.Missing[key], key)
	}
	assert.Len(t, r.Suggestions, 4)
}

func TestScore_Signals(t *testing.T) {
	tests := []struct {
		name string
		text string
		get  func(Signals) bool
	}{
		{"context word", "existing checkout flow", func(s Signals) bool { return s.HasContext }},
		{"context length", strings.Repeat("a", 200), func(s Signals) bool { return s.HasContext }},
		{"stack", "a Vite project", func(s Signals) bool { return s.HasStack }},
		{"constraints curly apostrophe", "don’t touch the api", func(s Signals) bool { return s.HasConstraints }},
		{"constraints straight apostrophe", "don't touch the api", func(s Signals) bool { return s.HasConstraints }},
		{"deliverables", "return a diff", func(s Signals) bool { return s.HasDeliverables }},
		{"edge cases", "show a loading state", func(s Signals) bool { return s.HasEdgeCases }},
		{"a11y", "add ARIA labels", func(s Signals) bool { return s.HasA11y }},
		{"performance", "debounce the input", func(s Signals) bool { return s.HasPerformance }},
		{"testing", "cover with Playwright", func(s Signals) bool { return s.HasTesting }},
		{"gates", "wait: NEED USER APPROVAL", func(s Signals) bool { return s.HasGates }},
		{"scan project", "call scan_project first", func(s Signals) bool { return s.HasScanProject }},
		{"template", "## 2. Task List", func(s Signals) bool { return s.HasTemplateSections }},
		{"template zh", "输出结构（必须严格遵守）", func(s Signals) bool { return s.HasTemplateSections }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.get(Detect(tt.text)))
		})
	}
}

func TestScore_LengthInRunes(t *testing.T) {
	// 199 CJK runes are well over 200 bytes but still short
	s := Detect(strings.Repeat("页", 199))
	assert.False(t, s.HasContext)
	assert.True(t, Detect(strings.Repeat("页", 200)).HasContext)

	assert.Equal(t, 10, Weigh(Signals{}, 79).Clarity)
	assert.Equal(t, 20, Weigh(Signals{}, 80).Clarity)
}

func TestScore_CapsAndSum(t *testing.T) {
	all := Signals{
		HasContext: true, HasStack: true, HasConstraints: true, HasDeliverables: true,
		HasEdgeCases: true, HasA11y: true, HasPerformance: true, HasTesting: true,
		HasGates: true, HasScanProject: true, HasTemplateSections: true,
	}
	b := Weigh(all, 500)
	assert.Equal(t, Breakdown{Clarity: 30, Context: 30, Constraints: 24, QualityBars: 15, Process: 20}, b)
	assert.Equal(t, 119, b.Sum())

	texts := []string{
		"",
		"x",
		"Build a React dashboard with Tailwind and Jest tests",
		strings.Repeat("existing react code must avoid errors, aria, lcp, test, <<<MCP:GATE, scan_project, ## 0. ", 5),
	}
	for _, text := range texts {
		assertWithinCaps(t, Score(en, text))
	}
}

func TestScore_OptimizedPackageScoresHigh(t *testing.T) {
	pkg, err := optimize.New(nil, optimize.DefaultDefaults()).Optimize(optimize.Request{
		UserPrompt:     "Build a settings page",
		Framework:      "React",
		OutputLanguage: "en",
	})
	require.NoError(t, err)

	r := Score(en, pkg.OptimizedPrompt)
	assert.GreaterOrEqual(t, r.Score, 90)
	assert.True(t, r.Signals.HasGates)
	assert.True(t, r.Signals.HasTemplateSections)
	assert.True(t, r.Signals.HasScanProject)
}

func TestScore_Deterministic(t *testing.T) {
	text := "Refactor the existing Vue store, do not add deps, output a diff"
	assert.Equal(t, Score(en, text), Score(en, text))
}

func TestScore_LocalizedMissing(t *testing.T) {
	zh := locale.MustBuiltin(locale.Chinese)
	r := Score(zh, "x")
	assert.Equal(t, zh.Score.Missing["stack"], r.Missing[0])
	assert.Equal(t, zh.Score.Suggestions, r.Suggestions)
}

func TestScorePrompt_RejectsBlank(t *testing.T) {
	_, err := ScorePrompt(en, "  \n ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	r, err := ScorePrompt(en, "add a footer")
	require.NoError(t, err)
	assert.Equal(t, Score(en, "add a footer"), r)
}
