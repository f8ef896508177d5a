package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/optimize"
	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/josephgoksu/promptwing/internal/scan"
	"github.com/josephgoksu/promptwing/internal/score"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/work/package.json":       `{"dependencies": {"react": "18", "zustand": "4"}, "devDependencies": {"typescript": "5"}}`,
		"/work/src/App.tsx":        "export {}",
		"/work/CLAUDE.md":          "# notes",
		"/work/node_modules/x.js":  "",
		"/outside/package.json":    `{}`,
		"/work/web/package.json":   `{"dependencies": {"vue": "3"}}`,
		"/work/web/vite.config.ts": "",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return NewHandler(nil, optimize.DefaultDefaults(), scan.New(fs, "/work"), project.NewDetector(fs))
}

func TestHandleOptimize(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleOptimize(context.Background(), OptimizeParams{
		UserPrompt:     "fix the crash when clicking submit",
		OutputLanguage: "en",
	})
	require.False(t, res.IsError, res.Text)

	var pkg optimize.Package
	require.NoError(t, json.Unmarshal([]byte(res.Text), &pkg))
	assert.Equal(t, "bugfix", string(pkg.Meta.TaskType))
	assert.Equal(t, optimize.SourceInferred, pkg.Meta.TaskTypeSource)
	assert.Len(t, pkg.Messages, 2)
	assert.Contains(t, res.Text, `<<<MCP:GATE id=\"bugfix_plan\"`, "markers must not be HTML-escaped")
}

func TestHandleOptimize_BlankPrompt(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleOptimize(context.Background(), OptimizeParams{UserPrompt: "   "})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "Validation Error")
	assert.Contains(t, res.Text, "`userPrompt`")
}

func TestHandleOptimize_DetectProject(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleOptimize(context.Background(), OptimizeParams{
		UserPrompt:    "add a settings page",
		DetectProject: true,
	})
	require.False(t, res.IsError, res.Text)

	var pkg optimize.Package
	require.NoError(t, json.Unmarshal([]byte(res.Text), &pkg))
	require.NotNil(t, pkg.Meta.Framework)
	assert.Equal(t, "React", *pkg.Meta.Framework)
	require.NotNil(t, pkg.Meta.StateManagement)
	assert.Equal(t, "Zustand", *pkg.Meta.StateManagement)
	require.NotNil(t, pkg.Meta.Language)
	assert.Equal(t, "ts", *pkg.Meta.Language)

	res = h.HandleOptimize(context.Background(), OptimizeParams{
		UserPrompt:    "add a settings page",
		DetectProject: true,
		ProjectDir:    "../outside",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, types.CodePathEscape)
}

func TestHandleScore(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleScore(context.Background(), ScoreParams{Prompt: "make it better", OutputLanguage: "en"})
	require.False(t, res.IsError, res.Text)

	var report score.Report
	require.NoError(t, json.Unmarshal([]byte(res.Text), &report))
	assert.Equal(t, 24, report.Score)

	res = h.HandleScore(context.Background(), ScoreParams{Prompt: ""})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "`prompt`")

	res = h.HandleScore(context.Background(), ScoreParams{Prompt: "x", OutputLanguage: "fr"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "`outputLanguage`")
}

func TestHandleScan(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleScan(context.Background(), ScanParams{})
	require.False(t, res.IsError, res.Text)

	var report scan.Report
	require.NoError(t, json.Unmarshal([]byte(res.Text), &report))
	assert.True(t, report.HasClaudeMd)
	assert.NotContains(t, report.Tree, "node_modules")
	assert.Contains(t, report.SuggestedFiles, "package.json")

	res = h.HandleScan(context.Background(), ScanParams{RootDir: "../../etc"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, types.CodePathEscape)
}

func TestHandleScan_ScannerDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/a/b/deep.ts", []byte("x"), 0644))
	scanner := scan.New(fs, "/work").WithDefaults(1, 75)
	h := NewHandler(nil, optimize.DefaultDefaults(), scanner, project.NewDetector(fs))

	res := h.HandleScan(context.Background(), ScanParams{})
	require.False(t, res.IsError, res.Text)

	var report scan.Report
	require.NoError(t, json.Unmarshal([]byte(res.Text), &report))
	assert.Equal(t, 1, report.MaxDepth)
	assert.Equal(t, 75, report.MaxEntries)
	assert.NotContains(t, report.Tree, "deep.ts")

	depth := 3
	res = h.HandleScan(context.Background(), ScanParams{MaxDepth: &depth})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, "deep.ts")
}

func TestHandleDetect(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleDetect(context.Background(), DetectParams{Dir: "web"})
	require.False(t, res.IsError, res.Text)

	var pc project.Context
	require.NoError(t, json.Unmarshal([]byte(res.Text), &pc))
	assert.Equal(t, "Vue", pc.Framework)
	assert.Equal(t, "Vite", pc.BuildTool)

	res = h.HandleDetect(context.Background(), DetectParams{Dir: "/outside"})
	assert.True(t, res.IsError)
}

func TestHandleVerifyAndEcho(t *testing.T) {
	h := newTestHandler(t)

	res := h.HandleVerify(context.Background(), VerifyParams{OutputLanguage: "en"})
	assert.False(t, res.IsError)
	assert.Equal(t, locale.MustBuiltin(locale.English).Verification, res.Text)

	res = h.HandleEcho(context.Background(), EchoParams{Text: "ping"})
	assert.Equal(t, Result{Text: "ping"}, res)
}

func TestHandler_CanceledContext(t *testing.T) {
	h := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := h.HandleScan(ctx, ScanParams{})
	assert.True(t, res.IsError)
}

func TestHandler_SetCatalogs(t *testing.T) {
	h := newTestHandler(t)

	overridden := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(overridden, "/data/gates.json",
		[]byte(`[{"id": "bugfix_plan", "title": "Fix Plan Review"}]`), 0644))
	set, err := locale.Load(overridden, "/data")
	require.NoError(t, err)

	h.SetCatalogs(set)
	res := h.HandleOptimize(context.Background(), OptimizeParams{UserPrompt: "fix the crash", OutputLanguage: "en"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, "Fix Plan Review")

	h.SetCatalogs(nil)
	res = h.HandleOptimize(context.Background(), OptimizeParams{UserPrompt: "fix the crash", OutputLanguage: "en"})
	assert.NotContains(t, res.Text, "Fix Plan Review")
}

func TestCall(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	res, err := h.Call(ctx, "echo", json.RawMessage(`{"text": "hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Text)

	res, err = h.Call(ctx, "score_frontend_prompt", nil)
	require.NoError(t, err)
	assert.True(t, res.IsError, "missing prompt is a tool error")

	res, err = h.Call(ctx, "scan_project", json.RawMessage(`[1, 2]`))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "`arguments`")

	_, err = h.Call(ctx, "delete_everything", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnknownOperation))
}

func TestFormatToolError(t *testing.T) {
	assert.Equal(t,
		"## ❌ Validation Error\n\n**Field**: `userPrompt`\n**Details**: is required and must not be blank",
		FormatToolError(types.NewArgumentError("userPrompt", "is required and must not be blank")))

	text := FormatToolError(&types.PathEscapeError{Requested: "..", Base: "/work"})
	assert.True(t, strings.HasPrefix(text, "## ❌ Error\n\n**Details**: [PATH_ESCAPE] "))

	assert.Equal(t, "## ❌ Error\n\n**Details**: [INTERNAL] boom", FormatToolError(errors.New("boom")))
}

func TestFormatJSON(t *testing.T) {
	text, err := FormatJSON(map[string]string{"marker": "<<<MCP:WAIT>>>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"marker\": \"<<<MCP:WAIT>>>\"\n}", text)
}
