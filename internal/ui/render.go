package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/josephgoksu/promptwing/internal/scan"
	"github.com/josephgoksu/promptwing/internal/score"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// label turns "quality bars" or "stateManagement"-style keys into display
// headings.
func label(s string) string {
	var words []string
	start := 0
	for i, r := range s {
		if r >= 'A' && r <= 'Z' && i > start {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// RenderScore renders a score report for the terminal.
func RenderScore(r *score.Report) string {
	var sb strings.Builder

	total := ScoreStyle(r.Score, score.MaxScore).Bold(true).Render(fmt.Sprintf("%d/%d", r.Score, score.MaxScore))
	sb.WriteString(StyleHeader.Render("Prompt score") + " " + total + "\n\n")

	rows := []struct {
		name       string
		got, limit int
	}{
		{"clarity", r.Breakdown.Clarity, score.MaxClarity},
		{"context", r.Breakdown.Context, score.MaxContext},
		{"constraints", r.Breakdown.Constraints, score.MaxConstraints},
		{"quality bars", r.Breakdown.QualityBars, score.MaxQualityBars},
		{"process", r.Breakdown.Process, score.MaxProcess},
	}
	table := &Table{Headers: []string{"Component", "Score", "Max"}}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{label(row.name), strconv.Itoa(row.got), strconv.Itoa(row.limit)})
	}
	sb.WriteString(table.Render())

	if len(r.Missing) > 0 {
		sb.WriteString("\n" + StyleSectionTitle.Render("Missing") + "\n")
		for _, m := range r.Missing {
			sb.WriteString(Icon("⚠", StylePrefixWarn) + " " + m + "\n")
		}
	}
	if len(r.Suggestions) > 0 {
		sb.WriteString("\n" + StyleSectionTitle.Render("Suggestions") + "\n")
		for i, s := range r.Suggestions {
			sb.WriteString(StyleSubtle.Render(fmt.Sprintf("%d.", i+1)) + " " + s + "\n")
		}
	}
	return sb.String()
}

// RenderScan renders a scan report for the terminal.
func RenderScan(r *scan.Report) string {
	var sb strings.Builder

	sb.WriteString(StyleHeader.Render("Project tree") + " " + StylePath.Render(r.RootDir) + "\n\n")
	sb.WriteString(r.Tree + "\n\n")

	summary := fmt.Sprintf("%d files · depth %d · limit %d entries", len(r.FilesIndex), r.MaxDepth, r.MaxEntries)
	if r.Truncated {
		sb.WriteString(Icon("⚠", StylePrefixWarn) + " " + StyleWarning.Render(summary+" · truncated") + "\n")
	} else {
		sb.WriteString(StyleSubtle.Render(summary) + "\n")
	}

	if r.HasClaudeMd {
		sb.WriteString(Icon("✓", StylePrefixDone) + " CLAUDE.md: " + StylePath.Render(strings.Join(r.ClaudeMdPaths, ", ")) + "\n")
	}
	if len(r.SuggestedFiles) > 0 {
		sb.WriteString("\n" + StyleSectionTitle.Render("Read first") + "\n")
		for _, f := range r.SuggestedFiles {
			sb.WriteString("  " + StylePath.Render(f) + "\n")
		}
	}
	return sb.String()
}

// RenderDetect renders a detected project context for the terminal.
func RenderDetect(pc *project.Context) string {
	if pc.Empty() {
		return RenderWarningPanel("No package.json", "Nothing detected in "+pc.Dir)
	}

	fields := []struct{ key, value string }{
		{"framework", pc.Framework},
		{"language", pc.Language},
		{"styling", pc.Styling},
		{"stateManagement", pc.StateManagement},
		{"router", pc.Router},
		{"buildTool", pc.BuildTool},
		{"packageManager", pc.PackageManager},
	}
	if pc.Workspace != nil {
		fields = append(fields, struct{ key, value string }{"monorepo", pc.Workspace.Tool})
	}

	table := &Table{Headers: []string{"Field", "Detected"}, MaxWidth: 60}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "-"
		}
		table.Rows = append(table.Rows, []string{label(f.key), value})
	}

	content := table.Render()
	if pc.TechStackSummary != "" {
		content += "\n" + StyleTitle.Render(pc.TechStackSummary)
	}
	return RenderInfoPanel(pc.Manifest, strings.TrimRight(content, "\n"))
}

// RenderSearch renders catalog search results for the terminal.
func RenderSearch(matches []locale.Match) string {
	if len(matches) == 0 {
		return StyleSubtle.Render("No matching guardrails, questions or gates.") + "\n"
	}
	table := &Table{Headers: []string{"Kind", "ID", "Text"}, MaxWidth: 72}
	for _, m := range matches {
		table.Rows = append(table.Rows, []string{label(m.Kind), m.ID, m.Text})
	}
	return table.Render()
}
