// Package mcp provides the tool names, argument types and handlers served
// by the promptwing MCP server.
package mcp

import (
	"github.com/josephgoksu/promptwing/internal/optimize"
)

// === Tool Names ===

// ToolName identifies one MCP tool.
type ToolName string

const (
	ToolOptimize ToolName = "optimize_frontend_prompt"
	ToolScore    ToolName = "score_frontend_prompt"
	ToolScan     ToolName = "scan_project"
	ToolDetect   ToolName = "detect_project_context"
	ToolVerify   ToolName = "verify_implementation"
	ToolEcho     ToolName = "echo"
)

// AllToolNames returns every tool in registration order.
func AllToolNames() []ToolName {
	return []ToolName{ToolOptimize, ToolScore, ToolScan, ToolDetect, ToolVerify, ToolEcho}
}

// IsValid checks if the name is a known tool.
func (n ToolName) IsValid() bool {
	switch n {
	case ToolOptimize, ToolScore, ToolScan, ToolDetect, ToolVerify, ToolEcho:
		return true
	}
	return false
}

// Description returns the tool description shown to MCP clients.
func (n ToolName) Description() string {
	switch n {
	case ToolOptimize:
		return "Turn a raw frontend development request into a structured prompt package: system/user messages, guardrails, clarifying questions and a staged workflow with approval gates. Only userPrompt is required."
	case ToolScore:
		return "Score a prompt from 0 to 100 on clarity, context, constraints, quality bars and process. Returns the breakdown, detected signals and what is missing."
	case ToolScan:
		return "List a project's file tree (read-only, depth and entry bounded). rootDir must stay inside the server's working directory."
	case ToolDetect:
		return "Detect the frontend stack of a directory from package.json and config files: framework, language, styling, state management and router."
	case ToolVerify:
		return "Return a reviewer prompt for checking an implementation against its plan."
	case ToolEcho:
		return "Echo the given text. Use to check the connection."
	}
	return ""
}

// === Tool Parameters ===

// OptimizeParams are the arguments of optimize_frontend_prompt.
type OptimizeParams struct {
	// UserPrompt is the raw request. Required.
	UserPrompt string `json:"userPrompt"`

	ProjectContext  string   `json:"projectContext,omitempty"`
	TechStack       string   `json:"techStack,omitempty"`
	Framework       string   `json:"framework,omitempty"`
	Language        string   `json:"language,omitempty"` // ts | js
	Styling         string   `json:"styling,omitempty"`
	StateManagement string   `json:"stateManagement,omitempty"`
	Router          string   `json:"router,omitempty"`
	Constraints     []string `json:"constraints,omitempty"`

	// TaskType skips classification when set.
	TaskType       string `json:"taskType,omitempty"`
	OutputLanguage string `json:"outputLanguage,omitempty"` // zh | en
	OutputFormat   string `json:"outputFormat,omitempty"`   // step_by_step | direct | both
	CodeStyle      string `json:"codeStyle,omitempty"`      // diff | full_files | snippets

	MustAskClarifyingQuestions *bool `json:"mustAskClarifyingQuestions,omitempty"`
	RequireApprovalGates       *bool `json:"requireApprovalGates,omitempty"`

	// DetectProject fills unset stack hints from ProjectDir (default ".").
	DetectProject bool   `json:"detectProject,omitempty"`
	ProjectDir    string `json:"projectDir,omitempty"`
}

// Request converts the arguments into an optimize.Request.
func (p OptimizeParams) Request() optimize.Request {
	return optimize.Request{
		UserPrompt:                 p.UserPrompt,
		ProjectContext:             p.ProjectContext,
		TechStack:                  p.TechStack,
		Framework:                  p.Framework,
		Language:                   p.Language,
		Styling:                    p.Styling,
		StateManagement:            p.StateManagement,
		Router:                     p.Router,
		Constraints:                p.Constraints,
		TaskType:                   p.TaskType,
		OutputLanguage:             p.OutputLanguage,
		OutputFormat:               p.OutputFormat,
		CodeStyle:                  p.CodeStyle,
		MustAskClarifyingQuestions: p.MustAskClarifyingQuestions,
		RequireApprovalGates:       p.RequireApprovalGates,
	}
}

// ScoreParams are the arguments of score_frontend_prompt.
type ScoreParams struct {
	Prompt         string `json:"prompt"`
	OutputLanguage string `json:"outputLanguage,omitempty"`
}

// ScanParams are the arguments of scan_project.
type ScanParams struct {
	RootDir    string `json:"rootDir,omitempty"`
	MaxDepth   *int   `json:"maxDepth,omitempty"`   // 0-10, default scan.maxDepth
	MaxEntries *int   `json:"maxEntries,omitempty"` // 50-5000, default scan.maxEntries
}

// DetectParams are the arguments of detect_project_context.
type DetectParams struct {
	Dir string `json:"dir,omitempty"`
}

// VerifyParams are the arguments of verify_implementation.
type VerifyParams struct {
	OutputLanguage string `json:"outputLanguage,omitempty"`
}

// EchoParams are the arguments of echo.
type EchoParams struct {
	Text string `json:"text"`
}
