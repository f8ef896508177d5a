// Package project detects the frontend stack of a project directory.
//
// Detection reads the package.json dependency lists and checks for
// well-known config and lock files. It never parses source code.
//
// Detection Strategy:
//  1. Manifest dependencies: framework, language, styling, state, router.
//  2. Config files: tsconfig.json, tailwind.config.*, next.config.*, vite.config.*.
//  3. Lock files: package manager.
//  4. Workspace markers: pnpm-workspace.yaml, turbo.json, nx.json, lerna.json,
//     or a "workspaces" field.
package project

import (
	"strings"

	"github.com/spf13/afero"
)

// Context is the frontend stack detected in one directory. Empty fields
// mean nothing was detected for them.
type Context struct {
	// Dir is the absolute directory that was inspected.
	Dir string `json:"dir"`

	// Manifest is the path of the package.json that was read, if any.
	Manifest string `json:"manifest,omitempty"`

	Framework       string `json:"framework,omitempty"`
	Language        string `json:"language,omitempty"`
	Styling         string `json:"styling,omitempty"`
	StateManagement string `json:"stateManagement,omitempty"`
	Router          string `json:"router,omitempty"`

	// BuildTool is the bundler or dev server (Vite, Webpack).
	BuildTool string `json:"buildTool,omitempty"`

	// PackageManager is inferred from the lock file present.
	PackageManager string `json:"packageManager,omitempty"`

	// Workspace describes a monorepo layout, nil for single packages.
	Workspace *Workspace `json:"workspace,omitempty"`

	// TechStackSummary joins framework, language, styling, state and
	// router with " + ".
	TechStackSummary string `json:"techStackSummary,omitempty"`
}

// Empty reports whether no manifest was found.
func (c *Context) Empty() bool {
	return c.Manifest == ""
}

// TechStack describes tooling constraints for a request's techStack hint:
// build tool, package manager and monorepo tool.
func (c *Context) TechStack() string {
	var parts []string
	if c.BuildTool != "" {
		parts = append(parts, c.BuildTool)
	}
	if c.PackageManager != "" {
		parts = append(parts, c.PackageManager)
	}
	if c.Workspace != nil {
		parts = append(parts, c.Workspace.Tool+" monorepo")
	}
	return strings.Join(parts, ", ")
}

// Detector inspects a directory for its frontend stack.
// This abstraction allows for easy testing with mock filesystems.
type Detector interface {
	Detect(dir string) (*Context, error)
}

// detector implements Detector using an afero filesystem.
type detector struct {
	fs afero.Fs
}

// NewDetector creates a new Detector using the provided filesystem.
// Use afero.NewOsFs() for real filesystem operations,
// or afero.NewMemMapFs() for testing.
func NewDetector(fs afero.Fs) Detector {
	return &detector{fs: fs}
}
