/*
Workspace detection for JavaScript monorepos.

A directory is a monorepo root when it carries one of:
- pnpm-workspace.yaml (pnpm workspaces)
- a "workspaces" field in package.json (npm/yarn/bun workspaces)
- turbo.json, nx.json or lerna.json (task runners layered on workspaces)
*/
package project

import (
	"encoding/json"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Workspace describes a monorepo root.
type Workspace struct {
	// Tool names the monorepo tool: Turborepo, Nx, Lerna, pnpm or workspaces.
	Tool string `json:"tool"`

	// Packages lists the package globs, as written in the config.
	Packages []string `json:"packages,omitempty"`
}

var runnerMarkers = []struct {
	file string
	tool string
}{
	{"turbo.json", "Turborepo"},
	{"nx.json", "Nx"},
	{"lerna.json", "Lerna"},
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// detectWorkspace returns nil when dir is not a monorepo root.
// workspacesField is the raw "workspaces" value of package.json.
func (d *detector) detectWorkspace(dir string, workspacesField json.RawMessage) *Workspace {
	var ws *Workspace

	if data, err := afero.ReadFile(d.fs, filepath.Join(dir, "pnpm-workspace.yaml")); err == nil {
		var cfg pnpmWorkspace
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			slog.Warn("pnpm-workspace.yaml is not valid YAML", "dir", dir, "error", err)
		}
		ws = &Workspace{Tool: "pnpm", Packages: cfg.Packages}
	} else if globs, ok := parseWorkspacesField(workspacesField); ok {
		ws = &Workspace{Tool: "workspaces", Packages: globs}
	}

	for _, m := range runnerMarkers {
		if !d.exists(dir, m.file) {
			continue
		}
		if ws == nil {
			ws = &Workspace{}
		}
		ws.Tool = m.tool
		if len(ws.Packages) == 0 && m.file == "lerna.json" {
			ws.Packages = d.lernaPackages(dir)
		}
		break
	}
	return ws
}

// parseWorkspacesField accepts both the array form and the
// {"packages": [...]} object form.
func parseWorkspacesField(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Packages, true
	}
	return nil, false
}

func (d *detector) lernaPackages(dir string) []string {
	data, err := afero.ReadFile(d.fs, filepath.Join(dir, "lerna.json"))
	if err != nil {
		return nil
	}
	var cfg struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	return cfg.Packages
}
