package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// ManifestFile is the dependency manifest read by the detector.
const ManifestFile = "package.json"

type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      json.RawMessage   `json:"workspaces"`
}

type depRule struct {
	deps  []string
	label string
}

// frameworks is ordered by precedence: meta-frameworks win over the
// libraries they are built on.
var frameworks = []depRule{
	{[]string{"next"}, "Next.js"},
	{[]string{"nuxt"}, "Nuxt"},
	{[]string{"react"}, "React"},
	{[]string{"vue"}, "Vue"},
	{[]string{"svelte"}, "Svelte"},
	{[]string{"@angular/core"}, "Angular"},
}

// stylings are all reported, in this order.
var stylings = []depRule{
	{[]string{"tailwindcss"}, "Tailwind CSS"},
	{[]string{"sass", "sass-loader"}, "SASS/SCSS"},
	{[]string{"styled-components"}, "Styled Components"},
	{[]string{"@emotion/react"}, "Emotion"},
	{[]string{"@mui/material"}, "MUI"},
	{[]string{"antd"}, "Ant Design"},
}

var stateLibraries = []depRule{
	{[]string{"redux", "@reduxjs/toolkit"}, "Redux"},
	{[]string{"zustand"}, "Zustand"},
	{[]string{"pinia"}, "Pinia"},
	{[]string{"mobx"}, "MobX"},
	{[]string{"recoil"}, "Recoil"},
}

var routers = []depRule{
	{[]string{"react-router-dom"}, "React Router"},
	{[]string{"vue-router"}, "Vue Router"},
}

var buildTools = []depRule{
	{[]string{"vite"}, "Vite"},
	{[]string{"webpack"}, "Webpack"},
}

var lockFiles = []struct {
	name    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"package-lock.json", "npm"},
}

// Detect implements the Detector interface. A missing or unparsable
// package.json yields an empty context, not an error; only an unusable
// path fails.
func (d *detector) Detect(dir string) (*Context, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	ctx := &Context{Dir: absDir}

	path := filepath.Join(absDir, ManifestFile)
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		slog.Debug("no package manifest", "path", path, "error", err)
		return ctx, nil
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		slog.Warn("package manifest is not valid JSON", "path", path, "error", err)
		return ctx, nil
	}
	ctx.Manifest = path

	deps := make(map[string]bool, len(m.Dependencies)+len(m.DevDependencies))
	for name := range m.Dependencies {
		deps[name] = true
	}
	for name := range m.DevDependencies {
		deps[name] = true
	}

	ctx.Language = "js"
	if deps["typescript"] || d.exists(absDir, "tsconfig.json") {
		ctx.Language = "ts"
	}

	ctx.Framework = firstMatch(deps, frameworks)
	if ctx.Framework == "" && d.exists(absDir, "next.config.js", "next.config.mjs", "next.config.ts") {
		ctx.Framework = "Next.js"
	}

	styles := allMatches(deps, stylings)
	if d.exists(absDir, "tailwind.config.js", "tailwind.config.ts") && !slices.Contains(styles, "Tailwind CSS") {
		styles = append(styles, "Tailwind CSS")
	}
	ctx.Styling = strings.Join(styles, ", ")

	ctx.StateManagement = firstMatch(deps, stateLibraries)

	switch ctx.Framework {
	case "Next.js":
		ctx.Router = "Next.js App Router/Pages Router"
	case "Nuxt":
		ctx.Router = "Nuxt Router"
	default:
		ctx.Router = firstMatch(deps, routers)
	}

	ctx.BuildTool = firstMatch(deps, buildTools)
	if ctx.BuildTool == "" && d.exists(absDir, "vite.config.js", "vite.config.ts") {
		ctx.BuildTool = "Vite"
	}

	for _, lf := range lockFiles {
		if d.exists(absDir, lf.name) {
			ctx.PackageManager = lf.manager
			break
		}
	}

	ctx.Workspace = d.detectWorkspace(absDir, m.Workspaces)
	ctx.TechStackSummary = summarize(ctx)
	return ctx, nil
}

func (d *detector) exists(dir string, names ...string) bool {
	for _, name := range names {
		if ok, _ := afero.Exists(d.fs, filepath.Join(dir, name)); ok {
			return true
		}
	}
	return false
}

func firstMatch(deps map[string]bool, rules []depRule) string {
	for _, r := range rules {
		for _, dep := range r.deps {
			if deps[dep] {
				return r.label
			}
		}
	}
	return ""
}

func allMatches(deps map[string]bool, rules []depRule) []string {
	var out []string
	for _, r := range rules {
		for _, dep := range r.deps {
			if deps[dep] {
				out = append(out, r.label)
				break
			}
		}
	}
	return out
}

func summarize(c *Context) string {
	lang := "JavaScript"
	if c.Language == "ts" {
		lang = "TypeScript"
	}
	var parts []string
	for _, p := range []string{c.Framework, lang, c.Styling, c.StateManagement, c.Router} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " + ")
}
