package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFS creates an in-memory filesystem with the given files.
// Keys are absolute paths, values the file contents.
func setupFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project", 0755))

	for path, content := range files {
		err := afero.WriteFile(fs, path, []byte(content), 0644)
		require.NoError(t, err, "failed to create file: %s", path)
	}
	return fs
}

func TestDetect_NextTailwindZustand(t *testing.T) {
	// Structure:
	//   /project/package.json  (next, react, tailwindcss, zustand, typescript)
	//   /project/pnpm-lock.yaml
	fs := setupFS(t, map[string]string{
		"/project/package.json": `{
			"dependencies": {"next": "14.2.0", "react": "18.3.0", "zustand": "4.5.0"},
			"devDependencies": {"tailwindcss": "3.4.0", "typescript": "5.4.0"}
		}`,
		"/project/pnpm-lock.yaml": "",
	})

	ctx, err := NewDetector(fs).Detect("/project")
	require.NoError(t, err)

	assert.Equal(t, "/project/package.json", ctx.Manifest)
	assert.Equal(t, "Next.js", ctx.Framework)
	assert.Equal(t, "ts", ctx.Language)
	assert.Equal(t, "Tailwind CSS", ctx.Styling)
	assert.Equal(t, "Zustand", ctx.StateManagement)
	assert.Equal(t, "Next.js App Router/Pages Router", ctx.Router)
	assert.Equal(t, "pnpm", ctx.PackageManager)
	assert.Nil(t, ctx.Workspace)
	assert.Equal(t, "Next.js + TypeScript + Tailwind CSS + Zustand + Next.js App Router/Pages Router", ctx.TechStackSummary)
	assert.Equal(t, "pnpm", ctx.TechStack())
}

func TestDetect_VueWithConfigFiles(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/project/package.json":       `{"dependencies": {"vue": "3.4.0", "vue-router": "4.3.0", "pinia": "2.1.0"}, "devDependencies": {"sass": "1.7.0", "vite": "5.2.0"}}`,
		"/project/tsconfig.json":      "{}",
		"/project/tailwind.config.ts": "export default {}",
		"/project/yarn.lock":          "",
	})

	ctx, err := NewDetector(fs).Detect("/project")
	require.NoError(t, err)

	assert.Equal(t, "Vue", ctx.Framework)
	assert.Equal(t, "ts", ctx.Language)
	assert.Equal(t, "SASS/SCSS, Tailwind CSS", ctx.Styling)
	assert.Equal(t, "Pinia", ctx.StateManagement)
	assert.Equal(t, "Vue Router", ctx.Router)
	assert.Equal(t, "Vite", ctx.BuildTool)
	assert.Equal(t, "Vite, yarn", ctx.TechStack())
}

func TestDetect_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		manifest  string
		framework string
		state     string
		router    string
	}{
		{"nuxt over vue", `{"dependencies": {"nuxt": "3", "vue": "3"}}`, "Nuxt", "", "Nuxt Router"},
		{"react with router", `{"dependencies": {"react": "18", "react-router-dom": "6", "@reduxjs/toolkit": "2", "mobx": "6"}}`, "React", "Redux", "React Router"},
		{"svelte", `{"dependencies": {"svelte": "4", "recoil": "0.7"}}`, "Svelte", "Recoil", ""},
		{"angular", `{"dependencies": {"@angular/core": "17"}}`, "Angular", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := setupFS(t, map[string]string{"/project/package.json": tt.manifest})
			ctx, err := NewDetector(fs).Detect("/project")
			require.NoError(t, err)

			assert.Equal(t, tt.framework, ctx.Framework)
			assert.Equal(t, tt.state, ctx.StateManagement)
			assert.Equal(t, tt.router, ctx.Router)
			assert.Equal(t, "js", ctx.Language)
		})
	}
}

func TestDetect_NextConfigFallback(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/project/package.json":    `{"dependencies": {}}`,
		"/project/next.config.mjs": "export default {}",
	})

	ctx, err := NewDetector(fs).Detect("/project")
	require.NoError(t, err)
	assert.Equal(t, "Next.js", ctx.Framework)
	assert.Equal(t, "Next.js App Router/Pages Router", ctx.Router)
}

func TestDetect_AllStylings(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/project/package.json": `{"dependencies": {"antd": "5", "@mui/material": "5", "@emotion/react": "11", "styled-components": "6", "sass-loader": "13", "tailwindcss": "3"}}`,
	})

	ctx, err := NewDetector(fs).Detect("/project")
	require.NoError(t, err)
	assert.Equal(t, "Tailwind CSS, SASS/SCSS, Styled Components, Emotion, MUI, Ant Design", ctx.Styling)
}

func TestDetect_MissingOrBrokenManifest(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		ctx, err := NewDetector(setupFS(t, nil)).Detect("/project")
		require.NoError(t, err)
		assert.True(t, ctx.Empty())
		assert.Equal(t, "/project", ctx.Dir)
		assert.Empty(t, ctx.TechStackSummary)
	})

	t.Run("unparsable", func(t *testing.T) {
		fs := setupFS(t, map[string]string{"/project/package.json": "{not json"})
		ctx, err := NewDetector(fs).Detect("/project")
		require.NoError(t, err)
		assert.True(t, ctx.Empty())
		assert.Empty(t, ctx.Framework)
	})
}

func TestDetect_Workspaces(t *testing.T) {
	t.Run("pnpm workspace with turbo", func(t *testing.T) {
		fs := setupFS(t, map[string]string{
			"/project/package.json":        `{"devDependencies": {"turbo": "2"}}`,
			"/project/pnpm-workspace.yaml": "packages:\n  - apps/*\n  - packages/*\n",
			"/project/turbo.json":          "{}",
			"/project/pnpm-lock.yaml":      "",
		})
		ctx, err := NewDetector(fs).Detect("/project")
		require.NoError(t, err)

		require.NotNil(t, ctx.Workspace)
		assert.Equal(t, "Turborepo", ctx.Workspace.Tool)
		assert.Equal(t, []string{"apps/*", "packages/*"}, ctx.Workspace.Packages)
		assert.Equal(t, "pnpm, Turborepo monorepo", ctx.TechStack())
	})

	t.Run("workspaces array", func(t *testing.T) {
		fs := setupFS(t, map[string]string{
			"/project/package.json": `{"workspaces": ["web", "shared"]}`,
		})
		ctx, err := NewDetector(fs).Detect("/project")
		require.NoError(t, err)

		require.NotNil(t, ctx.Workspace)
		assert.Equal(t, "workspaces", ctx.Workspace.Tool)
		assert.Equal(t, []string{"web", "shared"}, ctx.Workspace.Packages)
	})

	t.Run("workspaces object", func(t *testing.T) {
		fs := setupFS(t, map[string]string{
			"/project/package.json": `{"workspaces": {"packages": ["apps/*"]}}`,
		})
		ctx, err := NewDetector(fs).Detect("/project")
		require.NoError(t, err)

		require.NotNil(t, ctx.Workspace)
		assert.Equal(t, []string{"apps/*"}, ctx.Workspace.Packages)
	})

	t.Run("lerna", func(t *testing.T) {
		fs := setupFS(t, map[string]string{
			"/project/package.json": `{}`,
			"/project/lerna.json":   `{"packages": ["modules/*"]}`,
		})
		ctx, err := NewDetector(fs).Detect("/project")
		require.NoError(t, err)

		require.NotNil(t, ctx.Workspace)
		assert.Equal(t, "Lerna", ctx.Workspace.Tool)
		assert.Equal(t, []string{"modules/*"}, ctx.Workspace.Packages)
	})
}
