package optimize

import (
	"testing"

	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/stretchr/testify/assert"
)

func TestApplyProjectContext(t *testing.T) {
	pc := &project.Context{
		Manifest:         "/app/package.json",
		Framework:        "Vue",
		Language:         "ts",
		Styling:          "Tailwind CSS",
		StateManagement:  "Pinia",
		Router:           "Vue Router",
		BuildTool:        "Vite",
		PackageManager:   "pnpm",
		TechStackSummary: "Vue + TypeScript + Tailwind CSS + Pinia + Vue Router",
	}

	t.Run("fills blanks", func(t *testing.T) {
		req := Request{UserPrompt: "x"}
		req.ApplyProjectContext(pc)
		assert.Equal(t, "Vue", req.Framework)
		assert.Equal(t, "ts", req.Language)
		assert.Equal(t, "Pinia", req.StateManagement)
		assert.Equal(t, "Vue + TypeScript + Tailwind CSS + Pinia + Vue Router (Vite, pnpm)", req.TechStack)
	})

	t.Run("explicit hints win", func(t *testing.T) {
		req := Request{UserPrompt: "x", Framework: "React", Language: "js"}
		req.ApplyProjectContext(pc)
		assert.Equal(t, "React", req.Framework)
		assert.Equal(t, "js", req.Language)
		assert.Equal(t, "Tailwind CSS", req.Styling)
	})

	t.Run("empty context is ignored", func(t *testing.T) {
		req := Request{UserPrompt: "x"}
		req.ApplyProjectContext(&project.Context{Dir: "/app"})
		req.ApplyProjectContext(nil)
		assert.Equal(t, Request{UserPrompt: "x"}, req)
	})
}
