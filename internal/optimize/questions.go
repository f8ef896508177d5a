package optimize

import (
	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/utils"
	"github.com/josephgoksu/promptwing/internal/workflow"
)

type questionTopic struct {
	id       string
	keywords []string
	answered func(Resolved) bool
}

// questionTopics is in the order questions are asked.
var questionTopics = []questionTopic{
	{"framework", []string{"react", "vue", "angular", "svelte", "next", "nuxt"},
		func(r Resolved) bool { return r.Framework != "" }},
	{"techStack", []string{"vite", "webpack", "pnpm", "yarn", "npm", "monorepo", "node"},
		func(r Resolved) bool { return r.TechStack != "" }},
	{"language", []string{"typescript", "ts"},
		func(r Resolved) bool { return r.Language != "" }},
	{"styling", []string{"tailwind", "scss", "sass", "css modules", "styled-components", "emotion", "antd", "mui", "chakra", "vanilla css"},
		func(r Resolved) bool { return r.Styling != "" }},
	{"stateManagement", []string{"redux", "zustand", "recoil", "pinia", "vuex", "mobx", "context"},
		func(r Resolved) bool { return r.StateManagement != "" }},
	{"router", []string{"react router", "next", "nuxt", "vue-router", "vue router", "app router", "pages router"},
		func(r Resolved) bool { return r.Router != "" }},
	{"api", []string{"api", "接口", "endpoint", "graphql", "rest"}, nil},
	{"a11y", []string{"a11y", "accessibility", "无障碍", "aria"}, nil},
	{"responsive", []string{"responsive", "mobile", "适配", "breakpoint"}, nil},
	{"test", []string{"test", "jest", "vitest", "cypress", "playwright"}, nil},
	{"taskType", nil,
		func(r Resolved) bool { return r.ExplicitTaskType() }},
}

// BuildQuestions returns the clarifying questions for the information the
// request leaves open. A topic is skipped when its hint is set or the
// prompt or project context already mentions it. The result is never nil.
func BuildQuestions(cat *locale.Catalog, r Resolved) []string {
	text := r.UserPrompt + "\n" + r.ProjectContext
	out := []string{}
	for _, topic := range questionTopics {
		if topic.answered != nil && topic.answered(r) {
			continue
		}
		keywords := topic.keywords
		if topic.id == "taskType" {
			keywords = workflow.Keywords()
		}
		if utils.IncludesAny(text, keywords) {
			continue
		}
		if q := cat.Question(topic.id); q != "" {
			out = append(out, q)
		}
	}
	return out
}
