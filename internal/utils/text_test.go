package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncludesAny(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needles  []string
		want     bool
	}{
		{"case insensitive", "Build a REACT page", []string{"react"}, true},
		{"needle upper case", "build a react page", []string{"React"}, true},
		{"cjk", "修复登录报错", []string{"报错"}, true},
		{"no match", "hello world", []string{"vue", "svelte"}, false},
		{"empty haystack", "", []string{"x"}, false},
		{"empty needle ignored", "anything", []string{""}, false},
		{"nil needles", "anything", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IncludesAny(tt.haystack, tt.needles))
		})
	}
}

func TestCountMatches(t *testing.T) {
	assert.Equal(t, 2, CountMatches("fix the crash", []string{"fix", "crash", "bug"}))
	assert.Equal(t, 0, CountMatches("", []string{"fix"}))
	// each needle counts once regardless of repetitions
	assert.Equal(t, 1, CountMatches("fix fix fix", []string{"fix"}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(50, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
	assert.Equal(t, 50, Clamp(50, 50, 5000))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "前端开...", Truncate("前端开发助手工具", 6))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NonEmpty([]string{" a ", "", "  ", "b"}))
	assert.Empty(t, NonEmpty(nil))
}
