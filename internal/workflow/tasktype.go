// Package workflow defines the task types, their staged workflows and the
// approval gates that pause a coding agent between stages.
package workflow

import (
	"fmt"
	"strings"
)

// TaskType is the nature of a development request.
type TaskType string

const (
	NewFeature        TaskType = "new_feature"
	OptimizeExisting  TaskType = "optimize_existing"
	Refactor          TaskType = "refactor"
	Bugfix            TaskType = "bugfix"
	Performance       TaskType = "performance"
	UIPolish          TaskType = "ui_polish"
	DependencyUpgrade TaskType = "dependency_upgrade"
	TestAddition      TaskType = "test_addition"
)

// DefaultTaskType is used when nothing else can be inferred.
const DefaultTaskType = NewFeature

// AllTaskTypes returns every task type in declaration order.
func AllTaskTypes() []TaskType {
	return []TaskType{
		NewFeature, OptimizeExisting, Refactor, Bugfix,
		Performance, UIPolish, DependencyUpgrade, TestAddition,
	}
}

// IsValid checks if t is one of the known task types.
func (t TaskType) IsValid() bool {
	switch t {
	case NewFeature, OptimizeExisting, Refactor, Bugfix,
		Performance, UIPolish, DependencyUpgrade, TestAddition:
		return true
	}
	return false
}

// ParseTaskType validates s as a task type.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown task type %q (valid: %s)", s, strings.Join(taskTypeNames(), ", "))
	}
	return t, nil
}

func taskTypeNames() []string {
	all := AllTaskTypes()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t)
	}
	return names
}

// Placeholder renders the task type choice list used in templates,
// e.g. "<new_feature|optimize_existing|...>".
func Placeholder() string {
	return "<" + strings.Join(taskTypeNames(), "|") + ">"
}
