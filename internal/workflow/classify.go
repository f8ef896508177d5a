package workflow

import "github.com/josephgoksu/promptwing/internal/utils"

type keywordSet struct {
	taskType TaskType
	keywords []string
}

// classifierKeywords is ordered by precedence: on equal scores the earlier
// entry wins.
var classifierKeywords = []keywordSet{
	{Bugfix, []string{"修复", "bug", "fix", "错误", "报错", "异常", "崩溃", "不工作", "失效", "故障", "crash", "broken", "exception"}},
	{Performance, []string{"性能", "慢", "卡顿", "渲染慢", "performance", "提速", "加速", "内存泄漏", "优化性能", "加载慢"}},
	{Refactor, []string{"重构", "refactor", "重写", "整理代码", "重新组织", "代码清理"}},
	{UIPolish, []string{"样式", "ui", "ux", "美化", "界面", "设计稿", "布局", "视觉", "css", "动画"}},
	{DependencyUpgrade, []string{"升级", "依赖", "版本", "upgrade", "dependency", "迁移", "migrate", "包更新"}},
	{TestAddition, []string{"测试", "test", "单元测试", "e2e", "jest", "vitest", "cypress", "spec"}},
	{OptimizeExisting, []string{"优化", "改进", "improve", "optimize", "enhance", "调整", "完善"}},
}

// newFeatureKeywords mark a request as explicitly about new functionality.
// They never change classification (new_feature is the fallback) but count
// as a task-type mention for clarifying questions.
var newFeatureKeywords = []string{"新功能", "新增", "new feature"}

// Classify infers the task type of a free-form request by keyword scoring.
// Each type scores the number of its keywords found in text; a later type
// must score strictly higher to win. No match yields new_feature.
func Classify(text string) TaskType {
	best := DefaultTaskType
	bestScore := 0
	for _, set := range classifierKeywords {
		if score := utils.CountMatches(text, set.keywords); score > bestScore {
			best = set.taskType
			bestScore = score
		}
	}
	return best
}

// Keywords returns the vocabulary that signals a task type is already
// stated in free text.
func Keywords() []string {
	out := append([]string(nil), newFeatureKeywords...)
	for _, set := range classifierKeywords {
		out = append(out, set.keywords...)
	}
	return out
}
