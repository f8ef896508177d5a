/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/josephgoksu/promptwing/internal/logger"
	"github.com/josephgoksu/promptwing/internal/optimize"
	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	optProjectContext  string
	optTechStack       string
	optFramework       string
	optLanguage        string
	optStyling         string
	optStateManagement string
	optRouter          string
	optConstraints     []string
	optTaskType        string
	optOutputLanguage  string
	optOutputFormat    string
	optCodeStyle       string
	optNoQuestions     bool
	optNoGates         bool
	optDetect          bool
	optSave            string
	optPromptOnly      bool
	optFields          []string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <prompt>",
	Short: "Build a structured prompt package from a raw request",
	Long: `Turn a raw frontend request into a prompt package: the optimized prompt,
chat messages, the task-type workflow with its approval gates, guardrails,
clarifying questions and a checklist.

The package is printed as JSON. Pass "-" to read the prompt from stdin.

Examples:
  promptwing optimize "add a dark mode toggle to the settings page"
  promptwing optimize --detect --type bugfix "the submit button double-posts"
  promptwing optimize --output-language en --prompt-only "make the table sortable"
  promptwing optimize --fields workflow,meta "refactor the cart store"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := promptArg(cmd, args)
		if err != nil {
			return err
		}
		logger.SetLastInput(prompt)
		return runOptimize(cmd, prompt)
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	f := optimizeCmd.Flags()
	f.StringVar(&optProjectContext, "context", "", "background on the existing project")
	f.StringVar(&optTechStack, "stack", "", "free-form tech stack description")
	f.StringVar(&optFramework, "framework", "", "UI framework (React, Vue, ...)")
	f.StringVar(&optLanguage, "lang", "", "source language: ts or js")
	f.StringVar(&optStyling, "styling", "", "styling solution (Tailwind CSS, ...)")
	f.StringVar(&optStateManagement, "state", "", "state management library")
	f.StringVar(&optRouter, "router", "", "routing library")
	f.StringArrayVar(&optConstraints, "constraint", nil, "extra constraint (repeatable)")
	f.StringVar(&optTaskType, "type", "", "task type; inferred from the prompt when empty")
	f.StringVar(&optOutputLanguage, "output-language", "", "prompt language: zh or en (default from config)")
	f.StringVar(&optOutputFormat, "format", "", "step_by_step, direct or both (default from config)")
	f.StringVar(&optCodeStyle, "code-style", "", "diff, full_files or snippets (default from config)")
	f.BoolVar(&optNoQuestions, "no-questions", false, "do not require clarifying questions")
	f.BoolVar(&optNoGates, "no-gates", false, "do not require approval gates")
	f.BoolVar(&optDetect, "detect", false, "fill blank stack hints from ./package.json")
	f.StringVar(&optSave, "save", "", "write the JSON package to this file")
	f.BoolVar(&optPromptOnly, "prompt-only", false, "print only the optimized prompt")
	f.StringSliceVar(&optFields, "fields", nil, "keep only these top-level JSON fields")
	optimizeCmd.MarkFlagsMutuallyExclusive("prompt-only", "fields")
}

func optimizeRequest(cmd *cobra.Command, prompt string) optimize.Request {
	req := optimize.Request{
		UserPrompt:      prompt,
		ProjectContext:  optProjectContext,
		TechStack:       optTechStack,
		Framework:       optFramework,
		Language:        optLanguage,
		Styling:         optStyling,
		StateManagement: optStateManagement,
		Router:          optRouter,
		Constraints:     optConstraints,
		TaskType:        optTaskType,
		OutputLanguage:  optOutputLanguage,
		OutputFormat:    optOutputFormat,
		CodeStyle:       optCodeStyle,
	}
	if cmd.Flags().Changed("no-questions") {
		ask := !optNoQuestions
		req.MustAskClarifyingQuestions = &ask
	}
	if cmd.Flags().Changed("no-gates") {
		gates := !optNoGates
		req.RequireApprovalGates = &gates
	}
	return req
}

func runOptimize(cmd *cobra.Command, prompt string) error {
	req := optimizeRequest(cmd, prompt)

	if optDetect {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		pc, err := project.NewDetector(appFs).Detect(cwd)
		if err != nil {
			return fmt.Errorf("detect project: %w", err)
		}
		if pc.Empty() {
			LogError("no package.json found, stack hints left as given", nil)
		}
		req.ApplyProjectContext(pc)
	}

	pkg, err := optimize.New(loadCatalogs(), optimizeDefaults()).Optimize(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if optPromptOnly {
		_, err := fmt.Fprintln(out, pkg.OptimizedPrompt)
		return err
	}

	var payload any = pkg
	if len(optFields) > 0 {
		payload, err = selectFields(pkg, optFields)
		if err != nil {
			return err
		}
	}

	if optSave != "" {
		if err := savePackage(optSave, payload); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, optSave)
		return err
	}
	return printJSON(out, payload)
}

// selectFields keeps the named top-level JSON fields of pkg.
func selectFields(pkg *optimize.Package, fields []string) (map[string]json.RawMessage, error) {
	var buf bytes.Buffer
	if err := printJSON(&buf, pkg); err != nil {
		return nil, fmt.Errorf("encode package: %w", err)
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &all); err != nil {
		return nil, fmt.Errorf("decode package: %w", err)
	}

	out := make(map[string]json.RawMessage, len(fields))
	for _, name := range fields {
		name = strings.TrimSpace(name)
		v, ok := all[name]
		if !ok {
			known := make([]string, 0, len(all))
			for k := range all {
				known = append(known, k)
			}
			slices.Sort(known)
			return nil, types.NewArgumentError("fields", fmt.Sprintf("unknown field %q (known: %s)", name, strings.Join(known, ", ")))
		}
		out[name] = v
	}
	return out, nil
}

func savePackage(path string, v any) error {
	var buf bytes.Buffer
	if err := printJSON(&buf, v); err != nil {
		return fmt.Errorf("encode package: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := appFs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(appFs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
