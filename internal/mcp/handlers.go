package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/optimize"
	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/josephgoksu/promptwing/internal/scan"
	"github.com/josephgoksu/promptwing/internal/score"
	"github.com/josephgoksu/promptwing/types"
)

// Result is the text content of one tool call. IsError results carry a
// formatted error for the model to read, not a protocol failure.
type Result struct {
	Text    string
	IsError bool
}

func errorResult(err error) Result {
	return Result{Text: FormatToolError(err), IsError: true}
}

func jsonResult(v any) Result {
	text, err := FormatJSON(v)
	if err != nil {
		return errorResult(err)
	}
	return Result{Text: text}
}

// Handler serves the promptwing tools. The catalog set can be swapped while
// requests are in flight; each call works on one snapshot.
type Handler struct {
	catalogs atomic.Pointer[locale.Set]
	defaults optimize.Defaults
	scanner  *scan.Scanner
	detector project.Detector
}

// NewHandler creates a Handler. A nil catalog set uses the built-in catalogs.
func NewHandler(catalogs *locale.Set, defaults optimize.Defaults, scanner *scan.Scanner, detector project.Detector) *Handler {
	h := &Handler{defaults: defaults, scanner: scanner, detector: detector}
	h.SetCatalogs(catalogs)
	return h
}

// SetCatalogs replaces the catalog set used by subsequent calls.
func (h *Handler) SetCatalogs(s *locale.Set) {
	if s == nil {
		s = locale.BuiltinSet()
	}
	h.catalogs.Store(s)
}

// Catalogs returns the current catalog set.
func (h *Handler) Catalogs() *locale.Set {
	return h.catalogs.Load()
}

// HandleOptimize builds a prompt package.
func (h *Handler) HandleOptimize(ctx context.Context, params OptimizeParams) Result {
	if err := ctx.Err(); err != nil {
		return errorResult(err)
	}
	req := params.Request()
	if params.DetectProject {
		dir, err := h.scanner.Resolve(params.ProjectDir)
		if err != nil {
			return errorResult(err)
		}
		pc, err := h.detector.Detect(dir)
		if err != nil {
			return errorResult(err)
		}
		req.ApplyProjectContext(pc)
	}

	pkg, err := optimize.New(h.Catalogs(), h.defaults).Optimize(req)
	if err != nil {
		return errorResult(err)
	}
	slog.Debug("optimized prompt", "taskType", pkg.Meta.TaskType, "source", pkg.Meta.TaskTypeSource)
	return jsonResult(pkg)
}

// HandleScore scores a prompt.
func (h *Handler) HandleScore(ctx context.Context, params ScoreParams) Result {
	if err := ctx.Err(); err != nil {
		return errorResult(err)
	}
	cat, err := h.catalog(params.OutputLanguage)
	if err != nil {
		return errorResult(err)
	}
	report, err := score.ScorePrompt(cat, params.Prompt)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(report)
}

// HandleScan lists a directory tree inside the working directory.
func (h *Handler) HandleScan(ctx context.Context, params ScanParams) Result {
	if err := ctx.Err(); err != nil {
		return errorResult(err)
	}
	report, err := h.scanner.Scan(scan.Options{
		RootDir:    params.RootDir,
		MaxDepth:   params.MaxDepth,
		MaxEntries: params.MaxEntries,
	})
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(report)
}

// HandleDetect reports the frontend stack of a directory inside the
// working directory.
func (h *Handler) HandleDetect(ctx context.Context, params DetectParams) Result {
	if err := ctx.Err(); err != nil {
		return errorResult(err)
	}
	dir, err := h.scanner.Resolve(params.Dir)
	if err != nil {
		return errorResult(err)
	}
	pc, err := h.detector.Detect(dir)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(pc)
}

// HandleVerify returns the reviewer prompt.
func (h *Handler) HandleVerify(ctx context.Context, params VerifyParams) Result {
	if err := ctx.Err(); err != nil {
		return errorResult(err)
	}
	cat, err := h.catalog(params.OutputLanguage)
	if err != nil {
		return errorResult(err)
	}
	return Result{Text: optimize.VerificationPrompt(cat)}
}

// HandleEcho returns its input.
func (h *Handler) HandleEcho(_ context.Context, params EchoParams) Result {
	return Result{Text: params.Text}
}

// Call decodes args and dispatches to the tool called name. Unknown names
// fail with types.ErrUnknownOperation; tool failures come back as IsError
// results.
func (h *Handler) Call(ctx context.Context, name string, args json.RawMessage) (Result, error) {
	tool := ToolName(name)
	if !tool.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", types.ErrUnknownOperation, name)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch tool {
	case ToolOptimize:
		var p OptimizeParams
		if err := decode(args, &p); err != nil {
			return errorResult(err), nil
		}
		return h.HandleOptimize(ctx, p), nil
	case ToolScore:
		var p ScoreParams
		if err := decode(args, &p); err != nil {
			return errorResult(err), nil
		}
		return h.HandleScore(ctx, p), nil
	case ToolScan:
		var p ScanParams
		if err := decode(args, &p); err != nil {
			return errorResult(err), nil
		}
		return h.HandleScan(ctx, p), nil
	case ToolDetect:
		var p DetectParams
		if err := decode(args, &p); err != nil {
			return errorResult(err), nil
		}
		return h.HandleDetect(ctx, p), nil
	case ToolVerify:
		var p VerifyParams
		if err := decode(args, &p); err != nil {
			return errorResult(err), nil
		}
		return h.HandleVerify(ctx, p), nil
	default:
		var p EchoParams
		if err := decode(args, &p); err != nil {
			return errorResult(err), nil
		}
		return h.HandleEcho(ctx, p), nil
	}
}

func decode(args json.RawMessage, v any) error {
	if err := json.Unmarshal(args, v); err != nil {
		return types.NewArgumentError("arguments", "must be a JSON object matching the tool schema: "+err.Error())
	}
	return nil
}

func (h *Handler) catalog(outputLanguage string) (*locale.Catalog, error) {
	lang := strings.TrimSpace(outputLanguage)
	if lang == "" {
		lang = h.defaults.OutputLanguage
	}
	if lang == "" {
		lang = string(locale.DefaultLanguage)
	}
	if !locale.Language(lang).IsValid() {
		return nil, types.NewArgumentError("outputLanguage", fmt.Sprintf("must be one of zh, en (got %q)", lang))
	}
	return h.Catalogs().Catalog(locale.Language(lang))
}
