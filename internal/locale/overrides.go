package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultOverrideDir is the project-relative directory searched for override files.
const DefaultOverrideDir = ".shared/frontend-prompt/data"

// Override file base names. Each may be .json, .yaml or .yml.
const (
	GuardrailsFile = "guardrails"
	QuestionsFile  = "questions"
	GatesFile      = "gates"
)

var overrideExtensions = []string{".json", ".yaml", ".yml"}

// QuestionOverride replaces the text of one clarifying question.
type QuestionOverride struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
}

// GateOverride replaces the text of one workflow gate.
type GateOverride struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	When  string `json:"when" yaml:"when"`
}

// Overrides is the parsed content of an override directory.
type Overrides struct {
	Guardrails []Rule
	Questions  []QuestionOverride
	Gates      []GateOverride
	// Files lists the override files that were read.
	Files []string
}

// Empty reports whether no override entries were found.
func (o *Overrides) Empty() bool {
	return len(o.Guardrails) == 0 && len(o.Questions) == 0 && len(o.Gates) == 0
}

// ReadOverrides parses the override files in dir. A missing directory or
// missing files are not errors. Malformed files are skipped and reported
// in the joined error; whatever parsed is still returned.
func ReadOverrides(fs afero.Fs, dir string) (*Overrides, error) {
	out := &Overrides{}
	if strings.TrimSpace(dir) == "" {
		return out, nil
	}

	var errs []error
	if path, ok := findOverrideFile(fs, dir, GuardrailsFile); ok {
		if err := decodeFile(fs, path, &out.Guardrails); err != nil {
			errs = append(errs, err)
		} else {
			out.Files = append(out.Files, path)
		}
	}
	if path, ok := findOverrideFile(fs, dir, QuestionsFile); ok {
		if err := decodeFile(fs, path, &out.Questions); err != nil {
			errs = append(errs, err)
		} else {
			out.Files = append(out.Files, path)
		}
	}
	if path, ok := findOverrideFile(fs, dir, GatesFile); ok {
		if err := decodeFile(fs, path, &out.Gates); err != nil {
			errs = append(errs, err)
		} else {
			out.Files = append(out.Files, path)
		}
	}
	return out, errors.Join(errs...)
}

func findOverrideFile(fs afero.Fs, dir, base string) (string, bool) {
	for _, ext := range overrideExtensions {
		path := filepath.Join(dir, base+ext)
		info, err := fs.Stat(path)
		if err == nil && !info.IsDir() {
			return path, true
		}
		if err != nil && !os.IsNotExist(err) {
			slog.Debug("override file not accessible", "path", path, "error", err)
		}
	}
	return "", false
}

func decodeFile(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Apply returns a copy of c with the overrides applied.
//
// Guardrail entries whose id names a conditional rule (ts_default,
// framework_practice, styling_req) replace that template; every other
// guardrail entry becomes part of a new baseline that replaces the built-in
// one. Questions and gates are replaced by id; unknown ids are ignored.
func (c *Catalog) Apply(o *Overrides) *Catalog {
	out := c.Clone()
	if o == nil {
		return out
	}

	var baseline []Rule
	for _, r := range o.Guardrails {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		switch r.ID {
		case "ts_default":
			out.Guardrails.TypedDefault = content
		case "framework_practice":
			out.Guardrails.Framework = content
		case "styling_req":
			out.Guardrails.Styling = content
		default:
			baseline = append(baseline, Rule{ID: r.ID, Content: content})
		}
	}
	if len(baseline) > 0 {
		out.Guardrails.Baseline = baseline
	}

	for _, q := range o.Questions {
		if _, ok := out.Questions[q.ID]; ok && strings.TrimSpace(q.Question) != "" {
			out.Questions[q.ID] = strings.TrimSpace(q.Question)
		}
	}

	for _, g := range o.Gates {
		cur, ok := out.Gates[g.ID]
		if !ok {
			continue
		}
		if t := strings.TrimSpace(g.Title); t != "" {
			cur.Title = t
		}
		if w := strings.TrimSpace(g.When); w != "" {
			cur.When = w
		}
		out.Gates[g.ID] = cur
	}
	return out
}

// Overrides exports c as override entries. Applying them to the built-in
// catalog of the same language reproduces c's guardrails, questions and gates.
func (c *Catalog) Overrides() *Overrides {
	o := &Overrides{
		Guardrails: slices.Clone(c.Guardrails.Baseline),
	}
	o.Guardrails = append(o.Guardrails,
		Rule{ID: "ts_default", Content: c.Guardrails.TypedDefault},
		Rule{ID: "framework_practice", Content: c.Guardrails.Framework},
		Rule{ID: "styling_req", Content: c.Guardrails.Styling},
	)

	for _, id := range slices.Sorted(maps.Keys(c.Questions)) {
		o.Questions = append(o.Questions, QuestionOverride{ID: id, Question: c.Questions[id]})
	}
	for _, id := range slices.Sorted(maps.Keys(c.Gates)) {
		g := c.Gates[id]
		o.Gates = append(o.Gates, GateOverride{ID: id, Title: g.Title, When: g.When})
	}
	return o
}

// Load builds a Set from the built-in catalogs and the override files in dir.
// The returned Set is always usable; a non-nil error describes override
// files that were skipped.
func Load(fs afero.Fs, dir string) (*Set, error) {
	o, err := ReadOverrides(fs, dir)
	set := &Set{catalogs: make(map[Language]*Catalog, 2)}
	for _, lang := range Languages() {
		set.catalogs[lang] = MustBuiltin(lang).Apply(o)
	}
	if len(o.Files) > 0 {
		slog.Debug("applied prompt overrides", "files", o.Files)
	}
	return set, err
}
