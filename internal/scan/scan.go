// Package scan produces a read-only, bounded summary of a project's file tree.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/josephgoksu/promptwing/internal/utils"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Walk limits. Requested values are clamped into [Min, Max].
const (
	DefaultMaxDepth = 4
	MinDepth        = 0
	MaxDepth        = 10

	DefaultMaxEntries = 1200
	MinEntries        = 50
	MaxEntries        = 5000
)

// IgnoredDirs are never listed nor descended into.
var IgnoredDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	".next":        true,
	".nuxt":        true,
	".turbo":       true,
	"coverage":     true,
}

// suggestedCandidates are the root-level files worth reading first.
var suggestedCandidates = []string{
	"package.json",
	"pnpm-lock.yaml",
	"yarn.lock",
	"package-lock.json",
	"tsconfig.json",
	"vite.config.ts",
	"vite.config.js",
	"next.config.js",
	"nuxt.config.ts",
	"eslint.config.js",
	".eslintrc",
	".prettierrc",
	"README.md",
	"CLAUDE.md",
}

const claudeMd = "claude.md"

// Options configure one scan. Nil limits use the scanner's defaults.
type Options struct {
	RootDir    string
	MaxDepth   *int
	MaxEntries *int
}

// Report is the result of a scan.
type Report struct {
	RootDir        string   `json:"rootDir"`
	MaxDepth       int      `json:"maxDepth"`
	MaxEntries     int      `json:"maxEntries"`
	Truncated      bool     `json:"truncated"`
	Tree           string   `json:"tree"`
	FilesIndex     []string `json:"filesIndex"`
	HasClaudeMd    bool     `json:"hasClaudeMd"`
	ClaudeMdPaths  []string `json:"claudeMdPaths"`
	SuggestedFiles []string `json:"suggestedFiles"`
}

// Scanner walks directories under a fixed working directory.
type Scanner struct {
	fs         afero.Fs
	cwd        string
	maxDepth   int
	maxEntries int
}

// New creates a Scanner confined to cwd on fs.
func New(fs afero.Fs, cwd string) *Scanner {
	return &Scanner{
		fs:         fs,
		cwd:        filepath.Clean(cwd),
		maxDepth:   DefaultMaxDepth,
		maxEntries: DefaultMaxEntries,
	}
}

// WithDefaults returns a copy of s whose unset limits fall back to maxDepth
// and maxEntries instead of the package defaults. Both are clamped.
func (s *Scanner) WithDefaults(maxDepth, maxEntries int) *Scanner {
	c := *s
	c.maxDepth = utils.Clamp(maxDepth, MinDepth, MaxDepth)
	c.maxEntries = utils.Clamp(maxEntries, MinEntries, MaxEntries)
	return &c
}

// Resolve maps rootDir to an absolute path inside the working directory.
// It performs no I/O.
func (s *Scanner) Resolve(rootDir string) (string, error) {
	if strings.TrimSpace(rootDir) == "" {
		rootDir = "."
	}
	target := rootDir
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.cwd, target)
	}
	target = filepath.Clean(target)

	rel, err := filepath.Rel(s.cwd, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &types.PathEscapeError{Requested: rootDir, Base: s.cwd}
	}
	return target, nil
}

type walker struct {
	fs         afero.Fs
	root       string
	maxDepth   int
	maxEntries int
	collator   *collate.Collator

	lines     []string
	files     []string
	entries   int
	truncated bool
}

// Scan walks the tree depth-first, directories before files, each group in
// collation order. Unreadable directories are skipped.
func (s *Scanner) Scan(opts Options) (*Report, error) {
	root, err := s.Resolve(opts.RootDir)
	if err != nil {
		return nil, err
	}

	w := &walker{
		fs:         s.fs,
		root:       root,
		maxDepth:   limit(opts.MaxDepth, s.maxDepth, MinDepth, MaxDepth),
		maxEntries: limit(opts.MaxEntries, s.maxEntries, MinEntries, MaxEntries),
		collator:   collate.New(language.Und),
		files:      []string{},
	}

	w.lines = append(w.lines, rootLabel(root)+"/")
	w.entries = 1
	w.walk(root, 0, "")

	report := &Report{
		RootDir:        root,
		MaxDepth:       w.maxDepth,
		MaxEntries:     w.maxEntries,
		Truncated:      w.truncated,
		Tree:           strings.Join(w.lines, "\n"),
		FilesIndex:     w.files,
		ClaudeMdPaths:  []string{},
		SuggestedFiles: []string{},
	}
	for _, f := range w.files {
		if strings.EqualFold(filepath.Base(f), claudeMd) {
			report.ClaudeMdPaths = append(report.ClaudeMdPaths, f)
		}
	}
	report.HasClaudeMd = len(report.ClaudeMdPaths) > 0
	for _, candidate := range suggestedCandidates {
		if slices.ContainsFunc(w.files, func(f string) bool { return strings.EqualFold(f, candidate) }) {
			report.SuggestedFiles = append(report.SuggestedFiles, candidate)
		}
	}

	slog.Debug("scanned project", "root", root, "entries", w.entries, "truncated", w.truncated)
	return report, nil
}

func (w *walker) walk(dir string, depth int, prefix string) {
	if w.truncated {
		return
	}
	infos, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		slog.Debug("skipping unreadable directory", "dir", dir, "error", err)
		return
	}

	visible := infos[:0]
	for _, info := range infos {
		if info.IsDir() && IgnoredDirs[info.Name()] {
			continue
		}
		visible = append(visible, info)
	}
	slices.SortStableFunc(visible, func(a, b os.FileInfo) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return w.collator.CompareString(a.Name(), b.Name())
	})

	for i, info := range visible {
		if w.entries >= w.maxEntries {
			w.truncated = true
			return
		}
		isLast := i == len(visible)-1
		connector := "├─"
		if isLast {
			connector = "└─"
		}
		name := info.Name()
		path := filepath.Join(dir, name)

		if info.IsDir() {
			w.lines = append(w.lines, prefix+connector+" "+name+"/")
		} else {
			w.lines = append(w.lines, prefix+connector+" "+name)
			w.files = append(w.files, w.relative(path))
		}
		w.entries++

		if info.IsDir() && depth < w.maxDepth {
			childPrefix := prefix + "│  "
			if isLast {
				childPrefix = prefix + "   "
			}
			w.walk(path, depth+1, childPrefix)
			if w.truncated {
				return
			}
		}
	}
}

func (w *walker) relative(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func limit(v *int, def, lo, hi int) int {
	if v == nil {
		return def
	}
	return utils.Clamp(*v, lo, hi)
}

func rootLabel(root string) string {
	base := filepath.Base(root)
	if base == string(filepath.Separator) || base == "." {
		return "."
	}
	return base
}
