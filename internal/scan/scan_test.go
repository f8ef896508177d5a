package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFs records every path opened or stat'ed and can fail reads
// under chosen directories.
type recordingFs struct {
	afero.Fs

	mu      sync.Mutex
	touched []string
	failing map[string]bool
}

func newRecordingFs(base afero.Fs) *recordingFs {
	return &recordingFs{Fs: base, failing: map[string]bool{}}
}

func (r *recordingFs) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched = append(r.touched, name)
}

func (r *recordingFs) Open(name string) (afero.File, error) {
	r.record(name)
	if r.failing[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return r.Fs.Open(name)
}

func (r *recordingFs) Stat(name string) (os.FileInfo, error) {
	r.record(name)
	return r.Fs.Stat(name)
}

func (r *recordingFs) Touched() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.touched...)
}

func writeFiles(t *testing.T, fs afero.Fs, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0644), f)
	}
}

func intPtr(v int) *int { return &v }

func TestScan_TreeLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/work/package.json",
		"/work/README.md",
		"/work/src/main.ts",
		"/work/src/app/App.vue",
		"/work/docs/CLAUDE.md",
	)

	report, err := New(fs, "/work").Scan(Options{})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"work/",
		"├─ docs/",
		"│  └─ CLAUDE.md",
		"├─ src/",
		"│  ├─ app/",
		"│  │  └─ App.vue",
		"│  └─ main.ts",
		"├─ package.json",
		"└─ README.md",
	}, "\n")
	assert.Equal(t, expected, report.Tree)
	assert.Equal(t, "/work", report.RootDir)
	assert.Equal(t, DefaultMaxDepth, report.MaxDepth)
	assert.Equal(t, DefaultMaxEntries, report.MaxEntries)
	assert.False(t, report.Truncated)

	assert.Equal(t, []string{"docs/CLAUDE.md", "src/app/App.vue", "src/main.ts", "package.json", "README.md"}, report.FilesIndex)
	assert.True(t, report.HasClaudeMd)
	assert.Equal(t, []string{"docs/CLAUDE.md"}, report.ClaudeMdPaths)
	assert.Equal(t, []string{"package.json", "README.md"}, report.SuggestedFiles)
}

func TestScan_IgnoredDirsAreNeverRead(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, "/work/package.json", "/work/.git/HEAD", "/work/dist/bundle.js")
	for i := 0; i < 10000; i++ {
		writeFiles(t, mem, fmt.Sprintf("/work/node_modules/pkg%d/index.js", i))
	}
	fs := newRecordingFs(mem)

	report, err := New(fs, "/work").Scan(Options{})
	require.NoError(t, err)

	for _, p := range fs.Touched() {
		assert.NotContains(t, p, "node_modules")
		assert.NotContains(t, p, ".git")
		assert.NotContains(t, p, "dist")
	}
	assert.Equal(t, []string{"package.json"}, report.FilesIndex)
	assert.NotContains(t, report.Tree, "node_modules")
	assert.False(t, report.Truncated)
}

func TestScan_IgnoredNameAsFileIsListed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/work/build")

	report, err := New(fs, "/work").Scan(Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, report.FilesIndex)
}

func TestScan_PathEscape(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, "/etc/passwd", "/work/package.json")
	fs := newRecordingFs(mem)
	s := New(fs, "/work")

	for _, root := range []string{"../../etc", "..", "/etc", "sub/../../etc"} {
		t.Run(root, func(t *testing.T) {
			report, err := s.Scan(Options{RootDir: root})
			require.Error(t, err)
			assert.Nil(t, report)
			assert.True(t, errors.Is(err, types.ErrPathEscape))

			var pe *types.PathEscapeError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, root, pe.Requested)
		})
	}
	assert.Empty(t, fs.Touched(), "escape must be rejected before any filesystem access")
}

func TestScan_ResolveInside(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/work")

	tests := map[string]string{
		"":             "/work",
		".":            "/work",
		"src":          "/work/src",
		"src/../lib":   "/work/lib",
		"/work/pkg":    "/work/pkg",
		"..work/local": "/work/..work/local",
	}
	for in, want := range tests {
		got, err := s.Resolve(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestScan_Truncation(t *testing.T) {
	fs := afero.NewMemMapFs()
	for d := 0; d < 10; d++ {
		for f := 0; f < 49; f++ {
			writeFiles(t, fs, fmt.Sprintf("/work/dir%02d/file%02d.ts", d, f))
		}
	}

	report, err := New(fs, "/work").Scan(Options{MaxEntries: intPtr(50)})
	require.NoError(t, err)

	assert.True(t, report.Truncated)
	assert.Equal(t, 50, report.MaxEntries)
	lines := strings.Split(report.Tree, "\n")
	assert.LessOrEqual(t, len(lines), 50)
	assert.Equal(t, "work/", lines[0])
}

func TestScan_ExactFitIsNotTruncated(t *testing.T) {
	fs := afero.NewMemMapFs()
	for f := 0; f < 49; f++ {
		writeFiles(t, fs, fmt.Sprintf("/work/file%02d.ts", f))
	}

	report, err := New(fs, "/work").Scan(Options{MaxEntries: intPtr(50)})
	require.NoError(t, err)
	assert.False(t, report.Truncated)
	assert.Len(t, strings.Split(report.Tree, "\n"), 50)
}

func TestScan_DepthLimit(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/work/a/b/c/deep.ts", "/work/top.ts")

	report, err := New(fs, "/work").Scan(Options{MaxDepth: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "work/\n├─ a/\n└─ top.ts", report.Tree)
	assert.Equal(t, []string{"top.ts"}, report.FilesIndex)

	report, err = New(fs, "/work").Scan(Options{MaxDepth: intPtr(1)})
	require.NoError(t, err)
	assert.Contains(t, report.Tree, "b/")
	assert.NotContains(t, report.Tree, "c/")
}

func TestScan_ClampsLimits(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/work/x.ts")
	s := New(fs, "/work")

	report, err := s.Scan(Options{MaxDepth: intPtr(-3), MaxEntries: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, MinDepth, report.MaxDepth)
	assert.Equal(t, MinEntries, report.MaxEntries)

	report, err = s.Scan(Options{MaxDepth: intPtr(99), MaxEntries: intPtr(1_000_000)})
	require.NoError(t, err)
	assert.Equal(t, MaxDepth, report.MaxDepth)
	assert.Equal(t, MaxEntries, report.MaxEntries)
}

func TestScan_WithDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/work/a/b/deep.ts")
	base := New(fs, "/work")
	s := base.WithDefaults(1, 60)

	report, err := s.Scan(Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.MaxDepth)
	assert.Equal(t, 60, report.MaxEntries)
	assert.NotContains(t, report.Tree, "deep.ts")

	report, err = s.Scan(Options{MaxDepth: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, report.MaxDepth, "explicit limits win")
	assert.Contains(t, report.Tree, "deep.ts")

	report, err = base.Scan(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDepth, report.MaxDepth, "the original scanner is unchanged")

	report, err = base.WithDefaults(-1, 0).Scan(Options{})
	require.NoError(t, err)
	assert.Equal(t, MinDepth, report.MaxDepth)
	assert.Equal(t, MinEntries, report.MaxEntries)
}

func TestScan_UnreadableDirectoryIsSkipped(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, "/work/locked/secret.ts", "/work/open/ok.ts")
	fs := newRecordingFs(mem)
	fs.failing["/work/locked"] = true

	report, err := New(fs, "/work").Scan(Options{})
	require.NoError(t, err)
	assert.Contains(t, report.Tree, "locked/")
	assert.Equal(t, []string{"open/ok.ts"}, report.FilesIndex)
}

func TestScan_MissingRootYieldsRootLineOnly(t *testing.T) {
	report, err := New(afero.NewMemMapFs(), "/work").Scan(Options{RootDir: "missing"})
	require.NoError(t, err)
	assert.Equal(t, "missing/", report.Tree)
	assert.Empty(t, report.FilesIndex)
	assert.NotNil(t, report.ClaudeMdPaths)
	assert.NotNil(t, report.SuggestedFiles)
	assert.False(t, report.HasClaudeMd)
}

func TestScan_ClaudeMdCaseInsensitive(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/work/claude.md", "/work/pkg/Claude.MD")

	report, err := New(fs, "/work").Scan(Options{})
	require.NoError(t, err)
	assert.True(t, report.HasClaudeMd)
	assert.ElementsMatch(t, []string{"claude.md", "pkg/Claude.MD"}, report.ClaudeMdPaths)
	assert.Equal(t, []string{"CLAUDE.md"}, report.SuggestedFiles)
}
