// Package logger provides crash logging, panic recovery and slog setup for promptwing.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/josephgoksu/promptwing/internal/utils"
)

const (
	// CrashLogDir is the directory for crash logs relative to .promptwing
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10

	defaultBasePath = ".promptwing"
	crashLogPrefix  = "crash_"
	crashLogExt     = ".json"
)

// CrashContext stores context for crash logging.
type CrashContext struct {
	mu        sync.RWMutex
	lastInput string
	command   string
	version   string
	basePath  string
}

// globalContext is the singleton crash context.
var globalContext = &CrashContext{}

// SetBasePath sets the base path for crash logs (typically the .promptwing directory).
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetLastInput records the prompt being processed.
func SetLastInput(input string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastInput = utils.Truncate(strings.TrimSpace(input), 500)
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	LastInput  string    `json:"last_input,omitempty"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic is a deferred function that recovers from panics and logs them.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		log := createCrashLog(r)
		path, err := writeCrashLog(log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
			fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, log.StackTrace)
		}

		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "╭──────────────────────────────────────────────────────╮\n")
		fmt.Fprintf(os.Stderr, "│ 🔴 promptwing encountered an unexpected error        │\n")
		fmt.Fprintf(os.Stderr, "╰──────────────────────────────────────────────────────╯\n")
		fmt.Fprintf(os.Stderr, "\n")
		if err == nil {
			fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n")
			fmt.Fprintf(os.Stderr, "  %s\n", path)
			fmt.Fprintf(os.Stderr, "\n")
		}
		fmt.Fprintf(os.Stderr, "Please report this issue (crash id %s) at:\n", log.ID)
		fmt.Fprintf(os.Stderr, "  https://github.com/josephgoksu/promptwing/issues\n")
		fmt.Fprintf(os.Stderr, "\n")

		os.Exit(1)
	}
}

// createCrashLog creates a CrashLog from a panic value.
func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  globalContext.lastInput,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog writes a crash log to disk and returns its path.
func writeCrashLog(log CrashLog) (string, error) {
	dir := getCrashLogDir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	// Make room for the new entry.
	if err := cleanOldCrashLogs(dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	content, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}

	path := getCrashLogPath(log)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

// getCrashLogDir returns the directory for crash logs.
func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = defaultBasePath
	}
	return filepath.Join(basePath, CrashLogDir)
}

// getCrashLogPath returns the path for a crash log file. Names sort by time.
func getCrashLogPath(log CrashLog) string {
	short, _, _ := strings.Cut(log.ID, "-")
	filename := fmt.Sprintf("%s%s_%s%s", crashLogPrefix, log.Timestamp.Format("20060102_150405"), short, crashLogExt)
	return filepath.Join(getCrashLogDir(), filename)
}

func isCrashLog(e os.DirEntry) bool {
	return !e.IsDir() && strings.HasPrefix(e.Name(), crashLogPrefix) && strings.HasSuffix(e.Name(), crashLogExt)
}

// cleanOldCrashLogs removes the oldest crash logs until at most keep remain.
func cleanOldCrashLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var names []string
	for _, e := range entries {
		if isCrashLog(e) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}

// ListCrashLogs returns the crash log paths, oldest first.
func ListCrashLogs() ([]string, error) {
	dir := getCrashLogDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if isCrashLog(e) {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	return logs, nil
}

// ReadCrashLog reads and decodes a crash log file.
func ReadCrashLog(path string) (*CrashLog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var log CrashLog
	if err := json.Unmarshal(content, &log); err != nil {
		return nil, fmt.Errorf("parse crash log %s: %w", path, err)
	}
	return &log, nil
}
