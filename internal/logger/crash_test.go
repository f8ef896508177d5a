package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestCrashHandler_SetContext(t *testing.T) {
	// Reset global context
	globalContext = &CrashContext{}

	SetBasePath("/tmp/test-promptwing")
	SetVersion("1.0.0-test")
	SetCommand("optimize")
	SetLastInput("  add a login page  ")

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if globalContext.basePath != "/tmp/test-promptwing" {
		t.Errorf("Expected basePath '/tmp/test-promptwing', got '%s'", globalContext.basePath)
	}
	if globalContext.version != "1.0.0-test" {
		t.Errorf("Expected version '1.0.0-test', got '%s'", globalContext.version)
	}
	if globalContext.command != "optimize" {
		t.Errorf("Expected command 'optimize', got '%s'", globalContext.command)
	}
	if globalContext.lastInput != "add a login page" {
		t.Errorf("Expected trimmed lastInput, got '%s'", globalContext.lastInput)
	}
}

func TestCrashHandler_SetLastInput_Truncation(t *testing.T) {
	globalContext = &CrashContext{}

	SetLastInput(strings.Repeat("修复按钮", 300))

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if n := utf8.RuneCountInString(globalContext.lastInput); n != 500 {
		t.Errorf("Expected 500 runes, got %d", n)
	}
	if !utf8.ValidString(globalContext.lastInput) {
		t.Error("Expected truncation on a rune boundary")
	}
	if !strings.HasSuffix(globalContext.lastInput, "...") {
		t.Error("Expected truncated input to end with '...'")
	}
}

func TestCrashHandler_CreateCrashLog(t *testing.T) {
	globalContext = &CrashContext{
		version:   "1.0.0",
		command:   "score",
		lastInput: "user input",
	}

	log := createCrashLog("test panic")

	if log.ID == "" {
		t.Error("Expected a crash id")
	}
	if log.PanicValue != "test panic" {
		t.Errorf("Expected PanicValue 'test panic', got '%s'", log.PanicValue)
	}
	if log.Version != "1.0.0" || log.Command != "score" || log.LastInput != "user input" {
		t.Errorf("Context not copied into crash log: %+v", log)
	}
	if log.StackTrace == "" {
		t.Error("Expected non-empty StackTrace")
	}
	if log.GoVersion == "" {
		t.Error("Expected non-empty GoVersion")
	}

	if other := createCrashLog("again"); other.ID == log.ID {
		t.Error("Expected distinct crash ids")
	}
}

func TestCrashHandler_WriteAndReadCrashLog(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), ".promptwing")
	globalContext = &CrashContext{basePath: basePath}

	log := CrashLog{
		ID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		Timestamp:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Version:    "1.0.0",
		Command:    "scan",
		PanicValue: "test panic",
		StackTrace: "goroutine 1 [running]:\nmain.main()",
		GoVersion:  "go1.24",
		OS:         "linux",
		Arch:       "amd64",
	}

	path, err := writeCrashLog(log)
	if err != nil {
		t.Fatalf("writeCrashLog failed: %v", err)
	}
	if filepath.Base(path) != "crash_20250101_120000_0f8fad5b.json" {
		t.Errorf("Unexpected crash log name %s", filepath.Base(path))
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected 1 crash log, got %d", len(logs))
	}

	got, err := ReadCrashLog(logs[0])
	if err != nil {
		t.Fatalf("ReadCrashLog failed: %v", err)
	}
	if got.ID != log.ID || got.PanicValue != "test panic" || !got.Timestamp.Equal(log.Timestamp) {
		t.Errorf("Round-tripped crash log differs: %+v", got)
	}
}

func TestCrashHandler_KeepsNewestLogs(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), ".promptwing")
	crashDir := filepath.Join(basePath, CrashLogDir)
	if err := os.MkdirAll(crashDir, 0755); err != nil {
		t.Fatalf("Failed to create crash dir: %v", err)
	}
	globalContext = &CrashContext{basePath: basePath}

	for i := range MaxCrashLogs + 5 {
		name := fmt.Sprintf("crash_20250101_1200%02d_aaaaaaaa.json", i)
		if err := os.WriteFile(filepath.Join(crashDir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	// Unrelated files are left alone.
	if err := os.WriteFile(filepath.Join(crashDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := writeCrashLog(CrashLog{ID: "bbbbbbbb-0000", Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("writeCrashLog failed: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs failed: %v", err)
	}
	if len(logs) != MaxCrashLogs {
		t.Fatalf("Expected %d crash logs after cleanup, got %d", MaxCrashLogs, len(logs))
	}
	if !strings.HasSuffix(logs[len(logs)-1], "crash_20260101_000000_bbbbbbbb.json") {
		t.Errorf("Expected newest log last, got %s", logs[len(logs)-1])
	}
	if strings.HasSuffix(logs[0], "crash_20250101_120000_aaaaaaaa.json") {
		t.Error("Expected oldest logs to be removed")
	}
	if _, err := os.Stat(filepath.Join(crashDir, "notes.txt")); err != nil {
		t.Errorf("Unrelated file removed: %v", err)
	}
}

func TestCrashHandler_DefaultBasePath(t *testing.T) {
	globalContext = &CrashContext{}

	dir := getCrashLogDir()
	expected := filepath.Join(".promptwing", "crash_logs")
	if dir != expected {
		t.Errorf("Expected default dir '%s', got '%s'", expected, dir)
	}
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("hidden")
	New(&buf, false).Warn("shown", "key", "value")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected debug records to be dropped without verbose")
	}
	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("Expected warn record with attributes, got %q", buf.String())
	}

	buf.Reset()
	New(&buf, true).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("Expected debug records with verbose")
	}
}
