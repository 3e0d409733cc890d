package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG_DIR", dir)
	t.Setenv("TODO_STORAGE_PATH", "")
	Load()
	return dir
}

func TestFilePath_UsesOverrideDir(t *testing.T) {
	dir := setupConfigDir(t)
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestSetGet_Persists(t *testing.T) {
	dir := setupConfigDir(t)

	if err := Set(KeyStoragePath, "/tmp/tasks.json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "storage_path: /tmp/tasks.json") {
		t.Errorf("config file missing key:\n%s", data)
	}

	// A fresh load reads the value back from disk.
	Load()
	if got := Get(KeyStoragePath); got != "/tmp/tasks.json" {
		t.Errorf("Get after reload = %q", got)
	}
}

func TestGet_EnvOverride(t *testing.T) {
	setupConfigDir(t)
	t.Setenv("TODO_LOG_LEVEL", "debug")
	Load()
	if got := Get(KeyLogLevel); got != "debug" {
		t.Errorf("Get(log_level) = %q, want debug", got)
	}
}

func TestStoragePath_Precedence(t *testing.T) {
	setupConfigDir(t)

	if got := StoragePath("", "todos.json"); got != "todos.json" {
		t.Errorf("fallback: got %q", got)
	}

	t.Setenv("TODO_STORAGE_PATH", "/env/tasks.json")
	Load()
	if got := StoragePath("", "todos.json"); got != "/env/tasks.json" {
		t.Errorf("env: got %q", got)
	}
	if got := StoragePath("/flag/tasks.json", "todos.json"); got != "/flag/tasks.json" {
		t.Errorf("override: got %q", got)
	}
}
