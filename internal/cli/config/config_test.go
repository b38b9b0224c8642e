package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	// Check defaults
	if cfg.Format.IndentSize != 4 {
		t.Errorf("expected default indent size 4, got %d", cfg.Format.IndentSize)
	}

	if cfg.Format.UseTabs {
		t.Error("expected default use_tabs false")
	}

	if cfg.Watch.DebounceMs != 300 {
		t.Errorf("expected default debounce 300ms, got %d", cfg.Watch.DebounceMs)
	}

	if len(cfg.Watch.Extensions) != 1 || cfg.Watch.Extensions[0] != ".modulemap" {
		t.Errorf("expected default extensions [.modulemap], got %v", cfg.Watch.Extensions)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	// Create temporary directory with config file
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	// Write config file
	configContent := `
format:
  indent_size: 2
  use_tabs: true
check:
  json: true
watch:
  debounce_ms: 500
  extensions:
    - .modulemap
    - .map
`
	os.WriteFile("modulemap.yml", []byte(configContent), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.Format.IndentSize != 2 {
		t.Errorf("expected indent size 2, got %d", cfg.Format.IndentSize)
	}

	if !cfg.Format.UseTabs {
		t.Error("expected use_tabs true")
	}

	if !cfg.Check.JSON {
		t.Error("expected check.json true")
	}

	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("expected debounce 500ms, got %d", cfg.Watch.DebounceMs)
	}

	if len(cfg.Watch.Extensions) != 2 {
		t.Errorf("expected 2 extensions, got %v", cfg.Watch.Extensions)
	}
}

func TestLoadRejectsBadExtension(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configContent := `
watch:
  extensions:
    - modulemap
`
	os.WriteFile("modulemap.yml", []byte(configContent), 0644)

	_, err := Load()
	if err == nil {
		t.Error("expected error for extension without leading dot")
	}
}

func TestLoadRejectsNegativeDebounce(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("modulemap.yml", []byte("watch:\n  debounce_ms: -1\n"), 0644)

	_, err := Load()
	if err == nil {
		t.Error("expected error for negative debounce")
	}
}

func TestGetProjectRoot(t *testing.T) {
	// Create nested directory structure
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	// Create project root with modulemap.yml
	os.WriteFile(filepath.Join(tmpDir, "modulemap.yml"), []byte(""), 0644)

	// Create nested subdirectory
	subDir := filepath.Join(tmpDir, "Sources", "MyLib", "include")
	os.MkdirAll(subDir, 0755)
	os.Chdir(subDir)

	root, err := GetProjectRoot()
	if err != nil {
		t.Fatalf("expected to find project root, got error: %v", err)
	}

	// On macOS, /tmp is symlinked to /private/tmp, so resolve both paths
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedTmpDir, _ := filepath.EvalSymlinks(tmpDir)

	if resolvedRoot != resolvedTmpDir {
		t.Errorf("expected project root to be %s, got %s", resolvedTmpDir, resolvedRoot)
	}
}

func TestGetProjectRootNotInProject(t *testing.T) {
	// Create temporary directory with no project markers
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	_, err := GetProjectRoot()
	if err == nil {
		t.Error("expected error when not in a project, got nil")
	}
}
