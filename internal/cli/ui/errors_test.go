package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatError(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		opts     ErrorOptions
		contains []string
	}{
		{
			name: "basic error",
			opts: ErrorOptions{
				Level:   ErrorLevelError,
				Context: "SYNTAX CHECK FAILED",
				Problem: "module.modulemap",
			},
			contains: []string{
				"❌",
				"SYNTAX CHECK FAILED",
				"module.modulemap",
			},
		},
		{
			name: "error with suggestions",
			opts: ErrorOptions{
				Level:       ErrorLevelError,
				Context:     "CONFIGURATION ERROR",
				Problem:     "Unknown key 'indnet_size'.",
				Suggestions: []string{"indent_size"},
			},
			contains: []string{
				"Did you mean: indent_size?",
			},
		},
		{
			name: "error with help commands",
			opts: ErrorOptions{
				Level:   ErrorLevelError,
				Context: "NOT FORMATTED",
				Problem: "module.modulemap",
				HelpCommands: []string{
					"Rewrite in place: modulemap fmt --write module.modulemap",
					"Get help: modulemap fmt --help",
				},
			},
			contains: []string{
				"→ Rewrite in place: modulemap fmt --write module.modulemap",
				"→ Get help: modulemap fmt --help",
			},
		},
		{
			name: "warning message",
			opts: ErrorOptions{
				Level:   ErrorLevelWarning,
				Problem: "No module map files found",
			},
			contains: []string{
				"⚠️",
				"No module map files found",
			},
		},
		{
			name: "info message",
			opts: ErrorOptions{
				Level:   ErrorLevelInfo,
				Problem: "Watching 3 files",
			},
			contains: []string{
				"ℹ️",
				"Watching 3 files",
			},
		},
		{
			name: "error with consequence",
			opts: ErrorOptions{
				Level:       ErrorLevelError,
				Context:     "SYNTAX CHECK FAILED",
				Problem:     "module.modulemap",
				Consequence: "Found 2 parsing error(s).",
			},
			contains: []string{
				"module.modulemap",
				"Found 2 parsing error(s).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatError(tt.opts)

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("FormatError() output missing expected string:\nExpected to contain: %q\nGot: %q", expected, result)
				}
			}
		})
	}
}

func TestSyntaxCheckError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	result := SyntaxCheckError("module.modulemap", 3, true)

	expected := []string{
		"SYNTAX CHECK FAILED",
		"module.modulemap",
		"Found 3 parsing error(s).",
		"Show errors as JSON: modulemap check --json module.modulemap",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("SyntaxCheckError() missing expected string: %q", exp)
		}
	}
}

func TestFormatCheckError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	result := FormatCheckError("module.modulemap", true)

	expected := []string{
		"NOT FORMATTED",
		"module.modulemap",
		"Rewrite in place: modulemap fmt --write module.modulemap",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("FormatCheckError() missing expected string: %q", exp)
		}
	}
}

func TestWriteError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	opts := ErrorOptions{
		Level:   ErrorLevelError,
		Context: "TEST ERROR",
		Problem: "This is a test",
	}

	WriteError(&buf, opts)

	output := buf.String()
	if !strings.Contains(output, "TEST ERROR") {
		t.Errorf("WriteError() did not write to buffer correctly")
	}
}

func TestFormatSuccess(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	result := FormatSuccess("All files valid", true)

	if !strings.Contains(result, "✓") {
		t.Errorf("FormatSuccess() missing checkmark")
	}
	if !strings.Contains(result, "All files valid") {
		t.Errorf("FormatSuccess() missing message")
	}
}

func TestWriteSuccess(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	WriteSuccess(&buf, "Test success", true)

	output := buf.String()
	if !strings.Contains(output, "✓") {
		t.Errorf("WriteSuccess() missing checkmark")
	}
	if !strings.Contains(output, "Test success") {
		t.Errorf("WriteSuccess() missing message")
	}
}

func TestWarning(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	result := Warning("File is empty", []string{"Remove the file"}, true)

	expected := []string{
		"⚠️",
		"File is empty",
		"Did you mean: Remove the file?",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("Warning() missing expected string: %q", exp)
		}
	}
}

func TestInfo(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	result := Info("Watching for changes", true)

	expected := []string{
		"ℹ️",
		"Watching for changes",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("Info() missing expected string: %q", exp)
		}
	}
}

func TestConfigError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	result := ConfigError("Invalid YAML syntax", []string{"Check indentation"}, true)

	expected := []string{
		"CONFIGURATION ERROR",
		"Invalid YAML syntax",
		"Did you mean: Check indentation?",
		"View config: cat modulemap.yml",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("ConfigError() missing expected string: %q", exp)
		}
	}
}
