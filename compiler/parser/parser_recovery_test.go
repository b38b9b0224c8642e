package parser

import (
	"strings"
	"testing"
)

// Helper that requires a failed parse and returns the errors
func mustFail(t *testing.T, source string) []ParseError {
	t.Helper()
	file, errors := parseSource(t, source)
	if len(errors) == 0 {
		t.Fatal("Expected parse errors, got none")
	}
	if file != nil {
		t.Error("Expected nil file when errors are present")
	}
	return errors
}

func TestParser_UnexpectedMemberToken(t *testing.T) {
	errors := mustFail(t, "module MyLib { oops }")

	if len(errors) != 1 {
		t.Fatalf("Expected exactly 1 error, got: %v", errors)
	}
	expected := "Unexpected IDENTIFIER 'oops': Expected a module member declaration"
	if errors[0].Message != expected {
		t.Errorf("Expected %q, got %q", expected, errors[0].Message)
	}
	if errors[0].Location.Line != 1 || errors[0].Location.Column != 16 {
		t.Errorf("Expected error at 1:16, got %d:%d", errors[0].Location.Line, errors[0].Location.Column)
	}
	if errors[0].Location.File != "test.modulemap" {
		t.Errorf("Expected error to carry the file name, got %q", errors[0].Location.File)
	}
}

func TestParser_IntegerOutOfRange(t *testing.T) {
	errors := mustFail(t, `module M { header "A.h" { size 19223372036854775807 } }`)

	if len(errors) != 1 {
		t.Fatalf("Expected exactly 1 error, got: %v", errors)
	}
	expected := "Cannot make an integer value from lexeme '19223372036854775807'"
	if errors[0].Message != expected {
		t.Errorf("Expected %q, got %q", expected, errors[0].Message)
	}
	if errors[0].Location.Column != 32 {
		t.Errorf("Expected error located at the literal, got column %d", errors[0].Location.Column)
	}
}

func TestParser_RecoveryBoundsCascade(t *testing.T) {
	// One error per malformed declaration; the clean declaration in between
	// parses without noise but the overall result is still nil
	source := `
module Bad1 { link }
module Good { header "A.h" }
module Bad2 { use }
`
	errors := mustFail(t, source)

	if len(errors) != 2 {
		t.Fatalf("Expected exactly 2 errors, got: %v", errors)
	}
	if errors[0].Location.Line != 2 {
		t.Errorf("Expected first error on line 2, got %d", errors[0].Location.Line)
	}
	if errors[1].Location.Line != 4 {
		t.Errorf("Expected second error on line 4, got %d", errors[1].Location.Line)
	}
}

func TestParser_RecoveryAtFrameworkModule(t *testing.T) {
	// `framework` only restarts parsing when followed by `module`
	source := `
module Bad { requires }
framework module Next {}
`
	errors := mustFail(t, source)

	if len(errors) != 1 {
		t.Fatalf("Expected exactly 1 error, got: %v", errors)
	}
	if !strings.Contains(errors[0].Message, "Expected a feature identifier") {
		t.Errorf("Expected feature identifier error, got %q", errors[0].Message)
	}
}

func TestParser_UnclosedModuleBody(t *testing.T) {
	errors := mustFail(t, "module M {")

	if len(errors) != 1 {
		t.Fatalf("Expected exactly 1 error, got: %v", errors)
	}
	expected := "Unexpected EOF '': Expected '}' to close module declaration"
	if errors[0].Message != expected {
		t.Errorf("Expected %q, got %q", expected, errors[0].Message)
	}
}

func TestParser_MissingModuleKeyword(t *testing.T) {
	errors := mustFail(t, "explicit MyLib {}")

	if len(errors) != 1 {
		t.Fatalf("Expected exactly 1 error, got: %v", errors)
	}
	if !strings.Contains(errors[0].Message, "Expected 'module' keyword") {
		t.Errorf("Expected module keyword error, got %q", errors[0].Message)
	}
}

func TestParser_ExternMissingModule(t *testing.T) {
	errors := mustFail(t, `extern MyLib "a.modulemap"`)

	if !strings.Contains(errors[0].Message, "Expected 'module' after 'extern'") {
		t.Errorf("Expected extern module error, got %q", errors[0].Message)
	}
}

func TestParser_BadAttribute(t *testing.T) {
	errors := mustFail(t, "module M [42] {}")

	if len(errors) != 1 {
		t.Fatalf("Expected exactly 1 error, got: %v", errors)
	}
	if !strings.Contains(errors[0].Message, "Expected an attribute identifier") {
		t.Errorf("Expected attribute identifier error, got %q", errors[0].Message)
	}
}

func TestParser_BadWildcardExport(t *testing.T) {
	errors := mustFail(t, "module M { export 42 }")

	if !strings.Contains(errors[0].Message, "Expected a wildcard module identifier component") {
		t.Errorf("Expected wildcard component error, got %q", errors[0].Message)
	}
}

func TestParser_InferredSubmoduleRejectsOtherMembers(t *testing.T) {
	errors := mustFail(t, `module M { module * { header "A.h" } }`)

	if !strings.Contains(errors[0].Message, "Expected '}' to close inferred submodule") {
		t.Errorf("Expected inferred submodule error, got %q", errors[0].Message)
	}
}

func TestParser_ConflictMissingComma(t *testing.T) {
	errors := mustFail(t, `module M { conflict Other "message" }`)

	if !strings.Contains(errors[0].Message, "Expected ',' after conflict module identifier") {
		t.Errorf("Expected conflict comma error, got %q", errors[0].Message)
	}
}

func TestParser_ErrorOrderFollowsSource(t *testing.T) {
	source := `
module A { use }
module B { link }
module C { export }
`
	errors := mustFail(t, source)

	if len(errors) != 3 {
		t.Fatalf("Expected exactly 3 errors, got: %v", errors)
	}
	for i := 1; i < len(errors); i++ {
		if errors[i].Location.Line <= errors[i-1].Location.Line {
			t.Errorf("Expected errors ordered by line, got %v", errors)
		}
	}
}

func TestParseErrorList_Formatting(t *testing.T) {
	list := ParseErrorList{
		{Message: "first", Location: SourceLocation{File: "a.modulemap", Line: 1, Column: 2}},
		{Message: "second", Location: SourceLocation{File: "a.modulemap", Line: 3, Column: 4}},
	}

	if !list.HasErrors() || list.Count() != 2 {
		t.Error("Expected two errors")
	}
	if got := list.Error(); got != "a.modulemap:1:2: first (and 1 more errors)" {
		t.Errorf("Unexpected Error(): %q", got)
	}
	formatted := list.Format()
	if !strings.Contains(formatted, "Found 2 parsing error(s):") {
		t.Errorf("Unexpected Format() header: %q", formatted)
	}
	if !strings.Contains(formatted, "1. a.modulemap:1:2: first") {
		t.Errorf("Expected numbered entries: %q", formatted)
	}

	payload := list.ToJSON()
	if payload["status"] != "error" {
		t.Errorf("Expected error status, got %v", payload["status"])
	}
	entries := payload["errors"].([]map[string]interface{})
	if len(entries) != 2 || entries[0]["line"] != 1 || entries[1]["message"] != "second" {
		t.Errorf("Unexpected JSON entries: %v", entries)
	}
}
