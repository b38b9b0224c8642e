package modulemap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modulemap-lang/modulemap/compiler/generator"
	"github.com/modulemap-lang/modulemap/compiler/parser"
)

func TestParse_Success(t *testing.T) {
	file, err := Parse(`module MyLib { header "MyLib.h" }`, "test.modulemap")

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(file.Declarations) != 1 {
		t.Fatalf("Expected 1 declaration, got %d", len(file.Declarations))
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	file, err := Parse("module MyLib { oops }", "test.modulemap")

	if file != nil {
		t.Error("Expected nil file on error")
	}
	var list parser.ParseErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Expected a ParseErrorList, got %T", err)
	}
	if list.Count() != 1 {
		t.Errorf("Expected 1 error, got %d", list.Count())
	}
	if list[0].Location.File != "test.modulemap" {
		t.Errorf("Expected file name in location, got %q", list[0].Location.File)
	}
}

func TestParse_MergesLexicalAndSyntaxErrors(t *testing.T) {
	// An unterminated string on line 1 and a malformed declaration on line 2,
	// collected in one pass with lexical errors first
	source := "\"broken\nmodule MyLib { use }"
	file, err := Parse(source, "test.modulemap")

	if file != nil {
		t.Error("Expected nil file on error")
	}
	var list parser.ParseErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Expected a ParseErrorList, got %T", err)
	}
	if list.Count() != 2 {
		t.Fatalf("Expected 2 errors, got: %v", list)
	}
	if list[0].Location.Line != 1 || list[1].Location.Line != 2 {
		t.Errorf("Expected errors on lines 1 and 2, got %v", list)
	}
}

func TestParseFile_And_WriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module.modulemap")
	source := "module MyLib {\n    umbrella header \"MyLib.h\"\n    export *\n}\n"

	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	file, err := ParseFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	out := filepath.Join(dir, "generated.modulemap")
	if err := WriteFile(out, file, nil); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	written, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != source {
		t.Errorf("Expected canonical input written back unchanged, got %q", string(written))
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.modulemap"))

	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	var list parser.ParseErrorList
	if errors.As(err, &list) {
		t.Error("Expected a plain I/O error, not a ParseErrorList")
	}
}

func TestGenerate_ConfigPassthrough(t *testing.T) {
	file, err := Parse("module A { export * }", "")
	if err != nil {
		t.Fatal(err)
	}

	output := Generate(file, &generator.Config{UseTabs: true})
	if output != "module A {\n\texport *\n}\n" {
		t.Errorf("Expected tab-indented output, got %q", output)
	}
}
