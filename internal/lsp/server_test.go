package lsp

import (
	"testing"

	"go.lsp.dev/protocol"
)

func TestDiagnosticsForValidDocument(t *testing.T) {
	diagnostics := diagnosticsFor("module MyLib {\n    export *\n}\n", "file:///test.modulemap")

	if len(diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, got %v", diagnostics)
	}
}

func TestDiagnosticsForParseError(t *testing.T) {
	diagnostics := diagnosticsFor("module MyLib { oops }", "file:///test.modulemap")

	if len(diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %v", diagnostics)
	}

	d := diagnostics[0]
	// Parser reports 1:16, LSP positions are 0-based
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 15 {
		t.Errorf("Expected diagnostic at 0:15, got %d:%d", d.Range.Start.Line, d.Range.Start.Character)
	}
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Expected error severity, got %v", d.Severity)
	}
	if d.Source != "modulemap" {
		t.Errorf("Expected source 'modulemap', got %q", d.Source)
	}
	if d.Message != "Unexpected IDENTIFIER 'oops': Expected a module member declaration" {
		t.Errorf("Unexpected message: %q", d.Message)
	}
}

func TestDiagnosticsIncludeLexicalErrors(t *testing.T) {
	diagnostics := diagnosticsFor("\"unterminated\nmodule A {}", "file:///test.modulemap")

	if len(diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %v", diagnostics)
	}
	if diagnostics[0].Range.Start.Line != 0 || diagnostics[0].Range.Start.Character != 0 {
		t.Errorf("Expected diagnostic at 0:0, got %+v", diagnostics[0].Range.Start)
	}
}

func TestFullDocumentRange(t *testing.T) {
	r := fullDocumentRange("module A {\n}\n")

	if r.Start.Line != 0 || r.Start.Character != 0 {
		t.Errorf("Expected start at 0:0, got %+v", r.Start)
	}
	// Trailing newline leaves an empty final line
	if r.End.Line != 2 || r.End.Character != 0 {
		t.Errorf("Expected end at 2:0, got %+v", r.End)
	}
}

func TestDocumentCache(t *testing.T) {
	s := NewServer(nil)

	s.setDocument("file:///a.modulemap", "module A {}", 1)
	doc, ok := s.getDocument("file:///a.modulemap")
	if !ok || doc.content != "module A {}" || doc.version != 1 {
		t.Fatalf("Expected cached document, got %+v ok=%v", doc, ok)
	}

	s.setDocument("file:///a.modulemap", "module B {}", 2)
	doc, _ = s.getDocument("file:///a.modulemap")
	if doc.content != "module B {}" || doc.version != 2 {
		t.Errorf("Expected updated document, got %+v", doc)
	}

	s.closeDocument("file:///a.modulemap")
	if _, ok := s.getDocument("file:///a.modulemap"); ok {
		t.Error("Expected document removed after close")
	}
}
