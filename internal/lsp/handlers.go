package lsp

import (
	"context"
	"encoding/json"
	"strings"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/modulemap-lang/modulemap"
	"github.com/modulemap-lang/modulemap/compiler/parser"
	"github.com/modulemap-lang/modulemap/internal/format"
)

// handleTextDocumentDidOpen handles document open notifications
func (s *Server) handleTextDocumentDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didOpen params")
	}

	uri := string(params.TextDocument.URI)
	content := params.TextDocument.Text
	version := int(params.TextDocument.Version)

	s.logger.Printf("Document opened: %s (version %d)", uri, version)

	s.setDocument(uri, content, version)
	s.publishDiagnostics(ctx, uri, content)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidChange handles document change notifications
func (s *Server) handleTextDocumentDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didChange params")
	}

	uri := string(params.TextDocument.URI)
	version := int(params.TextDocument.Version)

	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}

	// Full document sync, so the last change carries the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text

	s.logger.Printf("Document changed: %s (version %d)", uri, version)

	s.setDocument(uri, content, version)
	s.publishDiagnostics(ctx, uri, content)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidClose handles document close notifications
func (s *Server) handleTextDocumentDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didClose params")
	}

	uri := string(params.TextDocument.URI)
	s.logger.Printf("Document closed: %s", uri)

	s.closeDocument(uri)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidSave handles document save notifications
func (s *Server) handleTextDocumentDidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didSave params")
	}

	uri := string(params.TextDocument.URI)
	s.logger.Printf("Document saved: %s", uri)

	// Re-publish diagnostics on save
	if doc, ok := s.getDocument(uri); ok {
		s.publishDiagnostics(ctx, uri, doc.content)
	}

	return reply(ctx, nil, nil)
}

// handleTextDocumentFormatting handles whole-document formatting requests
func (s *Server) handleTextDocumentFormatting(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentFormattingParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse formatting params")
	}

	uri := string(params.TextDocument.URI)
	doc, ok := s.getDocument(uri)
	if !ok {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}

	formatted, err := format.New(s.formatConfig).Format(doc.content, uri)
	if err != nil {
		// Malformed documents are left alone; diagnostics already mark them
		s.logger.Printf("Formatting skipped for %s: %v", uri, err)
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	if formatted == doc.content {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}

	edits := []protocol.TextEdit{
		{
			Range:   fullDocumentRange(doc.content),
			NewText: formatted,
		},
	}
	return reply(ctx, edits, nil)
}

// publishDiagnostics parses content and publishes one diagnostic per error
func (s *Server) publishDiagnostics(ctx context.Context, uri, content string) {
	params := protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnosticsFor(content, uri),
	}

	if err := s.client.PublishDiagnostics(ctx, &params); err != nil {
		s.logger.Printf("Error publishing diagnostics: %v", err)
	}
}

// diagnosticsFor converts parse errors for content into LSP diagnostics.
// Parser locations are 1-based, LSP positions 0-based.
func diagnosticsFor(content, uri string) []protocol.Diagnostic {
	_, err := modulemap.Parse(content, uri)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	list, ok := err.(parser.ParseErrorList)
	if !ok {
		return []protocol.Diagnostic{}
	}

	diagnostics := make([]protocol.Diagnostic, 0, len(list))
	for _, parseErr := range list {
		line := uint32(parseErr.Location.Line - 1)
		character := uint32(parseErr.Location.Column - 1)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: character},
				End:   protocol.Position{Line: line, Character: character + 1},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   "modulemap",
			Message:  parseErr.Message,
		})
	}
	return diagnostics
}

// fullDocumentRange returns the range covering all of content
func fullDocumentRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	lastLine := len(lines) - 1
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      uint32(lastLine),
			Character: uint32(len(lines[lastLine])),
		},
	}
}
