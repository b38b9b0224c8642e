package parser

import (
	"fmt"
	"strconv"

	"github.com/modulemap-lang/modulemap/compiler/lexer"
)

// parseModuleMember parses one member of a local module body. Header and
// submodule declarations overlap with other productions on their first token,
// so they are recognized first via bounded lookahead; everything else
// dispatches on the leading keyword.
func (p *Parser) parseModuleMember() (ModuleMember, bool) {
	switch {
	case p.checkHeaderDeclaration():
		return p.parseHeaderDeclaration()
	case p.checkSubmoduleDeclaration():
		return p.parseSubmoduleDeclaration()
	}

	switch p.peek().Type {
	case lexer.TOKEN_REQUIRES:
		return p.parseRequiresDeclaration()
	case lexer.TOKEN_UMBRELLA:
		return p.parseUmbrellaDirectoryDeclaration()
	case lexer.TOKEN_EXPORT:
		return p.parseExportDeclaration()
	case lexer.TOKEN_EXPORT_AS:
		return p.parseExportAsDeclaration()
	case lexer.TOKEN_USE:
		return p.parseUseDeclaration()
	case lexer.TOKEN_LINK:
		return p.parseLinkDeclaration()
	case lexer.TOKEN_CONFIG_MACROS:
		return p.parseConfigMacrosDeclaration()
	case lexer.TOKEN_CONFLICT:
		return p.parseConflictDeclaration()
	}

	p.errorAtCurrent("Expected a module member declaration")
	return nil, false
}

// checkHeaderDeclaration reports whether the upcoming tokens begin a header
// declaration. `umbrella` alone is ambiguous with an umbrella directory; one
// token of lookahead for the `header` keyword disambiguates.
func (p *Parser) checkHeaderDeclaration() bool {
	switch p.peek().Type {
	case lexer.TOKEN_PRIVATE, lexer.TOKEN_TEXTUAL, lexer.TOKEN_HEADER, lexer.TOKEN_EXCLUDE:
		return true
	case lexer.TOKEN_UMBRELLA:
		return p.peekAt(1).Type == lexer.TOKEN_HEADER
	}
	return false
}

// parseHeaderDeclaration parses
// `(umbrella|exclude|[private] [textual]) header "<path>" [{ (key value)* }]`
func (p *Parser) parseHeaderDeclaration() (ModuleMember, bool) {
	kind := HeaderKindStandard
	private := false

	switch {
	case p.match(lexer.TOKEN_UMBRELLA):
		kind = HeaderKindUmbrella
	case p.match(lexer.TOKEN_EXCLUDE):
		kind = HeaderKindExclude
	default:
		private = p.match(lexer.TOKEN_PRIVATE)
		if p.match(lexer.TOKEN_TEXTUAL) {
			kind = HeaderKindTextual
		}
	}

	if _, ok := p.consume(lexer.TOKEN_HEADER, "Expected 'header' keyword"); !ok {
		return nil, false
	}
	path, ok := p.parseStringLiteral()
	if !ok {
		return nil, false
	}

	attributes := []HeaderAttribute{}
	if p.match(lexer.TOKEN_LBRACE) {
		for p.check(lexer.TOKEN_IDENTIFIER) {
			key := p.advance().Lexeme
			value, ok := p.parseIntegerLiteral()
			if !ok {
				return nil, false
			}
			attributes = append(attributes, HeaderAttribute{Key: key, Value: value})
		}
		if _, ok := p.consume(lexer.TOKEN_RBRACE, "Expected '}' to close header attributes"); !ok {
			return nil, false
		}
	}

	return &HeaderDeclaration{
		Kind:       kind,
		Private:    private,
		FilePath:   path,
		Attributes: attributes,
	}, true
}

// parseRequiresDeclaration parses `requires [!]feature (, [!]feature)*`
func (p *Parser) parseRequiresDeclaration() (ModuleMember, bool) {
	p.advance() // requires

	features := []Feature{}
	for {
		incompatible := p.match(lexer.TOKEN_BANG)
		tok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "Expected a feature identifier")
		if !ok {
			return nil, false
		}
		features = append(features, Feature{Incompatible: incompatible, Identifier: tok.Lexeme})

		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}

	return &RequiresDeclaration{Features: features}, true
}

// parseUmbrellaDirectoryDeclaration parses `umbrella "<path>"`. Only reached
// when the header lookahead did not match, i.e. the next token is not
// `header`.
func (p *Parser) parseUmbrellaDirectoryDeclaration() (ModuleMember, bool) {
	p.advance() // umbrella

	path, ok := p.parseStringLiteral()
	if !ok {
		return nil, false
	}
	return &UmbrellaDirectoryDeclaration{FilePath: path}, true
}

// parseExportDeclaration parses `export <wildcard-module-id>`
func (p *Parser) parseExportDeclaration() (ModuleMember, bool) {
	p.advance() // export

	id, ok := p.parseWildcardModuleID()
	if !ok {
		return nil, false
	}
	return &ExportDeclaration{ID: id}, true
}

// parseWildcardModuleID parses a dotted identifier path optionally terminated
// with '*'. A bare '*' yields an empty component list with the trailing star
// set.
func (p *Parser) parseWildcardModuleID() (WildcardModuleID, bool) {
	components := []string{}
	for {
		if p.check(lexer.TOKEN_IDENTIFIER) && p.peekAt(1).Type == lexer.TOKEN_DOT {
			components = append(components, p.advance().Lexeme)
			p.advance() // '.'
			continue
		}
		if p.check(lexer.TOKEN_IDENTIFIER) {
			components = append(components, p.advance().Lexeme)
			break
		}
		if p.check(lexer.TOKEN_STAR) {
			break
		}
		p.errorAtCurrent("Expected a wildcard module identifier component")
		return WildcardModuleID{}, false
	}

	trailingStar := p.match(lexer.TOKEN_STAR)
	return WildcardModuleID{Components: components, TrailingStar: trailingStar}, true
}

// parseExportAsDeclaration parses `export_as <identifier>`
func (p *Parser) parseExportAsDeclaration() (ModuleMember, bool) {
	p.advance() // export_as

	tok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "Expected an identifier after 'export_as'")
	if !ok {
		return nil, false
	}
	return &ExportAsDeclaration{Identifier: tok.Lexeme}, true
}

// parseUseDeclaration parses `use <module-id>`
func (p *Parser) parseUseDeclaration() (ModuleMember, bool) {
	p.advance() // use

	id, ok := p.parseModuleID()
	if !ok {
		return nil, false
	}
	return &UseDeclaration{ID: id}, true
}

// parseLinkDeclaration parses `link [framework] "<name>"`
func (p *Parser) parseLinkDeclaration() (ModuleMember, bool) {
	p.advance() // link

	framework := p.match(lexer.TOKEN_FRAMEWORK)
	library, ok := p.parseStringLiteral()
	if !ok {
		return nil, false
	}
	return &LinkDeclaration{Framework: framework, Library: library}, true
}

// parseConfigMacrosDeclaration parses
// `config_macros [attr]* [identifier (, identifier)*]`. The macro list is
// empty when the next token is not an identifier.
func (p *Parser) parseConfigMacrosDeclaration() (ModuleMember, bool) {
	p.advance() // config_macros

	attributes, ok := p.parseAttributes()
	if !ok {
		return nil, false
	}

	macroNames := []string{}
	if p.check(lexer.TOKEN_IDENTIFIER) {
		macroNames = append(macroNames, p.advance().Lexeme)
		for p.match(lexer.TOKEN_COMMA) {
			tok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "Expected a configuration macro name")
			if !ok {
				return nil, false
			}
			macroNames = append(macroNames, tok.Lexeme)
		}
	}

	return &ConfigMacrosDeclaration{Attributes: attributes, MacroNames: macroNames}, true
}

// parseConflictDeclaration parses `conflict <module-id>, "<message>"`
func (p *Parser) parseConflictDeclaration() (ModuleMember, bool) {
	p.advance() // conflict

	id, ok := p.parseModuleID()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.TOKEN_COMMA, "Expected ',' after conflict module identifier"); !ok {
		return nil, false
	}
	message, ok := p.parseStringLiteral()
	if !ok {
		return nil, false
	}

	return &ConflictDeclaration{ID: id, DiagnosticMessage: message}, true
}

// Helper methods for parsing primitives

// parseStringLiteral parses a string literal token and strips the surrounding
// quotes the lexer keeps in the lexeme
func (p *Parser) parseStringLiteral() (string, bool) {
	tok, ok := p.consume(lexer.TOKEN_STRING_LITERAL, "Expected a string literal")
	if !ok {
		return "", false
	}
	return tok.Lexeme[1 : len(tok.Lexeme)-1], true
}

// parseIntegerLiteral parses an integer literal token and validates that its
// lexeme fits in int64
func (p *Parser) parseIntegerLiteral() (int64, bool) {
	tok, ok := p.consume(lexer.TOKEN_INT_LITERAL, "Expected an integer literal")
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		p.errorAt(tok, fmt.Sprintf("Cannot make an integer value from lexeme '%s'", tok.Lexeme))
		return 0, false
	}
	return value, true
}
