package parser

import "github.com/modulemap-lang/modulemap/compiler/lexer"

// parseModuleDeclaration parses one top-level or nested module declaration.
// An `extern` token dispatches to the extern form; anything else is parsed as
// a local declaration.
func (p *Parser) parseModuleDeclaration() (ModuleDeclaration, bool) {
	if p.check(lexer.TOKEN_EXTERN) {
		return p.parseExternModuleDeclaration()
	}
	return p.parseLocalModuleDeclaration()
}

// parseExternModuleDeclaration parses `extern module <id> "<path>"`
func (p *Parser) parseExternModuleDeclaration() (ModuleDeclaration, bool) {
	p.advance() // extern

	if _, ok := p.consume(lexer.TOKEN_MODULE, "Expected 'module' after 'extern'"); !ok {
		return nil, false
	}
	id, ok := p.parseModuleID()
	if !ok {
		return nil, false
	}
	path, ok := p.parseStringLiteral()
	if !ok {
		return nil, false
	}

	return &ExternModuleDeclaration{ID: id, FilePath: path}, true
}

// parseLocalModuleDeclaration parses
// `[explicit] [framework] module <id> [attr]* { <member>* }`
func (p *Parser) parseLocalModuleDeclaration() (ModuleDeclaration, bool) {
	explicit := p.match(lexer.TOKEN_EXPLICIT)
	framework := p.match(lexer.TOKEN_FRAMEWORK)

	if _, ok := p.consume(lexer.TOKEN_MODULE, "Expected 'module' keyword"); !ok {
		return nil, false
	}
	id, ok := p.parseModuleID()
	if !ok {
		return nil, false
	}
	attributes, ok := p.parseAttributes()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.TOKEN_LBRACE, "Expected '{' to begin module members"); !ok {
		return nil, false
	}

	members := []ModuleMember{}
	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		member, ok := p.parseModuleMember()
		if !ok {
			return nil, false
		}
		members = append(members, member)
	}

	if _, ok := p.consume(lexer.TOKEN_RBRACE, "Expected '}' to close module declaration"); !ok {
		return nil, false
	}

	return &LocalModuleDeclaration{
		Explicit:   explicit,
		Framework:  framework,
		ID:         id,
		Attributes: attributes,
		Members:    members,
	}, true
}

// checkSubmoduleDeclaration reports whether the upcoming tokens begin a nested
// module declaration: `module`, `extern module`, `framework module`,
// `explicit module`, or `explicit framework module`. At most three tokens of
// read-only lookahead are needed.
func (p *Parser) checkSubmoduleDeclaration() bool {
	switch p.peek().Type {
	case lexer.TOKEN_MODULE:
		return true
	case lexer.TOKEN_EXTERN, lexer.TOKEN_FRAMEWORK:
		return p.peekAt(1).Type == lexer.TOKEN_MODULE
	case lexer.TOKEN_EXPLICIT:
		if p.peekAt(1).Type == lexer.TOKEN_MODULE {
			return true
		}
		return p.peekAt(1).Type == lexer.TOKEN_FRAMEWORK && p.peekAt(2).Type == lexer.TOKEN_MODULE
	}
	return false
}

// parseSubmoduleDeclaration parses a nested module member. A '*' immediately
// after the 'module' keyword marks an inferred submodule; otherwise this
// recurses into ordinary module-declaration parsing. Only called after
// checkSubmoduleDeclaration has matched, so the 'module' keyword sits within
// the next three tokens.
func (p *Parser) parseSubmoduleDeclaration() (ModuleMember, bool) {
	moduleOffset := 0
	for p.peekAt(moduleOffset).Type != lexer.TOKEN_MODULE {
		moduleOffset++
	}

	if p.peekAt(moduleOffset+1).Type == lexer.TOKEN_STAR {
		inferred, ok := p.parseInferredSubmoduleDeclaration()
		if !ok {
			return nil, false
		}
		return &SubmoduleDeclaration{Inferred: inferred}, true
	}

	decl, ok := p.parseModuleDeclaration()
	if !ok {
		return nil, false
	}
	return &SubmoduleDeclaration{Module: decl}, true
}

// parseInferredSubmoduleDeclaration parses
// `[explicit] [framework] module * [attr]* { (export *)* }`
func (p *Parser) parseInferredSubmoduleDeclaration() (*InferredSubmoduleDeclaration, bool) {
	explicit := p.match(lexer.TOKEN_EXPLICIT)
	framework := p.match(lexer.TOKEN_FRAMEWORK)

	if _, ok := p.consume(lexer.TOKEN_MODULE, "Expected 'module' keyword"); !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.TOKEN_STAR, "Expected '*' after 'module'"); !ok {
		return nil, false
	}
	attributes, ok := p.parseAttributes()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.TOKEN_LBRACE, "Expected '{' to begin inferred submodule members"); !ok {
		return nil, false
	}

	members := []InferredSubmoduleMember{}
	for p.match(lexer.TOKEN_EXPORT) {
		if _, ok := p.consume(lexer.TOKEN_STAR, "Expected '*' after 'export' in an inferred submodule"); !ok {
			return nil, false
		}
		members = append(members, InferredSubmoduleMember{})
	}

	if _, ok := p.consume(lexer.TOKEN_RBRACE, "Expected '}' to close inferred submodule"); !ok {
		return nil, false
	}

	return &InferredSubmoduleDeclaration{
		Explicit:   explicit,
		Framework:  framework,
		Attributes: attributes,
		Members:    members,
	}, true
}

// parseModuleID parses a dotted module identifier
func (p *Parser) parseModuleID() (ModuleID, bool) {
	tok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "Expected a module identifier")
	if !ok {
		return ModuleID{}, false
	}

	components := []string{tok.Lexeme}
	for p.match(lexer.TOKEN_DOT) {
		tok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "Expected a module identifier component after '.'")
		if !ok {
			return ModuleID{}, false
		}
		components = append(components, tok.Lexeme)
	}

	return ModuleID{Components: components}, true
}

// parseAttributes parses zero or more `[identifier]` attributes
func (p *Parser) parseAttributes() ([]string, bool) {
	attributes := []string{}
	for p.match(lexer.TOKEN_LBRACKET) {
		tok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "Expected an attribute identifier")
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.TOKEN_RBRACKET, "Expected ']' after attribute"); !ok {
			return nil, false
		}
		attributes = append(attributes, tok.Lexeme)
	}
	return attributes, true
}
