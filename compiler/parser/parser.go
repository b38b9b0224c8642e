package parser

import (
	"fmt"

	"github.com/modulemap-lang/modulemap/compiler/lexer"
)

// Parser transforms a token stream into a module map AST
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []ParseError
}

// New creates a new Parser from a token stream. The stream must be the full
// output of a lexer scan, terminated by an EOF token.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		errors:  []ParseError{},
	}
}

// Parse parses the token stream. The result is all-or-nothing: on success the
// complete ModuleMapFile is returned with a nil error slice; if any error was
// accumulated the file is nil and the full ordered error list is returned,
// even when some declarations parsed cleanly.
func (p *Parser) Parse() (*ModuleMapFile, []ParseError) {
	file := &ModuleMapFile{Declarations: []ModuleDeclaration{}}

	for !p.isAtEnd() {
		decl, ok := p.parseModuleDeclaration()
		if !ok {
			p.synchronize()
			continue
		}
		file.Declarations = append(file.Declarations, decl)
	}

	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return file, nil
}

// Helper methods for token manipulation

// isAtEnd checks if we're at the end of the token stream
func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Type == lexer.TOKEN_EOF
}

// peek returns the current token without consuming it
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // Return EOF
	}
	return p.tokens[p.current]
}

// peekAt returns the token at the given offset past the current one without
// consuming anything. Offsets past the stream return the EOF token.
func (p *Parser) peekAt(offset int) lexer.Token {
	if p.current+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // Return EOF
	}
	return p.tokens[p.current+offset]
}

// previous returns the previous token
func (p *Parser) previous() lexer.Token {
	if p.current > 0 {
		return p.tokens[p.current-1]
	}
	return p.tokens[0]
}

// advance consumes and returns the current token
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check checks if the current token is of the given type
func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// match checks if the current token matches the given type
// If it matches, consumes the token and returns true
func (p *Parser) match(tokenType lexer.TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	return false
}

// consume consumes a token of the given type or records an error located at
// the token that violated the expectation
func (p *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, bool) {
	if p.check(tokenType) {
		return p.advance(), true
	}

	p.errorAtCurrent(message)
	return lexer.Token{}, false
}

// errorAtCurrent records an unexpected-token error at the current token
func (p *Parser) errorAtCurrent(message string) {
	tok := p.peek()
	p.errors = append(p.errors, ParseError{
		Message:  fmt.Sprintf("Unexpected %s '%s': %s", tok.Type, tok.Lexeme, message),
		Location: TokenToLocation(tok),
	})
}

// errorAt records an error at the given token
func (p *Parser) errorAt(tok lexer.Token, message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Location: TokenToLocation(tok),
	})
}

// synchronize implements panic mode error recovery: skip tokens until one that
// plausibly starts a new top-level module declaration, bounding the cascade to
// one reported error per malformed declaration.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_EXPLICIT, lexer.TOKEN_MODULE, lexer.TOKEN_EXTERN:
			return
		case lexer.TOKEN_FRAMEWORK:
			if p.peekAt(1).Type == lexer.TOKEN_MODULE {
				return
			}
		}
		p.advance()
	}
}
