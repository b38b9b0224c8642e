package lexer

import "fmt"

// TokenType represents the type of token in the module map grammar
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota

	// Punctuation
	TOKEN_DOT      // .
	TOKEN_COMMA    // ,
	TOKEN_BANG     // !
	TOKEN_STAR     // *
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_STRING_LITERAL
	TOKEN_INT_LITERAL

	// Keywords
	TOKEN_CONFIG_MACROS
	TOKEN_CONFLICT
	TOKEN_EXCLUDE
	TOKEN_EXPLICIT
	TOKEN_EXPORT
	TOKEN_EXPORT_AS
	TOKEN_EXTERN
	TOKEN_FRAMEWORK
	TOKEN_HEADER
	TOKEN_LINK
	TOKEN_MODULE
	TOKEN_PRIVATE
	TOKEN_REQUIRES
	TOKEN_TEXTUAL
	TOKEN_UMBRELLA
	TOKEN_USE
)

// Token represents a single lexical token
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
	File   string // Source file path
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_BANG:
		return "BANG"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_STRING_LITERAL:
		return "STRING_LITERAL"
	case TOKEN_INT_LITERAL:
		return "INT_LITERAL"
	case TOKEN_CONFIG_MACROS:
		return "CONFIG_MACROS"
	case TOKEN_CONFLICT:
		return "CONFLICT"
	case TOKEN_EXCLUDE:
		return "EXCLUDE"
	case TOKEN_EXPLICIT:
		return "EXPLICIT"
	case TOKEN_EXPORT:
		return "EXPORT"
	case TOKEN_EXPORT_AS:
		return "EXPORT_AS"
	case TOKEN_EXTERN:
		return "EXTERN"
	case TOKEN_FRAMEWORK:
		return "FRAMEWORK"
	case TOKEN_HEADER:
		return "HEADER"
	case TOKEN_LINK:
		return "LINK"
	case TOKEN_MODULE:
		return "MODULE"
	case TOKEN_PRIVATE:
		return "PRIVATE"
	case TOKEN_REQUIRES:
		return "REQUIRES"
	case TOKEN_TEXTUAL:
		return "TEXTUAL"
	case TOKEN_UMBRELLA:
		return "UMBRELLA"
	case TOKEN_USE:
		return "USE"
	default:
		return "UNKNOWN"
	}
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%s) [%d:%d]", t.Type, t.Lexeme, t.Line, t.Column)
}

// LexError represents a lexical analysis error
type LexError struct {
	Message string
	Line    int
	Column  int
	File    string
}

// Error implements the error interface
func (e LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}
