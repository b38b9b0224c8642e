package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// Lexer tokenizes module map source text
type Lexer struct {
	cursor      *Cursor
	file        string
	tokens      []Token
	errors      []LexError
	startLine   int // Line where current token started
	startColumn int // Column where current token started
}

// New creates a new Lexer for the given source text
func New(source, file string) *Lexer {
	return &Lexer{
		cursor: NewCursor(source),
		file:   file,
		tokens: make([]Token, 0, len(source)/8),
		errors: make([]LexError, 0),
	}
}

// ScanTokens scans all tokens from the source and returns them with any
// errors. The token slice is always terminated by exactly one EOF token with
// an empty lexeme; lexical errors never abort the scan.
func (l *Lexer) ScanTokens() ([]Token, []LexError) {
	for !l.cursor.IsPastEnd() {
		l.startLine = l.cursor.Line()
		l.startColumn = l.cursor.Column()
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type:   TOKEN_EOF,
		Lexeme: "",
		Line:   l.cursor.Line(),
		Column: l.cursor.Column(),
		File:   l.file,
	})

	return l.tokens, l.errors
}

// scanToken scans a single token
func (l *Lexer) scanToken() {
	r := l.cursor.Advance()

	switch r {
	// Single-character tokens
	case '.':
		l.addToken(TOKEN_DOT, ".")
	case ',':
		l.addToken(TOKEN_COMMA, ",")
	case '!':
		l.addToken(TOKEN_BANG, "!")
	case '*':
		l.addToken(TOKEN_STAR, "*")
	case '{':
		l.addToken(TOKEN_LBRACE, "{")
	case '}':
		l.addToken(TOKEN_RBRACE, "}")
	case '[':
		l.addToken(TOKEN_LBRACKET, "[")
	case ']':
		l.addToken(TOKEN_RBRACKET, "]")

	// Comments
	case '/':
		if l.cursor.Match('/') {
			l.skipLineComment()
		} else if l.cursor.Match('*') {
			l.skipBlockComment()
		} else {
			l.addError("Unrecognized character '/'")
		}

	// String literals
	case '"':
		l.scanString()

	// Whitespace; the cursor already tracked any line break
	case ' ', '\t', '\r', '\n':

	default:
		if isDigit(r) {
			l.scanInteger(r)
		} else if isAlpha(r) {
			l.scanIdentifier(r)
		} else {
			l.addError(fmt.Sprintf("Unrecognized character %q", r))
		}
	}
}

// skipLineComment consumes a // comment through and including the newline
func (l *Lexer) skipLineComment() {
	for !l.cursor.IsPastEnd() {
		if l.cursor.Advance() == '\n' {
			return
		}
	}
}

// skipBlockComment consumes a /* comment through the next */. Block comments
// do not nest; the first */ closes the comment.
func (l *Lexer) skipBlockComment() {
	for !l.cursor.IsPastEnd() {
		if l.cursor.Advance() == '*' && l.cursor.Match('/') {
			return
		}
	}
}

// scanString scans a string literal. The lexeme keeps the surrounding quotes
// and any embedded escapes verbatim; a backslash escapes the following
// character, including a newline (line continuation). An unescaped newline or
// end of input before the closing quote is a lexical error and emits no token.
func (l *Lexer) scanString() {
	var b strings.Builder
	b.WriteRune('"')

	for !l.cursor.IsPastEnd() {
		switch l.cursor.Peek() {
		case '"':
			b.WriteRune(l.cursor.Advance())
			l.addToken(TOKEN_STRING_LITERAL, b.String())
			return
		case '\n':
			l.addError("Unterminated string literal: " + b.String())
			return
		case '\\':
			b.WriteRune(l.cursor.Advance())
			if l.cursor.IsPastEnd() {
				l.addError("Unterminated string literal: " + b.String())
				return
			}
			b.WriteRune(l.cursor.Advance())
		default:
			b.WriteRune(l.cursor.Advance())
		}
	}

	l.addError("Unterminated string literal: " + b.String())
}

// scanInteger scans an integer literal. The lexeme is the raw digit string;
// range validation is the parser's job.
func (l *Lexer) scanInteger(first rune) {
	var b strings.Builder
	b.WriteRune(first)
	for isDigit(l.cursor.Peek()) {
		b.WriteRune(l.cursor.Advance())
	}
	l.addToken(TOKEN_INT_LITERAL, b.String())
}

// scanIdentifier scans an identifier or keyword
func (l *Lexer) scanIdentifier(first rune) {
	var b strings.Builder
	b.WriteRune(first)
	for isAlphaNumeric(l.cursor.Peek()) {
		b.WriteRune(l.cursor.Advance())
	}

	lexeme := b.String()
	tokenType, _ := lookupKeyword(lexeme)
	l.addToken(tokenType, lexeme)
}

// isDigit checks if a rune is a digit
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isAlpha checks if a rune is alphabetic or underscore
func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isAlphaNumeric checks if a rune is alphanumeric or underscore
func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

// addToken adds a token located at the start of the current scan
func (l *Lexer) addToken(tokenType TokenType, lexeme string) {
	l.tokens = append(l.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Line:   l.startLine,
		Column: l.startColumn,
		File:   l.file,
	})
}

// addError adds an error located at the start of the current scan
func (l *Lexer) addError(message string) {
	l.errors = append(l.errors, LexError{
		Message: message,
		Line:    l.startLine,
		Column:  l.startColumn,
		File:    l.file,
	})
}
