package lexer

// keywords maps keyword strings to their token types for O(1) lookup
var keywords = map[string]TokenType{
	"config_macros": TOKEN_CONFIG_MACROS,
	"conflict":      TOKEN_CONFLICT,
	"exclude":       TOKEN_EXCLUDE,
	"explicit":      TOKEN_EXPLICIT,
	"export":        TOKEN_EXPORT,
	"export_as":     TOKEN_EXPORT_AS,
	"extern":        TOKEN_EXTERN,
	"framework":     TOKEN_FRAMEWORK,
	"header":        TOKEN_HEADER,
	"link":          TOKEN_LINK,
	"module":        TOKEN_MODULE,
	"private":       TOKEN_PRIVATE,
	"requires":      TOKEN_REQUIRES,
	"textual":       TOKEN_TEXTUAL,
	"umbrella":      TOKEN_UMBRELLA,
	"use":           TOKEN_USE,
}

// lookupKeyword checks if an identifier is a keyword
// Returns the token type and true if it's a keyword, TOKEN_IDENTIFIER and false otherwise
func lookupKeyword(identifier string) (TokenType, bool) {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType, true
	}
	return TOKEN_IDENTIFIER, false
}
