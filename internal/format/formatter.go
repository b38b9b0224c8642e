// Package format rewrites module map files into the canonical layout the
// generator produces: one declaration per line, a single blank line between
// top-level modules, and configurable indentation.
package format

import (
	"os"

	"github.com/modulemap-lang/modulemap/compiler/generator"
	"github.com/modulemap-lang/modulemap/compiler/lexer"
	"github.com/modulemap-lang/modulemap/compiler/parser"
)

// Formatter formats module map source text
type Formatter struct {
	config *Config
}

// New creates a new Formatter with the given configuration
func New(config *Config) *Formatter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Formatter{config: config}
}

// Format formats module map source and returns the canonical result. Source
// that does not parse is returned unformatted along with the error list; a
// formatter never edits text it cannot fully understand.
func (f *Formatter) Format(source, file string) (string, error) {
	l := lexer.New(source, file)
	tokens, lexErrors := l.ScanTokens()

	mapFile, parseErrors := parser.New(tokens).Parse()

	all := parser.ParseErrorList{}
	for _, lexErr := range lexErrors {
		all = append(all, parser.ParseError{
			Message: lexErr.Message,
			Location: parser.SourceLocation{
				File:   lexErr.File,
				Line:   lexErr.Line,
				Column: lexErr.Column,
			},
		})
	}
	all = append(all, parseErrors...)
	if len(all) > 0 {
		return source, all
	}

	g := generator.New(&generator.Config{
		UseTabs:    f.config.UseTabs,
		IndentSize: f.config.IndentSize,
	})
	return g.Generate(mapFile), nil
}

// FormatFile formats the module map file at path
func FormatFile(path string, config *Config) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	formatter := New(config)
	return formatter.Format(string(content), path)
}

// IsFormatted reports whether the file at path is already in canonical form
func IsFormatted(path string, config *Config) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	formatted, err := New(config).Format(string(content), path)
	if err != nil {
		return false, err
	}
	return formatted == string(content), nil
}
