// Package modulemap parses Clang module map files into an abstract syntax
// tree and renders well-formed module map text back from it. The pipeline is
// a lexical scanner, a recursive-descent parser with per-declaration error
// recovery, and a tree-to-text generator with configurable indentation.
package modulemap

import (
	"os"

	"github.com/modulemap-lang/modulemap/compiler/generator"
	"github.com/modulemap-lang/modulemap/compiler/lexer"
	"github.com/modulemap-lang/modulemap/compiler/parser"
)

// Parse parses module map source text. The file argument is used only for
// error locations and may be empty. The result is all-or-nothing: either a
// complete AST, or a parser.ParseErrorList carrying every located lexical and
// syntax error found in one pass.
func Parse(source, file string) (*parser.ModuleMapFile, error) {
	l := lexer.New(source, file)
	tokens, lexErrors := l.ScanTokens()

	p := parser.New(tokens)
	mapFile, parseErrors := p.Parse()

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
		return nil, all
	}
	return mapFile, nil
}

// ParseFile reads and parses the module map file at path
func ParseFile(path string) (*parser.ModuleMapFile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(source), path)
}

// Generate renders a module map AST to canonical text. A nil config uses the
// default 4-space indentation.
func Generate(file *parser.ModuleMapFile, config *generator.Config) string {
	return generator.New(config).Generate(file)
}

// WriteFile renders a module map AST and writes it to path
func WriteFile(path string, file *parser.ModuleMapFile, config *generator.Config) error {
	return os.WriteFile(path, []byte(Generate(file, config)), 0644)
}
