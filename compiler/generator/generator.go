package generator

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/modulemap-lang/modulemap/compiler/parser"
)

// Config controls the indentation of generated module map text
type Config struct {
	UseTabs    bool
	IndentSize int
}

// DefaultConfig returns the default generation configuration
func DefaultConfig() *Config {
	return &Config{
		UseTabs:    false,
		IndentSize: 4,
	}
}

// Generator renders a module map AST back to canonical text. Generation never
// fails; the AST's structural invariants are its only precondition.
type Generator struct {
	config *Config
	buf    bytes.Buffer
	indent int
}

// New creates a new Generator with the given configuration
func New(config *Config) *Generator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Generator{config: config}
}

// Generate renders the module map file. Top-level declarations are separated
// by a single blank line and the output ends with a newline.
func (g *Generator) Generate(file *parser.ModuleMapFile) string {
	g.buf.Reset()
	g.indent = 0

	for i, decl := range file.Declarations {
		if i > 0 {
			g.buf.WriteString("\n")
		}
		g.generateModuleDeclaration(decl)
	}

	return g.buf.String()
}

func (g *Generator) generateModuleDeclaration(decl parser.ModuleDeclaration) {
	switch d := decl.(type) {
	case *parser.LocalModuleDeclaration:
		g.generateLocalModule(d)
	case *parser.ExternModuleDeclaration:
		g.writeLine("extern module " + d.ID.String() + " " + quote(d.FilePath))
	}
}

func (g *Generator) generateLocalModule(d *parser.LocalModuleDeclaration) {
	var b strings.Builder
	if d.Explicit {
		b.WriteString("explicit ")
	}
	if d.Framework {
		b.WriteString("framework ")
	}
	b.WriteString("module ")
	b.WriteString(d.ID.String())
	writeAttributes(&b, d.Attributes)
	b.WriteString(" {")
	g.writeLine(b.String())

	g.indent++
	for _, member := range d.Members {
		g.generateModuleMember(member)
	}
	g.indent--

	g.writeLine("}")
}

func (g *Generator) generateModuleMember(member parser.ModuleMember) {
	switch m := member.(type) {
	case *parser.RequiresDeclaration:
		g.generateRequires(m)
	case *parser.HeaderDeclaration:
		g.generateHeader(m)
	case *parser.UmbrellaDirectoryDeclaration:
		g.writeLine("umbrella " + quote(m.FilePath))
	case *parser.SubmoduleDeclaration:
		if m.Inferred != nil {
			g.generateInferredSubmodule(m.Inferred)
		} else {
			g.generateModuleDeclaration(m.Module)
		}
	case *parser.ExportDeclaration:
		g.writeLine("export " + m.ID.String())
	case *parser.ExportAsDeclaration:
		g.writeLine("export_as " + m.Identifier)
	case *parser.UseDeclaration:
		g.writeLine("use " + m.ID.String())
	case *parser.LinkDeclaration:
		if m.Framework {
			g.writeLine("link framework " + quote(m.Library))
		} else {
			g.writeLine("link " + quote(m.Library))
		}
	case *parser.ConfigMacrosDeclaration:
		g.generateConfigMacros(m)
	case *parser.ConflictDeclaration:
		g.writeLine("conflict " + m.ID.String() + ", " + quote(m.DiagnosticMessage))
	}
}

func (g *Generator) generateRequires(d *parser.RequiresDeclaration) {
	features := make([]string, len(d.Features))
	for i, feature := range d.Features {
		if feature.Incompatible {
			features[i] = "!" + feature.Identifier
		} else {
			features[i] = feature.Identifier
		}
	}
	g.writeLine("requires " + strings.Join(features, ", "))
}

func (g *Generator) generateHeader(d *parser.HeaderDeclaration) {
	var b strings.Builder
	switch d.Kind {
	case parser.HeaderKindUmbrella:
		b.WriteString("umbrella ")
	case parser.HeaderKindExclude:
		b.WriteString("exclude ")
	case parser.HeaderKindStandard:
		if d.Private {
			b.WriteString("private ")
		}
	case parser.HeaderKindTextual:
		if d.Private {
			b.WriteString("private ")
		}
		b.WriteString("textual ")
	}
	b.WriteString("header ")
	b.WriteString(quote(d.FilePath))

	if len(d.Attributes) > 0 {
		b.WriteString(" {")
		for _, attr := range d.Attributes {
			b.WriteString(" ")
			b.WriteString(attr.Key)
			b.WriteString(" ")
			b.WriteString(strconv.FormatInt(attr.Value, 10))
		}
		b.WriteString(" }")
	}

	g.writeLine(b.String())
}

func (g *Generator) generateInferredSubmodule(d *parser.InferredSubmoduleDeclaration) {
	var b strings.Builder
	if d.Explicit {
		b.WriteString("explicit ")
	}
	if d.Framework {
		b.WriteString("framework ")
	}
	b.WriteString("module *")
	writeAttributes(&b, d.Attributes)
	b.WriteString(" {")
	g.writeLine(b.String())

	g.indent++
	for range d.Members {
		g.writeLine("export *")
	}
	g.indent--

	g.writeLine("}")
}

func (g *Generator) generateConfigMacros(d *parser.ConfigMacrosDeclaration) {
	var b strings.Builder
	b.WriteString("config_macros")
	writeAttributes(&b, d.Attributes)
	if len(d.MacroNames) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(d.MacroNames, ", "))
	}
	g.writeLine(b.String())
}

// writeLine writes one line at the current indentation depth
func (g *Generator) writeLine(line string) {
	if g.config.UseTabs {
		g.buf.WriteString(strings.Repeat("\t", g.indent))
	} else {
		g.buf.WriteString(strings.Repeat(" ", g.indent*g.config.IndentSize))
	}
	g.buf.WriteString(line)
	g.buf.WriteString("\n")
}

func writeAttributes(b *strings.Builder, attributes []string) {
	for _, attr := range attributes {
		b.WriteString(" [")
		b.WriteString(attr)
		b.WriteString("]")
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}
