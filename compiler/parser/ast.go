package parser

import (
	"strings"

	"github.com/modulemap-lang/modulemap/compiler/lexer"
)

// SourceLocation represents a location in source code
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// TokenToLocation converts a token to a SourceLocation
func TokenToLocation(token lexer.Token) SourceLocation {
	return SourceLocation{
		File:   token.File,
		Line:   token.Line,
		Column: token.Column,
	}
}

// ModuleMapFile is the root node of the AST: the ordered list of module
// declarations in one module map file.
type ModuleMapFile struct {
	Declarations []ModuleDeclaration
}

// ModuleDeclaration is the interface for top-level declarations. A module is
// either defined locally with a body of members, or declared extern pointing
// at another module map file.
type ModuleDeclaration interface {
	moduleDeclaration()
}

// LocalModuleDeclaration represents a module defined in this file, e.g.
// `explicit framework module MyLib [system] { ... }`. Explicit is only
// meaningful when the declaration appears as a submodule.
type LocalModuleDeclaration struct {
	Explicit   bool
	Framework  bool
	ID         ModuleID
	Attributes []string
	Members    []ModuleMember
}

func (*LocalModuleDeclaration) moduleDeclaration() {}

// ExternModuleDeclaration represents a module defined in another file, e.g.
// `extern module MyLib "my_lib/module.modulemap"`
type ExternModuleDeclaration struct {
	ID       ModuleID
	FilePath string
}

func (*ExternModuleDeclaration) moduleDeclaration() {}

// ModuleID is a dot-separated sequence of identifiers naming a module. The
// component list is never empty in a parsed or well-formed hand-built AST.
type ModuleID struct {
	Components []string
}

// String returns the canonical dot-joined form of the module identifier
func (id ModuleID) String() string {
	return strings.Join(id.Components, ".")
}

// ModuleMember is the interface for the declarations inside a local module
// body. There are exactly ten variants: requires, header, umbrella directory,
// submodule, export, export_as, use, link, config_macros, and conflict.
type ModuleMember interface {
	moduleMember()
}

// RequiresDeclaration represents a feature requirement list, e.g.
// `requires objc, !blocks`
type RequiresDeclaration struct {
	Features []Feature
}

func (*RequiresDeclaration) moduleMember() {}

// Feature is a single entry of a requires declaration. Incompatible features
// are prefixed with '!' in source.
type Feature struct {
	Incompatible bool
	Identifier   string
}

// HeaderKind represents the kind of a header declaration
type HeaderKind int

const (
	HeaderKindStandard HeaderKind = iota
	HeaderKindTextual
	HeaderKindUmbrella
	HeaderKindExclude
)

// HeaderDeclaration represents a header declaration, e.g.
// `private textual header "MyLib.h" { size 42 }`. Private applies only to the
// standard and textual kinds.
type HeaderDeclaration struct {
	Kind       HeaderKind
	Private    bool
	FilePath   string
	Attributes []HeaderAttribute
}

func (*HeaderDeclaration) moduleMember() {}

// HeaderAttribute is a key/value entry of a header attribute block
type HeaderAttribute struct {
	Key   string
	Value int64
}

// UmbrellaDirectoryDeclaration represents an umbrella directory, e.g.
// `umbrella "MyLib"`
type UmbrellaDirectoryDeclaration struct {
	FilePath string
}

func (*UmbrellaDirectoryDeclaration) moduleMember() {}

// SubmoduleDeclaration represents a module declaration nested inside another
// module's member list. Exactly one of Module or Inferred is set: Module for
// an ordinary nested (or extern) module, Inferred for a wildcard `module *`
// declaration.
type SubmoduleDeclaration struct {
	Module   ModuleDeclaration
	Inferred *InferredSubmoduleDeclaration
}

func (*SubmoduleDeclaration) moduleMember() {}

// InferredSubmoduleDeclaration represents a wildcard submodule matching
// headers not otherwise declared, e.g. `explicit module * [system] { export * }`
type InferredSubmoduleDeclaration struct {
	Explicit   bool
	Framework  bool
	Attributes []string
	Members    []InferredSubmoduleMember
}

// InferredSubmoduleMember represents one `export *` inside an inferred
// submodule body; it carries no data of its own.
type InferredSubmoduleMember struct{}

// ExportDeclaration represents an export, e.g. `export MyLib.Sub.*`
type ExportDeclaration struct {
	ID WildcardModuleID
}

func (*ExportDeclaration) moduleMember() {}

// WildcardModuleID is a module identifier path optionally terminated with '*'
// to denote a prefix match. An empty component list implies a trailing star
// (a bare `*`).
type WildcardModuleID struct {
	Components   []string
	TrailingStar bool
}

// String returns the canonical textual form of the wildcard identifier
func (id WildcardModuleID) String() string {
	if !id.TrailingStar {
		return strings.Join(id.Components, ".")
	}
	if len(id.Components) == 0 {
		return "*"
	}
	return strings.Join(id.Components, ".") + ".*"
}

// ExportAsDeclaration represents an export_as declaration, e.g.
// `export_as MyFramework`
type ExportAsDeclaration struct {
	Identifier string
}

func (*ExportAsDeclaration) moduleMember() {}

// UseDeclaration represents a use declaration, e.g. `use MyLib.Core`
type UseDeclaration struct {
	ID ModuleID
}

func (*UseDeclaration) moduleMember() {}

// LinkDeclaration represents a link declaration, e.g. `link "z"` or
// `link framework "CoreFoundation"`
type LinkDeclaration struct {
	Framework bool
	Library   string
}

func (*LinkDeclaration) moduleMember() {}

// ConfigMacrosDeclaration represents a config_macros declaration, e.g.
// `config_macros [exhaustive] NDEBUG, LOG_LEVEL`. The macro name list may be
// empty.
type ConfigMacrosDeclaration struct {
	Attributes []string
	MacroNames []string
}

func (*ConfigMacrosDeclaration) moduleMember() {}

// ConflictDeclaration represents a conflict declaration, e.g.
// `conflict OtherLib, "do not mix"`
type ConflictDeclaration struct {
	ID                ModuleID
	DiagnosticMessage string
}

func (*ConflictDeclaration) moduleMember() {}
