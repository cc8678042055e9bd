// Package typeimports contributes the imports and forward declarations that
// make the attribute types of a generated class visible to its header and
// implementation file.
package typeimports

import (
	"objc-codegen/internal/algebraic"
	"objc-codegen/internal/common"
	"objc-codegen/internal/diagnostic"
	"objc-codegen/internal/imports"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
	"objc-codegen/internal/plugin"
)

const pluginName = "type-imports"

// Diagnostic codes reported by ValidationErrors.
const (
	CodeMissingAttributeType = "missing-attribute-type"
	CodeEmptyTypeLookup      = "empty-type-lookup"
)

// foundationImport is imported publicly by every generated header.
var foundationImport = objc.Import{
	File:     "Foundation.h",
	IsPublic: true,
	Library:  common.Some("Foundation"),
}

type source struct {
	name       string
	library    common.Option[string]
	lookups    []objectspec.TypeLookup
	attributes []objectspec.Attribute
}

func importsFor(s source) []objc.Import {
	out := []objc.Import{foundationImport}
	out = append(out, imports.ImportsForTypeLookups(s.name, s.library, s.lookups)...)

	return append(out, imports.ImportsForAttributes(s.library, s.lookups, s.attributes)...)
}

func forwardDeclarationsFor(s source) []objc.ForwardDeclaration {
	return imports.ForwardDeclarationsForAttributes(s.name, s.lookups, s.attributes)
}

func validate(s source) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, attr := range s.attributes {
		if attr.Type.Name == "" {
			diags = append(diags, diagnostic.NewError(CodeMissingAttributeType,
				"attribute has no type name", s.name, attr.Name))
		}
	}

	for _, lookup := range s.lookups {
		if lookup.Name == "" {
			diags = append(diags, diagnostic.NewError(CodeEmptyTypeLookup,
				"type lookup has no name", s.name, ""))
		}
	}

	return diags
}

type objectPlugin struct {
	plugin.Base[objectspec.Type]
}

// New returns the plugin for object specs.
func New() plugin.Plugin[objectspec.Type] {
	return objectPlugin{}
}

func objectSource(t objectspec.Type) source {
	return source{name: t.Name, library: t.LibraryName, lookups: t.TypeLookups, attributes: t.Attributes}
}

func (objectPlugin) Name() string { return pluginName }

func (objectPlugin) Imports(t objectspec.Type) []objc.Import {
	return importsFor(objectSource(t))
}

func (objectPlugin) ForwardDeclarations(t objectspec.Type) []objc.ForwardDeclaration {
	return forwardDeclarationsFor(objectSource(t))
}

func (objectPlugin) ValidationErrors(t objectspec.Type) []diagnostic.Diagnostic {
	return validate(objectSource(t))
}

type algebraicPlugin struct {
	plugin.Base[algebraic.Type]
}

// NewAlgebraic returns the plugin for algebraic specs. The attributes of
// every subtype are resolved together.
func NewAlgebraic() plugin.Plugin[algebraic.Type] {
	return algebraicPlugin{}
}

func algebraicSource(t algebraic.Type) source {
	return source{name: t.Name, library: t.LibraryName, lookups: t.TypeLookups, attributes: t.Attributes()}
}

func (algebraicPlugin) Name() string { return pluginName }

func (algebraicPlugin) Imports(t algebraic.Type) []objc.Import {
	return importsFor(algebraicSource(t))
}

func (algebraicPlugin) ForwardDeclarations(t algebraic.Type) []objc.ForwardDeclaration {
	return forwardDeclarationsFor(algebraicSource(t))
}

func (algebraicPlugin) ValidationErrors(t algebraic.Type) []diagnostic.Diagnostic {
	return validate(algebraicSource(t))
}
