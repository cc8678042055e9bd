package plugin

import (
	"objc-codegen/internal/algebraic"
	"objc-codegen/internal/code"
	"objc-codegen/internal/common"
	"objc-codegen/internal/diagnostic"
	"objc-codegen/internal/filewriter"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
)

// Spec is the input a plugin generates from.
type Spec interface {
	objectspec.Type | algebraic.Type

	// TypeName is the name of the generated class.
	TypeName() string
	// PluginIncludes and PluginExcludes adjust which plugins run.
	PluginIncludes() []string
	PluginExcludes() []string
}

// Plugin contributes generated content for specs of type S. Hooks that a
// plugin does not use return the empty or identity value; embedding Base
// provides those defaults.
type Plugin[S Spec] interface {
	// Name identifies the plugin in logs and diagnostics.
	Name() string
	// RequiredIncludesToRun lists the includes a spec must enable for the
	// plugin to run. An empty list means the plugin always runs.
	RequiredIncludesToRun() []string

	ClassMethods(spec S) []objc.Method
	InstanceMethods(spec S) []objc.Method
	Properties(spec S) []objc.Property
	Imports(spec S) []objc.Import
	ForwardDeclarations(spec S) []objc.ForwardDeclaration
	Functions(spec S) []objc.Function
	Macros(spec S) []objc.Macro
	StaticConstants(spec S) []objc.Constant
	InstanceVariables(spec S) []objc.InstanceVariable
	Enumerations(spec S) []objc.Enumeration
	BlockTypes(spec S) []objc.BlockType
	HeaderComments(spec S) []objc.Comment
	ImplementedProtocols(spec S) []objc.Protocol
	AdditionalFiles(spec S) []code.File
	AdditionalTypes(spec S) []S
	ValidationErrors(spec S) []diagnostic.Diagnostic

	FileType(spec S) common.Option[code.FileType]
	Nullability(spec S) common.Option[objc.ClassNullability]
	SubclassingRestricted(spec S) bool

	TransformBaseFile(spec S, file code.File) code.File
	TransformFileRequest(request filewriter.Request) filewriter.Request
}

// Base implements every hook of Plugin except Name with the empty or
// identity value.
type Base[S Spec] struct{}

func (Base[S]) RequiredIncludesToRun() []string                              { return nil }
func (Base[S]) ClassMethods(S) []objc.Method                                 { return nil }
func (Base[S]) InstanceMethods(S) []objc.Method                              { return nil }
func (Base[S]) Properties(S) []objc.Property                                 { return nil }
func (Base[S]) Imports(S) []objc.Import                                      { return nil }
func (Base[S]) ForwardDeclarations(S) []objc.ForwardDeclaration              { return nil }
func (Base[S]) Functions(S) []objc.Function                                  { return nil }
func (Base[S]) Macros(S) []objc.Macro                                        { return nil }
func (Base[S]) StaticConstants(S) []objc.Constant                            { return nil }
func (Base[S]) InstanceVariables(S) []objc.InstanceVariable                  { return nil }
func (Base[S]) Enumerations(S) []objc.Enumeration                            { return nil }
func (Base[S]) BlockTypes(S) []objc.BlockType                                { return nil }
func (Base[S]) HeaderComments(S) []objc.Comment                              { return nil }
func (Base[S]) ImplementedProtocols(S) []objc.Protocol                       { return nil }
func (Base[S]) AdditionalFiles(S) []code.File                                { return nil }
func (Base[S]) AdditionalTypes(S) []S                                        { return nil }
func (Base[S]) ValidationErrors(S) []diagnostic.Diagnostic                   { return nil }
func (Base[S]) FileType(S) common.Option[code.FileType]                      { return common.None[code.FileType]() }
func (Base[S]) Nullability(S) common.Option[objc.ClassNullability]           { return common.None[objc.ClassNullability]() }
func (Base[S]) SubclassingRestricted(S) bool                                 { return false }
func (Base[S]) TransformBaseFile(_ S, file code.File) code.File              { return file }
func (Base[S]) TransformFileRequest(r filewriter.Request) filewriter.Request { return r }
