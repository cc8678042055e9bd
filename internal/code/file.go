// Package code holds the assembled model of one generated file, the value
// handed from plugin composition to the emitter.
package code

import (
	"objc-codegen/internal/common"
	"objc-codegen/internal/objc"
)

// FileType selects the flavour of the generated file.
type FileType int

const (
	FileTypeObjectiveC FileType = iota
	FileTypeObjectiveCPlusPlus
)

// Extension returns the implementation file extension for the file type.
func (t FileType) Extension() string {
	switch t {
	case FileTypeObjectiveCPlusPlus:
		return ".mm"
	default:
		return ".m"
	}
}

// File is the aggregated content of one generated class.
type File struct {
	Name                  string
	Type                  FileType
	Nullability           common.Option[objc.ClassNullability]
	SubclassingRestricted bool

	Comments             []objc.Comment
	Imports              []objc.Import
	ForwardDeclarations  []objc.ForwardDeclaration
	ImplementedProtocols []objc.Protocol
	ClassMethods         []objc.Method
	InstanceMethods      []objc.Method
	Properties           []objc.Property
	InstanceVariables    []objc.InstanceVariable
	Functions            []objc.Function
	Macros               []objc.Macro
	StaticConstants      []objc.Constant
	Enumerations         []objc.Enumeration
	BlockTypes           []objc.BlockType
}

// PublicImports returns the imports that belong in the header.
func (f *File) PublicImports() []objc.Import {
	return filterImports(f.Imports, true)
}

// PrivateImports returns the imports that belong in the implementation file.
func (f *File) PrivateImports() []objc.Import {
	return filterImports(f.Imports, false)
}

func filterImports(imports []objc.Import, public bool) []objc.Import {
	var out []objc.Import
	for _, imp := range imports {
		if imp.IsPublic == public {
			out = append(out, imp)
		}
	}

	return out
}
