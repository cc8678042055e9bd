// Package objectspec holds the parsed object specification consumed by the
// import resolver and by object-type plugins.
package objectspec

import (
	"objc-codegen/internal/common"
	"objc-codegen/internal/objc"
)

// TypeLookup overrides the default header and library of a type name.
type TypeLookup struct {
	Name              string
	Library           common.Option[string]
	File              common.Option[string]
	CanForwardDeclare bool
}

// AttributeType is the declared type of one attribute occurrence.
type AttributeType struct {
	Name      string
	Reference string
	// UnderlyingType is the type a typedef resolves to, e.g. "NSObject" for
	// an object typedef.
	UnderlyingType         common.Option[string]
	ConformingProtocol     common.Option[string]
	LibraryTypeIsDefinedIn common.Option[string]
	FileTypeIsDefinedIn    common.Option[string]
}

// Nullability is the declared nullability of an attribute.
type Nullability int

const (
	NullabilityInherited Nullability = iota
	NullabilityNullable
	NullabilityNonnull
)

// Attribute is one field of a generated object.
type Attribute struct {
	Name        string
	Comments    []string
	Nullability Nullability
	Type        AttributeType
}

// Type is an object specification: the generated class and its attributes.
type Type struct {
	Name        string
	Attributes  []Attribute
	Comments    []string
	Includes    []string
	Excludes    []string
	LibraryName common.Option[string]
	TypeLookups []TypeLookup
}

// ComputeTypeOfAttribute returns the Objective-C type an attribute is
// classified by. Typedefs are classified by their underlying type.
func ComputeTypeOfAttribute(attribute Attribute) objc.Type {
	return objc.Type{
		Name:      attribute.Type.UnderlyingType.OrElse(attribute.Type.Name),
		Reference: attribute.Type.Reference,
	}
}

func (t Type) TypeName() string         { return t.Name }
func (t Type) PluginIncludes() []string { return t.Includes }
func (t Type) PluginExcludes() []string { return t.Excludes }
