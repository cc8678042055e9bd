// Package algebraic holds the parsed algebraic type specification: a sum
// type whose subtypes are rendered as one Objective-C class.
package algebraic

import (
	"objc-codegen/internal/common"
	"objc-codegen/internal/objectspec"
)

// Subtype is one case of an algebraic type.
type Subtype struct {
	Name       string
	Comments   []string
	Attributes []objectspec.Attribute
}

// Type is an algebraic type specification.
type Type struct {
	Name        string
	Comments    []string
	Subtypes    []Subtype
	Includes    []string
	Excludes    []string
	LibraryName common.Option[string]
	TypeLookups []objectspec.TypeLookup
}

// Attributes returns the attributes of every subtype in declaration order.
func (t Type) Attributes() []objectspec.Attribute {
	var attrs []objectspec.Attribute
	for _, st := range t.Subtypes {
		attrs = append(attrs, st.Attributes...)
	}

	return attrs
}

func (t Type) TypeName() string         { return t.Name }
func (t Type) PluginIncludes() []string { return t.Includes }
func (t Type) PluginExcludes() []string { return t.Excludes }
