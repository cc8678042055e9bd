package imports

import (
	"slices"
	"strings"

	"objc-codegen/internal/common"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
	"objc-codegen/primitive"
)

const (
	foundationPrefix = "NS"
	headerExtension  = ".h"
)

func isFoundationType(typeName string) bool {
	return strings.HasPrefix(typeName, foundationPrefix)
}

// IsImportRequiredForTypeWithName reports whether typeName needs any import.
// Foundation types and registered primitives do not. The Foundation prefix
// is checked first, so a registered NS-prefixed name never needs an import.
func IsImportRequiredForTypeWithName(typeName string) bool {
	if isFoundationType(typeName) {
		return false
	}

	entry, known := primitive.LookupSystemType(typeName)
	if known && entry.IsNone() {
		return false
	}

	return true
}

// ShouldIncludeImportForType reports whether an import for typeName should
// be generated automatically. A type lookup with the same name means the
// import is handled from the lookup instead.
func ShouldIncludeImportForType(typeLookups []objectspec.TypeLookup, typeName string) bool {
	return IsImportRequiredForTypeWithName(typeName) &&
		!slices.ContainsFunc(typeLookups, func(l objectspec.TypeLookup) bool {
			return l.Name == typeName
		})
}

// LibraryForImport returns libraryTypeIsDefinedIn when set, else objectLibrary.
func LibraryForImport(libraryTypeIsDefinedIn, objectLibrary common.Option[string]) common.Option[string] {
	return libraryTypeIsDefinedIn.Or(objectLibrary)
}

// FileForImport returns the header for typeName: fileTypeIsDefinedIn when
// set, else the type name, with the header extension appended.
func FileForImport(fileTypeIsDefinedIn common.Option[string], typeName string) string {
	return fileTypeIsDefinedIn.OrElse(typeName) + headerExtension
}

// TypeDefinitionImportForKnownSystemType returns the registered import for
// typeName. It is None both for unregistered names and for primitives.
func TypeDefinitionImportForKnownSystemType(typeName string) common.Option[objc.Import] {
	entry, _ := primitive.LookupSystemType(typeName)
	return entry
}

// CanForwardDeclareType reports whether a @class declaration can replace a
// full import of t.
func CanForwardDeclareType(t objc.Type) bool {
	return primitive.FromType(t).CanForwardDeclare()
}

// CanForwardDeclareTypeForAttributeConsideringType classifies the computed
// type of attribute without checking whether an import is needed at all.
func CanForwardDeclareTypeForAttributeConsideringType(attribute objectspec.Attribute) bool {
	return CanForwardDeclareType(objectspec.ComputeTypeOfAttribute(attribute))
}

// CanForwardDeclareTypeForAttribute reports whether attribute should be
// forward declared. Types that need no import are neither imported nor
// forward declared.
func CanForwardDeclareTypeForAttribute(attribute objectspec.Attribute) bool {
	return IsImportRequiredForTypeWithName(attribute.Type.Name) &&
		CanForwardDeclareTypeForAttributeConsideringType(attribute)
}

// RequiresPublicImportForType reports whether typeName must be imported in
// the generated header because it is needed and cannot be forward declared.
func RequiresPublicImportForType(typeName string, computedType objc.Type) bool {
	return IsImportRequiredForTypeWithName(typeName) && !CanForwardDeclareType(computedType)
}

// ShouldForwardProtocolDeclareAttribute reports whether the attribute's type
// conforms to a named protocol.
func ShouldForwardProtocolDeclareAttribute(attribute objectspec.Attribute) bool {
	protocol, ok := attribute.Type.ConformingProtocol.Get()
	return ok && protocol != ""
}

// ForwardProtocolDeclarationForAttribute returns a @protocol declaration for
// the attribute's conforming protocol, or None when there is none.
func ForwardProtocolDeclarationForAttribute(attribute objectspec.Attribute) common.Option[objc.ForwardDeclaration] {
	if !ShouldForwardProtocolDeclareAttribute(attribute) {
		return common.None[objc.ForwardDeclaration]()
	}

	protocol, _ := attribute.Type.ConformingProtocol.Get()

	return common.Some(objc.ForwardProtocolDeclaration(protocol))
}

// ImportForTypeLookup builds the import described by a user type lookup.
// The file defaults to the lookup name and the library to defaultLibrary.
func ImportForTypeLookup(defaultLibrary common.Option[string], isPublic bool, typeLookup objectspec.TypeLookup) objc.Import {
	return objc.Import{
		File:              FileForImport(typeLookup.File, typeLookup.Name),
		IsPublic:          isPublic,
		RequiresCPlusPlus: false,
		Library:           LibraryForImport(typeLookup.Library, defaultLibrary),
	}
}
