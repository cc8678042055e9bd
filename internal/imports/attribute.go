package imports

import (
	"objc-codegen/internal/common"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
)

func hasDefinitionOverride(t objectspec.AttributeType) bool {
	return t.FileTypeIsDefinedIn.IsSome() || t.LibraryTypeIsDefinedIn.IsSome()
}

// ImportForAttribute returns the import that makes the attribute's type
// visible. Per-attribute file and library overrides win over the system
// registry, and the registry wins over the naming convention.
func ImportForAttribute(objectLibrary common.Option[string], isPublic bool, attribute objectspec.Attribute) objc.Import {
	if !hasDefinitionOverride(attribute.Type) {
		if imp, ok := TypeDefinitionImportForKnownSystemType(attribute.Type.Name).Get(); ok {
			return imp
		}
	}

	computed := objectspec.ComputeTypeOfAttribute(attribute)

	return objc.Import{
		File:              FileForImport(attribute.Type.FileTypeIsDefinedIn, attribute.Type.Name),
		IsPublic:          isPublic || RequiresPublicImportForType(attribute.Type.Name, computed),
		RequiresCPlusPlus: false,
		Library:           LibraryForImport(attribute.Type.LibraryTypeIsDefinedIn, objectLibrary),
	}
}

// ImportsForAttributes returns one import per attribute whose type needs an
// automatic import. Forward declarable types get a private import; the
// header only sees their forward declaration.
func ImportsForAttributes(
	objectLibrary common.Option[string],
	typeLookups []objectspec.TypeLookup,
	attributes []objectspec.Attribute,
) []objc.Import {
	var out []objc.Import
	for _, attr := range attributes {
		if !ShouldIncludeImportForType(typeLookups, attr.Type.Name) {
			continue
		}

		out = append(out, ImportForAttribute(objectLibrary, false, attr))
	}

	return out
}

// ImportsForTypeLookups returns the imports described by typeLookups,
// skipping the lookup of the generated type itself. Lookups that allow
// forward declaration are imported privately.
func ImportsForTypeLookups(
	objectName string,
	objectLibrary common.Option[string],
	typeLookups []objectspec.TypeLookup,
) []objc.Import {
	var out []objc.Import
	for _, lookup := range typeLookups {
		if lookup.Name == objectName {
			continue
		}

		out = append(out, ImportForTypeLookup(objectLibrary, !lookup.CanForwardDeclare, lookup))
	}

	return out
}

// ForwardDeclarationsForAttributes returns the @class and @protocol
// declarations the header needs, without duplicates, in attribute order.
// Class declarations for lookup types come after the attribute ones.
func ForwardDeclarationsForAttributes(
	objectName string,
	typeLookups []objectspec.TypeLookup,
	attributes []objectspec.Attribute,
) []objc.ForwardDeclaration {
	var out []objc.ForwardDeclaration
	seen := make(map[objc.ForwardDeclaration]struct{})
	add := func(d objc.ForwardDeclaration) {
		if _, dup := seen[d]; dup {
			return
		}

		seen[d] = struct{}{}
		out = append(out, d)
	}

	for _, attr := range attributes {
		if attr.Type.Name != objectName &&
			ShouldIncludeImportForType(typeLookups, attr.Type.Name) &&
			CanForwardDeclareTypeForAttribute(attr) {
			add(objc.ForwardClassDeclaration(attr.Type.Name))
		}

		if decl, ok := ForwardProtocolDeclarationForAttribute(attr).Get(); ok {
			add(decl)
		}
	}

	for _, lookup := range typeLookups {
		if lookup.CanForwardDeclare && lookup.Name != objectName {
			add(objc.ForwardClassDeclaration(lookup.Name))
		}
	}

	return out
}
