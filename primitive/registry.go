package primitive

import (
	"maps"
	"slices"

	"objc-codegen/internal/common"
	"objc-codegen/internal/objc"
)

// knownSystemTypes maps built-in type names to the import they need.
// None means the type is a primitive that needs no import at all. The map
// is filled once at package initialisation and only read afterwards.
var knownSystemTypes = map[string]common.Option[objc.Import]{
	"BOOL":             common.None[objc.Import](),
	"double":           common.None[objc.Import](),
	"float":            common.None[objc.Import](),
	"id":               common.None[objc.Import](),
	"CGFloat":          coreGraphics("CGBase.h"),
	"CGPoint":          coreGraphics("CGGeometry.h"),
	"CGRect":           coreGraphics("CGGeometry.h"),
	"CGSize":           coreGraphics("CGGeometry.h"),
	"int32_t":          common.None[objc.Import](),
	"int64_t":          common.None[objc.Import](),
	"SEL":              common.None[objc.Import](),
	"UIEdgeInsets":     systemImport("UIGeometry.h", "UIKit"),
	"uint64_t":         common.None[objc.Import](),
	"uint32_t":         common.None[objc.Import](),
	"uintptr_t":        common.None[objc.Import](),
	"Class":            common.None[objc.Import](),
	"dispatch_block_t": common.None[objc.Import](),
}

func coreGraphics(file string) common.Option[objc.Import] {
	return systemImport(file, "CoreGraphics")
}

func systemImport(file, library string) common.Option[objc.Import] {
	return common.Some(objc.Import{
		File:              file,
		IsPublic:          true,
		RequiresCPlusPlus: false,
		Library:           common.Some(library),
	})
}

// LookupSystemType returns the registry entry for name. The second result
// is false when name is not a registered built-in; the first result is None
// when name is a built-in that needs no import.
func LookupSystemType(name string) (common.Option[objc.Import], bool) {
	entry, ok := knownSystemTypes[name]
	return entry, ok
}

// SystemTypeNames returns all registered built-in names in sorted order.
func SystemTypeNames() []string {
	return slices.Sorted(maps.Keys(knownSystemTypes))
}
