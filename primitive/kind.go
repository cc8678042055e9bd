package primitive

import (
	"strings"

	"objc-codegen/internal/objc"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the category of a computed Objective-C type.
type KindEnum int

const (
	KindUnmatched KindEnum = iota // zero value: anything not recognised below, including function pointer typedefs

	KindObject // pointer to a class instance that is not a built-in
	KindID     // bare id, also id<Protocol>

	KindBOOL
	KindNSInteger
	KindNSUInteger
	KindDouble
	KindFloat
	KindCGFloat
	KindNSTimeInterval
	KindUintptr
	KindUint32
	KindUint64
	KindInt32
	KindInt64
	KindSEL
	KindNSRange
	KindCGRect
	KindCGPoint
	KindCGSize
	KindUIEdgeInsets
	KindClass
	KindDispatchBlock

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindByName = map[string]KindEnum{
	"id":               KindID,
	"BOOL":             KindBOOL,
	"NSInteger":        KindNSInteger,
	"NSUInteger":       KindNSUInteger,
	"double":           KindDouble,
	"float":            KindFloat,
	"CGFloat":          KindCGFloat,
	"NSTimeInterval":   KindNSTimeInterval,
	"uintptr_t":        KindUintptr,
	"uint32_t":         KindUint32,
	"uint64_t":         KindUint64,
	"int32_t":          KindInt32,
	"int64_t":          KindInt64,
	"SEL":              KindSEL,
	"NSRange":          KindNSRange,
	"CGRect":           KindCGRect,
	"CGPoint":          KindCGPoint,
	"CGSize":           KindCGSize,
	"UIEdgeInsets":     KindUIEdgeInsets,
	"Class":            KindClass,
	"dispatch_block_t": KindDispatchBlock,
	"NSObject":         KindObject,
}

// FromType returns the category of t. Built-in names are matched first, then
// any pointer reference is treated as an object. The name NSObject marks an
// object typedef even when its reference hides the pointer.
func FromType(t objc.Type) KindEnum {
	if kind, ok := kindByName[t.Name]; ok {
		return kind
	}

	if strings.Contains(t.Reference, "*") {
		return KindObject
	}

	return KindUnmatched
}

func (k KindEnum) IsValueType() bool {
	switch k {
	default:
		return false
	case KindBOOL, KindNSInteger, KindNSUInteger, KindDouble, KindFloat,
		KindCGFloat, KindNSTimeInterval, KindUint32, KindUint64, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsStruct() bool {
	switch k {
	default:
		return false
	case KindNSRange, KindCGRect, KindCGPoint, KindCGSize, KindUIEdgeInsets:
		return true
	}
}

// IsOpaque reports scalar aliases whose definition is never useful to forward declare.
func (k KindEnum) IsOpaque() bool {
	switch k {
	default:
		return false
	case KindSEL, KindClass, KindUintptr, KindDispatchBlock:
		return true
	}
}

// CanForwardDeclare reports whether a @class declaration can stand in for a
// full import of a type of this kind. Every kind has a row; a kind added
// without one falls into the false default.
func (k KindEnum) CanForwardDeclare() bool {
	switch k {
	default:
		return false
	case KindObject:
		return true
	case KindID:
		return false
	case KindBOOL, KindNSInteger, KindNSUInteger, KindDouble, KindFloat,
		KindCGFloat, KindNSTimeInterval, KindUint32, KindUint64, KindInt32, KindInt64:
		return false
	case KindNSRange, KindCGRect, KindCGPoint, KindCGSize, KindUIEdgeInsets:
		return false
	case KindSEL, KindClass, KindUintptr, KindDispatchBlock:
		return false
	case KindUnmatched:
		return false
	}
}
