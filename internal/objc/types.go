package objc

import (
	"errors"
	"fmt"

	"objc-codegen/internal/common"
)

var (
	// ErrEmptyImportFile is returned by Import.Validate for an import without a header.
	ErrEmptyImportFile = errors.New("objc: import has empty file")
	// ErrEmptyDeclarationName is returned by ForwardDeclaration.Validate for an unnamed declaration.
	ErrEmptyDeclarationName = errors.New("objc: forward declaration has empty name")
)

// Type is a computed Objective-C type: the name used for lookups and the
// spelling used in declarations (e.g. "NSString" / "NSString *").
type Type struct {
	Name      string
	Reference string
}

// Import is a single #import directive.
type Import struct {
	// File is the header name including its extension.
	File string
	// IsPublic places the import in the generated header instead of the
	// implementation file.
	IsPublic bool
	// RequiresCPlusPlus marks headers that only compile as Objective-C++.
	RequiresCPlusPlus bool
	// Library is the framework or module the header belongs to.
	Library common.Option[string]
}

// Validate checks the import invariants.
func (i Import) Validate() error {
	if i.File == "" {
		return ErrEmptyImportFile
	}

	return nil
}

// String renders the import roughly the way it appears in source.
func (i Import) String() string {
	if lib, ok := i.Library.Get(); ok {
		return fmt.Sprintf("<%s/%s>", lib, i.File)
	}

	return fmt.Sprintf("%q", i.File)
}

// ForwardDeclarationKind tags the ForwardDeclaration variant.
type ForwardDeclarationKind int

const (
	ForwardClass ForwardDeclarationKind = iota
	ForwardProtocol
)

// String returns the Objective-C keyword for the kind.
func (k ForwardDeclarationKind) String() string {
	switch k {
	case ForwardClass:
		return "@class"
	case ForwardProtocol:
		return "@protocol"
	default:
		return common.UnknownStr
	}
}

// ForwardDeclaration is either a @class or a @protocol forward declaration.
type ForwardDeclaration struct {
	Kind ForwardDeclarationKind
	Name string
}

// ForwardClassDeclaration returns a @class declaration for name.
func ForwardClassDeclaration(name string) ForwardDeclaration {
	return ForwardDeclaration{Kind: ForwardClass, Name: name}
}

// ForwardProtocolDeclaration returns a @protocol declaration for name.
func ForwardProtocolDeclaration(name string) ForwardDeclaration {
	return ForwardDeclaration{Kind: ForwardProtocol, Name: name}
}

// Validate checks the forward declaration invariants.
func (d ForwardDeclaration) Validate() error {
	if d.Name == "" {
		return ErrEmptyDeclarationName
	}

	return nil
}

// String renders the declaration as it appears in source.
func (d ForwardDeclaration) String() string {
	return d.Kind.String() + " " + d.Name + ";"
}
