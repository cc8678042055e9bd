package objc

import "objc-codegen/internal/common"

// ClassNullability selects the nullability region wrapped around a class.
type ClassNullability int

const (
	ClassNullabilityDefault ClassNullability = iota
	ClassNullabilityAssumeNonnull
)

// Comment is one line of a comment block.
type Comment struct {
	Content string
}

// KeywordArgument is the typed argument of a selector keyword.
type KeywordArgument struct {
	Name      string
	Modifiers []string
	Type      Type
}

// Keyword is one selector piece of a method.
type Keyword struct {
	Name     string
	Argument common.Option[KeywordArgument]
}

// ReturnType is a method return type; None means void.
type ReturnType struct {
	Type      common.Option[Type]
	Modifiers []string
}

// Method is a class or instance method.
type Method struct {
	Preprocessors      []string
	BelongsToProtocol  common.Option[string]
	Code               []string
	Comments           []Comment
	CompilerAttributes []string
	Keywords           []Keyword
	ReturnType         ReturnType
}

// Selector returns the joined keyword names, e.g. "initWithName:age:".
func (m Method) Selector() string {
	var s string
	for _, kw := range m.Keywords {
		s += kw.Name
		if kw.Argument.IsSome() {
			s += ":"
		}
	}

	return s
}

// Property is a declared @property.
type Property struct {
	Name       string
	Comments   []Comment
	Modifiers  []string
	Returns    Type
	Access     string
	Attributes []string
}

// Function is a free C function.
type Function struct {
	Name       string
	Comments   []Comment
	Code       []string
	Parameters []KeywordArgument
	ReturnType ReturnType
	IsPublic   bool
}

// Macro is a #define.
type Macro struct {
	Name  string
	Value string
}

// Constant is a static constant.
type Constant struct {
	Name     string
	Type     Type
	Value    string
	Comments []Comment
}

// InstanceVariable is an ivar declared in the class extension.
type InstanceVariable struct {
	Name      string
	Returns   Type
	Modifiers []string
	Access    string
}

// Enumeration is an NS_ENUM / NS_OPTIONS declaration.
type Enumeration struct {
	Name     string
	Type     Type
	Values   []string
	IsPublic bool
	Comments []Comment
}

// BlockType is a block typedef.
type BlockType struct {
	Name       string
	Comments   []Comment
	Parameters []KeywordArgument
	ReturnType ReturnType
	IsPublic   bool
}

// Protocol is a protocol the generated class conforms to.
type Protocol struct {
	Name             string
	IncludedInHeader bool
}
