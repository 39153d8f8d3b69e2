package resolve

import (
	"fmt"
	"slices"

	"github.com/sublee/enumjson/internal/codefmt"
)

// GenerationOptions controls how a converter is generated.
type GenerationOptions struct {
	// CaseSensitive makes decoding compare strings exactly. Otherwise
	// strings are compared with Unicode case folding.
	CaseSensitive bool

	// CamelCase lower-cases the first character of member identifiers used
	// as visible strings. It does not affect labels.
	CamelCase bool

	// TrimPrefix removes the words shared by the beginning of all member
	// identifiers, before CamelCase applies. It does not affect labels.
	TrimPrefix bool

	// PropertyName names the decoded value in error messages. If it is
	// absent, the fully qualified name of the enum is used.
	PropertyName    string
	HasPropertyName bool

	// TextMarshaler generates MarshalText and UnmarshalText methods on the
	// enum type delegating to the converter. It requires the converter to
	// be declared in the package of the enum.
	TextMarshaler bool
}

// DefaultOptions are the options used for any option not given explicitly.
var DefaultOptions = GenerationOptions{}

// EnumMemberDescriptor describes an enum member.
type EnumMemberDescriptor struct {
	// Identifier is the name of the constant.
	Identifier string

	// Label is the visible string from a label directive, escaped for a Go
	// interpreted string literal. It is meaningful only if HasLabel is
	// true.
	Label    string
	HasLabel bool

	// Value is the exact constant value. Members sharing a value are
	// aliases of the first one.
	Value string
}

// ConverterTarget identifies the converter type and the enum it converts.
type ConverterTarget struct {
	ConverterTypeName string

	// ConverterNamespace is the import path of the converter package. It is
	// empty if the converter is declared in the package of the enum.
	ConverterNamespace string

	// PackageName is the name of the converter package.
	PackageName string

	EnumPackage  string
	EnumName     string
	EnumIsPublic bool

	// Imports are the packages the generated file may refer to, with
	// collision-free names in the converter package.
	Imports []codefmt.Import

	// Locals name the identifiers declared inside generated methods. They
	// shadow neither imports nor package-level declarations of the converter
	// package, such as same-package members.
	Locals LocalNames
}

// LocalNames names the identifiers local to generated methods.
type LocalNames struct {
	Converter string // converter receiver or variable
	Value     string // enum value parameter or receiver
	String    string // visible string
	Decoded   string // decoded enum value
	Err       string
	Data      string // JSON input
	Text      string // text input of UnmarshalText
	Zero      string // zero enum value
}

// DefaultLocals are the local names used when nothing in the converter
// package conflicts with them.
var DefaultLocals = LocalNames{
	Converter: "c",
	Value:     "v",
	String:    "s",
	Decoded:   "d",
	Err:       "err",
	Data:      "data",
	Text:      "text",
	Zero:      "zero",
}

// EnumFullyQualifiedName returns the enum type name qualified by its import
// path.
func (t ConverterTarget) EnumFullyQualifiedName() string {
	return t.EnumPackage + "." + t.EnumName
}

// Equal reports whether t and u are identical.
func (t ConverterTarget) Equal(u ConverterTarget) bool {
	return t.ConverterTypeName == u.ConverterTypeName &&
		t.ConverterNamespace == u.ConverterNamespace &&
		t.PackageName == u.PackageName &&
		t.EnumPackage == u.EnumPackage &&
		t.EnumName == u.EnumName &&
		t.EnumIsPublic == u.EnumIsPublic &&
		slices.Equal(t.Imports, u.Imports) &&
		t.Locals == u.Locals
}

// ResolvedEnumConversion is everything needed to generate one converter. It is
// a value: equal conversions generate identical code.
type ResolvedEnumConversion struct {
	Options GenerationOptions
	Members []EnumMemberDescriptor
	Target  ConverterTarget
}

// Equal reports whether c and d are identical.
func (c ResolvedEnumConversion) Equal(d ResolvedEnumConversion) bool {
	return c.Options == d.Options &&
		slices.Equal(c.Members, d.Members) &&
		c.Target.Equal(d.Target)
}

// Key returns a string which is equal for equal conversions. It can be used
// as a memoization key.
func (c ResolvedEnumConversion) Key() string {
	return fmt.Sprintf("%#v", c)
}
