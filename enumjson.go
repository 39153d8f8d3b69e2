// Package enumjson generates JSON converters for Go enums.
//
// An enum in Go is a named integer or string type with a set of constants.
// Hand-written encoders for them tend to drift from the constants. Enumjson
// reads directives in comments and generates the converter once:
//
//	//enumjson:generate
//	//enumjson:converter StatusConverter
//	type Status int
//
//	type StatusConverter struct{}
//
//	const (
//		StatusActive Status = iota
//		StatusInactive //enumjson:display Name="Not active"
//	)
//
// Run the enumjson command in the package directory. It writes
// statusconverter_enumjson.go next to the converter type:
//
//	go run github.com/sublee/enumjson/cmd/enumjson
//
// Or, with go generate:
//
//	//go:generate go run github.com/sublee/enumjson/cmd/enumjson
//
// The generated methods are declared on the converter type:
//
//	// generated: (simplified)
//	func (StatusConverter) Encode(v Status) (string, error)
//	func (StatusConverter) Decode(s string) (Status, error)
//	func (StatusConverter) Labels() []string
//	func (StatusConverter) Marshal(v Status) ([]byte, error)
//	func (StatusConverter) Unmarshal(data []byte, v *Status) error
//
// If the annotated type is unexported, the methods are unexported too.
//
// # Directives
//
// The doc comment of a type declaration may have:
//
//	//enumjson:generate [Type] [CaseSensitive=bool] [CamelCase=bool] [TrimPrefix=bool] [PropertyName="name"] [TextMarshaler=bool]
//	//enumjson:converter [importpath.]Name
//
// The optional Type of generate is the enum type. It defaults to the annotated
// type, so the directives may be placed on the converter type instead:
//
//	//enumjson:generate model.Status
//	//enumjson:converter StatusConverter
//	type StatusConverter struct{}
//
// The converter must be a declared non-generic type which can have methods.
// It may be declared in another package. Refer it by the full import path if
// the enum package does not import it:
//
//	//enumjson:converter example.com/app/jsonconv.StatusConverter
//
// Then the generated file is written into that package. Unexported members are
// not accessible from there, so they are left out.
//
// Options are matched case-insensitively. A bare boolean option means true:
//
//   - CaseSensitive makes Decode compare exactly. Otherwise, strings are
//     compared by Unicode case folding. Default is false.
//   - CamelCase lower-cases the first letter of constant names. "StatusActive"
//     becomes "statusActive". Labels are not affected. Default is false.
//   - TrimPrefix removes the words shared by the beginning of all constant
//     names. StatusActive and StatusGone become "Active" and "Gone". It
//     applies before CamelCase. Labels are not affected. Default is false.
//   - PropertyName names the value in errors. Default is the enum type name
//     qualified by its import path.
//   - TextMarshaler additionally implements encoding.TextMarshaler and
//     encoding.TextUnmarshaler on the enum, so encoding/json uses the
//     converter for the enum type everywhere. It requires the converter to be
//     declared in the enum package. Default is false.
//
// An invalid option value is ignored and the default is used.
//
// # Labels
//
// A constant's string form is its name unless a label is given in its doc or
// line comment:
//
//	//enumjson:display Name="Not active"
//	//enumjson:description "Not active"
//
// When a constant has several label directives, the first one wins.
// Constants sharing a value are all accepted by Decode, but Encode returns the
// string form of the first one.
//
// # Errors
//
// Decode returns [github.com/sublee/enumjson/pkg/enumjsonerrors.DecodeError]
// for unknown strings, and Encode returns
// [github.com/sublee/enumjson/pkg/enumjsonerrors.EncodeError] for undeclared
// values. Both wrap [github.com/sublee/enumjson/pkg/enumjsonerrors.ErrNoMatch].
//
// Declarations which cannot be generated are skipped silently. Run the
// enumjson command with -debug, or the analyzer in
// [github.com/sublee/enumjson/pkg/enumjsonanalysis], to see why.
//
// # Generated files
//
// Generated files have the "!enumjson" build constraint. Enumjson loads
// packages with the "enumjson" build tag, so stale generated code never
// affects generation.
package enumjson
