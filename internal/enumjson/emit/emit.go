// Package emit renders resolved enum conversions into Go source code.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/sublee/enumjson/internal/codefmt"
	"github.com/sublee/enumjson/internal/enumjson/resolve"
)

// Version is shown in the header of generated files if it is not empty.
var Version string

// FileName returns the name of the file generated for the conversion. The file
// belongs to the directory of the converter package.
func FileName(conv resolve.ResolvedEnumConversion) string {
	return strings.ToLower(conv.Target.ConverterTypeName) + "_enumjson.go"
}

// Emit generates the converter methods for the conversion. The result is
// deterministic: equal conversions produce identical code.
func Emit(conv resolve.ResolvedEnumConversion) []byte {
	var body bytes.Buffer
	e := &emitter{
		conv:  conv,
		w:     codefmt.NewWriter(&body, conv.Target.Imports),
		names: methodNames(conv.Target.EnumIsPublic),
		l:     conv.Target.Locals,
	}

	idents := make([]string, len(conv.Members))
	for i, m := range conv.Members {
		idents[i] = m.Identifier
	}
	visible := idents
	if conv.Options.TrimPrefix {
		visible = codefmt.TrimCommonWordPrefix(idents)
	}
	e.idents = make(map[string]string, len(idents))
	for i, ident := range idents {
		e.idents[ident] = visible[i]
	}

	e.property = conv.Target.EnumFullyQualifiedName()
	if conv.Options.HasPropertyName {
		e.property = conv.Options.PropertyName
	}

	e.encode()
	e.decode()
	e.labels()
	e.marshal()
	e.unmarshal()
	if conv.Options.TextMarshaler && conv.Target.ConverterNamespace == "" {
		e.textMarshaler()
	}

	return e.frame(body.Bytes())
}

// names are the names of the generated converter methods.
type names struct {
	Encode, Decode, Labels, Marshal, Unmarshal string
}

func methodNames(public bool) names {
	if public {
		return names{"Encode", "Decode", "Labels", "Marshal", "Unmarshal"}
	}
	return names{"encode", "decode", "labels", "marshal", "unmarshal"}
}

type emitter struct {
	conv     resolve.ResolvedEnumConversion
	w        *codefmt.Writer
	names    names
	property string
	idents   map[string]string // identifier -> visible identifier
	l        resolve.LocalNames
}

// qual returns the qualifier for identifiers declared in the enum package.
func (e *emitter) qual() string {
	if e.conv.Target.ConverterNamespace == "" {
		return ""
	}
	return e.w.Import(e.conv.Target.EnumPackage) + "."
}

func (e *emitter) enumType() string {
	return e.qual() + e.conv.Target.EnumName
}

// recv returns the converter type name.
func (e *emitter) recv() string {
	return e.conv.Target.ConverterTypeName
}

// visible returns the quoted visible string of the member.
func (e *emitter) visible(m resolve.EnumMemberDescriptor) string {
	if m.HasLabel {
		// Labels are already escaped.
		return `"` + m.Label + `"`
	}
	ident := e.idents[m.Identifier]
	if e.conv.Options.CamelCase {
		ident = codefmt.LowerInitial(ident)
	}
	return strconv.Quote(ident)
}

func (e *emitter) encode() {
	w := e.w
	errs := w.Import(resolve.ErrorsPath)

	l := e.l

	w.Printf("// %s returns the string form of %s.\n", e.names.Encode, l.Value)
	w.Printf("func (%s) %s(%s %s) (string, error) {\n", e.recv(), e.names.Encode, l.Value, e.enumType())
	w.Printf("switch %s {\n", l.Value)
	seen := make(map[string]bool)
	for _, m := range e.conv.Members {
		// Aliases would be duplicate cases.
		if seen[m.Value] {
			continue
		}
		seen[m.Value] = true
		w.Printf("case %s%s:\n", e.qual(), m.Identifier)
		w.Printf("return %s, nil\n", e.visible(m))
	}
	w.Printf("}\n")
	w.Printf("return \"\", &%s.EncodeError{Property: %s, Value: %s}\n", errs, strconv.Quote(e.property), l.Value)
	w.Printf("}\n\n")
}

func (e *emitter) decode() {
	w := e.w
	errs := w.Import(resolve.ErrorsPath)

	l := e.l

	w.Printf("// %s returns the member whose string form matches %s.\n", e.names.Decode, l.String)
	w.Printf("func (%s %s) %s(%s string) (%s, error) {\n", l.Converter, e.recv(), e.names.Decode, l.String, e.enumType())
	w.Printf("switch {\n")
	for _, m := range e.conv.Members {
		if e.conv.Options.CaseSensitive {
			w.Printf("case %s == %s:\n", l.String, e.visible(m))
		} else {
			w.Printf("case %s.EqualFold(%s, %s):\n", w.Import("strings"), l.String, e.visible(m))
		}
		w.Printf("return %s%s, nil\n", e.qual(), m.Identifier)
	}
	w.Printf("}\n")
	w.Printf("var %s %s\n", l.Zero, e.enumType())
	w.Printf("return %s, &%s.DecodeError{Property: %s, Input: %s, Labels: %s.%s()}\n", l.Zero, errs, strconv.Quote(e.property), l.String, l.Converter, e.names.Labels)
	w.Printf("}\n\n")
}

func (e *emitter) labels() {
	w := e.w

	w.Printf("// %s returns the string forms of all members in declaration order.\n", e.names.Labels)
	w.Printf("func (%s) %s() []string {\n", e.recv(), e.names.Labels)
	if len(e.conv.Members) == 0 {
		w.Printf("return []string{}\n")
	} else {
		w.Printf("return []string{\n")
		for _, m := range e.conv.Members {
			w.Printf("%s,\n", e.visible(m))
		}
		w.Printf("}\n")
	}
	w.Printf("}\n\n")
}

func (e *emitter) marshal() {
	w := e.w

	l := e.l

	w.Printf("// %s encodes %s as a JSON string.\n", e.names.Marshal, l.Value)
	w.Printf("func (%s %s) %s(%s %s) ([]byte, error) {\n", l.Converter, e.recv(), e.names.Marshal, l.Value, e.enumType())
	w.Printf("%s, %s := %s.%s(%s)\n", l.String, l.Err, l.Converter, e.names.Encode, l.Value)
	w.Printf("if %s != nil {\nreturn nil, %s\n}\n", l.Err, l.Err)
	w.Printf("return %s.Marshal(%s)\n", w.Import("encoding/json"), l.String)
	w.Printf("}\n\n")
}

func (e *emitter) unmarshal() {
	w := e.w

	l := e.l

	w.Printf("// %s decodes a JSON string into %s.\n", e.names.Unmarshal, l.Value)
	w.Printf("func (%s %s) %s(%s []byte, %s *%s) error {\n", l.Converter, e.recv(), e.names.Unmarshal, l.Data, l.Value, e.enumType())
	w.Printf("var %s string\n", l.String)
	w.Printf("if %s := %s.Unmarshal(%s, &%s); %s != nil {\nreturn %s\n}\n", l.Err, w.Import("encoding/json"), l.Data, l.String, l.Err, l.Err)
	w.Printf("%s, %s := %s.%s(%s)\n", l.Decoded, l.Err, l.Converter, e.names.Decode, l.String)
	w.Printf("if %s != nil {\nreturn %s\n}\n", l.Err, l.Err)
	w.Printf("*%s = %s\n", l.Value, l.Decoded)
	w.Printf("return nil\n")
	w.Printf("}\n\n")
}

// textMarshaler makes the enum implement encoding.TextMarshaler and
// encoding.TextUnmarshaler so that encoding/json uses the converter.
func (e *emitter) textMarshaler() {
	w := e.w
	l := e.l
	enum := e.conv.Target.EnumName

	w.Printf("// MarshalText implements encoding.TextMarshaler using %s.\n", e.recv())
	w.Printf("func (%s %s) MarshalText() ([]byte, error) {\n", l.Value, enum)
	w.Printf("var %s %s\n", l.Converter, e.recv())
	w.Printf("%s, %s := %s.%s(%s)\n", l.String, l.Err, l.Converter, e.names.Encode, l.Value)
	w.Printf("if %s != nil {\nreturn nil, %s\n}\n", l.Err, l.Err)
	w.Printf("return []byte(%s), nil\n", l.String)
	w.Printf("}\n\n")

	w.Printf("// UnmarshalText implements encoding.TextUnmarshaler using %s.\n", e.recv())
	w.Printf("func (%s *%s) UnmarshalText(%s []byte) error {\n", l.Value, enum, l.Text)
	w.Printf("var %s %s\n", l.Converter, e.recv())
	w.Printf("%s, %s := %s.%s(string(%s))\n", l.Decoded, l.Err, l.Converter, e.names.Decode, l.Text)
	w.Printf("if %s != nil {\nreturn %s\n}\n", l.Err, l.Err)
	w.Printf("*%s = %s\n", l.Value, l.Decoded)
	w.Printf("return nil\n")
	w.Printf("}\n\n")
}

// frame prepends the header, the package clause, and the used imports to the
// body.
func (e *emitter) frame(body []byte) []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !enumjson\n\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/enumjson%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", e.conv.Target.PackageName)

	if imps := e.w.Imports(); len(imps) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imps {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	buf.Write(body)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
