// Package scan reads enumjson directives from Go source comments.
//
// A directive is a line comment of the form:
//
//	//enumjson:<name> arg key=value key="quoted value"
//
// Arguments are separated by whitespace. Quoted values follow the Go string
// literal syntax.
package scan

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
)

// Prefix starts every enumjson directive.
const Prefix = "//enumjson:"

// Directive names.
const (
	Generate    = "generate"
	Converter   = "converter"
	Display     = "display"
	Description = "description"
)

// Arg is an argument of a directive.
type Arg struct {
	// Key is the name of a named argument. It is empty for positional
	// arguments.
	Key string

	// Value is the unquoted value.
	Value string

	// Raw is the value as written.
	Raw string

	// Malformed reports that Raw looked like a quoted string but could not be
	// unquoted. Value holds Raw then.
	Malformed bool

	Pos token.Pos
}

// Annotation is a parsed directive.
type Annotation struct {
	Name string
	Args []Arg
	Pos  token.Pos
}

// Positional returns the positional arguments in order.
func (a Annotation) Positional() []Arg {
	var args []Arg
	for _, arg := range a.Args {
		if arg.Key == "" {
			args = append(args, arg)
		}
	}
	return args
}

// Named returns the named arguments in order.
func (a Annotation) Named() []Arg {
	var args []Arg
	for _, arg := range a.Args {
		if arg.Key != "" {
			args = append(args, arg)
		}
	}
	return args
}

// Parse parses a comment text as a directive. pos is the position of the
// comment. It returns false if the text is not an enumjson directive.
func Parse(text string, pos token.Pos) (Annotation, bool) {
	rest, ok := strings.CutPrefix(text, Prefix)
	if !ok {
		return Annotation{}, false
	}

	nameEnd := strings.IndexFunc(rest, unicode.IsSpace)
	if nameEnd == -1 {
		nameEnd = len(rest)
	}
	name := rest[:nameEnd]
	if name == "" || strings.IndexFunc(name, func(r rune) bool { return !unicode.IsLetter(r) }) != -1 {
		return Annotation{}, false
	}

	a := Annotation{Name: name, Pos: pos}
	offset := len(Prefix) + nameEnd
	for _, f := range fields(rest[nameEnd:]) {
		a.Args = append(a.Args, parseArg(f.text, pos+token.Pos(offset+f.offset)))
	}
	return a, true
}

// Annotations collects directives from comment groups in order. Nil groups
// are ignored.
func Annotations(groups ...*ast.CommentGroup) []Annotation {
	var as []Annotation
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if a, ok := Parse(c.Text, c.Slash); ok {
				as = append(as, a)
			}
		}
	}
	return as
}

// Find returns the first directive with the given name.
func Find(as []Annotation, name string) (Annotation, bool) {
	for _, a := range as {
		if a.Name == name {
			return a, true
		}
	}
	return Annotation{}, false
}

func parseArg(text string, pos token.Pos) Arg {
	arg := Arg{Raw: text, Value: text, Pos: pos}

	if i := strings.IndexByte(text, '='); i > 0 && isKey(text[:i]) {
		arg.Key = text[:i]
		arg.Raw = text[i+1:]
		arg.Value = arg.Raw
	}

	if strings.HasPrefix(arg.Raw, `"`) || strings.HasPrefix(arg.Raw, "`") {
		if v, err := strconv.Unquote(arg.Raw); err == nil {
			arg.Value = v
		} else {
			arg.Malformed = true
		}
	}
	return arg
}

func isKey(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}

type field struct {
	text   string
	offset int
}

// fields splits s around whitespace outside of quoted strings. An unterminated
// quote extends to the end of s.
func fields(s string) []field {
	var fs []field
	start := -1
	var quote rune
	escaped := false

	for i, r := range s {
		switch {
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\' && quote == '"':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue

		case unicode.IsSpace(r):
			if start != -1 {
				fs = append(fs, field{s[start:i], start})
				start = -1
			}
			continue
		}

		if start == -1 {
			start = i
		}
		if r == '"' || r == '`' {
			quote = r
		}
	}
	if start != -1 {
		fs = append(fs, field{s[start:], start})
	}
	return fs
}
