package codefmt

import (
	"fmt"
	"go/types"
)

// verbArg lets objects and types in diagnostic arguments be formatted by the
// enumjson verbs:
//
//	%o: a types.Object, e.g. "model.StatusActive"
//	%t: a types.Type or the type of a types.Object, e.g. "model.Status"
//
// Other verbs format the wrapped value as fmt would.
type verbArg struct {
	x any
	f Formatter
}

func (f Formatter) wrapArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case types.Object, types.Type:
			wrapped[i] = verbArg{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

func (a verbArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'o':
		if obj, ok := a.x.(types.Object); ok {
			fmt.Fprint(s, a.f.Obj(obj))
			return
		}
		fmt.Fprintf(s, "%%!o(%T)", a.x)

	case 't':
		switch x := a.x.(type) {
		case types.Type:
			fmt.Fprint(s, a.f.Type(x))
		case types.Object:
			fmt.Fprint(s, a.f.Type(x.Type()))
		}

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
	}
}

// Sprintf formats like fmt.Sprintf with the enumjson verbs.
func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapArgs(args)...)
}
