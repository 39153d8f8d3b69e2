package resolve

import (
	"strconv"
	"strings"

	"github.com/sublee/enumjson/internal/codefmt"
	"github.com/sublee/enumjson/internal/enumjson/scan"
)

// boolOptions are the boolean options of the generate directive. They may be
// given as a bare key meaning true.
var boolOptions = map[string]func(*GenerationOptions) *bool{
	"casesensitive": func(o *GenerationOptions) *bool { return &o.CaseSensitive },
	"camelcase":     func(o *GenerationOptions) *bool { return &o.CamelCase },
	"trimprefix":    func(o *GenerationOptions) *bool { return &o.TrimPrefix },
	"textmarshaler": func(o *GenerationOptions) *bool { return &o.TextMarshaler },
}

func isBoolOption(arg scan.Arg) bool {
	_, ok := boolOptions[strings.ToLower(arg.Value)]
	return arg.Key == "" && !arg.Malformed && ok
}

// typeArgs returns the positional arguments of the generate directive which
// are not bare options.
func typeArgs(gen scan.Annotation) []scan.Arg {
	var args []scan.Arg
	for _, arg := range gen.Positional() {
		if !isBoolOption(arg) {
			args = append(args, arg)
		}
	}
	return args
}

// parseOptions parses the options of the generate directive. Each option is
// parsed independently. An invalid value is reported and the option keeps its
// default.
func (r *Resolver) parseOptions(f codefmt.Formatter, decl scan.Decl, gen scan.Annotation) GenerationOptions {
	opts := DefaultOptions

	for _, arg := range gen.Args {
		if arg.Key == "" {
			if isBoolOption(arg) {
				*boolOptions[strings.ToLower(arg.Value)](&opts) = true
			}
			continue
		}

		key := strings.ToLower(arg.Key)
		if field, ok := boolOptions[key]; ok {
			v, err := strconv.ParseBool(arg.Value)
			if err != nil || arg.Malformed {
				r.report(f.Errorf(decl, "invalid %s value %s; using default", arg.Key, arg.Raw))
				continue
			}
			*field(&opts) = v
			continue
		}

		switch key {
		case "propertyname":
			if arg.Malformed || arg.Value == "" {
				r.report(f.Errorf(decl, "invalid %s value %s; using default", arg.Key, arg.Raw))
				continue
			}
			opts.PropertyName = arg.Value
			opts.HasPropertyName = true
		default:
			r.report(f.Errorf(decl, "unknown option %s", arg.Key))
		}
	}

	return opts
}
