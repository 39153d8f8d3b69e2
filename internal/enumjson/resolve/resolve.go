// Package resolve turns enumjson directives into generation-ready descriptions
// of enum converters.
//
// Resolution is best-effort. Missing or malformed metadata never fails: the
// declaration is skipped, an option falls back to its default, or a member
// falls back to its identifier. Each such decision is passed to an optional
// report function so that linters and debug logs can explain it.
package resolve

import (
	"errors"
	"go/token"
	"go/types"
	"strings"

	"github.com/sublee/enumjson/internal/codefmt"
	"github.com/sublee/enumjson/internal/enumjson/scan"
)

// ErrUnavailable is returned by [Env.Package] for a package the environment
// cannot see. Declarations depending on such a package are skipped without
// any report.
var ErrUnavailable = errors.New("package unavailable")

// Env gives the resolver access to the type-checked program.
type Env interface {
	Fset() *token.FileSet

	// Package returns the package with the given import path. The package
	// must be one the generated code can be written into.
	Package(path string) (*types.Package, error)

	// Index returns the package-level constants of the package in
	// declaration order.
	Index(pkg *types.Package) *scan.Index
}

// Resolver resolves annotated declarations.
type Resolver struct {
	env    Env
	report func(error)
}

// New creates a [Resolver]. report receives a [*codefmt.CodeError] for each
// skipped declaration, ignored option, or ignored label. It may be nil.
func New(env Env, report func(error)) *Resolver {
	if report == nil {
		report = func(error) {}
	}
	return &Resolver{env: env, report: report}
}

// Resolve resolves the declaration. It returns false if no converter should be
// generated for it.
func (r *Resolver) Resolve(decl scan.Decl) (ResolvedEnumConversion, bool) {
	f := codefmt.New(decl.Obj.Pkg().Path(), r.env.Fset())

	gen, ok := scan.Find(decl.Annotations, scan.Generate)
	if !ok {
		return ResolvedEnumConversion{}, false
	}

	enum, ok := r.resolveEnum(f, decl, gen)
	if !ok {
		return ResolvedEnumConversion{}, false
	}

	conv, ok := scan.Find(decl.Annotations, scan.Converter)
	if !ok {
		r.report(f.Errorf(decl, "%o has no //enumjson:converter directive", decl.Obj))
		return ResolvedEnumConversion{}, false
	}

	converter, ok := r.resolveConverter(f, decl, conv)
	if !ok {
		return ResolvedEnumConversion{}, false
	}

	enumPkg := enum.Obj().Pkg()
	convPkg := converter.Obj().Pkg()
	samePkg := enumPkg.Path() == convPkg.Path()

	if !samePkg {
		if !enum.Obj().Exported() {
			r.report(f.Errorf(decl, "converter %t must be declared in package %s because %t is unexported", converter, enumPkg.Path(), enum))
			return ResolvedEnumConversion{}, false
		}
		if enumPkg.Name() == "main" {
			r.report(f.Errorf(decl, "converter %t cannot refer to %t in a main package", converter, enum))
			return ResolvedEnumConversion{}, false
		}
	}

	opts := r.parseOptions(f, decl, gen)
	if opts.TextMarshaler && !samePkg {
		r.report(f.Errorf(decl, "TextMarshaler ignored: converter %t is not declared in package %s", converter, enumPkg.Path()))
		opts.TextMarshaler = false
	}

	imps, locals := names(convPkg, enumPkg)
	target := ConverterTarget{
		ConverterTypeName: converter.Obj().Name(),
		PackageName:       convPkg.Name(),
		EnumPackage:       enumPkg.Path(),
		EnumName:          enum.Obj().Name(),
		EnumIsPublic:      decl.Obj.Exported() && enum.Obj().Exported(),
		Imports:           imps,
		Locals:            locals,
	}
	if !samePkg {
		target.ConverterNamespace = convPkg.Path()
	}

	return ResolvedEnumConversion{
		Options: opts,
		Members: r.resolveMembers(f, enum, samePkg),
		Target:  target,
	}, true
}

// resolveEnum resolves the type argument of the generate directive. Without an
// argument, the annotated type itself is the enum.
func (r *Resolver) resolveEnum(f codefmt.Formatter, decl scan.Decl, gen scan.Annotation) (*types.Named, bool) {
	typ := decl.Obj.Type()

	switch args := typeArgs(gen); len(args) {
	case 0:
	case 1:
		tv, err := types.Eval(r.env.Fset(), decl.Obj.Pkg(), args[0].Pos, args[0].Value)
		if err != nil || !tv.IsType() {
			r.report(f.Errorf(decl, "cannot resolve enum type %q", args[0].Value))
			return nil, false
		}
		typ = tv.Type
	default:
		r.report(f.Errorf(decl, "//enumjson:generate takes at most one type argument; got %d", len(args)))
		return nil, false
	}

	named, ok := types.Unalias(typ).(*types.Named)
	if !ok || named.TypeParams().Len() != 0 || named.TypeArgs().Len() != 0 {
		r.report(f.Errorf(decl, "%t is not an enum type", typ))
		return nil, false
	}
	if named.Obj().Pkg() == nil {
		r.report(f.Errorf(decl, "%t is not an enum type", typ))
		return nil, false
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		r.report(f.Errorf(decl, "%t is not an enum type; underlying type must be integer or string", named))
		return nil, false
	}
	return named, true
}

// resolveConverter resolves the single type argument of the converter
// directive. The argument is either a type expression valid in the file of
// the declaration, or a type name qualified by a full import path.
func (r *Resolver) resolveConverter(f codefmt.Formatter, decl scan.Decl, conv scan.Annotation) (*types.Named, bool) {
	if len(conv.Args) != 1 || conv.Args[0].Key != "" || conv.Args[0].Malformed {
		r.report(f.Errorf(decl, "//enumjson:converter takes exactly one type"))
		return nil, false
	}
	arg := conv.Args[0]

	var typ types.Type
	if tv, err := types.Eval(r.env.Fset(), decl.Obj.Pkg(), arg.Pos, arg.Value); err == nil && tv.IsType() {
		typ = tv.Type
	} else {
		path, name, ok := SplitQualified(arg.Value)
		if !ok {
			r.report(f.Errorf(decl, "cannot resolve converter type %q", arg.Value))
			return nil, false
		}

		pkg, err := r.env.Package(path)
		if errors.Is(err, ErrUnavailable) {
			return nil, false
		}
		if err != nil {
			r.report(f.Errorf(decl, "cannot resolve converter type %q: %s", arg.Value, err.Error()))
			return nil, false
		}

		obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			r.report(f.Errorf(decl, "cannot resolve converter type %q: no such type", arg.Value))
			return nil, false
		}
		typ = obj.Type()
	}

	named, ok := types.Unalias(typ).(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.TypeParams().Len() != 0 || named.TypeArgs().Len() != 0 {
		r.report(f.Errorf(decl, "converter %t must be a declared non-generic type", typ))
		return nil, false
	}
	switch named.Underlying().(type) {
	case *types.Interface, *types.Pointer:
		r.report(f.Errorf(decl, "converter %t cannot have methods", named))
		return nil, false
	}

	// The generated file is written into the converter package.
	if _, err := r.env.Package(named.Obj().Pkg().Path()); err != nil {
		if !errors.Is(err, ErrUnavailable) {
			r.report(f.Errorf(decl, "cannot generate converter %t: %s", named, err.Error()))
		}
		return nil, false
	}
	return named, true
}

// ConverterPackagePath returns the import path in the converter directive
// among the annotations, if the converter is qualified by a full import path.
// Drivers use it to load converter packages the annotated package does not
// import.
func ConverterPackagePath(as []scan.Annotation) (string, bool) {
	conv, ok := scan.Find(as, scan.Converter)
	if !ok || len(conv.Args) != 1 {
		return "", false
	}
	ref := conv.Args[0].Value
	if !strings.Contains(ref, "/") {
		return "", false
	}
	path, _, ok := SplitQualified(ref)
	return path, ok
}

// SplitQualified splits "example.com/pkg.Name" into the import path and the
// name.
func SplitQualified(ref string) (path, name string, ok bool) {
	dot := strings.LastIndexByte(ref, '.')
	if dot <= strings.LastIndexByte(ref, '/') {
		return "", "", false
	}
	path, name = ref[:dot], ref[dot+1:]
	if path == "" || !token.IsIdentifier(name) {
		return "", "", false
	}
	return path, name, true
}
