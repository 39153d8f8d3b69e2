// Package enumjsoninternal drives enumjson: it loads packages, resolves
// annotated enum declarations, and emits converter files.
package enumjsoninternal

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumjson/internal/codefmt"
	"github.com/sublee/enumjson/internal/enumjson/emit"
	"github.com/sublee/enumjson/internal/enumjson/resolve"
	"github.com/sublee/enumjson/internal/enumjson/scan"
)

// program is the set of loaded packages. It implements [resolve.Env].
type program struct {
	fset    *token.FileSet
	roots   []*packages.Package
	byPath  map[string]*packages.Package
	byTypes map[*types.Package]*packages.Package
	indexes map[*types.Package]*scan.Index
}

var _ resolve.Env = (*program)(nil)

func newProgram(fset *token.FileSet, roots []*packages.Package) *program {
	prog := &program{
		fset:    fset,
		roots:   roots,
		byPath:  make(map[string]*packages.Package),
		byTypes: make(map[*types.Package]*packages.Package),
		indexes: make(map[*types.Package]*scan.Index),
	}
	prog.add(roots)
	return prog
}

// add registers the packages and their dependencies. For test variants
// sharing an import path, the first registered package wins.
func (prog *program) add(pkgs []*packages.Package) {
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		if pkg.Types == nil {
			return
		}
		prog.byTypes[pkg.Types] = pkg
		if _, ok := prog.byPath[pkg.PkgPath]; !ok {
			prog.byPath[pkg.PkgPath] = pkg
		}
	})
}

// missingPackages returns the import paths of converter packages which are
// referred to by the root packages but not loaded.
func (prog *program) missingPackages() []string {
	var paths []string
	for _, pkg := range prog.roots {
		for _, decl := range scan.Decls(pkg.Syntax, pkg.TypesInfo) {
			path, ok := resolve.ConverterPackagePath(decl.Annotations)
			if !ok {
				continue
			}
			if _, ok := prog.byPath[path]; ok || slices.Contains(paths, path) {
				continue
			}
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return paths
}

func (prog *program) Fset() *token.FileSet { return prog.fset }

// Package returns a loaded package of the main module.
func (prog *program) Package(path string) (*types.Package, error) {
	pkg, ok := prog.byPath[path]
	if !ok || pkg.Types == nil {
		return nil, fmt.Errorf("package %s is not loaded", path)
	}
	if pkg.Module == nil || !pkg.Module.Main {
		return nil, fmt.Errorf("package %s is not in the main module", path)
	}
	return pkg.Types, nil
}

// Index returns the member index of the package. It is built on first use.
func (prog *program) Index(pkg *types.Package) *scan.Index {
	if ix, ok := prog.indexes[pkg]; ok {
		return ix
	}

	var ix *scan.Index
	if p, ok := prog.byTypes[pkg]; ok && len(p.Syntax) != 0 && p.TypesInfo != nil {
		ix = scan.NewIndex(p.Syntax, p.TypesInfo)
	} else {
		ix = scan.NewScopeIndex(pkg)
	}
	prog.indexes[pkg] = ix
	return ix
}

// dir returns the directory of the package.
func (prog *program) dir(path string) (string, bool) {
	pkg, ok := prog.byPath[path]
	if !ok {
		return "", false
	}
	files := slices.Concat(pkg.GoFiles, pkg.CompiledGoFiles)
	if len(files) == 0 {
		return "", false
	}
	return filepath.Dir(files[0]), true
}

// generator runs the resolver and the emitter over annotated declarations.
type generator struct {
	ctx      context.Context
	prog     *program
	resolver *resolve.Resolver

	decls *linkedhashmap.Map // declaration position -> pendingDecl
	memo  map[string][]byte  // conversion key -> code
	outs  map[string]string  // output path -> conversion key
	errs  []error
}

// pendingDecl is an annotated declaration collected from a package.
type pendingDecl struct {
	pkgPath string
	decl    scan.Decl
}

func newGenerator(ctx context.Context, prog *program) *generator {
	return &generator{
		ctx:  ctx,
		prog: prog,
		resolver: resolve.New(prog, func(err error) {
			slog.Debug("enumjson: " + err.Error())
		}),
		decls: linkedhashmap.New(),
		memo:  make(map[string][]byte),
		outs:  make(map[string]string),
	}
}

// collect gathers the annotated declarations of the package in source order.
// Test variants repeat the declarations of their package; the first package
// declaring a position wins.
func (g *generator) collect(pkg *packages.Package) {
	if pkg.TypesInfo == nil {
		return
	}
	for _, decl := range scan.Decls(pkg.Syntax, pkg.TypesInfo) {
		pos := g.prog.fset.Position(decl.Pos()).String()
		if _, ok := g.decls.Get(pos); ok {
			continue
		}
		g.decls.Put(pos, pendingDecl{pkgPath: pkg.PkgPath, decl: decl})
	}
}

// generate resolves and emits the collected declarations in collection order.
func (g *generator) generate() {
	it := g.decls.Iterator()
	for it.Next() {
		p := it.Value().(pendingDecl)
		decl := p.decl

		conv, ok := g.resolver.Resolve(decl)
		if !ok {
			continue
		}
		if slog.Default().Enabled(g.ctx, slog.LevelDebug) {
			slog.Debug("resolved "+decl.Obj.Name(), "conversion", spew.Sdump(conv))
		}

		out, ok := g.outPath(decl, conv)
		if !ok {
			continue
		}

		key := conv.Key()
		if prev, ok := g.outs[out]; ok && prev != key {
			f := codefmt.New(p.pkgPath, g.prog.fset)
			g.errs = append(g.errs, f.Errorf(decl, "converter %s is generated more than once into %s", conv.Target.ConverterTypeName, filepath.Base(out)))
			continue
		}
		g.outs[out] = key

		if _, ok := g.memo[key]; !ok {
			g.memo[key] = emit.Emit(conv)
		}
	}
}

// outPath returns the path of the file to generate in the directory of the
// converter package. If the converter is declared in a test file, the
// generated file is a test file too.
func (g *generator) outPath(decl scan.Decl, conv resolve.ResolvedEnumConversion) (string, bool) {
	convPath := conv.Target.ConverterNamespace
	if convPath == "" {
		convPath = conv.Target.EnumPackage
	}

	dir, ok := g.prog.dir(convPath)
	if !ok {
		slog.Warn("cannot locate converter package", "pkg", convPath)
		return "", false
	}

	scope := decl.Obj.Pkg().Scope()
	if decl.Obj.Pkg().Path() != convPath {
		scope = g.prog.byPath[convPath].Types.Scope()
	}

	name := emit.FileName(conv)
	if obj := scope.Lookup(conv.Target.ConverterTypeName); obj != nil {
		if strings.HasSuffix(g.prog.fset.Position(obj.Pos()).Filename, "_test.go") {
			name = strings.TrimSuffix(name, ".go") + "_test.go"
		}
	}
	return filepath.Join(dir, name), true
}
