package enumjsoninternal

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumjson/internal/enumjson/emit"
)

// Version is stamped into the header of generated files. It is set by the
// command from its build info.
var Version string

// BuildTag excludes generated files while loading packages, so that stale
// converters never hide declarations from the resolver.
const BuildTag = "enumjson"

// Main generates converters for the annotated enums in the packages matching
// patterns. It returns the generated code keyed by file path, relative to wd
// when possible.
//
// ctx cancels package loading. env is the environment of the go command. tags
// are extra build tags, comma separated. tests includes test files, so enums
// and converters declared in them are generated too.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) (map[string][]byte, error) {
	emit.Version = Version

	l := &loader{ctx: ctx, fset: token.NewFileSet(), wd: wd, env: env, tags: tags}
	pkgs, err := l.load(tests, patterns)
	if err != nil {
		return nil, err
	}
	prog := newProgram(l.fset, pkgs)

	// A converter package named by import path may be out of the import
	// graph of the enum package.
	if paths := prog.missingPackages(); len(paths) != 0 {
		slog.Debug("loading converter packages", "paths", paths)
		extra, err := l.load(false, paths)
		if err != nil {
			return nil, err
		}
		prog.add(extra)
	}

	g := newGenerator(ctx, prog)
	for _, pkg := range pkgs {
		g.collect(pkg)
	}
	g.generate()
	if len(g.errs) != 0 {
		return nil, sortedJoin(g.errs...)
	}

	files := make(map[string][]byte, len(g.outs))
	for path, key := range g.outs {
		files[l.rel(path)] = g.memo[key]
	}
	return files, nil
}

// loader loads packages into one file set, so that positions of every loaded
// package are comparable.
type loader struct {
	ctx  context.Context
	fset *token.FileSet
	wd   string
	env  []string
	tags string
}

func (l *loader) rel(path string) string {
	if rel, err := filepath.Rel(l.wd, path); err == nil {
		return rel
	}
	return path
}

func (l *loader) buildTags() string {
	if l.tags == "" {
		return BuildTag
	}
	return BuildTag + "," + l.tags
}

// load loads the packages matching patterns with syntax and types. Packages
// using generated methods do not type-check while generated files are
// excluded, so type errors are only logged. Any other error fails the
// loading.
func (l *loader) load(tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedModule,
		Context:    l.ctx,
		Dir:        l.wd,
		Env:        l.env,
		Fset:       l.fset,
		BuildFlags: []string{"-tags=" + l.buildTags()},
		Tests:      tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			if pkgErr.Kind == packages.TypeError {
				slog.Warn("type error", "pkg", pkg.PkgPath, "err", pkgErr.Error())
				continue
			}
			errs = append(errs, l.packageError(pkgErr))
		}
	}
	if len(errs) != 0 {
		return nil, sortedJoin(errs...)
	}
	return pkgs, nil
}

// packageError rewrites the position of a loading error relative to the
// working directory.
func (l *loader) packageError(err packages.Error) error {
	if err.Pos == "" {
		return errors.New(err.Msg)
	}
	path, lineCol, _ := strings.Cut(err.Pos, ":")
	err.Pos = l.rel(path) + ":" + lineCol
	return err
}

// sortedJoin joins errors flattened and ordered by message, so that the same
// failures are always reported the same way.
func sortedJoin(errs ...error) error {
	var flat []error
	var visit func(error)
	visit = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range joined.Unwrap() {
				visit(err)
			}
			return
		}
		if err != nil {
			flat = append(flat, err)
		}
	}
	for _, err := range errs {
		visit(err)
	}

	slices.SortStableFunc(flat, func(a, b error) int {
		return cmp.Compare(a.Error(), b.Error())
	})
	return errors.Join(flat...)
}
