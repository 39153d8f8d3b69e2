// Package enumjsonanalysis reports why annotated enum declarations would be
// skipped by enumjson or generated with default options.
package enumjsonanalysis

import (
	"errors"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/sublee/enumjson/internal/codefmt"
	"github.com/sublee/enumjson/internal/enumjson/resolve"
	"github.com/sublee/enumjson/internal/enumjson/scan"
)

// Analyzer validates the usage of enumjson directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumjson",
	Doc:  "linter for enumjson directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	env := &passEnv{pass: pass}

	files := make(map[*token.File]bool, len(pass.Files))
	for _, file := range pass.Files {
		files[pass.Fset.File(file.Pos())] = true
	}

	r := resolve.New(env, func(err error) {
		var codeErr *codefmt.CodeError
		if !errors.As(err, &codeErr) {
			return
		}
		// Members of other packages are not in this pass.
		if !files[pass.Fset.File(codeErr.Pos())] {
			return
		}
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	})

	for _, decl := range scan.Decls(pass.Files, pass.TypesInfo) {
		r.Resolve(decl)
	}
	return nil, nil
}

// passEnv is a [resolve.Env] limited to the package under analysis. Other
// packages are unavailable because the generated code cannot be checked
// within this pass.
type passEnv struct {
	pass  *analysis.Pass
	index *scan.Index
}

func (e *passEnv) Fset() *token.FileSet { return e.pass.Fset }

func (e *passEnv) Package(path string) (*types.Package, error) {
	if path == e.pass.Pkg.Path() {
		return e.pass.Pkg, nil
	}
	return nil, resolve.ErrUnavailable
}

func (e *passEnv) Index(pkg *types.Package) *scan.Index {
	if pkg != e.pass.Pkg {
		return scan.NewScopeIndex(pkg)
	}
	if e.index == nil {
		e.index = scan.NewIndex(e.pass.Files, e.pass.TypesInfo)
	}
	return e.index
}

