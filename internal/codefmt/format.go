// Package codefmt formats Go code and diagnostics for enumjson.
package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
)

// Formatter renders types and objects as seen from one package, and positions
// relative to the working directory. Diagnostics about an enum are formatted
// from the package declaring it.
type Formatter struct {
	PkgPath string
	Fset    *token.FileSet
}

func New(pkgPath string, fset *token.FileSet) Formatter {
	return Formatter{PkgPath: pkgPath, Fset: fset}
}

// qualify omits the package of the formatter and names any other package.
func (f Formatter) qualify(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == f.PkgPath {
		return ""
	}
	return pkg.Name()
}

// Type returns the type as it would be written in the formatter's package.
//
// e.g., f.Type([types.Type for model.Status]) => "model.Status"
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualify)
}

// Obj returns the qualified name of the object.
//
// e.g., f.Obj([types.Object for model.StatusActive]) => "model.StatusActive"
func (f Formatter) Obj(obj types.Object) string {
	if q := f.qualify(obj.Pkg()); q != "" {
		return q + "." + obj.Name()
	}
	return obj.Name()
}

// Position resolves pos in the file set of the formatter. The result is
// invalid without a file set.
func (f Formatter) Position(pos token.Pos) token.Position {
	if f.Fset == nil || !pos.IsValid() {
		return token.Position{}
	}
	return f.Fset.Position(pos)
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition returns "file:line:column" with the file relative to the
// working directory when possible, or "-:-" for an invalid position.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
