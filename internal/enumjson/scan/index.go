package scan

import (
	"cmp"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"
)

// Decl is a package-level type declaration with directives attached to its
// doc comment.
type Decl struct {
	Obj         *types.TypeName
	Annotations []Annotation
}

// Pos returns the position of the declared type name.
func (d Decl) Pos() token.Pos { return d.Obj.Pos() }

// Name returns the declared type name.
func (d Decl) Name() string { return d.Obj.Name() }

// Decls returns the type declarations having any enumjson directive in the
// given files, in source order.
func Decls(files []*ast.File, info *types.Info) []Decl {
	var decls []Decl
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)

				as := Annotations(specDocs(gen, spec.Doc)...)
				if len(as) == 0 {
					continue
				}

				obj, ok := info.Defs[spec.Name].(*types.TypeName)
				if !ok {
					continue
				}
				decls = append(decls, Decl{Obj: obj, Annotations: as})
			}
		}
	}
	return decls
}

// specDocs returns the comment groups documenting a spec. The doc of the
// declaration counts only if the declaration is not grouped.
func specDocs(gen *ast.GenDecl, groups ...*ast.CommentGroup) []*ast.CommentGroup {
	if !gen.Lparen.IsValid() {
		groups = append([]*ast.CommentGroup{gen.Doc}, groups...)
	}
	return groups
}

// Member is a package-level constant with the directives attached to it.
type Member struct {
	Const       *types.Const
	Annotations []Annotation
}

// Index holds the package-level constants of a package in declaration order.
type Index struct {
	members []Member
}

// NewIndex indexes the package-level constants declared in the given files.
// Files are visited in the given order, and constants in each file in source
// order. Directives are read from the doc and line comments of each constant
// spec.
func NewIndex(files []*ast.File, info *types.Info) *Index {
	ix := &Index{}
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.ValueSpec)
				as := Annotations(specDocs(gen, spec.Doc, spec.Comment)...)

				for _, name := range spec.Names {
					if name.Name == "_" {
						continue
					}
					con, ok := info.Defs[name].(*types.Const)
					if !ok {
						continue
					}
					ix.members = append(ix.members, Member{Const: con, Annotations: as})
				}
			}
		}
	}
	return ix
}

// NewScopeIndex indexes the package-level constants of a package without
// syntax. Constants are ordered by position and carry no directives.
func NewScopeIndex(pkg *types.Package) *Index {
	var cons []*types.Const
	for _, name := range pkg.Scope().Names() {
		if con, ok := pkg.Scope().Lookup(name).(*types.Const); ok {
			cons = append(cons, con)
		}
	}
	slices.SortFunc(cons, func(a, b *types.Const) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	ix := &Index{members: make([]Member, len(cons))}
	for i, con := range cons {
		ix.members[i] = Member{Const: con}
	}
	return ix
}

// Len returns the number of indexed constants.
func (ix *Index) Len() int {
	return len(ix.members)
}

// Members returns the value-bearing constants of exactly the given type in
// declaration order.
func (ix *Index) Members(typ types.Type) []Member {
	var members []Member
	for _, m := range ix.members {
		if !types.Identical(m.Const.Type(), typ) {
			continue
		}
		if m.Const.Val().Kind() == constant.Unknown {
			// Invalid constant expressions carry no value.
			continue
		}
		members = append(members, m)
	}
	return members
}
