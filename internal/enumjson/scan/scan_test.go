package scan_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumjson/internal/enumjson/scan"
)

func TestParseNotDirective(t *testing.T) {
	for _, text := range []string{
		"// enumjson:generate",
		"//go:generate enumjson",
		"//enumjson:",
		"//enumjson:gen-erate",
		"/*enumjson:generate*/",
	} {
		_, ok := scan.Parse(text, token.NoPos)
		assert.False(t, ok, text)
	}
}

func TestParseNoArgs(t *testing.T) {
	a, ok := scan.Parse("//enumjson:generate", token.Pos(10))
	require.True(t, ok)
	assert.Equal(t, "generate", a.Name)
	assert.Empty(t, a.Args)
	assert.Equal(t, token.Pos(10), a.Pos)
}

func TestParseArgs(t *testing.T) {
	a, ok := scan.Parse(`//enumjson:generate Status CamelCase=true PropertyName="user status"`, token.Pos(1))
	require.True(t, ok)
	require.Len(t, a.Args, 3)

	assert.Equal(t, "", a.Args[0].Key)
	assert.Equal(t, "Status", a.Args[0].Value)
	assert.Equal(t, token.Pos(1+len("//enumjson:generate ")), a.Args[0].Pos)

	assert.Equal(t, "CamelCase", a.Args[1].Key)
	assert.Equal(t, "true", a.Args[1].Value)

	assert.Equal(t, "PropertyName", a.Args[2].Key)
	assert.Equal(t, "user status", a.Args[2].Value)
	assert.Equal(t, `"user status"`, a.Args[2].Raw)
	assert.False(t, a.Args[2].Malformed)

	assert.Len(t, a.Positional(), 1)
	assert.Len(t, a.Named(), 2)
}

func TestParseQuoted(t *testing.T) {
	a, ok := scan.Parse(`//enumjson:description "say \"hi\"\tnow"   `+"`C:\\dir x`", token.NoPos)
	require.True(t, ok)
	require.Len(t, a.Args, 2)
	assert.Equal(t, "say \"hi\"\tnow", a.Args[0].Value)
	assert.Equal(t, `C:\dir x`, a.Args[1].Value)
}

func TestParseMalformed(t *testing.T) {
	a, ok := scan.Parse(`//enumjson:display Name="unterminated value`, token.NoPos)
	require.True(t, ok)
	require.Len(t, a.Args, 1)
	assert.Equal(t, "Name", a.Args[0].Key)
	assert.True(t, a.Args[0].Malformed)
	assert.Equal(t, `"unterminated value`, a.Args[0].Value)
}

func TestParseEqualsInValue(t *testing.T) {
	a, ok := scan.Parse(`//enumjson:description a=b=c "x=y"`, token.NoPos)
	require.True(t, ok)
	require.Len(t, a.Args, 2)
	assert.Equal(t, "a", a.Args[0].Key)
	assert.Equal(t, "b=c", a.Args[0].Value)
	assert.Equal(t, "", a.Args[1].Key)
	assert.Equal(t, "x=y", a.Args[1].Value)
}

func TestFind(t *testing.T) {
	as := []scan.Annotation{{Name: "display", Pos: 1}, {Name: "generate", Pos: 2}, {Name: "display", Pos: 3}}

	a, ok := scan.Find(as, "display")
	assert.True(t, ok)
	assert.Equal(t, token.Pos(1), a.Pos)

	_, ok = scan.Find(as, "converter")
	assert.False(t, ok)
}

func check(t *testing.T, src string) ([]*ast.File, *types.Info, *types.Package) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{Defs: make(map[*ast.Ident]types.Object)}
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("example.com/test", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return []*ast.File{file}, info, pkg
}

const src = `package test

// Color is a color.
//
//enumjson:generate CamelCase=true
//enumjson:converter ColorConverter
type Color int

type ColorConverter struct{}

const (
	// Red is red.
	//
	//enumjson:display Name="Crimson"
	Red Color = iota
	Green //enumjson:description "Leaf green"
	_
	Blue
)

//enumjson:description "ignored"
const Unrelated = "x"

//enumjson:display Name="Sky"
const Cyan Color = 10

const Crimson = Red

type (
	//enumjson:generate
	Grouped string

	Plain string
)
`

func TestDecls(t *testing.T) {
	files, info, _ := check(t, src)

	decls := scan.Decls(files, info)
	require.Len(t, decls, 2)

	assert.Equal(t, "Color", decls[0].Obj.Name())
	require.Len(t, decls[0].Annotations, 2)
	assert.Equal(t, "generate", decls[0].Annotations[0].Name)
	assert.Equal(t, "converter", decls[0].Annotations[1].Name)
	assert.Equal(t, decls[0].Obj.Pos(), decls[0].Pos())

	assert.Equal(t, "Grouped", decls[1].Obj.Name())
}

func TestIndexMembers(t *testing.T) {
	files, info, pkg := check(t, src)

	ix := scan.NewIndex(files, info)
	assert.Equal(t, 6, ix.Len())

	color := pkg.Scope().Lookup("Color").Type()
	members := ix.Members(color)

	var names []string
	for _, m := range members {
		names = append(names, m.Const.Name())
	}
	assert.Equal(t, []string{"Red", "Green", "Blue", "Cyan", "Crimson"}, names)

	assert.Equal(t, "display", members[0].Annotations[0].Name)
	assert.Equal(t, "description", members[1].Annotations[0].Name)
	assert.Empty(t, members[2].Annotations)
	require.Len(t, members[3].Annotations, 1)
	assert.Equal(t, "Sky", members[3].Annotations[0].Args[0].Value)
	assert.Empty(t, members[4].Annotations)
}

func TestScopeIndex(t *testing.T) {
	_, _, pkg := check(t, src)

	ix := scan.NewScopeIndex(pkg)
	members := ix.Members(pkg.Scope().Lookup("Color").Type())

	var names []string
	for _, m := range members {
		names = append(names, m.Const.Name())
		assert.Empty(t, m.Annotations)
	}
	assert.Equal(t, []string{"Red", "Green", "Blue", "Cyan", "Crimson"}, names)
}
