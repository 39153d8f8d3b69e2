package codefmt

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Import is a package the generated code may refer to, with the name chosen
// for it in the generated file. HasAlias reports that Name differs from the
// package name and must be declared.
type Import struct {
	Name     string
	Path     string
	HasAlias bool
}

// Writer is a writer for generated code. It records which of the known
// imports are referred to so that only those are declared.
type Writer struct {
	w     io.Writer
	known map[string]Import
	used  map[string]Import
}

// NewWriter creates a new [Writer] which may refer to the given imports.
func NewWriter(w io.Writer, imports []Import) *Writer {
	known := make(map[string]Import, len(imports))
	for _, imp := range imports {
		known[imp.Path] = imp
	}
	return &Writer{
		w:     w,
		known: known,
		used:  make(map[string]Import),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.w, format, args...)
}

// Import returns the name of the imported package with the given path and
// records the import.
//
//	jsonName := w.Import("encoding/json")
//	w.Printf("%s.Marshal(s)", jsonName)
//
// Panics if the path was not given to [NewWriter].
func (w *Writer) Import(path string) string {
	imp, ok := w.known[path]
	if !ok {
		panic(fmt.Sprintf("codefmt: unknown import %q", path))
	}
	w.used[path] = imp
	return imp.Name
}

// Imports returns the recorded imports sorted by path.
func (w *Writer) Imports() []Import {
	imps := make([]Import, 0, len(w.used))
	for _, imp := range w.used {
		imps = append(imps, imp)
	}
	slices.SortFunc(imps, func(a, b Import) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return imps
}
