package codefmt

import (
	"go/types"
	"iter"
	"strconv"
)

// NS is the set of identifiers taken in a generated file. It picks import
// names which neither shadow nor are shadowed by other declarations.
type NS map[string]struct{}

// NewNS takes every package-level name of scope and the extra names, such as
// the parameters of generated methods.
func NewNS(scope *types.Scope, taken ...string) NS {
	ns := make(NS)
	if scope != nil {
		for _, name := range scope.Names() {
			ns.Reserve(name)
		}
	}
	for _, name := range taken {
		ns.Reserve(name)
	}
	return ns
}

// Reserve takes name. It returns false if name was already taken.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name takes and returns the first free candidate of [Candidates] for name.
//
// Panics if name is empty.
func (ns NS) Name(name string) string {
	for c := range Candidates(name) {
		if ns.Reserve(c) {
			return c
		}
	}
	panic("unreachable")
}

// Candidates yields name and then numbered variants of it: "json", "json2",
// "json3", and so on. A name ending with a digit is numbered after an
// underscore, so "model2" is followed by "model2_2".
//
// Panics if name is empty.
func Candidates(name string) iter.Seq[string] {
	if name == "" {
		panic("codefmt: empty name")
	}

	sep := ""
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		sep = "_"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; ; i++ {
			if !yield(name + sep + strconv.Itoa(i)) {
				return
			}
		}
	}
}
