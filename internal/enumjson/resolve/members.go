package resolve

import (
	"cmp"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/sublee/enumjson/internal/codefmt"
	"github.com/sublee/enumjson/internal/enumjson/scan"
)

// labelProvider extracts a visible string from a member directive.
type labelProvider func(a scan.Annotation) (string, bool)

// labelProviders are tried in order on each directive of a member. The first
// directive yielding a label wins.
var labelProviders = []labelProvider{
	displayLabel,
	descriptionLabel,
}

// displayLabel reads //enumjson:display Name="...".
func displayLabel(a scan.Annotation) (string, bool) {
	if a.Name != scan.Display {
		return "", false
	}
	for _, arg := range a.Named() {
		if strings.EqualFold(arg.Key, "Name") && !arg.Malformed {
			return arg.Value, true
		}
	}
	return "", false
}

// descriptionLabel reads //enumjson:description "...".
func descriptionLabel(a scan.Annotation) (string, bool) {
	if a.Name != scan.Description || len(a.Args) != 1 {
		return "", false
	}
	arg := a.Args[0]
	if arg.Key != "" || arg.Malformed {
		return "", false
	}
	return arg.Value, true
}

func (r *Resolver) resolveMembers(f codefmt.Formatter, enum *types.Named, samePkg bool) []EnumMemberDescriptor {
	members := make([]EnumMemberDescriptor, 0)

	for _, m := range r.env.Index(enum.Obj().Pkg()).Members(enum) {
		if !samePkg && !m.Const.Exported() {
			r.report(f.Errorf(m.Const, "%o is skipped: unexported member is not accessible from the converter", m.Const))
			continue
		}

		d := EnumMemberDescriptor{
			Identifier: m.Const.Name(),
			Value:      m.Const.Val().ExactString(),
		}
		if label, ok := r.label(f, m); ok {
			d.Label = escapeLabel(label)
			d.HasLabel = true
		}
		members = append(members, d)
	}

	return members
}

// label returns the first label provided by the directives of the member.
func (r *Resolver) label(f codefmt.Formatter, m scan.Member) (string, bool) {
	for _, a := range m.Annotations {
		for _, provide := range labelProviders {
			if label, ok := provide(a); ok {
				return label, true
			}
		}
		if a.Name == scan.Display || a.Name == scan.Description {
			r.report(f.Errorf(m.Const, "malformed //enumjson:%s directive on %o is ignored", a.Name, m.Const))
		}
	}
	return "", false
}

// escapeLabel escapes a label for a Go interpreted string literal without the
// surrounding quotes.
func escapeLabel(label string) string {
	q := strconv.Quote(label)
	return q[1 : len(q)-1]
}

// ErrorsPath is the import path of the runtime error types referred to by
// generated code.
const ErrorsPath = "github.com/sublee/enumjson/pkg/enumjsonerrors"

// names chooses names for the packages the generated file may import and for
// the locals of generated methods. Neither conflicts with the package-level
// declarations of the converter package nor with each other, so members
// referred to unqualified are never shadowed.
func names(convPkg, enumPkg *types.Package) ([]codefmt.Import, LocalNames) {
	imps := []codefmt.Import{
		{Name: "json", Path: "encoding/json"},
		{Name: "strings", Path: "strings"},
		{Name: "enumjsonerrors", Path: ErrorsPath},
	}
	if enumPkg.Path() != convPkg.Path() {
		imps = append(imps, codefmt.Import{Name: enumPkg.Name(), Path: enumPkg.Path()})
	}
	slices.SortFunc(imps, func(a, b codefmt.Import) int {
		return cmp.Compare(a.Path, b.Path)
	})

	ns := codefmt.NewNS(convPkg.Scope())
	for i := range imps {
		name := ns.Name(imps[i].Name)
		imps[i].HasAlias = name != imps[i].Name
		imps[i].Name = name
	}

	d := DefaultLocals
	locals := LocalNames{
		Converter: ns.Name(d.Converter),
		Value:     ns.Name(d.Value),
		String:    ns.Name(d.String),
		Decoded:   ns.Name(d.Decoded),
		Err:       ns.Name(d.Err),
		Data:      ns.Name(d.Data),
		Text:      ns.Name(d.Text),
		Zero:      ns.Name(d.Zero),
	}
	return imps, locals
}
