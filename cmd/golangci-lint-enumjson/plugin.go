// Package golangcilintenumjson registers the enumjson analyzer as a
// golangci-lint module plugin. It reports annotated enums which enumjson would
// skip and options which fall back to their defaults.
//
// Build a custom golangci-lint including it with a .custom-gcl.yml naming this
// module, then enable the "enumjson" linter:
//
//	golangci-lint custom
package golangcilintenumjson

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/enumjson/pkg/enumjsonanalysis"
)

func init() {
	register.Plugin(enumjsonanalysis.Analyzer.Name, New)
}

// New returns the plugin. It takes no settings.
func New(any) (register.LinterPlugin, error) {
	return plugin{}, nil
}

type plugin struct{}

func (plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumjsonanalysis.Analyzer}, nil
}

// GetLoadMode needs type information because the analyzer resolves enum and
// converter types.
func (plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
