// Package version tracks which WGSL language extensions a module's
// `enable` directives name, and validates them against the set this
// front end recognizes. WGSL has no version pragma; the `enable`
// directive is the module-level feature-gating surface.
package version

import (
	"fmt"
	"sort"

	"github.com/th13vn/wgslfront/pkg/ast"
)

// knownExtensions is the closed set of `enable` names this front end
// recognizes.
var knownExtensions = map[string]bool{
	"f16":                  true,
	"clip_distances":       true,
	"dual_source_blending": true,
	"subgroups":            true,
}

// KnownExtensions returns the closed set of recognized extension names
// in a stable, sorted order.
func KnownExtensions() []string {
	names := make([]string, 0, len(knownExtensions))
	for name := range knownExtensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownExtensionError reports an `enable` directive naming an
// extension this front end does not recognize.
type UnknownExtensionError struct {
	Name string
	Span ast.SourceSpan
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("%d:%d: unknown extension %q", e.Span.Start.Line, e.Span.Start.Column, e.Name)
}

// Validate walks module's enable directives in source order and reports
// the first one naming an extension outside KnownExtensions. One error
// per validation, like the parser's one diagnostic per compilation.
func Validate(module *ast.ShaderModule) error {
	for _, d := range module.Directives {
		if !knownExtensions[d.Name] {
			return &UnknownExtensionError{Name: d.Name, Span: d.Base}
		}
	}
	return nil
}
