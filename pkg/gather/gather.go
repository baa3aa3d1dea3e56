// Package gather implements the entry-point gatherer pass: given a
// FunctionDecl carrying a Stage attribute, it walks the function's
// parameters and return type to assemble the ordered list of pipeline
// inputs and outputs, each annotated with its semantic and its resolved
// type.
package gather

import (
	"errors"
	"fmt"

	"github.com/th13vn/wgslfront/pkg/ast"
	"github.com/th13vn/wgslfront/pkg/types"
)

// ErrMissingSemantic is the sentinel wrapped by Error when an
// entry-point parameter or return type reaches a leaf with no
// @builtin/@location attribute attached.
var ErrMissingSemantic = errors.New("Expected semantic for entrypoint argument.")

// ErrUnresolvedType is the sentinel wrapped by Error when a named or
// parameterized type reference fails to resolve against the supplied
// Context.
var ErrUnresolvedType = errors.New("unresolved type reference")

// Error pairs one of the sentinels above with the span of the reference
// that triggered it.
type Error struct {
	Err  error
	Span ast.SourceSpan
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// EntryPointItem is one pipeline input or output: the dotted path from
// the parameter (or the bare return value) down to this leaf, its
// resolved type, and the semantic attribute annotating it.
type EntryPointItem struct {
	Path     []string
	Type     *types.Node `json:"type,omitempty"`
	Semantic ast.Attribute
}

// EntryPointItems is the result of gathering one entry point's pipeline
// interface.
type EntryPointItems struct {
	Inputs  []EntryPointItem
	Outputs []EntryPointItem
}

// Gather assembles fn's pipeline inputs and outputs against ctx. fn must
// carry a Stage attribute; calling Gather on a function that is not an
// entry point is a programming error and panics.
func Gather(fn *ast.FunctionDecl, ctx *types.Context) (EntryPointItems, error) {
	if !fn.IsEntryPoint() {
		panic("gather: Gather called on a function with no stage attribute")
	}

	var inputs []EntryPointItem
	for _, p := range fn.Parameters {
		g := &gatherer{ctx: ctx, path: []string{p.Name}, currentSemantic: p.Semantic()}
		if err := g.visitType(p.Type); err != nil {
			return EntryPointItems{}, err
		}
		inputs = append(inputs, g.items...)
	}

	var outputs []EntryPointItem
	if fn.ReturnType != nil && fn.MaybeStage().Stage != ast.StageCompute {
		g := &gatherer{ctx: ctx, currentSemantic: fn.MaybeReturnSemantic()}
		if err := g.visitType(fn.ReturnType); err != nil {
			return EntryPointItems{}, err
		}
		outputs = append(outputs, g.items...)
	}

	return EntryPointItems{Inputs: inputs, Outputs: outputs}, nil
}

// gatherer tracks the current semantic and path while walking a single
// parameter or return type. It embeds ast.BaseVisitor so it satisfies
// ast.Visitor, but its VisitXTypeRef methods are invoked directly by
// visitType rather than through ast.Walk: the gatherer resolves a type
// reference the moment it names a leaf and never recurses into a
// ParameterizedTypeRef's element the way a generic traversal would.
// Struct-member recursion, extending the path by member name, is the
// natural extension point once struct parameters are supported.
type gatherer struct {
	ast.BaseVisitor
	ctx             *types.Context
	currentSemantic ast.Attribute
	path            []string
	items           []EntryPointItem
}

// visitType dispatches directly to the matching Visit*TypeRef method for
// t's concrete kind, without descending into children.
func (g *gatherer) visitType(t ast.TypeRef) error {
	switch n := t.(type) {
	case *ast.ArrayTypeRef:
		return g.VisitArrayTypeRef(n)
	case *ast.NamedTypeRef:
		return g.VisitNamedTypeRef(n)
	case *ast.ParameterizedTypeRef:
		return g.VisitParameterizedTypeRef(n)
	default:
		return fmt.Errorf("gather: unhandled type reference %T", t)
	}
}

// VisitArrayTypeRef rejects array-typed entry-point arguments. The
// interface rule for them is unresolved, so this reports an error rather
// than emitting an item with no resolved type.
// TODO: resolve an element type here once array interface types are
// supported.
func (g *gatherer) VisitArrayTypeRef(n *ast.ArrayTypeRef) error {
	if g.currentSemantic == nil {
		return &Error{Err: ErrMissingSemantic, Span: n.Span()}
	}
	return &Error{Err: fmt.Errorf("%w: array-typed entry point arguments are not supported", ErrUnresolvedType), Span: n.Span()}
}

func (g *gatherer) VisitNamedTypeRef(n *ast.NamedTypeRef) error {
	if g.currentSemantic == nil {
		return &Error{Err: ErrMissingSemantic, Span: n.Span()}
	}
	resolved, ok := g.ctx.Lookup(n.Name)
	if !ok {
		return &Error{Err: ErrUnresolvedType, Span: n.Span()}
	}
	g.items = append(g.items, EntryPointItem{Path: g.copyPath(), Type: resolved, Semantic: g.currentSemantic})
	return nil
}

func (g *gatherer) VisitParameterizedTypeRef(n *ast.ParameterizedTypeRef) error {
	if g.currentSemantic == nil {
		return &Error{Err: ErrMissingSemantic, Span: n.Span()}
	}
	resolved, ok := g.ctx.Lookup(n.String())
	if !ok {
		return &Error{Err: ErrUnresolvedType, Span: n.Span()}
	}
	g.items = append(g.items, EntryPointItem{Path: g.copyPath(), Type: resolved, Semantic: g.currentSemantic})
	return nil
}

func (g *gatherer) copyPath() []string {
	return append([]string(nil), g.path...)
}
