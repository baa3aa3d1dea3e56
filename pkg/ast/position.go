// Package ast defines the AST node types produced by the WGSL parser.
//
// The node types are organized into five closed categories (Attribute,
// TypeRef, Literal, Expression, Statement) plus Declaration and the
// top-level ShaderModule that owns them all. Every node carries a
// SourceSpan; see Visitor for the traversal contract analysis passes rely
// on.
package ast

import "fmt"

// SourcePosition is a single point in a source buffer.
type SourcePosition struct {
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceSpan is a half-open range [Start, End) of source positions.
// Empty spans (Start == End) are legal for synthesized nodes such as the
// built-in type declarations seeded into a types.Context.
type SourceSpan struct {
	Start SourcePosition `json:"start"`
	End   SourcePosition `json:"end"`
}

func (s SourceSpan) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Contains reports whether other lies inside s, inclusive of s's bounds.
func (s SourceSpan) Contains(other SourceSpan) bool {
	return other.Start.Offset >= s.Start.Offset && other.End.Offset <= s.End.Offset
}

// Synthesized is the zero SourceSpan, used for built-in nodes that have
// no position in any real source buffer.
var Synthesized = SourceSpan{}
