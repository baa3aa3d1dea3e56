package ast

// Node is the minimal interface every AST node implements: a source span.
// Each of the five category interfaces (Attribute, TypeRef, Literal,
// Expression, Statement) and Declaration embed Node and add a
// discriminant method (AttributeKind(), TypeRefKind(), and so on) for
// their own closed set of variants.
type Node interface {
	Span() SourceSpan
}
