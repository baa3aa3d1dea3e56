package ast

// ExpressionKind discriminates the closed set of expression variants.
type ExpressionKind int

const (
	ExpressionLiteral ExpressionKind = iota
	ExpressionIdentifier
	ExpressionArrayAccess
	ExpressionStructureAccess
	ExpressionCallable
	ExpressionUnary
)

func (k ExpressionKind) String() string {
	switch k {
	case ExpressionLiteral:
		return "LiteralExpr"
	case ExpressionIdentifier:
		return "Identifier"
	case ExpressionArrayAccess:
		return "ArrayAccess"
	case ExpressionStructureAccess:
		return "StructureAccess"
	case ExpressionCallable:
		return "Callable"
	case ExpressionUnary:
		return "Unary"
	default:
		return "Unknown"
	}
}

// UnaryOp is the closed set of unary operators; today only negation.
type UnaryOp int

const (
	UnaryNegate UnaryOp = iota
)

// Expression is the interface implemented by every expression node.
type Expression interface {
	Node
	ExpressionKind() ExpressionKind
}

// LiteralExpr wraps a Literal in expression position.
type LiteralExpr struct {
	Base    SourceSpan
	Literal Literal
}

func (e *LiteralExpr) Span() SourceSpan               { return e.Base }
func (e *LiteralExpr) ExpressionKind() ExpressionKind { return ExpressionLiteral }

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	Base SourceSpan
	Name string
}

func (e *IdentifierExpr) Span() SourceSpan               { return e.Base }
func (e *IdentifierExpr) ExpressionKind() ExpressionKind { return ExpressionIdentifier }

// ArrayAccessExpr is `base[index]`.
type ArrayAccessExpr struct {
	Base  SourceSpan
	Expr  Expression
	Index Expression
}

func (e *ArrayAccessExpr) Span() SourceSpan               { return e.Base }
func (e *ArrayAccessExpr) ExpressionKind() ExpressionKind { return ExpressionArrayAccess }

// StructureAccessExpr is `base.field`.
type StructureAccessExpr struct {
	Base  SourceSpan
	Expr  Expression
	Field string
}

func (e *StructureAccessExpr) Span() SourceSpan               { return e.Base }
func (e *StructureAccessExpr) ExpressionKind() ExpressionKind { return ExpressionStructureAccess }

// CallableExpr is a type-constructor or function call: `vec4<f32>(...)`,
// `array<f32, 4>(...)`, `foo(...)`. The target is always a TypeRef; a
// plain function call is modeled as a NamedTypeRef target, since this
// front end does not type-check call targets.
type CallableExpr struct {
	Base   SourceSpan
	Target TypeRef
	Args   []Expression
}

func (e *CallableExpr) Span() SourceSpan               { return e.Base }
func (e *CallableExpr) ExpressionKind() ExpressionKind { return ExpressionCallable }

// UnaryExpr is a prefix unary operator applied to an expression.
type UnaryExpr struct {
	Base SourceSpan
	Op   UnaryOp
	Expr Expression
}

func (e *UnaryExpr) Span() SourceSpan               { return e.Base }
func (e *UnaryExpr) ExpressionKind() ExpressionKind { return ExpressionUnary }
