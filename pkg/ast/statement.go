package ast

// StatementKind discriminates the closed set of statement variants.
type StatementKind int

const (
	StatementCompound StatementKind = iota
	StatementReturn
	StatementAssignment
	StatementVariable
)

func (k StatementKind) String() string {
	switch k {
	case StatementCompound:
		return "Compound"
	case StatementReturn:
		return "Return"
	case StatementAssignment:
		return "Assignment"
	case StatementVariable:
		return "VariableStmt"
	default:
		return "Unknown"
	}
}

// Statement is the interface implemented by every statement node.
type Statement interface {
	Node
	StatementKind() StatementKind
}

// CompoundStatement is a `{ ... }` block.
type CompoundStatement struct {
	Base       SourceSpan
	Statements []Statement
}

func (s *CompoundStatement) Span() SourceSpan          { return s.Base }
func (s *CompoundStatement) StatementKind() StatementKind { return StatementCompound }

// ReturnStatement is `return expr?;`.
type ReturnStatement struct {
	Base SourceSpan
	Expr Expression // nil if bare `return;`
}

func (s *ReturnStatement) Span() SourceSpan          { return s.Base }
func (s *ReturnStatement) StatementKind() StatementKind { return StatementReturn }

// AssignmentStatement is `lhs = rhs;`. Lhs is nil only when the dumper
// needs to render a discarded `_` target the parser itself never
// produces.
type AssignmentStatement struct {
	Base SourceSpan
	Lhs  Expression
	Rhs  Expression
}

func (s *AssignmentStatement) Span() SourceSpan          { return s.Base }
func (s *AssignmentStatement) StatementKind() StatementKind { return StatementAssignment }

// VariableStatement wraps a `var` declaration used as a statement inside
// a function body.
type VariableStatement struct {
	Base SourceSpan
	Decl *VariableDecl
}

func (s *VariableStatement) Span() SourceSpan          { return s.Base }
func (s *VariableStatement) StatementKind() StatementKind { return StatementVariable }
