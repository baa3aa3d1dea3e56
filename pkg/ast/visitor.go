package ast

import "fmt"

// Visitor dispatches over every concrete AST node kind. Each method
// receives the concrete node and returns an error to abort traversal; a
// nil error lets Walk descend into the node's children in declaration
// order.
//
// A pass embeds BaseVisitor and overrides only the methods it cares
// about. Walk calls through the Visitor interface value, so it always
// reaches the most-derived override even for traversal steps that
// originate deep inside Walk's own recursion.
type Visitor interface {
	VisitShaderModule(*ShaderModule) error
	VisitGlobalDirective(*GlobalDirective) error

	VisitBindingAttribute(*BindingAttribute) error
	VisitGroupAttribute(*GroupAttribute) error
	VisitLocationAttribute(*LocationAttribute) error
	VisitBuiltinAttribute(*BuiltinAttribute) error
	VisitStageAttribute(*StageAttribute) error
	VisitNativeAttribute(*NativeAttribute) error

	VisitArrayTypeRef(*ArrayTypeRef) error
	VisitNamedTypeRef(*NamedTypeRef) error
	VisitParameterizedTypeRef(*ParameterizedTypeRef) error

	VisitBoolLiteral(*BoolLiteral) error
	VisitIntLiteral(*IntLiteral) error
	VisitFloatLiteral(*FloatLiteral) error

	VisitLiteralExpr(*LiteralExpr) error
	VisitIdentifierExpr(*IdentifierExpr) error
	VisitArrayAccessExpr(*ArrayAccessExpr) error
	VisitStructureAccessExpr(*StructureAccessExpr) error
	VisitCallableExpr(*CallableExpr) error
	VisitUnaryExpr(*UnaryExpr) error

	VisitCompoundStatement(*CompoundStatement) error
	VisitReturnStatement(*ReturnStatement) error
	VisitAssignmentStatement(*AssignmentStatement) error
	VisitVariableStatement(*VariableStatement) error

	VisitFunctionDecl(*FunctionDecl) error
	VisitStructureDecl(*StructureDecl) error
	VisitVariableDecl(*VariableDecl) error
	VisitTypeAliasDecl(*TypeAliasDecl) error
	VisitNativeTypeDecl(*NativeTypeDecl) error

	VisitParameter(*Parameter) error
	VisitStructMember(*StructMember) error
}

// BaseVisitor implements every Visitor method as a no-op, so a pass only
// needs to override the handful of methods it cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitShaderModule(*ShaderModule) error                 { return nil }
func (BaseVisitor) VisitGlobalDirective(*GlobalDirective) error           { return nil }
func (BaseVisitor) VisitBindingAttribute(*BindingAttribute) error         { return nil }
func (BaseVisitor) VisitGroupAttribute(*GroupAttribute) error             { return nil }
func (BaseVisitor) VisitLocationAttribute(*LocationAttribute) error       { return nil }
func (BaseVisitor) VisitBuiltinAttribute(*BuiltinAttribute) error         { return nil }
func (BaseVisitor) VisitStageAttribute(*StageAttribute) error             { return nil }
func (BaseVisitor) VisitNativeAttribute(*NativeAttribute) error           { return nil }
func (BaseVisitor) VisitArrayTypeRef(*ArrayTypeRef) error                 { return nil }
func (BaseVisitor) VisitNamedTypeRef(*NamedTypeRef) error                 { return nil }
func (BaseVisitor) VisitParameterizedTypeRef(*ParameterizedTypeRef) error { return nil }
func (BaseVisitor) VisitBoolLiteral(*BoolLiteral) error                   { return nil }
func (BaseVisitor) VisitIntLiteral(*IntLiteral) error                     { return nil }
func (BaseVisitor) VisitFloatLiteral(*FloatLiteral) error                 { return nil }
func (BaseVisitor) VisitLiteralExpr(*LiteralExpr) error                   { return nil }
func (BaseVisitor) VisitIdentifierExpr(*IdentifierExpr) error             { return nil }
func (BaseVisitor) VisitArrayAccessExpr(*ArrayAccessExpr) error           { return nil }
func (BaseVisitor) VisitStructureAccessExpr(*StructureAccessExpr) error   { return nil }
func (BaseVisitor) VisitCallableExpr(*CallableExpr) error                 { return nil }
func (BaseVisitor) VisitUnaryExpr(*UnaryExpr) error                       { return nil }
func (BaseVisitor) VisitCompoundStatement(*CompoundStatement) error       { return nil }
func (BaseVisitor) VisitReturnStatement(*ReturnStatement) error           { return nil }
func (BaseVisitor) VisitAssignmentStatement(*AssignmentStatement) error   { return nil }
func (BaseVisitor) VisitVariableStatement(*VariableStatement) error       { return nil }
func (BaseVisitor) VisitFunctionDecl(*FunctionDecl) error                 { return nil }
func (BaseVisitor) VisitStructureDecl(*StructureDecl) error               { return nil }
func (BaseVisitor) VisitVariableDecl(*VariableDecl) error                 { return nil }
func (BaseVisitor) VisitTypeAliasDecl(*TypeAliasDecl) error               { return nil }
func (BaseVisitor) VisitNativeTypeDecl(*NativeTypeDecl) error             { return nil }
func (BaseVisitor) VisitParameter(*Parameter) error                       { return nil }
func (BaseVisitor) VisitStructMember(*StructMember) error                 { return nil }

// Walk traverses node, invoking the matching Visitor method before
// descending into children, and stops at the first non-nil error.
func Walk(node Node, visitor Visitor) error {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *ShaderModule:
		if err := visitor.VisitShaderModule(n); err != nil {
			return err
		}
		for _, d := range n.Directives {
			if err := Walk(d, visitor); err != nil {
				return err
			}
		}
		for _, s := range n.Structures {
			if err := Walk(s, visitor); err != nil {
				return err
			}
		}
		for _, v := range n.Variables {
			if err := Walk(v, visitor); err != nil {
				return err
			}
		}
		for _, a := range n.TypeAliases {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		for _, f := range n.Functions {
			if err := Walk(f, visitor); err != nil {
				return err
			}
		}
		return nil

	case *GlobalDirective:
		return visitor.VisitGlobalDirective(n)

	case *BindingAttribute:
		return visitor.VisitBindingAttribute(n)
	case *GroupAttribute:
		return visitor.VisitGroupAttribute(n)
	case *LocationAttribute:
		return visitor.VisitLocationAttribute(n)
	case *BuiltinAttribute:
		return visitor.VisitBuiltinAttribute(n)
	case *StageAttribute:
		return visitor.VisitStageAttribute(n)
	case *NativeAttribute:
		return visitor.VisitNativeAttribute(n)

	case *ArrayTypeRef:
		if err := visitor.VisitArrayTypeRef(n); err != nil {
			return err
		}
		if n.Element != nil {
			if err := Walk(n.Element, visitor); err != nil {
				return err
			}
		}
		if n.Count != nil {
			return Walk(n.Count, visitor)
		}
		return nil
	case *NamedTypeRef:
		return visitor.VisitNamedTypeRef(n)
	case *ParameterizedTypeRef:
		if err := visitor.VisitParameterizedTypeRef(n); err != nil {
			return err
		}
		return Walk(n.Element, visitor)

	case *BoolLiteral:
		return visitor.VisitBoolLiteral(n)
	case *IntLiteral:
		return visitor.VisitIntLiteral(n)
	case *FloatLiteral:
		return visitor.VisitFloatLiteral(n)

	case *LiteralExpr:
		if err := visitor.VisitLiteralExpr(n); err != nil {
			return err
		}
		return Walk(n.Literal, visitor)
	case *IdentifierExpr:
		return visitor.VisitIdentifierExpr(n)
	case *ArrayAccessExpr:
		if err := visitor.VisitArrayAccessExpr(n); err != nil {
			return err
		}
		if err := Walk(n.Expr, visitor); err != nil {
			return err
		}
		return Walk(n.Index, visitor)
	case *StructureAccessExpr:
		if err := visitor.VisitStructureAccessExpr(n); err != nil {
			return err
		}
		return Walk(n.Expr, visitor)
	case *CallableExpr:
		if err := visitor.VisitCallableExpr(n); err != nil {
			return err
		}
		if err := Walk(n.Target, visitor); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		return nil
	case *UnaryExpr:
		if err := visitor.VisitUnaryExpr(n); err != nil {
			return err
		}
		return Walk(n.Expr, visitor)

	case *CompoundStatement:
		if err := visitor.VisitCompoundStatement(n); err != nil {
			return err
		}
		for _, s := range n.Statements {
			if err := Walk(s, visitor); err != nil {
				return err
			}
		}
		return nil
	case *ReturnStatement:
		if err := visitor.VisitReturnStatement(n); err != nil {
			return err
		}
		if n.Expr != nil {
			return Walk(n.Expr, visitor)
		}
		return nil
	case *AssignmentStatement:
		if err := visitor.VisitAssignmentStatement(n); err != nil {
			return err
		}
		if n.Lhs != nil {
			if err := Walk(n.Lhs, visitor); err != nil {
				return err
			}
		}
		return Walk(n.Rhs, visitor)
	case *VariableStatement:
		if err := visitor.VisitVariableStatement(n); err != nil {
			return err
		}
		return Walk(n.Decl, visitor)

	case *FunctionDecl:
		if err := visitor.VisitFunctionDecl(n); err != nil {
			return err
		}
		for _, a := range n.Attributes {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		for _, p := range n.Parameters {
			if err := Walk(p, visitor); err != nil {
				return err
			}
		}
		for _, a := range n.ReturnAttributes {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		if n.ReturnType != nil {
			if err := Walk(n.ReturnType, visitor); err != nil {
				return err
			}
		}
		return Walk(n.Body, visitor)
	case *StructureDecl:
		if err := visitor.VisitStructureDecl(n); err != nil {
			return err
		}
		for _, a := range n.Attributes {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		for _, m := range n.Members {
			if err := Walk(m, visitor); err != nil {
				return err
			}
		}
		return nil
	case *VariableDecl:
		if err := visitor.VisitVariableDecl(n); err != nil {
			return err
		}
		for _, a := range n.Attributes {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		if n.Type != nil {
			if err := Walk(n.Type, visitor); err != nil {
				return err
			}
		}
		if n.Initializer != nil {
			return Walk(n.Initializer, visitor)
		}
		return nil
	case *TypeAliasDecl:
		if err := visitor.VisitTypeAliasDecl(n); err != nil {
			return err
		}
		return Walk(n.Type, visitor)
	case *NativeTypeDecl:
		return visitor.VisitNativeTypeDecl(n)

	case *Parameter:
		if err := visitor.VisitParameter(n); err != nil {
			return err
		}
		for _, a := range n.Attributes {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		return Walk(n.Type, visitor)
	case *StructMember:
		if err := visitor.VisitStructMember(n); err != nil {
			return err
		}
		for _, a := range n.Attributes {
			if err := Walk(a, visitor); err != nil {
				return err
			}
		}
		return Walk(n.Type, visitor)

	default:
		return fmt.Errorf("ast: Walk: unhandled node type %T", node)
	}
}
