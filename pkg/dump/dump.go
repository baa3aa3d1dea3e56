// Package dump implements a deterministic WGSL pretty-printer: a
// stable, byte-for-byte testable rendering of a ShaderModule usable
// both as a golden-file target and as a second parser input.
package dump

import (
	"strconv"
	"strings"

	"github.com/th13vn/wgslfront/pkg/ast"
)

// Dump renders module in the stable pretty-printer format.
func Dump(module *ast.ShaderModule) string {
	d := &dumper{}
	d.visitModule(module)
	return d.out.String()
}

type dumper struct {
	out    strings.Builder
	indent int
}

func (d *dumper) writeIndent() {
	d.out.WriteString(strings.Repeat("    ", d.indent))
}

func (d *dumper) visitModule(m *ast.ShaderModule) {
	for _, dir := range m.Directives {
		d.out.WriteString("enable ")
		d.out.WriteString(dir.Name)
		d.out.WriteString(";\n")
	}
	if len(m.Directives) > 0 {
		d.out.WriteString("\n")
	}

	for _, s := range m.Structures {
		d.visitStruct(s)
	}
	if len(m.Structures) > 0 {
		d.out.WriteString("\n")
	}

	for _, v := range m.Variables {
		d.visitVariable(v)
		d.out.WriteString(";\n")
	}
	if len(m.Variables) > 0 {
		d.out.WriteString("\n")
	}

	for _, a := range m.TypeAliases {
		d.visitTypeAlias(a)
	}
	if len(m.TypeAliases) > 0 {
		d.out.WriteString("\n")
	}

	for _, f := range m.Functions {
		d.visitFunction(f)
		d.out.WriteString("\n")
	}
}

func (d *dumper) visitAttributesInline(attrs []ast.Attribute) {
	for i, a := range attrs {
		if i > 0 {
			d.out.WriteString(" ")
		}
		d.visitAttribute(a)
	}
}

func (d *dumper) visitAttribute(a ast.Attribute) {
	switch at := a.(type) {
	case *ast.BindingAttribute:
		d.out.WriteString("@binding(")
		d.out.WriteString(strconv.FormatUint(uint64(at.Binding), 10))
		d.out.WriteString(")")
	case *ast.GroupAttribute:
		d.out.WriteString("@group(")
		d.out.WriteString(strconv.FormatUint(uint64(at.Group), 10))
		d.out.WriteString(")")
	case *ast.LocationAttribute:
		d.out.WriteString("@location(")
		d.out.WriteString(strconv.FormatUint(uint64(at.Location), 10))
		d.out.WriteString(")")
	case *ast.BuiltinAttribute:
		d.out.WriteString("@builtin(")
		d.out.WriteString(at.Name)
		d.out.WriteString(")")
	case *ast.StageAttribute:
		d.out.WriteString("@" + at.Stage.String())
	case *ast.NativeAttribute:
		// Synthesized-only; never produced by the parser, nothing to dump.
	}
}

func (d *dumper) visitStruct(s *ast.StructureDecl) {
	d.writeIndent()
	if len(s.Attributes) > 0 {
		d.visitAttributesInline(s.Attributes)
		d.out.WriteString("\n")
		d.writeIndent()
	}
	d.out.WriteString("struct ")
	d.out.WriteString(s.Name)
	d.out.WriteString(" {")
	if len(s.Members) > 0 {
		d.out.WriteString("\n")
		d.indent++
		for _, m := range s.Members {
			d.visitStructMember(m)
			d.out.WriteString(";\n")
		}
		d.indent--
		d.writeIndent()
	}
	d.out.WriteString("}\n")
}

func (d *dumper) visitStructMember(m *ast.StructMember) {
	d.writeIndent()
	if len(m.Attributes) > 0 {
		d.visitAttributesInline(m.Attributes)
		d.out.WriteString(" ")
	}
	d.out.WriteString(m.Name)
	d.out.WriteString(": ")
	d.visitType(m.Type)
}

func (d *dumper) visitVariable(v *ast.VariableDecl) {
	d.writeIndent()
	if len(v.Attributes) > 0 {
		d.visitAttributesInline(v.Attributes)
		d.out.WriteString(" ")
	}
	d.out.WriteString("var")
	if v.Qualifier != nil {
		d.out.WriteString("<")
		d.out.WriteString(v.Qualifier.StorageClass.String())
		d.out.WriteString(",")
		d.out.WriteString(v.Qualifier.AccessMode.String())
		d.out.WriteString(">")
	}
	d.out.WriteString(" ")
	d.out.WriteString(v.Name)
	if v.Type != nil {
		d.out.WriteString(": ")
		d.visitType(v.Type)
	}
	if v.Initializer != nil {
		d.out.WriteString(" = ")
		d.visitExpr(v.Initializer)
	}
}

func (d *dumper) visitTypeAlias(a *ast.TypeAliasDecl) {
	d.writeIndent()
	d.out.WriteString("type ")
	d.out.WriteString(a.Name)
	d.out.WriteString(" = ")
	d.visitType(a.Type)
	d.out.WriteString(";\n")
}

func (d *dumper) visitFunction(f *ast.FunctionDecl) {
	d.writeIndent()
	if len(f.Attributes) > 0 {
		d.visitAttributesInline(f.Attributes)
		d.out.WriteString("\n")
		d.writeIndent()
	}
	d.out.WriteString("fn ")
	d.out.WriteString(f.Name)
	d.out.WriteString("(")
	if len(f.Parameters) > 0 {
		d.out.WriteString("\n")
		d.indent++
		for i, p := range f.Parameters {
			if i > 0 {
				d.out.WriteString(",\n")
			}
			d.visitParameter(p)
		}
		d.indent--
		d.out.WriteString("\n")
		d.writeIndent()
	}
	d.out.WriteString(")")
	if f.ReturnType != nil {
		d.out.WriteString(" -> ")
		if len(f.ReturnAttributes) > 0 {
			d.visitAttributesInline(f.ReturnAttributes)
			d.out.WriteString(" ")
		}
		d.visitType(f.ReturnType)
	}
	d.out.WriteString("\n")
	d.writeIndent()
	d.visitCompound(f.Body)
}

func (d *dumper) visitParameter(p *ast.Parameter) {
	d.writeIndent()
	if len(p.Attributes) > 0 {
		d.visitAttributesInline(p.Attributes)
		d.out.WriteString(" ")
	}
	d.out.WriteString(p.Name)
	d.out.WriteString(": ")
	d.visitType(p.Type)
}

func (d *dumper) visitCompound(c *ast.CompoundStatement) {
	d.out.WriteString("{")
	if len(c.Statements) > 0 {
		d.indent++
		d.out.WriteString("\n")
		for i, s := range c.Statements {
			if i > 0 {
				d.out.WriteString("\n")
			}
			d.visitStatement(s)
		}
		d.indent--
		d.out.WriteString("\n")
		d.writeIndent()
	}
	d.out.WriteString("}\n")
}

func (d *dumper) visitStatement(s ast.Statement) {
	switch st := s.(type) {
	case *ast.CompoundStatement:
		d.writeIndent()
		d.visitCompound(st)
	case *ast.ReturnStatement:
		d.writeIndent()
		d.out.WriteString("return")
		if st.Expr != nil {
			d.out.WriteString(" ")
			d.visitExpr(st.Expr)
		}
		d.out.WriteString(";")
	case *ast.AssignmentStatement:
		d.writeIndent()
		if st.Lhs != nil {
			d.visitExpr(st.Lhs)
		} else {
			d.out.WriteString("_")
		}
		d.out.WriteString(" = ")
		d.visitExpr(st.Rhs)
		d.out.WriteString(";")
	case *ast.VariableStatement:
		d.visitVariable(st.Decl)
		d.out.WriteString(";")
	}
}

func (d *dumper) visitExpr(e ast.Expression) {
	switch ex := e.(type) {
	case *ast.LiteralExpr:
		d.visitLiteral(ex.Literal)
	case *ast.IdentifierExpr:
		d.out.WriteString(ex.Name)
	case *ast.ArrayAccessExpr:
		d.visitExpr(ex.Expr)
		d.out.WriteString("[")
		d.visitExpr(ex.Index)
		d.out.WriteString("]")
	case *ast.StructureAccessExpr:
		d.visitExpr(ex.Expr)
		d.out.WriteString(".")
		d.out.WriteString(ex.Field)
	case *ast.CallableExpr:
		d.visitType(ex.Target)
		d.out.WriteString("(")
		for i, a := range ex.Args {
			if i > 0 {
				d.out.WriteString(", ")
			}
			d.visitExpr(a)
		}
		d.out.WriteString(")")
	case *ast.UnaryExpr:
		d.out.WriteString("-")
		d.visitExpr(ex.Expr)
	}
}

func (d *dumper) visitLiteral(l ast.Literal) {
	switch lit := l.(type) {
	case *ast.BoolLiteral:
		if lit.Value {
			d.out.WriteString("true")
		} else {
			d.out.WriteString("false")
		}
	case *ast.IntLiteral:
		d.out.WriteString(strconv.FormatInt(lit.Value, 10))
		switch lit.Suffix {
		case ast.IntSuffixI32:
			d.out.WriteString("i")
		case ast.IntSuffixU32:
			d.out.WriteString("u")
		}
	case *ast.FloatLiteral:
		d.out.WriteString(formatFloat(lit.Value))
		if lit.Suffix == ast.FloatSuffixF32 {
			d.out.WriteString("f")
		}
	}
}

// formatFloat always includes a decimal point, since this front end's
// lexer only takes the float-literal path when it sees '.', 'e'/'E', or
// a hex-float prefix; printing a whole number without one (e.g. "1")
// would reparse as an integer literal and break the round-trip.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (d *dumper) visitType(t ast.TypeRef) {
	switch ty := t.(type) {
	case *ast.ArrayTypeRef:
		d.out.WriteString("array")
		if ty.Element != nil {
			d.out.WriteString("<")
			d.visitType(ty.Element)
			if ty.Count != nil {
				d.out.WriteString(", ")
				d.visitExpr(ty.Count)
			}
			d.out.WriteString(">")
		}
	case *ast.NamedTypeRef:
		d.out.WriteString(ty.Name)
	case *ast.ParameterizedTypeRef:
		d.out.WriteString(ty.BaseType.String())
		d.out.WriteString("<")
		d.visitType(ty.Element)
		d.out.WriteString(">")
	}
}
