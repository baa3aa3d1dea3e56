package builder

import (
	"github.com/th13vn/wgslfront/internal/lexer"
	"github.com/th13vn/wgslfront/pkg/ast"
)

// parseTypeName recognizes the three TypeRef syntaxes: array types,
// parameterized vector/matrix constructors, and bare named types.
func (b *Builder) parseTypeName() (ast.TypeRef, error) {
	start := b.cur

	switch b.cur.Kind {
	case lexer.KeywordArray:
		return b.parseArrayTypeRef(start)
	case lexer.KeywordI32, lexer.KeywordU32, lexer.KeywordF32, lexer.KeywordBool:
		name := b.cur.Kind.String()
		b.advance()
		return &ast.NamedTypeRef{Name: name, Base: b.spanSince(start)}, nil
	case lexer.Identifier:
		name := b.cur.Text
		base, isParam := ast.ParameterizedBaseFromName(name)
		b.advance()
		if isParam && b.check(lexer.Lt) {
			return b.parseParameterizedTypeRef(start, base)
		}
		return &ast.NamedTypeRef{Name: name, Base: b.spanSince(start)}, nil
	default:
		return nil, b.errorf("expected type name, got %s", b.cur.Kind)
	}
}

func (b *Builder) parseParameterizedTypeRef(start lexer.Token, base ast.ParameterizedBase) (ast.TypeRef, error) {
	if _, err := b.expect(lexer.Lt); err != nil {
		return nil, err
	}
	elem, err := b.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.Gt); err != nil {
		return nil, err
	}
	return &ast.ParameterizedTypeRef{BaseType: base, Element: elem, Base: b.spanSince(start)}, nil
}

// parseArrayTypeRef handles `array`, `array<elem>`, and `array<elem,
// count>`. A bare `array` with no angle-bracket clause is accepted in every
// position parseTypeName is called from; in expression position the caller
// (parsePrimary) additionally requires a following '(' argument list.
func (b *Builder) parseArrayTypeRef(start lexer.Token) (ast.TypeRef, error) {
	if _, err := b.expect(lexer.KeywordArray); err != nil {
		return nil, err
	}
	if !b.check(lexer.Lt) {
		return &ast.ArrayTypeRef{Base: b.spanSince(start)}, nil
	}
	b.advance()

	elem, err := b.parseTypeName()
	if err != nil {
		return nil, err
	}

	var count ast.Expression
	if b.check(lexer.Comma) {
		b.advance()
		count, err = b.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := b.expect(lexer.Gt); err != nil {
		return nil, err
	}

	return &ast.ArrayTypeRef{Element: elem, Count: count, Base: b.spanSince(start)}, nil
}
