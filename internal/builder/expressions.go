package builder

import (
	"github.com/th13vn/wgslfront/internal/lexer"
	"github.com/th13vn/wgslfront/pkg/ast"
)

// parseExpression is the top of the expression tower. Each
// level below is a pass-through to the next since the closed punctuation
// set has no binary operator tokens; only unary negate and the postfix
// '.'/'[' accessors do real work. The chain is kept explicit rather than
// collapsed so a future binary-operator extension slots into the right
// precedence level without restructuring callers.
func (b *Builder) parseExpression() (ast.Expression, error) {
	return b.parseShortCircuitOr()
}

func (b *Builder) parseShortCircuitOr() (ast.Expression, error)  { return b.parseShortCircuitAnd() }
func (b *Builder) parseShortCircuitAnd() (ast.Expression, error) { return b.parseRelational() }
func (b *Builder) parseRelational() (ast.Expression, error)      { return b.parseShift() }
func (b *Builder) parseShift() (ast.Expression, error)           { return b.parseAdditive() }
func (b *Builder) parseAdditive() (ast.Expression, error)        { return b.parseMultiplicative() }
func (b *Builder) parseMultiplicative() (ast.Expression, error)  { return b.parseUnary() }

// parseUnary handles the single prefix operator this surface recognizes:
// '-'. Anything else falls through to a postfix-qualified primary.
func (b *Builder) parseUnary() (ast.Expression, error) {
	if b.check(lexer.Minus) {
		start := b.cur
		b.advance()
		inner, err := b.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.UnaryNegate, Expr: inner, Base: b.spanSince(start)}, nil
	}
	return b.parseSingular()
}

// parseSingular parses a primary expression followed by zero or more
// postfix '.field' / '[index]' accessors, left-associatively.
func (b *Builder) parseSingular() (ast.Expression, error) {
	start := b.cur
	expr, err := b.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case b.check(lexer.Dot):
			b.advance()
			fieldTok, err := b.expect(lexer.Identifier)
			if err != nil {
				return nil, err
			}
			expr = &ast.StructureAccessExpr{Expr: expr, Field: fieldTok.Text, Base: b.spanSince(start)}
		case b.check(lexer.LBracket):
			b.advance()
			index, err := b.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.RBracket); err != nil {
				return nil, err
			}
			expr = &ast.ArrayAccessExpr{Expr: expr, Index: index, Base: b.spanSince(start)}
		default:
			return expr, nil
		}
	}
}

// parseLHSExpression parses the restricted subset legal on the left of
// an assignment: an identifier followed by zero or more '.field' /
// '[index]' postfixes. Literals, calls, parenthesized expressions, and
// unary operators are not assignable, and the discard target `_` is not
// accepted.
func (b *Builder) parseLHSExpression() (ast.Expression, error) {
	start := b.cur

	if !b.check(lexer.Identifier) {
		return nil, b.errorf("expected identifier on left of assignment, got %s", b.cur.Kind)
	}
	if b.cur.Text == "_" {
		return nil, b.errorf("'_' is not a valid assignment target")
	}
	nameTok := b.advance()
	var expr ast.Expression = &ast.IdentifierExpr{Name: nameTok.Text, Base: b.spanSince(start)}

	for {
		switch {
		case b.check(lexer.Dot):
			b.advance()
			fieldTok, err := b.expect(lexer.Identifier)
			if err != nil {
				return nil, err
			}
			expr = &ast.StructureAccessExpr{Expr: expr, Field: fieldTok.Text, Base: b.spanSince(start)}
		case b.check(lexer.LBracket):
			b.advance()
			index, err := b.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.RBracket); err != nil {
				return nil, err
			}
			expr = &ast.ArrayAccessExpr{Expr: expr, Index: index, Base: b.spanSince(start)}
		default:
			return expr, nil
		}
	}
}

// parsePrimary parses a literal, an identifier reference, a function or
// type-constructor call, or a parenthesized expression.
func (b *Builder) parsePrimary() (ast.Expression, error) {
	start := b.cur

	switch b.cur.Kind {
	case lexer.KeywordTrue, lexer.KeywordFalse:
		val := b.cur.Kind == lexer.KeywordTrue
		b.advance()
		lit := &ast.BoolLiteral{Value: val, Base: b.spanSince(start)}
		return &ast.LiteralExpr{Literal: lit, Base: b.spanSince(start)}, nil

	case lexer.IntLiteral:
		tok := b.advance()
		lit := &ast.IntLiteral{Value: tok.IntValue, Suffix: convIntSuffix(tok.IntSuffix), Base: b.spanSince(start)}
		return &ast.LiteralExpr{Literal: lit, Base: b.spanSince(start)}, nil

	case lexer.FloatLiteral:
		tok := b.advance()
		lit := &ast.FloatLiteral{Value: tok.FloatValue, Suffix: convFloatSuffix(tok.FloatSuffix), Base: b.spanSince(start)}
		return &ast.LiteralExpr{Literal: lit, Base: b.spanSince(start)}, nil

	case lexer.LParen:
		b.advance()
		inner, err := b.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.Identifier:
		name := b.cur.Text
		if base, ok := ast.ParameterizedBaseFromName(name); ok {
			b.advance()
			if b.check(lexer.Lt) {
				typeRef, err := b.parseParameterizedTypeRef(start, base)
				if err != nil {
					return nil, err
				}
				return b.parseCallArgs(start, typeRef)
			}
			return &ast.IdentifierExpr{Name: name, Base: b.spanSince(start)}, nil
		}
		b.advance()
		if b.check(lexer.LParen) {
			typeRef := &ast.NamedTypeRef{Name: name, Base: b.spanSince(start)}
			return b.parseCallArgs(start, typeRef)
		}
		return &ast.IdentifierExpr{Name: name, Base: b.spanSince(start)}, nil

	case lexer.KeywordArray, lexer.KeywordI32, lexer.KeywordU32, lexer.KeywordF32, lexer.KeywordBool:
		typeRef, err := b.parseTypeName()
		if err != nil {
			return nil, err
		}
		return b.parseCallArgs(start, typeRef)

	default:
		return nil, b.errorf("expected expression, got %s", b.cur.Kind)
	}
}

func (b *Builder) parseCallArgs(start lexer.Token, target ast.TypeRef) (ast.Expression, error) {
	if _, err := b.expect(lexer.LParen); err != nil {
		return nil, err
	}
	args, err := b.parseArgumentList()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return &ast.CallableExpr{Target: target, Args: args, Base: b.spanSince(start)}, nil
}

func (b *Builder) parseArgumentList() ([]ast.Expression, error) {
	if b.check(lexer.RParen) {
		return nil, nil
	}
	var args []ast.Expression
	for {
		arg, err := b.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !b.check(lexer.Comma) {
			break
		}
		b.advance()
	}
	return args, nil
}

func convIntSuffix(s lexer.IntSuffix) ast.IntSuffix {
	switch s {
	case lexer.IntSuffixSigned:
		return ast.IntSuffixI32
	case lexer.IntSuffixUnsigned:
		return ast.IntSuffixU32
	default:
		return ast.IntSuffixNone
	}
}

func convFloatSuffix(s lexer.FloatSuffix) ast.FloatSuffix {
	if s == lexer.FloatSuffixF32 {
		return ast.FloatSuffixF32
	}
	return ast.FloatSuffixNone
}
