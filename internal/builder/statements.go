package builder

import (
	"github.com/th13vn/wgslfront/internal/lexer"
	"github.com/th13vn/wgslfront/pkg/ast"
)

// parseCompoundStatement parses a `{ ... }` block, skipping bare `;`
// statements without emitting a node for them.
func (b *Builder) parseCompoundStatement() (*ast.CompoundStatement, error) {
	start := b.cur
	if _, err := b.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	var statements []ast.Statement
	for !b.check(lexer.RBrace) {
		stmt, err := b.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := b.expect(lexer.RBrace); err != nil {
		return nil, err
	}

	return &ast.CompoundStatement{Statements: statements, Base: b.spanSince(start)}, nil
}

// parseStatement parses one of: a nested compound statement, a bare `;`
// (returns nil, nil), a return statement, a var declaration statement, or
// an assignment statement.
func (b *Builder) parseStatement() (ast.Statement, error) {
	start := b.cur

	switch b.cur.Kind {
	case lexer.LBrace:
		return b.parseCompoundStatement()

	case lexer.Semicolon:
		b.advance()
		return nil, nil

	case lexer.KeywordReturn:
		b.advance()
		var expr ast.Expression
		if !b.check(lexer.Semicolon) {
			var err error
			expr, err = b.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if _, err := b.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Expr: expr, Base: b.spanSince(start)}, nil

	case lexer.KeywordVar:
		decl, err := b.parseVarDecl(start, nil)
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.VariableStatement{Decl: decl, Base: b.spanSince(start)}, nil

	default:
		lhs, err := b.parseLHSExpression()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.Equal); err != nil {
			return nil, err
		}
		rhs, err := b.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.AssignmentStatement{Lhs: lhs, Rhs: rhs, Base: b.spanSince(start)}, nil
	}
}
