// Package builder implements the recursive-descent grammar that turns a
// token stream into a ShaderModule. It holds a single prefetched
// current_token and advances by calling the lexer on match, aborting at
// the first grammar error (no recovery, one diagnostic per compilation).
package builder

import (
	"fmt"

	"github.com/th13vn/wgslfront/internal/lexer"
	"github.com/th13vn/wgslfront/pkg/ast"
)

// Options controls parse-time behavior. Reserved for future flags; empty
// today.
type Options struct{}

// Error is the single diagnostic a failed parse returns.
type Error struct {
	Message string
	Span    ast.SourceSpan
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// Builder drives the grammar over a lexer.Lexer.
type Builder struct {
	lex     *lexer.Lexer
	cur     lexer.Token
	prev    lexer.Token
	options Options
}

// New creates a Builder and prefetches the first token.
func New(l *lexer.Lexer, opts Options) *Builder {
	b := &Builder{lex: l, options: opts}
	b.cur = l.Lex()
	return b
}

func convPos(p lexer.Position) ast.SourcePosition {
	return ast.SourcePosition{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func (b *Builder) spanSince(start lexer.Token) ast.SourceSpan {
	return ast.SourceSpan{Start: convPos(start.Span.Start), End: convPos(b.prev.Span.End)}
}

func (b *Builder) curSpan() ast.SourceSpan {
	return ast.SourceSpan{Start: convPos(b.cur.Span.Start), End: convPos(b.cur.Span.End)}
}

func (b *Builder) isAtEnd() bool { return b.cur.Kind == lexer.EOF }

func (b *Builder) check(k lexer.Kind) bool { return b.cur.Kind == k }

func (b *Builder) advance() lexer.Token {
	t := b.cur
	b.prev = t
	if t.Kind != lexer.EOF {
		b.cur = b.lex.Lex()
	}
	return t
}

func (b *Builder) errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Span: b.curSpan()}
}

// expect consumes the current token if it matches k, otherwise returns a
// syntax error naming the expected and actual kinds.
func (b *Builder) expect(k lexer.Kind) (lexer.Token, error) {
	if b.check(k) {
		return b.advance(), nil
	}
	return lexer.Token{}, b.errorf("expected %s, got %s", k, b.cur.Kind)
}

// ParseShader is the grammar entry point: a sequence of enable
// directives and attributed top-level declarations.
func (b *Builder) ParseShader() (*ast.ShaderModule, error) {
	start := b.cur
	module := &ast.ShaderModule{}

	for !b.isAtEnd() {
		if b.check(lexer.KeywordEnable) {
			d, err := b.parseGlobalDirective()
			if err != nil {
				return nil, err
			}
			module.Directives = append(module.Directives, d)
			continue
		}

		declStart := b.cur
		attrs, err := b.parseAttributes()
		if err != nil {
			return nil, err
		}

		switch {
		case b.check(lexer.KeywordStruct):
			s, err := b.parseStructDecl(declStart, attrs)
			if err != nil {
				return nil, err
			}
			module.Structures = append(module.Structures, s)
		case b.check(lexer.KeywordVar):
			v, err := b.parseVarDecl(declStart, attrs)
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.Semicolon); err != nil {
				return nil, err
			}
			module.Variables = append(module.Variables, v)
		case b.check(lexer.KeywordType):
			if len(attrs) > 0 {
				return nil, &Error{Message: "attributes are not allowed on a type alias", Span: attrs[0].Span()}
			}
			t, err := b.parseTypeAliasDecl()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.Semicolon); err != nil {
				return nil, err
			}
			module.TypeAliases = append(module.TypeAliases, t)
		case b.check(lexer.KeywordFn):
			f, err := b.parseFunctionDecl(declStart, attrs)
			if err != nil {
				return nil, err
			}
			module.Functions = append(module.Functions, f)
		default:
			return nil, b.errorf("expected struct, var, type, or fn declaration, got %s", b.cur.Kind)
		}
	}

	module.Base = b.spanSince(start)
	return module, nil
}

func (b *Builder) parseGlobalDirective() (*ast.GlobalDirective, error) {
	start := b.cur
	if _, err := b.expect(lexer.KeywordEnable); err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.GlobalDirective{Name: nameTok.Text, Base: b.spanSince(start)}, nil
}

// parseAttributes := ( '@' ident ( '(' literal_or_ident ')' )? )*
func (b *Builder) parseAttributes() ([]ast.Attribute, error) {
	var attrs []ast.Attribute
	for b.check(lexer.At) {
		a, err := b.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

func (b *Builder) parseAttribute() (ast.Attribute, error) {
	start := b.cur
	if _, err := b.expect(lexer.At); err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}

	switch nameTok.Text {
	case "binding":
		n, err := b.parseParenUint()
		if err != nil {
			return nil, err
		}
		return &ast.BindingAttribute{Binding: n, Base: b.spanSince(start)}, nil
	case "group":
		n, err := b.parseParenUint()
		if err != nil {
			return nil, err
		}
		return &ast.GroupAttribute{Group: n, Base: b.spanSince(start)}, nil
	case "location":
		n, err := b.parseParenUint()
		if err != nil {
			return nil, err
		}
		return &ast.LocationAttribute{Location: n, Base: b.spanSince(start)}, nil
	case "builtin":
		if _, err := b.expect(lexer.LParen); err != nil {
			return nil, err
		}
		identTok, err := b.expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return &ast.BuiltinAttribute{Name: identTok.Text, Base: b.spanSince(start)}, nil
	case "vertex":
		return &ast.StageAttribute{Stage: ast.StageVertex, Base: b.spanSince(start)}, nil
	case "fragment":
		return &ast.StageAttribute{Stage: ast.StageFragment, Base: b.spanSince(start)}, nil
	case "compute":
		return &ast.StageAttribute{Stage: ast.StageCompute, Base: b.spanSince(start)}, nil
	default:
		return nil, &Error{Message: fmt.Sprintf("unknown attribute @%s", nameTok.Text), Span: b.spanSince(start)}
	}
}

func (b *Builder) parseParenUint() (uint32, error) {
	if _, err := b.expect(lexer.LParen); err != nil {
		return 0, err
	}
	litTok, err := b.expect(lexer.IntLiteral)
	if err != nil {
		return 0, err
	}
	if _, err := b.expect(lexer.RParen); err != nil {
		return 0, err
	}
	if litTok.IntValue < 0 {
		return 0, &Error{Message: "attribute argument must be a non-negative integer", Span: b.spanSince(litTok)}
	}
	return uint32(litTok.IntValue), nil
}

// parseStructDecl's span starts at start, the first attribute token when
// the declaration carries attributes, so attribute spans nest inside the
// declaration's.
func (b *Builder) parseStructDecl(start lexer.Token, attrs []ast.Attribute) (*ast.StructureDecl, error) {
	if _, err := b.expect(lexer.KeywordStruct); err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	var members []*ast.StructMember
	for !b.check(lexer.RBrace) {
		m, err := b.parseStructMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if _, err := b.expect(lexer.RBrace); err != nil {
		return nil, err
	}

	return &ast.StructureDecl{Name: nameTok.Text, Attributes: attrs, Members: members, Base: b.spanSince(start)}, nil
}

// parseStructMember := attributes ident ':' type_name ';'
func (b *Builder) parseStructMember() (*ast.StructMember, error) {
	start := b.cur
	attrs, err := b.parseAttributes()
	if err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.Colon); err != nil {
		return nil, err
	}
	typ, err := b.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.StructMember{Name: nameTok.Text, Type: typ, Attributes: attrs, Base: b.spanSince(start)}, nil
}

// parseVarDecl := 'var' ( '<' storage_class (',' access_mode)? '>' )? ident ( ':' type_name )? ( '=' expression )?
func (b *Builder) parseVarDecl(start lexer.Token, attrs []ast.Attribute) (*ast.VariableDecl, error) {
	if _, err := b.expect(lexer.KeywordVar); err != nil {
		return nil, err
	}

	var qualifier *ast.VariableQualifier
	if b.check(lexer.Lt) {
		b.advance()
		sc, err := b.parseStorageClass()
		if err != nil {
			return nil, err
		}
		am := ast.AccessModeRead
		if b.check(lexer.Comma) {
			b.advance()
			am, err = b.parseAccessMode()
			if err != nil {
				return nil, err
			}
		}
		if _, err := b.expect(lexer.Gt); err != nil {
			return nil, err
		}
		qualifier = &ast.VariableQualifier{StorageClass: sc, AccessMode: am}
	}

	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}

	var typ ast.TypeRef
	if b.check(lexer.Colon) {
		b.advance()
		typ, err = b.parseTypeName()
		if err != nil {
			return nil, err
		}
	}

	var init ast.Expression
	if b.check(lexer.Equal) {
		b.advance()
		init, err = b.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	return &ast.VariableDecl{
		Name:        nameTok.Text,
		Qualifier:   qualifier,
		Type:        typ,
		Initializer: init,
		Attributes:  attrs,
		Base:        b.spanSince(start),
	}, nil
}

func (b *Builder) parseStorageClass() (ast.StorageClass, error) {
	switch b.cur.Kind {
	case lexer.KeywordFunction:
		b.advance()
		return ast.StorageClassFunction, nil
	case lexer.KeywordPrivate:
		b.advance()
		return ast.StorageClassPrivate, nil
	case lexer.KeywordWorkgroup:
		b.advance()
		return ast.StorageClassWorkgroup, nil
	case lexer.KeywordUniform:
		b.advance()
		return ast.StorageClassUniform, nil
	case lexer.KeywordStorage:
		b.advance()
		return ast.StorageClassStorage, nil
	default:
		return 0, b.errorf("expected storage class, got %s", b.cur.Kind)
	}
}

func (b *Builder) parseAccessMode() (ast.AccessMode, error) {
	switch b.cur.Kind {
	case lexer.KeywordRead:
		b.advance()
		return ast.AccessModeRead, nil
	case lexer.KeywordWrite:
		b.advance()
		return ast.AccessModeWrite, nil
	case lexer.KeywordReadWrite:
		b.advance()
		return ast.AccessModeReadWrite, nil
	default:
		return 0, b.errorf("expected access mode, got %s", b.cur.Kind)
	}
}

func (b *Builder) parseTypeAliasDecl() (*ast.TypeAliasDecl, error) {
	start := b.cur
	if _, err := b.expect(lexer.KeywordType); err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.Equal); err != nil {
		return nil, err
	}
	typ, err := b.parseTypeName()
	if err != nil {
		return nil, err
	}
	return &ast.TypeAliasDecl{Name: nameTok.Text, Type: typ, Base: b.spanSince(start)}, nil
}

// parseFunctionDecl := 'fn' ident '(' parameters? ')' ( '->' attributes type_name )? compound_stmt
func (b *Builder) parseFunctionDecl(start lexer.Token, attrs []ast.Attribute) (*ast.FunctionDecl, error) {
	if _, err := b.expect(lexer.KeywordFn); err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.LParen); err != nil {
		return nil, err
	}

	var params []*ast.Parameter
	if !b.check(lexer.RParen) {
		for {
			p, err := b.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, p)
			if !b.check(lexer.Comma) {
				break
			}
			b.advance()
		}
	}
	if _, err := b.expect(lexer.RParen); err != nil {
		return nil, err
	}

	var retAttrs []ast.Attribute
	var retType ast.TypeRef
	if b.check(lexer.Arrow) {
		b.advance()
		retAttrs, err = b.parseAttributes()
		if err != nil {
			return nil, err
		}
		retType, err = b.parseTypeName()
		if err != nil {
			return nil, err
		}
	}

	body, err := b.parseCompoundStatement()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Name:             nameTok.Text,
		Attributes:       attrs,
		Parameters:       params,
		ReturnAttributes: retAttrs,
		ReturnType:       retType,
		Body:             body,
		Base:             b.spanSince(start),
	}, nil
}

func (b *Builder) parseParameter() (*ast.Parameter, error) {
	start := b.cur
	attrs, err := b.parseAttributes()
	if err != nil {
		return nil, err
	}
	nameTok, err := b.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.Colon); err != nil {
		return nil, err
	}
	typ, err := b.parseTypeName()
	if err != nil {
		return nil, err
	}
	return &ast.Parameter{Name: nameTok.Text, Attributes: attrs, Type: typ, Base: b.spanSince(start)}, nil
}
