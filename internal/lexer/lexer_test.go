package lexer

import "testing"

func allTokens(l *Lexer) []Token {
	var tokens []Token
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens
}

func TestEntryPointLexing(t *testing.T) {
	input := `@vertex fn main(@builtin(vertex_index) VertexIndex: u32) -> @builtin(position) vec4<f32> { }`

	tokens := allTokens(New(input))

	expected := []Kind{
		At, Identifier, KeywordFn, Identifier, LParen,
		At, Identifier, LParen, Identifier, RParen, Identifier, Colon, KeywordU32, RParen,
		Arrow, At, Identifier, LParen, Identifier, RParen, Identifier, Lt, KeywordF32, Gt,
		LBrace, RBrace, EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Kind)
		}
	}
}

func TestVarDeclKeywords(t *testing.T) {
	input := `var<storage, read_write> buf: array<f32>;`
	tokens := allTokens(New(input))
	expected := []Kind{
		KeywordVar, Lt, KeywordStorage, Comma, KeywordReadWrite, Gt,
		Identifier, Colon, KeywordArray, Lt, KeywordF32, Gt, Semicolon, EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Kind)
		}
	}
}

func TestLineCommentSkipped(t *testing.T) {
	input := "// a comment\nfn f() {}"
	tokens := allTokens(New(input))
	expected := []Kind{KeywordFn, Identifier, LParen, RParen, LBrace, RBrace, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
}

func TestIntegerLiteralSuffixes(t *testing.T) {
	cases := []struct {
		src    string
		value  int64
		suffix IntSuffix
	}{
		{"0", 0, IntSuffixNone},
		{"0i", 0, IntSuffixSigned},
		{"0u", 0, IntSuffixUnsigned},
		{"255u", 255, IntSuffixUnsigned},
	}
	for _, c := range cases {
		tok := New(c.src).Lex()
		if tok.Kind != IntLiteral {
			t.Fatalf("%q: expected IntLiteral, got %s", c.src, tok.Kind)
		}
		if tok.IntValue != c.value || tok.IntSuffix != c.suffix {
			t.Errorf("%q: got value=%d suffix=%d, want value=%d suffix=%d", c.src, tok.IntValue, tok.IntSuffix, c.value, c.suffix)
		}
	}
}

func TestHexIntegerLiteralSuffixes(t *testing.T) {
	// "0x" with no "." fraction and no "p"/"P" exponent is a hex integer,
	// decoded exactly like a decimal integer literal but in base 16.
	cases := []struct {
		src    string
		value  int64
		suffix IntSuffix
	}{
		{"0xFF", 0xFF, IntSuffixNone},
		{"0xFFu", 0xFF, IntSuffixUnsigned},
		{"0x10i", 0x10, IntSuffixSigned},
	}
	for _, c := range cases {
		tok := New(c.src).Lex()
		if tok.Kind != IntLiteral {
			t.Fatalf("%q: expected IntLiteral, got %s", c.src, tok.Kind)
		}
		if tok.IntValue != c.value || tok.IntSuffix != c.suffix {
			t.Errorf("%q: got value=%d suffix=%d, want value=%d suffix=%d", c.src, tok.IntValue, tok.IntSuffix, c.value, c.suffix)
		}
	}
}

func TestFloatLiteralForms(t *testing.T) {
	cases := []struct {
		src    string
		value  float64
		suffix FloatSuffix
	}{
		{"1.0", 1.0, FloatSuffixNone},
		{"1.0f", 1.0, FloatSuffixF32},
		{"0x1.8p+1", 3.0, FloatSuffixNone},
	}
	for _, c := range cases {
		tok := New(c.src).Lex()
		if tok.Kind != FloatLiteral {
			t.Fatalf("%q: expected FloatLiteral, got %s", c.src, tok.Kind)
		}
		if tok.FloatValue != c.value || tok.FloatSuffix != c.suffix {
			t.Errorf("%q: got value=%v suffix=%d, want value=%v suffix=%d", c.src, tok.FloatValue, tok.FloatSuffix, c.value, c.suffix)
		}
	}
}

func TestIllegalByteProducesErrorToken(t *testing.T) {
	tok := New("#").Lex()
	if tok.Kind != Error {
		t.Fatalf("expected Error token, got %s", tok.Kind)
	}
	if tok.Text != "#" {
		t.Errorf("expected offending text %q, got %q", "#", tok.Text)
	}
}

func TestUTF16MatchesUTF8ForASCIIContent(t *testing.T) {
	src := "@compute fn f() -> u32 { return 0u; }"
	utf16 := make([]uint16, len(src))
	for i := 0; i < len(src); i++ {
		utf16[i] = uint16(src[i])
	}

	a := allTokens(New(src))
	b := allTokens(New16(utf16))

	if len(a) != len(b) {
		t.Fatalf("token count mismatch: utf8=%d utf16=%d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			t.Errorf("token %d kind mismatch: utf8=%s utf16=%s", i, a[i].Kind, b[i].Kind)
		}
		if a[i].Text != b[i].Text {
			t.Errorf("token %d text mismatch: utf8=%q utf16=%q", i, a[i].Text, b[i].Text)
		}
	}
}

func TestArrowBeforeMinus(t *testing.T) {
	tokens := allTokens(New("->-"))
	expected := []Kind{Arrow, Minus, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Kind)
		}
	}
}
