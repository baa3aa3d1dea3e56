// Package lexer tokenizes WGSL source text. It is parameterized over
// character width: New wraps an 8-bit (UTF-8/ASCII) buffer, New16 wraps a
// pre-decoded UTF-16 buffer, and both share the same classification
// tables and produce an identical token stream for ASCII-only content.
package lexer

import "fmt"

// Kind is the closed set of WGSL token kinds.
type Kind int

const (
	EOF Kind = iota
	Error

	Identifier

	// Literals
	IntLiteral
	FloatLiteral

	// Keywords
	KeywordFn
	KeywordVar
	KeywordStruct
	KeywordType
	KeywordReturn
	KeywordArray
	KeywordI32
	KeywordU32
	KeywordF32
	KeywordBool
	KeywordFunction
	KeywordPrivate
	KeywordWorkgroup
	KeywordUniform
	KeywordStorage
	KeywordRead
	KeywordWrite
	KeywordReadWrite
	KeywordTrue
	KeywordFalse
	KeywordEnable

	// Punctuation
	At
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Lt
	Gt
	Colon
	Semicolon
	Comma
	Dot
	Equal
	Minus
	Arrow
)

var kindNames = map[Kind]string{
	EOF:              "EOF",
	Error:            "ERROR",
	Identifier:       "IDENTIFIER",
	IntLiteral:       "INT_LITERAL",
	FloatLiteral:     "FLOAT_LITERAL",
	KeywordFn:        "fn",
	KeywordVar:       "var",
	KeywordStruct:    "struct",
	KeywordType:      "type",
	KeywordReturn:    "return",
	KeywordArray:     "array",
	KeywordI32:       "i32",
	KeywordU32:       "u32",
	KeywordF32:       "f32",
	KeywordBool:      "bool",
	KeywordFunction:  "function",
	KeywordPrivate:   "private",
	KeywordWorkgroup: "workgroup",
	KeywordUniform:   "uniform",
	KeywordStorage:   "storage",
	KeywordRead:      "read",
	KeywordWrite:     "write",
	KeywordReadWrite: "read_write",
	KeywordTrue:      "true",
	KeywordFalse:     "false",
	KeywordEnable:    "enable",
	At:               "@",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Lt:               "<",
	Gt:               ">",
	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	Dot:              ".",
	Equal:            "=",
	Minus:            "-",
	Arrow:            "->",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var keywords = map[string]Kind{
	"fn":         KeywordFn,
	"var":        KeywordVar,
	"struct":     KeywordStruct,
	"type":       KeywordType,
	"return":     KeywordReturn,
	"array":      KeywordArray,
	"i32":        KeywordI32,
	"u32":        KeywordU32,
	"f32":        KeywordF32,
	"bool":       KeywordBool,
	"function":   KeywordFunction,
	"private":    KeywordPrivate,
	"workgroup":  KeywordWorkgroup,
	"uniform":    KeywordUniform,
	"storage":    KeywordStorage,
	"read":       KeywordRead,
	"write":      KeywordWrite,
	"read_write": KeywordReadWrite,
	"true":       KeywordTrue,
	"false":      KeywordFalse,
	"enable":     KeywordEnable,
}

// IntSuffix distinguishes an abstract integer literal from one explicitly
// tagged i32/u32.
type IntSuffix int

const (
	IntSuffixNone IntSuffix = iota
	IntSuffixSigned
	IntSuffixUnsigned
)

// FloatSuffix distinguishes an abstract float literal from one explicitly
// tagged f32.
type FloatSuffix int

const (
	FloatSuffixNone FloatSuffix = iota
	FloatSuffixF32
)

// Position mirrors ast.SourcePosition without importing pkg/ast, keeping
// the lexer a leaf package with no dependency on the tree it feeds.
type Position struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// Span is a half-open range between two Positions.
type Span struct {
	Start Position
	End   Position
}

// Token is one lexeme: its kind, source span, and decoded payload.
// Exactly one of Text / (IntValue,IntSuffix) / (FloatValue,FloatSuffix) is
// meaningful, selected by Kind.
type Token struct {
	Kind Kind
	Span Span
	Text string // Identifier text, or the offending byte/rune for Error

	IntValue  int64
	IntSuffix IntSuffix

	FloatValue  float64
	FloatSuffix FloatSuffix
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func IsKeyword(k Kind) bool {
	return k >= KeywordFn && k <= KeywordEnable
}
