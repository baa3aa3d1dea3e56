// Package parser is the public entry point for turning WGSL source text
// into a ShaderModule: it wires a lexer.Lexer into a builder.Builder and
// exposes the result as a single Parse call.
package parser

import (
	"encoding/json"
	"io"

	"github.com/th13vn/wgslfront/internal/builder"
	"github.com/th13vn/wgslfront/internal/lexer"
	"github.com/th13vn/wgslfront/pkg/ast"
)

// Options configures parse-time behavior. Reserved for future flags.
type Options struct{}

// Parse tokenizes and parses an 8-bit (UTF-8/ASCII) WGSL source buffer.
func Parse(src string, opts Options) (*ast.ShaderModule, error) {
	b := builder.New(lexer.New(src), builder.Options(opts))
	return b.ParseShader()
}

// Parse16 tokenizes and parses a pre-decoded UTF-16 WGSL source buffer.
// Both widths produce identical trees for ASCII-only content.
func Parse16(src []uint16, opts Options) (*ast.ShaderModule, error) {
	b := builder.New(lexer.New16(src), builder.Options(opts))
	return b.ParseShader()
}

// ParseReader reads r to completion and parses it as UTF-8 WGSL source.
func ParseReader(r io.Reader, opts Options) (*ast.ShaderModule, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(content), opts)
}

// ParseToJSON parses src and marshals the resulting ShaderModule as
// indented JSON.
func ParseToJSON(src string, opts Options) ([]byte, error) {
	module, err := Parse(src, opts)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(module, "", "  ")
}

// Visit walks module's tree, dispatching to visitor (an alias for
// ast.Walk kept here so callers only need to import pkg/parser).
func Visit(node ast.Node, visitor ast.Visitor) error {
	return ast.Walk(node, visitor)
}

// Visitor is an alias for ast.Visitor.
type Visitor = ast.Visitor

// BaseVisitor is an alias for ast.BaseVisitor.
type BaseVisitor = ast.BaseVisitor

// Error is an alias for builder.Error, the single diagnostic a failed
// parse returns.
type Error = builder.Error
