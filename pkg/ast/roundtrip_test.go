package ast_test

import (
	"reflect"
	"testing"

	"github.com/go-test/deep"

	"github.com/th13vn/wgslfront/pkg/ast"
	"github.com/th13vn/wgslfront/pkg/dump"
	"github.com/th13vn/wgslfront/pkg/parser"
)

// stripSpans returns a deep copy of v with every ast.SourceSpan field
// named Base zeroed out, so two trees that differ only in source
// position compare equal under go-test/deep.
func stripSpans(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Elem().Type())
		out.Elem().Set(stripSpans(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(stripSpans(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		spanType := reflect.TypeOf(ast.SourceSpan{})
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if field.Name == "Base" && field.Type == spanType {
				continue // left zero
			}
			if !out.Field(i).CanSet() {
				continue
			}
			out.Field(i).Set(stripSpans(v.Field(i)))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(stripSpans(v.Index(i)))
		}
		return out
	default:
		return v
	}
}

func TestRoundTripDumpThenParse(t *testing.T) {
	src := `
		enable f16;

		struct Particle {
			@location(0) position: vec3<f32>;
			velocity: vec3<f32>;
		}

		@group(0) @binding(0) var<storage, read_write> particles: array<Particle>;

		@vertex
		fn main(@builtin(vertex_index) VertexIndex: u32) -> @builtin(position) vec4<f32> {
			return vec4<f32>(0.0, 0.0, 0.0, 1.0);
		}
	`

	module, err := parser.Parse(src, parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	dumped := dump.Dump(module)

	reparsed, err := parser.Parse(dumped, parser.Options{})
	if err != nil {
		t.Fatalf("re-parsing dumped output failed: %v\n---\n%s", err, dumped)
	}

	a := stripSpans(reflect.ValueOf(module)).Interface()
	b := stripSpans(reflect.ValueOf(reparsed)).Interface()

	if diff := deep.Equal(a, b); diff != nil {
		t.Errorf("round trip mismatch: %v\n---dumped---\n%s", diff, dumped)
	}
}

func TestParsedSpansNestInsideParents(t *testing.T) {
	src := `@vertex fn main(@builtin(vertex_index) VertexIndex: u32) -> @builtin(position) vec4<f32> {
	return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}`
	module, err := parser.Parse(src, parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	fn := module.Functions[0]
	if !module.Span().Contains(fn.Span()) {
		t.Errorf("function span %v escapes module span %v", fn.Span(), module.Span())
	}
	for _, a := range fn.Attributes {
		if !fn.Span().Contains(a.Span()) {
			t.Errorf("attribute span %v escapes function span %v", a.Span(), fn.Span())
		}
	}
	for _, a := range fn.ReturnAttributes {
		if !fn.Span().Contains(a.Span()) {
			t.Errorf("return attribute span %v escapes function span %v", a.Span(), fn.Span())
		}
	}
	for _, p := range fn.Parameters {
		if !fn.Span().Contains(p.Span()) {
			t.Errorf("parameter span %v escapes function span %v", p.Span(), fn.Span())
		}
		for _, a := range p.Attributes {
			if !p.Span().Contains(a.Span()) {
				t.Errorf("attribute span %v escapes parameter span %v", a.Span(), p.Span())
			}
		}
		if !p.Span().Contains(p.Type.Span()) {
			t.Errorf("type span %v escapes parameter span %v", p.Type.Span(), p.Span())
		}
	}
	if !fn.Span().Contains(fn.ReturnType.Span()) {
		t.Errorf("return type span %v escapes function span %v", fn.ReturnType.Span(), fn.Span())
	}
	if !fn.Span().Contains(fn.Body.Span()) {
		t.Errorf("body span %v escapes function span %v", fn.Body.Span(), fn.Span())
	}
}

func TestEmptyModuleRoundTrips(t *testing.T) {
	module, err := parser.Parse("", parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(module.Directives) != 0 || len(module.Structures) != 0 || len(module.Variables) != 0 || len(module.Functions) != 0 {
		t.Fatalf("expected an empty module, got %+v", module)
	}
	if dump.Dump(module) != "" {
		t.Errorf("expected empty dump for empty module, got %q", dump.Dump(module))
	}
}
