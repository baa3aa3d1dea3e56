package gather

import (
	"errors"
	"testing"

	"github.com/th13vn/wgslfront/pkg/ast"
	"github.com/th13vn/wgslfront/pkg/parser"
	"github.com/th13vn/wgslfront/pkg/types"
)

func parseOne(t *testing.T, src string) *ast.ShaderModule {
	t.Helper()
	module, err := parser.Parse(src, parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return module
}

func TestGatherVertexAndFragmentEntryPoints(t *testing.T) {
	module := parseOne(t, `
		@vertex fn vmain(@builtin(vertex_index) VertexIndex: u32) -> @builtin(position) vec4<f32> {
			return vec4<f32>(0.0, 0.0, 0.0, 1.0);
		}
		@fragment fn fmain() -> @location(0) vec4<f32> {
			return vec4<f32>(1.0, 0.0, 0.0, 1.0);
		}
	`)
	ctx := types.NewContext()
	ctx.AddModule(module)

	vmain := module.FindFunction("vmain")
	items, err := Gather(vmain, ctx)
	if err != nil {
		t.Fatalf("Gather(vmain) failed: %v", err)
	}
	if len(items.Inputs) != 1 {
		t.Fatalf("expected 1 input, got %d", len(items.Inputs))
	}
	in := items.Inputs[0]
	if len(in.Path) != 1 || in.Path[0] != "VertexIndex" {
		t.Errorf("expected path [VertexIndex], got %v", in.Path)
	}
	builtin, ok := in.Semantic.(*ast.BuiltinAttribute)
	if !ok || builtin.Name != "vertex_index" {
		t.Errorf("expected builtin(vertex_index) semantic, got %#v", in.Semantic)
	}
	if len(items.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(items.Outputs))
	}
	outBuiltin, ok := items.Outputs[0].Semantic.(*ast.BuiltinAttribute)
	if !ok || outBuiltin.Name != "position" {
		t.Errorf("expected builtin(position) output semantic, got %#v", items.Outputs[0].Semantic)
	}
	if items.Outputs[0].Type == nil || items.Outputs[0].Type.Name != "vec4<f32>" {
		t.Errorf("expected output type vec4<f32>, got %#v", items.Outputs[0].Type)
	}

	fmain := module.FindFunction("fmain")
	fitems, err := Gather(fmain, ctx)
	if err != nil {
		t.Fatalf("Gather(fmain) failed: %v", err)
	}
	if len(fitems.Inputs) != 0 {
		t.Errorf("expected 0 inputs, got %d", len(fitems.Inputs))
	}
	if len(fitems.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(fitems.Outputs))
	}
	loc, ok := fitems.Outputs[0].Semantic.(*ast.LocationAttribute)
	if !ok || loc.Location != 0 {
		t.Errorf("expected location(0) semantic, got %#v", fitems.Outputs[0].Semantic)
	}
}

func TestGatherMissingSemanticFails(t *testing.T) {
	module := parseOne(t, `@vertex fn f(x: u32) {}`)
	ctx := types.NewContext()
	f := module.FindFunction("f")

	_, err := Gather(f, ctx)
	if err == nil {
		t.Fatal("expected a missing-semantic error")
	}
	if !errors.Is(err, ErrMissingSemantic) {
		t.Errorf("expected ErrMissingSemantic, got %v", err)
	}
}

// A compute entry point gathers no outputs even when a return type is
// present.
func TestGatherComputeStageIgnoresReturnType(t *testing.T) {
	module := parseOne(t, `@compute fn f() -> u32 { return 0u; }`)
	ctx := types.NewContext()
	f := module.FindFunction("f")

	items, err := Gather(f, ctx)
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(items.Outputs) != 0 {
		t.Errorf("expected 0 outputs for a compute entry point, got %d", len(items.Outputs))
	}
}

func TestGatherUnresolvedTypeFails(t *testing.T) {
	module := parseOne(t, `@vertex fn f(@location(0) x: Bogus) {}`)
	ctx := types.NewContext()
	f := module.FindFunction("f")

	_, err := Gather(f, ctx)
	if err == nil {
		t.Fatal("expected an unresolved-type error")
	}
	if !errors.Is(err, ErrUnresolvedType) {
		t.Errorf("expected ErrUnresolvedType, got %v", err)
	}
}

func TestGatherNonEntryPointPanics(t *testing.T) {
	module := parseOne(t, `fn f() {}`)
	ctx := types.NewContext()
	f := module.FindFunction("f")

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Gather to panic on a non-entry-point function")
		}
	}()
	_, _ = Gather(f, ctx)
}

func TestGatherStructParameterResolvesOpaquely(t *testing.T) {
	module := parseOne(t, `
		struct Particle { velocity: vec3<f32>; }
		@vertex fn f(@location(0) p: Particle) -> @builtin(position) vec4<f32> {
			return vec4<f32>(0.0, 0.0, 0.0, 1.0);
		}
	`)
	ctx := types.NewContext()
	ctx.AddModule(module)
	f := module.FindFunction("f")

	items, err := Gather(f, ctx)
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(items.Inputs) != 1 || items.Inputs[0].Type.Name != "Particle" {
		t.Errorf("expected a single opaque Particle input, got %#v", items.Inputs)
	}
}
