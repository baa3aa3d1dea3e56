package version

import (
	"errors"
	"testing"

	"github.com/th13vn/wgslfront/pkg/parser"
)

func TestKnownExtensionsSortedAndStable(t *testing.T) {
	got := KnownExtensions()
	want := []string{"clip_distances", "dual_source_blending", "f16", "subgroups"}
	if len(got) != len(want) {
		t.Fatalf("KnownExtensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("KnownExtensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateAcceptsKnownExtension(t *testing.T) {
	module, err := parser.Parse("enable f16;\n\nfn f() {}", parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Validate(module); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsUnknownExtension(t *testing.T) {
	module, err := parser.Parse("enable not_a_real_extension;\n\nfn f() {}", parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = Validate(module)
	if err == nil {
		t.Fatal("expected an unknown-extension error")
	}
	var unknown *UnknownExtensionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownExtensionError, got %T", err)
	}
	if unknown.Name != "not_a_real_extension" {
		t.Errorf("Name = %q, want %q", unknown.Name, "not_a_real_extension")
	}
}

func TestValidateReportsFirstUnknownInSourceOrder(t *testing.T) {
	module, err := parser.Parse("enable f16;\nenable bogus_one;\nenable bogus_two;\n\nfn f() {}", parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = Validate(module)
	var unknown *UnknownExtensionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownExtensionError, got %T", err)
	}
	if unknown.Name != "bogus_one" {
		t.Errorf("expected the first unknown extension, got %q", unknown.Name)
	}
}

func TestValidateEmptyModule(t *testing.T) {
	module, err := parser.Parse("", parser.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Validate(module); err != nil {
		t.Errorf("Validate() of an empty module = %v, want nil", err)
	}
}
