package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

func testDef(name string) *Definition {
	return &Definition{
		Name: name,
		Rules: []pattern.Rule{
			pattern.NewRule(
				pattern.Callp(name, pattern.Lit(expr.NewInt(0))),
				pattern.Out(expr.NewInt(0)),
			),
		},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testDef("F")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	def, ok := r.Lookup("F")
	if !ok || def.Name != "F" {
		t.Fatalf("Lookup(F) = %v, %v", def, ok)
	}
	if _, ok := r.Lookup("G"); ok {
		t.Error("Lookup(G) found an unregistered definition")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		def     *Definition
		wantErr error
	}{
		{"empty name", &Definition{}, ErrEmptyName},
		{"no capabilities", &Definition{Name: "F"}, ErrIncompleteDefinition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.def)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDuplicateRejected(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testDef("F")); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(testDef("F")); !errors.Is(err, ErrDuplicateDefinition) {
		t.Errorf("second Register err = %v, want ErrDuplicateDefinition", err)
	}
}

func TestFrozenRejectsRegistration(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testDef("F")); err != nil {
		t.Fatal(err)
	}
	r.Freeze()
	if !r.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}
	if err := r.Register(testDef("G")); !errors.Is(err, ErrFrozenRegistry) {
		t.Errorf("Register after Freeze err = %v, want ErrFrozenRegistry", err)
	}
}

func TestNamesPreserveOrder(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"C", "A", "B"} {
		if err := r.Register(testDef(n)); err != nil {
			t.Fatal(err)
		}
	}
	got := r.Names()
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestConcurrentLookup(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"F", "G", "H"} {
		if err := r.Register(testDef(n)); err != nil {
			t.Fatal(err)
		}
	}
	r.Freeze()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Lookup("G"); !ok {
					t.Error("Lookup(G) failed under concurrency")
					return
				}
				_ = r.Names()
			}
		}()
	}
	wg.Wait()
}

func TestApplyBridge(t *testing.T) {
	r := NewRegistry()
	def := testDef("Sec")
	def.Bridge = UnaryBridge(func(arg expr.Expr) expr.Expr {
		return expr.Reciprocal(expr.NewCall("Cos", arg))
	})
	if err := r.Register(def); err != nil {
		t.Fatal(err)
	}
	out, ok := r.ApplyBridge(expr.NewCall("Sec", expr.NewSymbol("x")))
	if !ok {
		t.Fatal("bridge declined a unary call")
	}
	want := expr.Reciprocal(expr.NewCall("Cos", expr.NewSymbol("x")))
	if !out.Equal(want) {
		t.Errorf("bridge = %s, want %s", out.Inspect(), want.Inspect())
	}
	if _, ok := r.ApplyBridge(expr.NewCall("Sec", expr.NewInt(1), expr.NewInt(2))); ok {
		t.Error("bridge accepted a two-argument call")
	}
	if _, ok := r.ApplyBridge(expr.NewCall("Missing", expr.NewInt(1))); ok {
		t.Error("bridge fired for an unregistered head")
	}
}
