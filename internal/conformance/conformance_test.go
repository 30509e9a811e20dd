package conformance

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/exptrig/pkg/expr"
)

func TestNodeExpr(t *testing.T) {
	three := int64(3)
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"integer", Node{Int: &three}, "3"},
		{"rational", Node{Rat: "1/2"}, "1/2"},
		{"symbol", Node{Sym: "Pi"}, "Pi"},
		{"special", Node{Special: "ComplexInfinity"}, "ComplexInfinity"},
		{"call", Node{Call: "Sin", Args: []Node{{Int: &three}}}, "Sin[3]"},
		{"nested call", Node{Call: "Times", Args: []Node{{Rat: "1/2"}, {Sym: "Pi"}}}, "Times[1/2, Pi]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.node.Expr()
			if err != nil {
				t.Fatal(err)
			}
			if e.Inspect() != tt.want {
				t.Errorf("Expr() = %s, want %s", e.Inspect(), tt.want)
			}
		})
	}
}

func TestNodeErrors(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"empty", Node{}},
		{"bad rational", Node{Rat: "x/y"}},
		{"bad real", Node{Real: "abc"}},
		{"unknown special", Node{Special: "Nullity"}},
		{"bad nested arg", Node{Call: "Sin", Args: []Node{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.node.Expr(); err == nil {
				t.Error("Expr() succeeded, want error")
			}
		})
	}
}

func TestRealPrecisionTracksDigits(t *testing.T) {
	e, err := Node{Real: "0.50000000000000000"}.Expr()
	if err != nil {
		t.Fatal(err)
	}
	r := e.(*expr.Real)
	// 17 significant digits need at least 57 mantissa bits.
	if r.Prec() < 57 {
		t.Errorf("Prec() = %d, want >= 57", r.Prec())
	}
}

func TestMatchesExact(t *testing.T) {
	n := Node{Call: "Power", Args: []Node{{Sym: "x"}, {Int: new(int64)}}}
	*n.Args[1].Int = -1
	got := expr.Power(expr.NewSymbol("x"), expr.NewInt(-1))
	if ok, msg := n.Matches(got); !ok {
		t.Errorf("exact match failed: %s", msg)
	}
	other := expr.Power(expr.NewSymbol("y"), expr.NewInt(-1))
	if ok, _ := n.Matches(other); ok {
		t.Error("matched a structurally different expression")
	}
}

func TestMatchesRealTolerance(t *testing.T) {
	n := Node{Real: "0.8414709848078965"}
	near := expr.NewRealFromFloat(mustParse(t, "0.84147098480789650665250232163", 80))
	if ok, msg := n.Matches(near); !ok {
		t.Errorf("nearby real rejected: %s", msg)
	}
	far := expr.NewRealFromFloat(mustParse(t, "0.8414", 80))
	if ok, _ := n.Matches(far); ok {
		t.Error("distant real accepted")
	}
	if ok, _ := n.Matches(expr.NewInt(1)); ok {
		t.Error("integer accepted against a real want")
	}
}

func mustParse(t *testing.T, s string, bits uint) *big.Float {
	t.Helper()
	f, _, err := big.ParseFloat(s, 10, bits, big.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	body := `
- name: sample
  eval: {call: Sin, args: [{int: 0}]}
  want: {int: 0}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cases, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 1 || cases[0].Name != "sample" {
		t.Fatalf("Load = %+v", cases)
	}
}

func TestLoadRejectsUnnamedCase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	body := `
- eval: {int: 0}
  want: {int: 0}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unnamed case")
	}
}
