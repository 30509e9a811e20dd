package engine

import (
	"errors"
	"math/big"
	"testing"

	"github.com/funvibe/exptrig/internal/prec"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// fixtureRegistry wires a handful of definitions against the real backend,
// enough to exercise every dispatch path.
func fixtureRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	defs := []*Definition{
		{
			Name:    "Pi",
			Numeric: ConstantPrimitive{Name: "Pi"},
		},
		{
			Name: "Sin",
			Rules: []pattern.Rule{
				pattern.NewRule(pattern.Callp("Sin", pattern.Lit(expr.NewInt(0))), pattern.Out(expr.NewInt(0))),
				pattern.NewRule(pattern.Callp("Sin", pattern.IntMultiple("n", expr.PiName)), pattern.Out(expr.NewInt(0))),
			},
			Derivative: &DerivativeRule{Body: pattern.Build("Cos", pattern.Slot())},
			Numeric:    Primitive{Name: "Sin"},
		},
		{
			Name: "Cos",
			Rules: []pattern.Rule{
				pattern.NewRule(
					pattern.Callp("Cos", pattern.IntMultiple("n", expr.PiName)),
					pattern.Build("Power", pattern.Out(expr.NewInt(-1)), pattern.Var("n"))),
			},
			Derivative: &DerivativeRule{
				Body: pattern.Build("Times", pattern.Out(expr.NewInt(-1)), pattern.Build("Sin", pattern.Slot())),
			},
			Numeric: Primitive{Name: "Cos"},
		},
		{
			Name:           "Coth",
			Rules:          []pattern.Rule{pattern.NewRule(pattern.Callp("Coth", pattern.Lit(expr.NewInt(0))), pattern.Out(expr.ComplexInfinity()))},
			Numeric:        Primitive{Name: "Coth"},
			DomainFallback: expr.ComplexInfinity(),
		},
	}
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			t.Fatal(err)
		}
	}
	r.Freeze()
	return r
}

func realAt(t *testing.T, s string, bits uint) *expr.Real {
	t.Helper()
	f, _, err := big.ParseFloat(s, 10, bits, big.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	return expr.NewRealFromFloat(f)
}

func checkRealPrefix(t *testing.T, e expr.Expr, want string, bits uint) {
	t.Helper()
	r, ok := e.(*expr.Real)
	if !ok {
		t.Fatalf("got %s, want a real", e.Inspect())
	}
	wf, _, err := big.ParseFloat(want, 10, bits+16, big.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	diff := new(big.Float).SetPrec(bits + 16).Sub(r.Value, wf)
	if diff.Sign() != 0 && diff.MantExp(nil) > wf.MantExp(nil)-int(bits)+6 {
		t.Fatalf("got %s, want %s", r.Value.Text('g', 30), want)
	}
}

func TestEvalCallRulesFirst(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()

	out, fired := r.EvalCall(ctx, expr.NewCall("Sin", expr.NewInt(0)))
	if !fired || !out.Equal(expr.NewInt(0)) {
		t.Errorf("Sin[0] = %v (fired %v), want 0", out, fired)
	}

	// An exact argument with no matching rule stays put.
	if _, fired := r.EvalCall(ctx, expr.NewCall("Sin", expr.NewInt(1))); fired {
		t.Error("Sin[1] fired; exact arguments must stay symbolic")
	}

	// Unregistered head is not an error.
	if _, fired := r.EvalCall(ctx, expr.NewCall("Gamma", expr.NewInt(1))); fired {
		t.Error("unregistered head fired")
	}
}

func TestNumericDispatchAtArgumentPrecision(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	arg := realAt(t, "0.5", 90)
	out, fired := r.EvalCall(ctx, expr.NewCall("Sin", arg))
	if !fired {
		t.Fatal("Sin of a real did not dispatch")
	}
	res, ok := out.(*expr.Real)
	if !ok {
		t.Fatalf("got %s, want real", out.Inspect())
	}
	if res.Prec() != 90 {
		t.Errorf("result precision = %d, want the argument's 90", res.Prec())
	}
	checkRealPrefix(t, out, "0.479425538604203000273287935215", 90)
	if ctx.Depth() != 0 {
		t.Errorf("precision scope leaked: depth %d", ctx.Depth())
	}
}

func TestDomainFallback(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	out, fired := r.EvalCall(ctx, expr.NewCall("Coth", realAt(t, "0", 53)))
	if !fired || !out.Equal(expr.ComplexInfinity()) {
		t.Errorf("Coth[0.] = %v (fired %v), want ComplexInfinity", out, fired)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	exprs := []expr.Expr{
		expr.NewCall("Sin", expr.Times(expr.NewInt(3), expr.Pi())),
		expr.NewCall("Cos", expr.Times(expr.NewInt(3), expr.Pi())),
		expr.NewCall("Sin", expr.NewSymbol("x")),
		expr.Plus(expr.NewInt(1), expr.NewRat(1, 2)),
		expr.NewCall("Log", expr.NewSymbol("x")),
	}
	for _, e := range exprs {
		once := r.Normalize(ctx, e)
		twice := r.Normalize(ctx, once)
		if !once.Equal(twice) {
			t.Errorf("Normalize not idempotent on %s: %s then %s",
				e.Inspect(), once.Inspect(), twice.Inspect())
		}
	}
}

func TestNormalizeIntegerPiMultiples(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()

	got := r.Normalize(ctx, expr.NewCall("Sin", expr.Times(expr.NewInt(3), expr.Pi())))
	if !got.Equal(expr.NewInt(0)) {
		t.Errorf("Sin[3 Pi] = %s, want 0", got.Inspect())
	}

	got = r.Normalize(ctx, expr.NewCall("Cos", expr.Times(expr.NewInt(3), expr.Pi())))
	if !got.Equal(expr.NewInt(-1)) {
		t.Errorf("Cos[3 Pi] = %s, want -1", got.Inspect())
	}
}

func TestNRequest(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()

	out, err := r.N(ctx, expr.Pi(), 30)
	if err != nil {
		t.Fatal(err)
	}
	wantBits, _ := prec.BitsForDigits(30)
	res, ok := out.(*expr.Real)
	if !ok || res.Prec() != wantBits {
		t.Fatalf("N[Pi, 30] = %s with prec %v, want %d bits", out.Inspect(), res, wantBits)
	}
	checkRealPrefix(t, out, "3.14159265358979323846264338328", wantBits)
}

func TestNInvalidDigits(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	for _, digits := range []int{0, -3, 2_000_000} {
		if _, err := r.N(ctx, expr.Pi(), digits); !errors.Is(err, ErrInvalidPrecision) {
			t.Errorf("N with %d digits err = %v, want ErrInvalidPrecision", digits, err)
		}
	}
}

func TestNNeverInflatesPrecision(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	low := realAt(t, "0.5", 53)

	out, err := r.N(ctx, low, 100)
	if err != nil {
		t.Fatal(err)
	}
	res := out.(*expr.Real)
	if res.Prec() != 53 {
		t.Errorf("N to 100 digits inflated a 53-bit real to %d bits", res.Prec())
	}

	// Rounding down is allowed.
	out, err = r.N(ctx, realAt(t, "0.5", 200), 10)
	if err != nil {
		t.Fatal(err)
	}
	wantBits, _ := prec.BitsForDigits(10)
	if res := out.(*expr.Real); res.Prec() != wantBits {
		t.Errorf("N to 10 digits gave %d bits, want %d", res.Prec(), wantBits)
	}
}

func TestMalformedNLeftAlone(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	bad := expr.NewCall("N", expr.Pi(), expr.NewSymbol("k"))
	if got := r.Normalize(ctx, bad); !got.Equal(bad) {
		t.Errorf("malformed N rewrote to %s", got.Inspect())
	}
}

func TestReferenceArithmetic(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	tests := []struct {
		name string
		in   expr.Expr
		want expr.Expr
	}{
		{"integer sum", expr.Plus(expr.NewInt(1), expr.NewInt(2)), expr.NewInt(3)},
		{"rational sum", expr.Plus(expr.NewRat(1, 2), expr.NewRat(1, 3)), expr.NewRat(5, 6)},
		{"unit coefficient drops", expr.Times(expr.NewInt(1), expr.NewSymbol("x")), expr.NewSymbol("x")},
		{"zero annihilates", expr.Times(expr.NewInt(0), expr.NewSymbol("x")), expr.NewInt(0)},
		{"zero term drops", expr.Plus(expr.NewInt(0), expr.NewSymbol("x")), expr.NewSymbol("x")},
		{"integer power", expr.Power(expr.NewInt(2), expr.NewInt(10)), expr.NewInt(1024)},
		{"negative power", expr.Power(expr.NewInt(2), expr.NewInt(-2)), expr.NewRat(1, 4)},
		{"zero to zero", expr.Power(expr.NewInt(0), expr.NewInt(0)), expr.Indeterminate()},
		{"zero to negative", expr.Power(expr.NewInt(0), expr.NewInt(-2)), expr.ComplexInfinity()},
		{"half times pi stays", expr.Times(expr.NewRat(1, 2), expr.Pi()), expr.Times(expr.NewRat(1, 2), expr.Pi())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Normalize(ctx, tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("Normalize(%s) = %s, want %s", tt.in.Inspect(), got.Inspect(), tt.want.Inspect())
			}
		})
	}
}

func TestNumericFoldAtWeakestPrecision(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	sum := expr.Plus(realAt(t, "1.5", 150), realAt(t, "0.25", 60))
	got := r.Normalize(ctx, sum)
	res, ok := got.(*expr.Real)
	if !ok {
		t.Fatalf("fold gave %s", got.Inspect())
	}
	if res.Prec() != 60 {
		t.Errorf("fold precision = %d, want the weakest operand's 60", res.Prec())
	}
	checkRealPrefix(t, got, "1.75", 60)
}

func TestSpecialsBlockTimesFolding(t *testing.T) {
	r := fixtureRegistry(t)
	ctx := prec.NewContext()
	in := expr.Times(expr.NewInt(0), expr.Infinity())
	if got := r.Normalize(ctx, in); !got.Equal(in) {
		t.Errorf("0 * Infinity folded to %s", got.Inspect())
	}
}
