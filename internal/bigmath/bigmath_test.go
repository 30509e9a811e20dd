package bigmath

import (
	"errors"
	"math/big"
	"testing"
)

const (
	pi60 = "3.14159265358979323846264338327950288419716939937510582097494"
	e60  = "2.71828182845904523536028747135266249775724709369995957496697"
)

func parseF(t *testing.T, s string, bits uint) *big.Float {
	t.Helper()
	f, _, err := big.ParseFloat(s, 10, bits+16, big.ToNearestEven)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return f
}

// checkClose verifies agreement to within a few ulps at bits.
func checkClose(t *testing.T, got, want *big.Float, bits uint) {
	t.Helper()
	if want.Sign() == 0 {
		if got.Sign() != 0 && got.MantExp(nil) > -int(bits)+8 {
			t.Fatalf("got %s, want ~0", got.Text('g', 20))
		}
		return
	}
	diff := new(big.Float).SetPrec(bits + 16).Sub(got, want)
	if diff.Sign() == 0 {
		return
	}
	if diff.MantExp(nil) > want.MantExp(nil)-int(bits)+6 {
		t.Fatalf("got %s, want %s (diff exponent %d)",
			got.Text('g', 30), want.Text('g', 30), diff.MantExp(nil))
	}
}

func TestPiDigits(t *testing.T) {
	for _, bits := range []uint{53, 100, 190} {
		got := Pi(bits)
		checkClose(t, got, parseF(t, pi60, bits), bits)
	}
}

func TestEDigits(t *testing.T) {
	got := E(190)
	checkClose(t, got, parseF(t, e60, 190), 190)
}

func TestRealPrimitiveValues(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		in   string
		want string
	}{
		{"sin", "Sin", "1", "0.841470984807896506652502321630298999622563060798371065673"},
		{"cos", "Cos", "1", "0.540302305868139717400936607442976603732310420617922227670"},
		{"tan", "Tan", "1", "1.55740772465490223050697480745836017308725077238152003838"},
		{"sin large argument", "Sin", "100", "-0.506365641109758793656557610459785432065032721290657323443"},
		{"exp", "Exp", "2", "7.38905609893065022723042746057500781318031557055184732408"},
		{"log", "Log", "2", "0.693147180559945309417232121458176568075500134360255254120"},
		{"log2", "Log2", "8", "3.00000000000000000000000000000000000000000000000000000000"},
		{"log10", "Log10", "1000", "3.00000000000000000000000000000000000000000000000000000000"},
		{"atan", "ArcTan", "1", "0.785398163397448309615660845819875721049292349843776455243"},
		{"asin", "ArcSin", "0.5", "0.523598775598298873077107230546583814032861566562517636829"},
		{"sinh", "Sinh", "1", "1.17520119364380145688238185059560081515571798133409587022"},
		{"cosh", "Cosh", "1", "1.54308063481524377847790562075706168260152911235990193321"},
		{"asinh", "ArcSinh", "1", "0.881373587019543025232609324979792309028160328261635410753"},
		{"acosh", "ArcCosh", "2", "1.31695789692481670862504634730796844402698197146751647976"},
		{"atanh", "ArcTanh", "0.5", "0.549306144334054845697622618461262852323745278342305411300"},
		{"sec", "Sec", "1", "1.85081571768092561791175324137781192305742110459966815717"},
		{"csc", "Csc", "1", "1.18839510577812121626159943988186985135837444398516843481"},
		{"cot", "Cot", "1", "0.642092615934330703006419986594265620230278113918171379101"},
		{"sech", "Sech", "1", "0.648054273663885399574977353226150323108489312071942023037"},
		{"csch", "Csch", "1", "0.850918128239321545133842763287175284181724660910339616990"},
		{"coth", "Coth", "1", "1.31303528549933130363616124693084783291201394124045265554"},
	}
	const bits = 150
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Lookup(tt.fn)
			if !ok {
				t.Fatalf("no primitive %q", tt.fn)
			}
			in := FromFloat(parseF(t, tt.in, bits))
			got, err := fn(in, bits)
			if err != nil {
				t.Fatalf("%s(%s) err = %v", tt.fn, tt.in, err)
			}
			if got.IsComplex() {
				t.Fatalf("%s(%s) came back complex", tt.fn, tt.in)
			}
			if got.Re.Prec() != bits {
				t.Errorf("result precision %d, want %d", got.Re.Prec(), bits)
			}
			checkClose(t, got.Re, parseF(t, tt.want, bits), bits)
		})
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		in   Value
	}{
		{"log of zero", "Log", FromFloat(newF(64))},
		{"log2 of zero", "Log2", FromFloat(newF(64))},
		{"atanh at one", "ArcTanh", FromFloat(newF(64).SetInt64(1))},
		{"atanh at minus one", "ArcTanh", FromFloat(newF(64).SetInt64(-1))},
		{"csch at zero", "Csch", FromFloat(newF(64))},
		{"coth at zero", "Coth", FromFloat(newF(64))},
		{"cot at zero", "Cot", FromFloat(newF(64))},
		{"arcsec at zero", "ArcSec", FromFloat(newF(64))},
		{"arccsch at zero", "ArcCsch", FromFloat(newF(64))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Lookup(tt.fn)
			if !ok {
				t.Fatalf("no primitive %q", tt.fn)
			}
			_, err := fn(tt.in, 64)
			if !errors.Is(err, ErrDomain) {
				t.Errorf("err = %v, want ErrDomain", err)
			}
		})
	}
}

func TestBranchPointPromotion(t *testing.T) {
	const bits = 100
	tests := []struct {
		name   string
		fn     string
		in     string
		wantRe string
		wantIm string
	}{
		// log(-1) = i pi
		{"log negative", "Log", "-1", "0",
			"3.14159265358979323846264338328"},
		// acosh(1/2) = i pi/3
		{"acosh below one", "ArcCosh", "0.5", "0",
			"1.04719755119659774615421446109"},
		// atanh(2) = atanh(1/2) - i pi/2
		{"atanh outside unit", "ArcTanh", "2",
			"0.549306144334054845697622618461",
			"-1.57079632679489661923132169164"},
		// asin(2) = pi/2 - i acosh(2)
		{"asin above one", "ArcSin", "2",
			"1.57079632679489661923132169164",
			"-1.31695789692481670862504634731"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, _ := Lookup(tt.fn)
			got, err := fn(FromFloat(parseF(t, tt.in, bits)), bits)
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if !got.IsComplex() {
				t.Fatalf("result stayed real: %s", got.Re.Text('g', 20))
			}
			checkClose(t, got.Re, parseF(t, tt.wantRe, bits), bits)
			checkClose(t, got.Im, parseF(t, tt.wantIm, bits), bits)
		})
	}
}

func TestComplexRoundTrips(t *testing.T) {
	const bits = 120
	tests := []struct {
		name     string
		forward  string
		backward string
		in       string
	}{
		{"asin sin", "ArcSin", "Sin", "2.5"},
		{"acos cos", "ArcCos", "Cos", "3.5"},
		{"acosh cosh", "ArcCosh", "Cosh", "0.25"},
		{"atanh tanh", "ArcTanh", "Tanh", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd, _ := Lookup(tt.forward)
			bwd, _ := Lookup(tt.backward)
			in := parseF(t, tt.in, bits)
			mid, err := fwd(FromFloat(in), bits)
			if err != nil {
				t.Fatalf("%s err = %v", tt.forward, err)
			}
			back, err := bwd(mid, bits)
			if err != nil {
				t.Fatalf("%s err = %v", tt.backward, err)
			}
			checkClose(t, back.Re, in, bits-8)
			if back.IsComplex() {
				checkClose(t, back.Im, newF(bits), bits-8)
			}
		})
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	const bits = 200
	x := FromFloat(parseF(t, "0.7", bits))
	sin, err := pSin(x, bits)
	if err != nil {
		t.Fatal(err)
	}
	cos, err := pCos(x, bits)
	if err != nil {
		t.Fatal(err)
	}
	work := newF(bits + 16)
	s2 := newF(bits + 16).Mul(sin.Re, sin.Re)
	c2 := newF(bits + 16).Mul(cos.Re, cos.Re)
	checkClose(t, work.Add(s2, c2), newF(bits).SetInt64(1), bits)
}

func TestHyperbolicIdentity(t *testing.T) {
	const bits = 200
	x := FromFloat(parseF(t, "2.3", bits))
	sh, err := pSinh(x, bits)
	if err != nil {
		t.Fatal(err)
	}
	ch, err := pCosh(x, bits)
	if err != nil {
		t.Fatal(err)
	}
	work := newF(bits + 16)
	s2 := newF(bits + 16).Mul(sh.Re, sh.Re)
	c2 := newF(bits + 16).Mul(ch.Re, ch.Re)
	checkClose(t, work.Sub(c2, s2), newF(bits).SetInt64(1), bits-4)
}

func TestReciprocalAgreesWithQuotient(t *testing.T) {
	const bits = 128
	x := FromFloat(parseF(t, "1.1", bits))
	sec, err := pSec(x, bits)
	if err != nil {
		t.Fatal(err)
	}
	cos, err := pCos(x, bits)
	if err != nil {
		t.Fatal(err)
	}
	prod := newF(bits + 16).Mul(sec.Re, cos.Re)
	checkClose(t, prod, newF(bits).SetInt64(1), bits-4)
}

func TestResultRoundedToRequestedPrecision(t *testing.T) {
	in := FromFloat(parseF(t, "0.5", 300))
	got, err := pSin(in, 80)
	if err != nil {
		t.Fatal(err)
	}
	if got.Re.Prec() != 80 {
		t.Errorf("precision = %d, want 80", got.Re.Prec())
	}
}
