package expr

import (
	"fmt"
	"math/big"
)

// Integer is an exact arbitrary-size integer.
type Integer struct {
	Value *big.Int
}

func NewInt(v int64) *Integer          { return &Integer{Value: big.NewInt(v)} }
func NewBigInt(v *big.Int) *Integer    { return &Integer{Value: new(big.Int).Set(v)} }
func (i *Integer) Type() ExprType      { return INTEGER_EXPR }
func (i *Integer) Inspect() string     { return i.Value.String() }
func (i *Integer) Hash() uint32        { return hashString(i.Value.String()) }
func (i *Integer) Int64() int64        { return i.Value.Int64() }
func (i *Integer) Sign() int           { return i.Value.Sign() }
func (i *Integer) Equal(other Expr) bool {
	o, ok := other.(*Integer)
	return ok && i.Value.Cmp(o.Value) == 0
}

// Rational is an exact fraction. Constructors normalize: a rational with
// denominator 1 comes back as an Integer, so Rational never aliases a whole
// number.
type Rational struct {
	Value *big.Rat
}

// NewRat returns p/q as an Integer or Rational. q must be non-zero.
func NewRat(p, q int64) Expr {
	if q == 0 {
		panic("expr: zero denominator")
	}
	return NewRational(new(big.Rat).SetFrac64(p, q))
}

func NewRational(v *big.Rat) Expr {
	if v.IsInt() {
		return &Integer{Value: new(big.Int).Set(v.Num())}
	}
	return &Rational{Value: new(big.Rat).Set(v)}
}

func (r *Rational) Type() ExprType  { return RATIONAL_EXPR }
func (r *Rational) Inspect() string { return r.Value.Num().String() + "/" + r.Value.Denom().String() }
func (r *Rational) Hash() uint32    { return hashString(r.Value.RatString()) }
func (r *Rational) Equal(other Expr) bool {
	o, ok := other.(*Rational)
	return ok && r.Value.Cmp(o.Value) == 0
}

// Real is an arbitrary-precision inexact real. The working precision is the
// precision of the underlying big.Float.
type Real struct {
	Value *big.Float
}

// NewReal wraps a machine float at 53 bits.
func NewReal(v float64) *Real {
	return &Real{Value: big.NewFloat(v)}
}

// NewRealFromFloat keeps the precision already carried by v.
func NewRealFromFloat(v *big.Float) *Real {
	return &Real{Value: new(big.Float).SetPrec(v.Prec()).Set(v)}
}

func (r *Real) Type() ExprType { return REAL_EXPR }
func (r *Real) Prec() uint     { return r.Value.Prec() }
func (r *Real) Inspect() string {
	return r.Value.Text('g', digitsForBits(r.Value.Prec()))
}
func (r *Real) Hash() uint32 { return hashString(r.Value.Text('p', 0)) }
func (r *Real) Equal(other Expr) bool {
	o, ok := other.(*Real)
	return ok && r.Value.Cmp(o.Value) == 0 && r.Value.Prec() == o.Value.Prec()
}

// Complex is an arbitrary-precision inexact complex value. Both parts share
// one working precision.
type Complex struct {
	Re *big.Float
	Im *big.Float
}

func NewComplex(re, im *big.Float) *Complex {
	return &Complex{
		Re: new(big.Float).SetPrec(re.Prec()).Set(re),
		Im: new(big.Float).SetPrec(im.Prec()).Set(im),
	}
}

func (c *Complex) Type() ExprType { return COMPLEX_EXPR }
func (c *Complex) Prec() uint     { return c.Re.Prec() }
func (c *Complex) Inspect() string {
	d := digitsForBits(c.Re.Prec())
	im := c.Im
	op := "+"
	if im.Sign() < 0 {
		op = "-"
		im = new(big.Float).SetPrec(im.Prec()).Neg(im)
	}
	return fmt.Sprintf("%s %s %s*I", c.Re.Text('g', d), op, im.Text('g', d))
}
func (c *Complex) Hash() uint32 {
	return hashCombine(hashString(c.Re.Text('p', 0)), hashString(c.Im.Text('p', 0)))
}
func (c *Complex) Equal(other Expr) bool {
	o, ok := other.(*Complex)
	return ok && c.Re.Cmp(o.Re) == 0 && c.Im.Cmp(o.Im) == 0 && c.Re.Prec() == o.Re.Prec()
}

// Symbol is an uninterpreted name: the protected constants (Pi, E,
// GoldenRatio, I) as well as host-side user symbols.
type Symbol struct {
	Name string
}

func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }
func Pi() *Symbol                   { return &Symbol{Name: PiName} }
func EulerE() *Symbol               { return &Symbol{Name: EName} }
func ImaginaryI() *Symbol           { return &Symbol{Name: IName} }

func (s *Symbol) Type() ExprType  { return SYMBOL_EXPR }
func (s *Symbol) Inspect() string { return s.Name }
func (s *Symbol) Hash() uint32    { return hashString(s.Name) }
func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.Name == o.Name
}

// digitsForBits converts a binary working precision to the number of decimal
// digits it can certify (floor of bits * log10(2)).
func digitsForBits(bits uint) int {
	d := int(float64(bits) * 0.3010299956639812)
	if d < 1 {
		d = 1
	}
	return d
}
