package bigmath

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// All helpers in this file work at the precision already carried by their
// arguments; callers allocate at workPrec and round once at the end.

// reduceAngle maps x into (-pi, pi]. The extra bits compensate for the
// cancellation of subtracting a large multiple of 2 pi.
func reduceAngle(x *big.Float) *big.Float {
	prec := x.Prec()
	exp := x.MantExp(nil)
	extra := uint(0)
	if exp > 0 {
		extra = uint(exp)
	}
	wide := prec + extra + 8
	pi := Pi(wide)
	twoPi := newF(wide).Add(pi, pi)
	r := newF(wide).Set(x)
	if newF(wide).Abs(r).Cmp(pi) > 0 {
		q := newF(wide).Quo(r, twoPi)
		qi, _ := q.Int(nil)
		r.Sub(r, newF(wide).Mul(twoPi, newF(wide).SetInt(qi)))
	}
	for r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	}
	negPi := newF(wide).Neg(pi)
	for r.Cmp(negPi) <= 0 {
		r.Add(r, twoPi)
	}
	return roundTo(r, prec)
}

func realSin(x *big.Float) *big.Float {
	prec := x.Prec()
	r := reduceAngle(x)
	// sin r = r - r^3/3! + r^5/5! - ...
	r2 := newF(prec).Mul(r, r)
	term := newF(prec).Set(r)
	sum := newF(prec).Set(r)
	tmp := newF(prec)
	for k := int64(1); ; k++ {
		term.Mul(term, r2)
		term.Neg(term)
		tmp.SetInt64(2 * k * (2*k + 1))
		term.Quo(term, tmp)
		sum.Add(sum, term)
		if smallEnough(term, sum, prec) {
			break
		}
	}
	return sum
}

func realCos(x *big.Float) *big.Float {
	prec := x.Prec()
	r := reduceAngle(x)
	r2 := newF(prec).Mul(r, r)
	term := newF(prec).SetInt64(1)
	sum := newF(prec).SetInt64(1)
	tmp := newF(prec)
	for k := int64(1); ; k++ {
		term.Mul(term, r2)
		term.Neg(term)
		tmp.SetInt64((2*k - 1) * (2 * k))
		term.Quo(term, tmp)
		sum.Add(sum, term)
		if smallEnough(term, sum, prec) {
			break
		}
	}
	return sum
}

// realAtan uses the halving identity atan(x) = 2 atan(x / (1 + sqrt(1+x^2)))
// until the argument is small, then the Gregory series.
func realAtan(x *big.Float) *big.Float {
	prec := x.Prec()
	if x.Sign() == 0 {
		return newF(prec)
	}
	t := newF(prec).Set(x)
	neg := false
	if t.Sign() < 0 {
		neg = true
		t.Neg(t)
	}
	one := newF(prec).SetInt64(1)
	eighth := big.NewFloat(0.125)
	halvings := 0
	for t.Cmp(eighth) > 0 {
		t2 := newF(prec).Mul(t, t)
		den := newF(prec).Add(one, bigfloat.Sqrt(newF(prec).Add(one, t2)))
		t.Quo(t, den)
		halvings++
	}
	t2 := newF(prec).Mul(t, t)
	power := newF(prec).Set(t)
	sum := newF(prec).Set(t)
	term := newF(prec)
	for k := int64(1); ; k++ {
		power.Mul(power, t2)
		power.Neg(power)
		term.Quo(power, newF(prec).SetInt64(2*k+1))
		sum.Add(sum, term)
		if smallEnough(term, sum, prec) {
			break
		}
	}
	for i := 0; i < halvings; i++ {
		sum.Add(sum, sum)
	}
	if neg {
		sum.Neg(sum)
	}
	return sum
}

// atan2 returns the principal argument of the point (x, y).
func atan2(y, x *big.Float) *big.Float {
	prec := y.Prec()
	if x.Prec() > prec {
		prec = x.Prec()
	}
	pi := Pi(prec)
	switch {
	case x.Sign() > 0:
		return realAtan(newF(prec).Quo(y, x))
	case x.Sign() < 0:
		a := realAtan(newF(prec).Quo(y, x))
		if y.Sign() >= 0 {
			return a.Add(a, pi)
		}
		return a.Sub(a, pi)
	default:
		half := newF(prec).Quo(pi, big.NewFloat(2))
		if y.Sign() > 0 {
			return half
		}
		if y.Sign() < 0 {
			return half.Neg(half)
		}
		// (0, 0) has no argument; callers reject zero beforehand.
		return newF(prec)
	}
}

// realAsin requires |x| <= 1; the registry promotes to complex beyond that.
func realAsin(x *big.Float) *big.Float {
	prec := x.Prec()
	one := newF(prec).SetInt64(1)
	if newF(prec).Abs(x).Cmp(one) == 0 {
		half := newF(prec).Quo(Pi(prec), big.NewFloat(2))
		if x.Sign() < 0 {
			half.Neg(half)
		}
		return half
	}
	x2 := newF(prec).Mul(x, x)
	den := bigfloat.Sqrt(newF(prec).Sub(one, x2))
	return realAtan(newF(prec).Quo(x, den))
}

func realSinhCosh(x *big.Float) (sinh, cosh *big.Float) {
	prec := x.Prec()
	// Cancellation in (e^x - e^-x) costs about -exp bits for small x.
	exp := x.MantExp(nil)
	wide := prec
	if exp < 0 {
		wide += uint(-exp)
	}
	xw := roundTo(x, wide)
	ex := bigfloat.Exp(xw)
	emx := newF(wide).Quo(newF(wide).SetInt64(1), ex)
	two := big.NewFloat(2)
	sinh = newF(wide).Sub(ex, emx)
	sinh.Quo(sinh, two)
	cosh = newF(wide).Add(ex, emx)
	cosh.Quo(cosh, two)
	return roundTo(sinh, prec), roundTo(cosh, prec)
}

// realLog requires x > 0.
func realLog(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}

func realExp(x *big.Float) *big.Float {
	return bigfloat.Exp(x)
}

// realAsinh is stable for either sign via the odd symmetry.
func realAsinh(x *big.Float) *big.Float {
	prec := x.Prec()
	if x.Sign() == 0 {
		return newF(prec)
	}
	t := newF(prec).Set(x)
	neg := false
	if t.Sign() < 0 {
		neg = true
		t.Neg(t)
	}
	one := newF(prec).SetInt64(1)
	t2 := newF(prec).Mul(t, t)
	r := realLog(newF(prec).Add(t, bigfloat.Sqrt(newF(prec).Add(t2, one))))
	if neg {
		r.Neg(r)
	}
	return r
}

// realAcosh requires x >= 1.
func realAcosh(x *big.Float) *big.Float {
	prec := x.Prec()
	one := newF(prec).SetInt64(1)
	x2 := newF(prec).Mul(x, x)
	return realLog(newF(prec).Add(x, bigfloat.Sqrt(newF(prec).Sub(x2, one))))
}

// realAtanh requires |x| < 1.
func realAtanh(x *big.Float) *big.Float {
	prec := x.Prec()
	one := newF(prec).SetInt64(1)
	num := newF(prec).Add(one, x)
	den := newF(prec).Sub(one, x)
	r := realLog(newF(prec).Quo(num, den))
	return r.Quo(r, big.NewFloat(2))
}
