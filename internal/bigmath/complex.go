package bigmath

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// complex arithmetic at the precision of the operands. A cplx always has
// both parts allocated (zero imaginary part included); conversion back to a
// backend Value decides whether the result is presented as real.

type cplx struct {
	re, im *big.Float
}

func mkc(re, im *big.Float) cplx { return cplx{re: re, im: im} }

func cFromValue(v Value, prec uint) cplx {
	re := roundTo(v.Re, prec)
	im := newF(prec)
	if v.Im != nil {
		im = roundTo(v.Im, prec)
	}
	return mkc(re, im)
}

func (z cplx) prec() uint { return z.re.Prec() }

func (z cplx) isZero() bool { return z.re.Sign() == 0 && z.im.Sign() == 0 }

func cAdd(a, b cplx) cplx {
	p := a.prec()
	return mkc(newF(p).Add(a.re, b.re), newF(p).Add(a.im, b.im))
}

func cSub(a, b cplx) cplx {
	p := a.prec()
	return mkc(newF(p).Sub(a.re, b.re), newF(p).Sub(a.im, b.im))
}

func cNeg(a cplx) cplx {
	p := a.prec()
	return mkc(newF(p).Neg(a.re), newF(p).Neg(a.im))
}

func cMul(a, b cplx) cplx {
	p := a.prec()
	re := newF(p).Sub(newF(p).Mul(a.re, b.re), newF(p).Mul(a.im, b.im))
	im := newF(p).Add(newF(p).Mul(a.re, b.im), newF(p).Mul(a.im, b.re))
	return mkc(re, im)
}

func cDiv(a, b cplx) (cplx, bool) {
	p := a.prec()
	den := newF(p).Add(newF(p).Mul(b.re, b.re), newF(p).Mul(b.im, b.im))
	if den.Sign() == 0 {
		return cplx{}, false
	}
	re := newF(p).Add(newF(p).Mul(a.re, b.re), newF(p).Mul(a.im, b.im))
	im := newF(p).Sub(newF(p).Mul(a.im, b.re), newF(p).Mul(a.re, b.im))
	return mkc(re.Quo(re, den), im.Quo(im, den)), true
}

// cAbs is the modulus |z|.
func cAbs(z cplx) *big.Float {
	p := z.prec()
	s := newF(p).Add(newF(p).Mul(z.re, z.re), newF(p).Mul(z.im, z.im))
	return bigfloat.Sqrt(s)
}

// cSqrt is the principal square root, via polar form.
func cSqrt(z cplx) cplx {
	p := z.prec()
	if z.isZero() {
		return mkc(newF(p), newF(p))
	}
	r := bigfloat.Sqrt(cAbs(z))
	theta := atan2(z.im, z.re)
	theta.Quo(theta, big.NewFloat(2))
	return mkc(newF(p).Mul(r, realCos(theta)), newF(p).Mul(r, realSin(theta)))
}

// cExp: e^(a+bi) = e^a (cos b + i sin b).
func cExp(z cplx) cplx {
	p := z.prec()
	ea := bigfloat.Exp(z.re)
	return mkc(newF(p).Mul(ea, realCos(z.im)), newF(p).Mul(ea, realSin(z.im)))
}

// cLog is the principal branch: log|z| + i arg(z). z must be non-zero.
func cLog(z cplx) (cplx, bool) {
	if z.isZero() {
		return cplx{}, false
	}
	return mkc(realLog(cAbs(z)), atan2(z.im, z.re)), true
}

// cSin: sin(a+bi) = sin a cosh b + i cos a sinh b.
func cSin(z cplx) cplx {
	p := z.prec()
	sh, ch := realSinhCosh(z.im)
	return mkc(newF(p).Mul(realSin(z.re), ch), newF(p).Mul(realCos(z.re), sh))
}

// cCos: cos(a+bi) = cos a cosh b - i sin a sinh b.
func cCos(z cplx) cplx {
	p := z.prec()
	sh, ch := realSinhCosh(z.im)
	return mkc(newF(p).Mul(realCos(z.re), ch), newF(p).Neg(newF(p).Mul(realSin(z.re), sh)))
}

// cSinh/cCosh through the circular functions: sinh z = -i sin(iz).
func cSinh(z cplx) cplx {
	s := cSin(mulI(z))
	return mulNegI(s)
}

func cCosh(z cplx) cplx {
	return cCos(mulI(z))
}

// mulI multiplies by i; mulNegI by -i.
func mulI(z cplx) cplx {
	p := z.prec()
	return mkc(newF(p).Neg(z.im), newF(p).Set(z.re))
}

func mulNegI(z cplx) cplx {
	p := z.prec()
	return mkc(newF(p).Set(z.im), newF(p).Neg(z.re))
}

func cOne(p uint) cplx  { return mkc(newF(p).SetInt64(1), newF(p)) }
func cHalf(p uint) cplx { return mkc(newF(p).SetFloat64(0.5), newF(p)) }

// cAsin: -i log(iz + sqrt(1 - z^2)).
func cAsin(z cplx) (cplx, bool) {
	one := cOne(z.prec())
	root := cSqrt(cSub(one, cMul(z, z)))
	l, ok := cLog(cAdd(mulI(z), root))
	if !ok {
		return cplx{}, false
	}
	return mulNegI(l), true
}

// cAcos: pi/2 - asin z.
func cAcos(z cplx) (cplx, bool) {
	p := z.prec()
	as, ok := cAsin(z)
	if !ok {
		return cplx{}, false
	}
	halfPi := newF(p).Quo(Pi(p), big.NewFloat(2))
	return cSub(mkc(halfPi, newF(p)), as), true
}

// cAtan: (i/2) (log(1-iz) - log(1+iz)). Poles at z = +-i.
func cAtan(z cplx) (cplx, bool) {
	one := cOne(z.prec())
	iz := mulI(z)
	la, ok1 := cLog(cSub(one, iz))
	lb, ok2 := cLog(cAdd(one, iz))
	if !ok1 || !ok2 {
		return cplx{}, false
	}
	h := cMul(mulI(cSub(la, lb)), cHalf(z.prec()))
	return h, true
}

// cAsinh: log(z + sqrt(z^2 + 1)).
func cAsinh(z cplx) (cplx, bool) {
	one := cOne(z.prec())
	return cLog(cAdd(z, cSqrt(cAdd(cMul(z, z), one))))
}

// cAcosh: log(z + sqrt(z+1) sqrt(z-1)), the branch matching acosh on
// [1, inf) and mapping [-1, 1] to the positive imaginary axis.
func cAcosh(z cplx) (cplx, bool) {
	one := cOne(z.prec())
	root := cMul(cSqrt(cAdd(z, one)), cSqrt(cSub(z, one)))
	return cLog(cAdd(z, root))
}

// cAtanh: (log(1+z) - log(1-z)) / 2. Poles at z = +-1.
func cAtanh(z cplx) (cplx, bool) {
	one := cOne(z.prec())
	la, ok1 := cLog(cAdd(one, z))
	lb, ok2 := cLog(cSub(one, z))
	if !ok1 || !ok2 {
		return cplx{}, false
	}
	return cMul(cSub(la, lb), cHalf(z.prec())), true
}

// toValue presents a complex result, dropping an exactly-zero imaginary
// part so real inputs that stayed real come back real.
func (z cplx) toValue(prec uint) Value {
	if z.im.Sign() == 0 {
		return Value{Re: roundTo(z.re, prec)}
	}
	return Value{Re: roundTo(z.re, prec), Im: roundTo(z.im, prec)}
}
