package bigmath

import (
	"math/big"
)

// Primitive is one named backend entry point: a single call per numeric
// evaluation, no generic fallback. Input and output share the Value
// representation; prec is the target precision of the result.
type Primitive func(v Value, prec uint) (Value, error)

// Lookup resolves a primitive by the name a function descriptor registered
// it under.
func Lookup(name string) (Primitive, bool) {
	p, ok := functions[name]
	return p, ok
}

// LookupConstant resolves a zero-argument primitive (Pi, E).
func LookupConstant(name string) (Constant, bool) {
	c, ok := constants[name]
	return c, ok
}

var constants = map[string]Constant{
	"Pi": Pi,
	"E":  E,
}

var functions = map[string]Primitive{
	"Exp":     pExp,
	"Log":     pLog,
	"Log2":    pLog2,
	"Log10":   pLog10,
	"Sin":     pSin,
	"Cos":     pCos,
	"Tan":     pTan,
	"Sec":     pSec,
	"Csc":     pCsc,
	"Cot":     pCot,
	"ArcSin":  pArcSin,
	"ArcCos":  pArcCos,
	"ArcTan":  pArcTan,
	"ArcSec":  pArcSec,
	"ArcCsc":  pArcCsc,
	"ArcCot":  pArcCot,
	"Sinh":    pSinh,
	"Cosh":    pCosh,
	"Tanh":    pTanh,
	"Sech":    pSech,
	"Csch":    pCsch,
	"Coth":    pCoth,
	"ArcSinh": pArcSinh,
	"ArcCosh": pArcCosh,
	"ArcTanh": pArcTanh,
	"ArcSech": pArcSech,
	"ArcCsch": pArcCsch,
	"ArcCoth": pArcCoth,
}

// viaComplex runs a complex-plane implementation and rounds once.
func viaComplex(name string, v Value, prec uint, fn func(cplx) (cplx, bool)) (Value, error) {
	z := cFromValue(v, workPrec(prec))
	r, ok := fn(z)
	if !ok {
		return Value{}, domainErr(name)
	}
	return r.toValue(prec), nil
}

// realIn returns the widened real part when v is real.
func realIn(v Value, prec uint) (*big.Float, bool) {
	if v.IsComplex() {
		return nil, false
	}
	return roundTo(v.Re, workPrec(prec)), true
}

func pExp(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		return Value{Re: roundTo(realExp(x), prec)}, nil
	}
	return viaComplex("Exp", v, prec, func(z cplx) (cplx, bool) { return cExp(z), true })
}

func pLog(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		if x.Sign() > 0 {
			return Value{Re: roundTo(realLog(x), prec)}, nil
		}
		if x.Sign() == 0 {
			return Value{}, domainErr("Log")
		}
		// Negative real: promote onto the branch cut, log|x| + i pi.
		work := x.Prec()
		ax := newF(work).Neg(x)
		return Value{Re: roundTo(realLog(ax), prec), Im: roundTo(Pi(work), prec)}, nil
	}
	return viaComplex("Log", v, prec, cLog)
}

func pLog2(v Value, prec uint) (Value, error) { return logBase("Log2", v, prec, 2) }

func pLog10(v Value, prec uint) (Value, error) { return logBase("Log10", v, prec, 10) }

// logBase computes log(v) / log(base) at guard precision with one rounding,
// following pLog onto the branch cut for negative reals.
func logBase(name string, v Value, prec uint, base int64) (Value, error) {
	work := workPrec(prec)
	lv, err := pLog(v, work)
	if err != nil {
		return Value{}, domainErr(name)
	}
	lb := realLog(newF(work).SetInt64(base))
	re := newF(work).Quo(lv.Re, lb)
	if !lv.IsComplex() {
		return Value{Re: roundTo(re, prec)}, nil
	}
	im := newF(work).Quo(lv.Im, lb)
	return Value{Re: roundTo(re, prec), Im: roundTo(im, prec)}, nil
}

func pSin(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		return Value{Re: roundTo(realSin(x), prec)}, nil
	}
	return viaComplex("Sin", v, prec, func(z cplx) (cplx, bool) { return cSin(z), true })
}

func pCos(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		return Value{Re: roundTo(realCos(x), prec)}, nil
	}
	return viaComplex("Cos", v, prec, func(z cplx) (cplx, bool) { return cCos(z), true })
}

func pTan(v Value, prec uint) (Value, error) {
	return quotient("Tan", v, prec, realSin, realCos, cSin, cCos)
}

func pCot(v Value, prec uint) (Value, error) {
	return quotient("Cot", v, prec, realCos, realSin, cCos, cSin)
}

// pSec and pCsc are dedicated primitives: the reciprocal is formed at guard
// precision and rounded once, not composed from a rounded Cos or Sin.
func pSec(v Value, prec uint) (Value, error) {
	return reciprocal("Sec", v, prec, realCos, cCos)
}

func pCsc(v Value, prec uint) (Value, error) {
	return reciprocal("Csc", v, prec, realSin, cSin)
}

func pArcSin(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		one := newF(x.Prec()).SetInt64(1)
		if newF(x.Prec()).Abs(x).Cmp(one) <= 0 {
			return Value{Re: roundTo(realAsin(x), prec)}, nil
		}
	}
	return viaComplex("ArcSin", v, prec, cAsin)
}

func pArcCos(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		work := x.Prec()
		one := newF(work).SetInt64(1)
		if newF(work).Abs(x).Cmp(one) <= 0 {
			half := newF(work).Quo(Pi(work), big.NewFloat(2))
			return Value{Re: roundTo(half.Sub(half, realAsin(x)), prec)}, nil
		}
	}
	return viaComplex("ArcCos", v, prec, cAcos)
}

func pArcTan(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		return Value{Re: roundTo(realAtan(x), prec)}, nil
	}
	return viaComplex("ArcTan", v, prec, cAtan)
}

func pArcSec(v Value, prec uint) (Value, error) {
	return inverseRecip("ArcSec", v, prec, pArcCos)
}

func pArcCsc(v Value, prec uint) (Value, error) {
	return inverseRecip("ArcCsc", v, prec, pArcSin)
}

func pArcCot(v Value, prec uint) (Value, error) {
	if !v.IsComplex() && v.Re.Sign() == 0 {
		work := workPrec(prec)
		half := newF(work).Quo(Pi(work), big.NewFloat(2))
		return Value{Re: roundTo(half, prec)}, nil
	}
	return inverseRecip("ArcCot", v, prec, pArcTan)
}

func pSinh(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		sh, _ := realSinhCosh(x)
		return Value{Re: roundTo(sh, prec)}, nil
	}
	return viaComplex("Sinh", v, prec, cAsCplxOK(cSinh))
}

func pCosh(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		_, ch := realSinhCosh(x)
		return Value{Re: roundTo(ch, prec)}, nil
	}
	return viaComplex("Cosh", v, prec, cAsCplxOK(cCosh))
}

func pTanh(v Value, prec uint) (Value, error) {
	return quotientH("Tanh", v, prec, false)
}

func pCoth(v Value, prec uint) (Value, error) {
	return quotientH("Coth", v, prec, true)
}

func pSech(v Value, prec uint) (Value, error) {
	return reciprocal("Sech", v, prec, func(x *big.Float) *big.Float {
		_, ch := realSinhCosh(x)
		return ch
	}, cCosh)
}

func pCsch(v Value, prec uint) (Value, error) {
	return reciprocal("Csch", v, prec, func(x *big.Float) *big.Float {
		sh, _ := realSinhCosh(x)
		return sh
	}, cSinh)
}

func pArcSinh(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		return Value{Re: roundTo(realAsinh(x), prec)}, nil
	}
	return viaComplex("ArcSinh", v, prec, cAsinh)
}

func pArcCosh(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		one := newF(x.Prec()).SetInt64(1)
		if x.Cmp(one) >= 0 {
			return Value{Re: roundTo(realAcosh(x), prec)}, nil
		}
	}
	return viaComplex("ArcCosh", v, prec, cAcosh)
}

func pArcTanh(v Value, prec uint) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		work := x.Prec()
		one := newF(work).SetInt64(1)
		switch newF(work).Abs(x).Cmp(one) {
		case -1:
			return Value{Re: roundTo(realAtanh(x), prec)}, nil
		case 0:
			return Value{}, domainErr("ArcTanh")
		}
	}
	return viaComplex("ArcTanh", v, prec, cAtanh)
}

func pArcSech(v Value, prec uint) (Value, error) {
	return inverseRecip("ArcSech", v, prec, pArcCosh)
}

func pArcCsch(v Value, prec uint) (Value, error) {
	return inverseRecip("ArcCsch", v, prec, pArcSinh)
}

func pArcCoth(v Value, prec uint) (Value, error) {
	return inverseRecip("ArcCoth", v, prec, pArcTanh)
}

// quotient computes num/den for the circular quotient functions.
func quotient(name string, v Value, prec uint,
	rNum, rDen func(*big.Float) *big.Float,
	cNum, cDen func(cplx) cplx) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		den := rDen(x)
		if den.Sign() == 0 {
			return Value{}, domainErr(name)
		}
		q := newF(x.Prec()).Quo(rNum(x), den)
		return Value{Re: roundTo(q, prec)}, nil
	}
	return viaComplex(name, v, prec, func(z cplx) (cplx, bool) {
		return cDiv(cNum(z), cDen(z))
	})
}

// quotientH computes tanh or coth.
func quotientH(name string, v Value, prec uint, flip bool) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		sh, ch := realSinhCosh(x)
		num, den := sh, ch
		if flip {
			num, den = ch, sh
		}
		if den.Sign() == 0 {
			return Value{}, domainErr(name)
		}
		q := newF(x.Prec()).Quo(num, den)
		return Value{Re: roundTo(q, prec)}, nil
	}
	return viaComplex(name, v, prec, func(z cplx) (cplx, bool) {
		num, den := cSinh(z), cCosh(z)
		if flip {
			num, den = den, num
		}
		return cDiv(num, den)
	})
}

// reciprocal computes 1/f at guard precision.
func reciprocal(name string, v Value, prec uint,
	rFn func(*big.Float) *big.Float, cFn func(cplx) cplx) (Value, error) {
	if x, ok := realIn(v, prec); ok {
		den := rFn(x)
		if den.Sign() == 0 {
			return Value{}, domainErr(name)
		}
		r := newF(x.Prec()).Quo(newF(x.Prec()).SetInt64(1), den)
		return Value{Re: roundTo(r, prec)}, nil
	}
	return viaComplex(name, v, prec, func(z cplx) (cplx, bool) {
		return cDiv(cOne(z.prec()), cFn(z))
	})
}

// inverseRecip computes f(1/x) for the inverse co-functions, still a single
// primitive from the caller's point of view.
func inverseRecip(name string, v Value, prec uint, inner Primitive) (Value, error) {
	work := workPrec(prec)
	if !v.IsComplex() {
		if v.Re.Sign() == 0 {
			return Value{}, domainErr(name)
		}
		r := newF(work).Quo(newF(work).SetInt64(1), roundTo(v.Re, work))
		return inner(Value{Re: r}, prec)
	}
	z := cFromValue(v, work)
	inv, ok := cDiv(cOne(work), z)
	if !ok {
		return Value{}, domainErr(name)
	}
	return inner(inv.toValue(work), prec)
}

func cAsCplxOK(fn func(cplx) cplx) func(cplx) (cplx, bool) {
	return func(z cplx) (cplx, bool) { return fn(z), true }
}
