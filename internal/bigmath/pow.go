package bigmath

import (
	"github.com/ALTree/bigfloat"
)

// PowValue computes base^exp for inexact operands. Positive real bases go
// through bigfloat.Pow; everything else takes the principal branch of
// exp(exp * log(base)). 0^0 and 0^negative are domain failures.
func PowValue(base, exp Value, prec uint) (Value, error) {
	work := workPrec(prec)
	if !base.IsComplex() && !exp.IsComplex() {
		b := roundTo(base.Re, work)
		e := roundTo(exp.Re, work)
		if b.Sign() > 0 {
			return Value{Re: roundTo(bigfloat.Pow(b, e), prec)}, nil
		}
		if b.Sign() == 0 {
			if e.Sign() > 0 {
				return Value{Re: newF(prec)}, nil
			}
			return Value{}, domainErr("Power")
		}
		// Negative base with an integer exponent stays real.
		if e.IsInt() {
			ei, _ := e.Int(nil)
			ab := newF(work).Neg(b)
			r := bigfloat.Pow(ab, e)
			if ei.Bit(0) == 1 {
				r.Neg(r)
			}
			return Value{Re: roundTo(r, prec)}, nil
		}
	}
	zb := cFromValue(base, work)
	ze := cFromValue(exp, work)
	lb, ok := cLog(zb)
	if !ok {
		return Value{}, domainErr("Power")
	}
	return cExp(cMul(ze, lb)).toValue(prec), nil
}

// exported for the reference normalizer's numeric arithmetic.

func AddValues(vs []Value, prec uint) Value {
	work := workPrec(prec)
	acc := mkc(newF(work), newF(work))
	complexSeen := false
	for _, v := range vs {
		complexSeen = complexSeen || v.IsComplex()
		acc = cAdd(acc, cFromValue(v, work))
	}
	if !complexSeen {
		return Value{Re: roundTo(acc.re, prec)}
	}
	return acc.toValue(prec)
}

func MulValues(vs []Value, prec uint) Value {
	work := workPrec(prec)
	acc := cOne(work)
	complexSeen := false
	for _, v := range vs {
		complexSeen = complexSeen || v.IsComplex()
		acc = cMul(acc, cFromValue(v, work))
	}
	if !complexSeen {
		return Value{Re: roundTo(acc.re, prec)}
	}
	return acc.toValue(prec)
}

// ImaginaryUnit returns i as a backend value (the numeric form of the I
// symbol).
func ImaginaryUnit(prec uint) Value {
	return Value{Re: newF(prec), Im: newF(prec).SetInt64(1)}
}
