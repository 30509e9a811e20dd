package engine

import (
	"math/big"

	"github.com/funvibe/exptrig/internal/bigmath"
	"github.com/funvibe/exptrig/pkg/expr"
)

// toBackend converts an internal numeric value to the backend
// representation without losing information: exact integers and rationals
// are widened past the working precision when they carry more bits than it.
func toBackend(e expr.Expr, bits uint) (bigmath.Value, bool) {
	switch v := e.(type) {
	case *expr.Integer:
		p := bits
		if bl := uint(v.Value.BitLen()); bl > p {
			p = bl
		}
		f := new(big.Float).SetPrec(p).SetInt(v.Value)
		return bigmath.FromFloat(f), true
	case *expr.Rational:
		p := bits
		if bl := uint(v.Value.Num().BitLen() + v.Value.Denom().BitLen()); bl > p {
			p = bl
		}
		f := new(big.Float).SetPrec(p).SetRat(v.Value)
		return bigmath.FromFloat(f), true
	case *expr.Real:
		return bigmath.FromFloat(v.Value), true
	case *expr.Complex:
		return bigmath.FromParts(v.Re, v.Im), true
	case *expr.Symbol:
		if v.Name == expr.IName {
			return bigmath.ImaginaryUnit(bits), true
		}
	}
	return bigmath.Value{}, false
}

// fromBackend converts a backend result to an internal value at the target
// precision, preserving a complex result produced from a real input.
func fromBackend(v bigmath.Value, bits uint) expr.Expr {
	if v.IsComplex() {
		re := new(big.Float).SetPrec(bits).Set(v.Re)
		im := new(big.Float).SetPrec(bits).Set(v.Im)
		return expr.NewComplex(re, im)
	}
	return expr.NewRealFromFloat(new(big.Float).SetPrec(bits).Set(v.Re))
}
