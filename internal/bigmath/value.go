// Package bigmath is the arbitrary-precision numeric backend. It exposes one
// named primitive per builtin function plus the two constants; everything is
// computed with guard bits and rounded exactly once at the requested
// precision. Inputs outside a real primitive's domain either promote to a
// complex result (branch points) or fail with ErrDomain (poles); raw NaN or
// Inf never escapes this package.
package bigmath

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/funvibe/exptrig/internal/config"
)

// ErrDomain reports that a primitive cannot produce a finite value for its
// input. The rule layer maps it to a special in-language value.
var ErrDomain = errors.New("bigmath: domain error")

func domainErr(name string) error {
	return fmt.Errorf("%s: %w", name, ErrDomain)
}

// Value is a backend number: real when Im is nil, complex otherwise.
type Value struct {
	Re *big.Float
	Im *big.Float
}

func FromFloat(re *big.Float) Value { return Value{Re: re} }

func FromParts(re, im *big.Float) Value { return Value{Re: re, Im: im} }

func (v Value) IsComplex() bool { return v.Im != nil }

// newF allocates a zero big.Float at the given working precision.
func newF(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// roundTo re-rounds x to the target precision (the single rounding step of a
// primitive).
func roundTo(x *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(x)
}

func (v Value) round(prec uint) Value {
	out := Value{Re: roundTo(v.Re, prec)}
	if v.Im != nil {
		out.Im = roundTo(v.Im, prec)
	}
	return out
}

// workPrec is the internal precision for a target precision.
func workPrec(prec uint) uint {
	return prec + config.GuardBits
}

// smallEnough reports that term no longer moves a sum carried at prec bits,
// the stop test shared by the series loops.
func smallEnough(term, sum *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return false
	}
	te := term.MantExp(nil)
	se := sum.MantExp(nil)
	return se-te > int(prec)+8
}
