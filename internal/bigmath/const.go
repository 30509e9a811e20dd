package bigmath

import (
	"math/big"
	"sync"

	"github.com/ALTree/bigfloat"
)

// Constant is a zero-argument primitive (Pi, E).
type Constant func(prec uint) *big.Float

var piCache = struct {
	sync.Mutex
	val *big.Float
}{}

// Pi returns pi rounded to prec bits. Computed once per high-water precision
// by Machin's formula (pi = 16 atan(1/5) - 4 atan(1/239)) and cached; the
// cache only ever grows, so concurrent readers at lower precision round down
// from the same value.
func Pi(prec uint) *big.Float {
	piCache.Lock()
	defer piCache.Unlock()
	work := workPrec(prec)
	if piCache.val == nil || piCache.val.Prec() < work {
		a := atanRecip(5, work+16)
		b := atanRecip(239, work+16)
		pi := newF(work + 16).Mul(big.NewFloat(16), a)
		pi.Sub(pi, newF(work+16).Mul(big.NewFloat(4), b))
		piCache.val = roundTo(pi, work)
	}
	return roundTo(piCache.val, prec)
}

// E returns e rounded to prec bits.
func E(prec uint) *big.Float {
	one := newF(workPrec(prec)).SetInt64(1)
	return roundTo(bigfloat.Exp(one), prec)
}

// atanRecip computes atan(1/n) for integer n > 1 by the Gregory series.
func atanRecip(n int64, prec uint) *big.Float {
	x := newF(prec).Quo(newF(prec).SetInt64(1), newF(prec).SetInt64(n))
	x2 := newF(prec).Mul(x, x)
	power := newF(prec).Set(x)
	sum := newF(prec).Set(x)
	term := newF(prec)
	for k := int64(1); ; k++ {
		power.Mul(power, x2)
		power.Neg(power)
		term.Quo(power, newF(prec).SetInt64(2*k+1))
		sum.Add(sum, term)
		if smallEnough(term, sum, prec) {
			break
		}
	}
	return sum
}
