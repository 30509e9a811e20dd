package engine

import (
	"math/big"

	"github.com/funvibe/exptrig/internal/bigmath"
	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/pkg/expr"
)

// Exact and numeric arithmetic over Plus, Times and Power for the reference
// normalizer. A production host owns full canonical arithmetic (Orderless,
// Flat, collected terms); this covers what rule outputs and N requests
// produce: rational arithmetic, (-1)^n, numeric folding at the weakest
// operand precision.

func asRat(e expr.Expr) (*big.Rat, bool) {
	switch v := e.(type) {
	case *expr.Integer:
		return new(big.Rat).SetInt(v.Value), true
	case *expr.Rational:
		return new(big.Rat).Set(v.Value), true
	}
	return nil, false
}

// weakestInexactPrec finds the lowest precision among inexact operands; a
// fold can never be more precise than that.
func weakestInexactPrec(args []expr.Expr) (uint, bool) {
	found := false
	var min uint
	for _, a := range args {
		var p uint
		switch v := a.(type) {
		case *expr.Real:
			p = v.Prec()
		case *expr.Complex:
			p = v.Prec()
		default:
			continue
		}
		if !found || p < min {
			min = p
			found = true
		}
	}
	return min, found
}

func allBackendable(args []expr.Expr, bits uint) ([]bigmath.Value, bool) {
	out := make([]bigmath.Value, len(args))
	for i, a := range args {
		v, ok := toBackend(a, bits)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func evalArith(c *expr.Call) (expr.Expr, bool) {
	switch c.Head {
	case config.PlusHead:
		return evalPlus(c)
	case config.TimesHead:
		return evalTimes(c)
	case config.PowerHead:
		return evalPower(c)
	}
	return nil, false
}

func flatten(head string, args []expr.Expr) ([]expr.Expr, bool) {
	changed := false
	out := make([]expr.Expr, 0, len(args))
	for _, a := range args {
		if inner, ok := a.(*expr.Call); ok && inner.Head == head {
			out = append(out, inner.Args...)
			changed = true
			continue
		}
		out = append(out, a)
	}
	return out, changed
}

func evalPlus(c *expr.Call) (expr.Expr, bool) {
	args, flattened := flatten(config.PlusHead, c.Args)
	if len(args) == 1 {
		return args[0], true
	}
	if bits, inexact := weakestInexactPrec(args); inexact {
		if vs, ok := allBackendable(args, bits); ok {
			return fromBackend(bigmath.AddValues(vs, bits), bits), true
		}
	}
	sum := new(big.Rat)
	exactCount := 0
	rest := make([]expr.Expr, 0, len(args))
	for _, a := range args {
		if r, ok := asRat(a); ok {
			sum.Add(sum, r)
			exactCount++
			continue
		}
		rest = append(rest, a)
	}
	if exactCount == len(args) {
		return expr.NewRational(sum), true
	}
	if exactCount >= 1 && sum.Sign() == 0 {
		// Dropping a zero term strictly shrinks the expression, so this
		// cannot oscillate.
		if len(rest) == 1 {
			return rest[0], true
		}
		return expr.NewCall(config.PlusHead, rest...), true
	}
	if exactCount <= 1 && !flattened {
		return nil, false
	}
	out := make([]expr.Expr, 0, len(rest)+1)
	if sum.Sign() != 0 {
		out = append(out, expr.NewRational(sum))
	}
	out = append(out, rest...)
	if len(out) == 1 {
		return out[0], true
	}
	return expr.NewCall(config.PlusHead, out...), true
}

func evalTimes(c *expr.Call) (expr.Expr, bool) {
	args, flattened := flatten(config.TimesHead, c.Args)
	if len(args) == 1 {
		return args[0], true
	}
	for _, a := range args {
		if _, isSpecial := a.(*expr.Special); isSpecial {
			// 0 * Infinity and friends are the host's problem.
			return nil, false
		}
	}
	if bits, inexact := weakestInexactPrec(args); inexact {
		if vs, ok := allBackendable(args, bits); ok {
			return fromBackend(bigmath.MulValues(vs, bits), bits), true
		}
	}
	coeff := new(big.Rat).SetInt64(1)
	exactCount := 0
	rest := make([]expr.Expr, 0, len(args))
	for _, a := range args {
		if r, ok := asRat(a); ok {
			coeff.Mul(coeff, r)
			exactCount++
			continue
		}
		rest = append(rest, a)
	}
	if coeff.Sign() == 0 {
		return expr.NewInt(0), true
	}
	if exactCount == len(args) {
		return expr.NewRational(coeff), true
	}
	if exactCount >= 1 && coeff.Cmp(new(big.Rat).SetInt64(1)) == 0 {
		if len(rest) == 1 {
			return rest[0], true
		}
		return expr.NewCall(config.TimesHead, rest...), true
	}
	if exactCount <= 1 && !flattened {
		return nil, false
	}
	out := make([]expr.Expr, 0, len(rest)+1)
	if coeff.Cmp(new(big.Rat).SetInt64(1)) != 0 {
		out = append(out, expr.NewRational(coeff))
	}
	out = append(out, rest...)
	switch len(out) {
	case 0:
		return expr.NewInt(1), true
	case 1:
		return out[0], true
	}
	return expr.NewCall(config.TimesHead, out...), true
}

// maxExactExpBits bounds exact integer exponentiation before it degenerates
// into gigantic integers.
const maxExactExpBits = 20

func evalPower(c *expr.Call) (expr.Expr, bool) {
	if len(c.Args) != 2 {
		return nil, false
	}
	base, exp := c.Args[0], c.Args[1]

	if n, ok := exp.(*expr.Integer); ok {
		if n.Value.IsInt64() {
			switch n.Value.Int64() {
			case 1:
				return base, true
			case 0:
				if r, isRat := asRat(base); isRat && r.Sign() == 0 {
					return expr.Indeterminate(), true
				}
				return expr.NewInt(1), true
			}
		}
		if br, ok := asRat(base); ok && n.Value.BitLen() <= maxExactExpBits {
			e := n.Value.Int64()
			neg := e < 0
			if neg {
				e = -e
			}
			num := new(big.Int).Exp(br.Num(), big.NewInt(e), nil)
			den := new(big.Int).Exp(br.Denom(), big.NewInt(e), nil)
			out := new(big.Rat).SetFrac(num, den)
			if neg {
				if out.Sign() == 0 {
					return expr.ComplexInfinity(), true
				}
				out.Inv(out)
			}
			return expr.NewRational(out), true
		}
	}

	if bits, inexact := weakestInexactPrec(c.Args); inexact {
		if vs, ok := allBackendable(c.Args, bits); ok {
			res, err := bigmath.PowValue(vs[0], vs[1], bits)
			if err != nil {
				return expr.Indeterminate(), true
			}
			return fromBackend(res, bits), true
		}
	}
	return nil, false
}
