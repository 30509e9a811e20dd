package engine

import (
	"errors"
	"math/big"

	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/internal/prec"
	"github.com/funvibe/exptrig/pkg/expr"
)

// The control flow the host drives, reproduced here as a reference driver
// for tests and the catalog binary: try the rule table in order, hand a
// single inexact numeric argument to the numeric dispatcher, otherwise
// leave the call as its own normal form. No match is never an error.

// maxNormalizeSteps bounds the fixpoint loop. Well-formed rule tables
// terminate long before this; the budget only guards against a cyclic table.
const maxNormalizeSteps = 64

// EvalCall applies one definition to one call. The boolean reports whether
// anything fired; false means the call is a valid normal form (or the head
// is not registered here).
func (r *Registry) EvalCall(ctx *prec.Context, call *expr.Call) (expr.Expr, bool) {
	def, ok := r.Lookup(call.Head)
	if !ok {
		return nil, false
	}
	if out, fired := def.ApplyRules(call); fired {
		return out, true
	}
	if def.Numeric != nil && len(call.Args) == 1 && expr.IsInexact(call.Args[0]) {
		bits := inexactPrec(call.Args[0])
		out, err := def.Numeric.EvalNumeric(ctx, call.Args, bits)
		if err != nil {
			if errors.Is(err, ErrNumericDomain) && def.DomainFallback != nil {
				return def.DomainFallback, true
			}
			return nil, false
		}
		return out, true
	}
	return nil, false
}

func inexactPrec(e expr.Expr) uint {
	switch v := e.(type) {
	case *expr.Real:
		return v.Prec()
	case *expr.Complex:
		return v.Prec()
	}
	return prec.DefaultBits()
}

// Normalize rewrites e to a fixpoint: arguments first, then definition
// rules, then reference arithmetic. Re-normalizing a normal form returns
// the identical expression.
func (r *Registry) Normalize(ctx *prec.Context, e expr.Expr) expr.Expr {
	for i := 0; i < maxNormalizeSteps; i++ {
		next, changed := r.rewriteOnce(ctx, e)
		e = next
		if !changed {
			return e
		}
	}
	return e
}

func (r *Registry) rewriteOnce(ctx *prec.Context, e expr.Expr) (expr.Expr, bool) {
	call, ok := e.(*expr.Call)
	if !ok {
		return e, false
	}

	changed := false
	args := make([]expr.Expr, len(call.Args))
	for i, a := range call.Args {
		na, c := r.rewriteOnce(ctx, a)
		args[i] = na
		changed = changed || c
	}
	rebuilt := expr.NewCall(call.Head, args...)
	if changed {
		return rebuilt, true
	}

	if rebuilt.Head == config.NHead {
		if out, handled := r.evalNCall(ctx, rebuilt); handled {
			return out, true
		}
		return rebuilt, false
	}
	if out, fired := r.EvalCall(ctx, rebuilt); fired {
		return out, true
	}
	if out, folded := evalArith(rebuilt); folded {
		return out, true
	}
	return rebuilt, false
}

// evalNCall handles an explicit N[expr] / N[expr, digits] request inside
// the normalizer. A malformed digit count leaves the call unevaluated; the
// N entry point itself surfaces the error to programmatic callers.
func (r *Registry) evalNCall(ctx *prec.Context, call *expr.Call) (expr.Expr, bool) {
	digits := config.DefaultDigits
	switch len(call.Args) {
	case 1:
	case 2:
		n, ok := call.Args[1].(*expr.Integer)
		if !ok || !n.Value.IsInt64() {
			return nil, false
		}
		digits = int(n.Value.Int64())
	default:
		return nil, false
	}
	out, err := r.N(ctx, call.Args[0], digits)
	if err != nil {
		return nil, false
	}
	return out, true
}

// N evaluates e to digits decimal digits. An invalid digit count is an
// error for the caller to see, never a silent default.
func (r *Registry) N(ctx *prec.Context, e expr.Expr, digits int) (expr.Expr, error) {
	bits, err := prec.BitsForDigits(digits)
	if err != nil {
		return nil, err
	}
	e = r.Normalize(ctx, e)
	return r.nApply(ctx, e, bits, digits)
}

func (r *Registry) nApply(ctx *prec.Context, e expr.Expr, bits uint, digits int) (expr.Expr, error) {
	switch v := e.(type) {
	case *expr.Integer:
		return expr.NewRealFromFloat(new(big.Float).SetPrec(bits).SetInt(v.Value)), nil
	case *expr.Rational:
		return expr.NewRealFromFloat(new(big.Float).SetPrec(bits).SetRat(v.Value)), nil
	case *expr.Real:
		if bits < v.Prec() {
			return expr.NewRealFromFloat(new(big.Float).SetPrec(bits).Set(v.Value)), nil
		}
		// Precision cannot be conjured after the fact.
		return v, nil
	case *expr.Complex:
		if bits < v.Prec() {
			re := new(big.Float).SetPrec(bits).Set(v.Re)
			im := new(big.Float).SetPrec(bits).Set(v.Im)
			return expr.NewComplex(re, im), nil
		}
		return v, nil
	case *expr.Special:
		return v, nil
	case *expr.Symbol:
		return r.nSymbol(ctx, v, bits, digits)
	case *expr.Call:
		return r.nCall(ctx, v, bits, digits)
	}
	return e, nil
}

func (r *Registry) nSymbol(ctx *prec.Context, s *expr.Symbol, bits uint, digits int) (expr.Expr, error) {
	if s.Name == expr.IName {
		zero := new(big.Float).SetPrec(bits)
		one := new(big.Float).SetPrec(bits).SetInt64(1)
		return expr.NewComplex(zero, one), nil
	}
	def, ok := r.Lookup(s.Name)
	if !ok {
		return s, nil
	}
	// N rules first (the N[GoldenRatio, prec_] form), then a constant
	// primitive.
	probe := expr.NewCall(config.NHead, s, expr.NewInt(int64(digits)))
	if out, fired := def.ApplyRules(probe); fired {
		return r.Normalize(ctx, out), nil
	}
	if def.Numeric != nil {
		out, err := def.Numeric.EvalNumeric(ctx, nil, bits)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, ErrInvalidPrecision) {
			return nil, err
		}
	}
	return s, nil
}

func (r *Registry) nCall(ctx *prec.Context, call *expr.Call, bits uint, digits int) (expr.Expr, error) {
	if def, ok := r.Lookup(call.Head); ok {
		probe := expr.NewCall(config.NHead, call, expr.NewInt(int64(digits)))
		if out, fired := def.ApplyRules(probe); fired {
			return r.Normalize(ctx, out), nil
		}
	}
	args := make([]expr.Expr, len(call.Args))
	for i, a := range call.Args {
		na, err := r.nApply(ctx, a, bits, digits)
		if err != nil {
			return nil, err
		}
		args[i] = na
	}
	if def, ok := r.Lookup(call.Head); ok && def.Numeric != nil &&
		len(args) == 1 && expr.IsInexact(args[0]) {
		out, err := def.Numeric.EvalNumeric(ctx, args, bits)
		if err != nil {
			if errors.Is(err, ErrNumericDomain) && def.DomainFallback != nil {
				return def.DomainFallback, nil
			}
			if errors.Is(err, ErrInvalidPrecision) {
				return nil, err
			}
			return expr.NewCall(call.Head, args...), nil
		}
		return out, nil
	}
	return r.Normalize(ctx, expr.NewCall(call.Head, args...)), nil
}
