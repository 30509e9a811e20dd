package engine

import (
	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/internal/prec"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The differentiation pass. Registered derivative templates are consulted
// here and nowhere else; direct evaluation of a function never reads them.

// D differentiates e with respect to the symbol named x and normalizes the
// result.
func (r *Registry) D(ctx *prec.Context, e expr.Expr, x string) expr.Expr {
	return r.Normalize(ctx, r.diff(e, x))
}

func (r *Registry) diff(e expr.Expr, x string) expr.Expr {
	switch v := e.(type) {
	case *expr.Integer, *expr.Rational, *expr.Real, *expr.Complex, *expr.Special:
		return expr.NewInt(0)
	case *expr.Symbol:
		if v.Name == x {
			return expr.NewInt(1)
		}
		return expr.NewInt(0)
	case *expr.Call:
		return r.diffCall(v, x)
	}
	return expr.NewInt(0)
}

func (r *Registry) diffCall(c *expr.Call, x string) expr.Expr {
	switch c.Head {
	case config.PlusHead:
		terms := make([]expr.Expr, len(c.Args))
		for i, a := range c.Args {
			terms[i] = r.diff(a, x)
		}
		return expr.NewCall(config.PlusHead, terms...)
	case config.TimesHead:
		return r.diffProduct(c, x)
	case config.PowerHead:
		if len(c.Args) == 2 {
			return r.diffPower(c.Args[0], c.Args[1], x)
		}
	}
	if def, ok := r.Lookup(c.Head); ok && def.Derivative != nil && len(c.Args) == 1 {
		arg := c.Args[0]
		outer := def.Derivative.Body.Build(pattern.Bindings{pattern.SlotKey: arg})
		return expr.Times(outer, r.diff(arg, x))
	}
	// No derivative rule: leave a symbolic D for the host.
	return expr.NewCall("D", c, expr.NewSymbol(x))
}

func (r *Registry) diffProduct(c *expr.Call, x string) expr.Expr {
	terms := make([]expr.Expr, 0, len(c.Args))
	for i := range c.Args {
		factors := make([]expr.Expr, len(c.Args))
		copy(factors, c.Args)
		factors[i] = r.diff(c.Args[i], x)
		terms = append(terms, expr.NewCall(config.TimesHead, factors...))
	}
	return expr.NewCall(config.PlusHead, terms...)
}

func (r *Registry) diffPower(base, exp expr.Expr, x string) expr.Expr {
	baseFree := freeOf(base, x)
	expFree := freeOf(exp, x)
	switch {
	case baseFree && expFree:
		return expr.NewInt(0)
	case expFree:
		// e * base^(e-1) * base'
		em1 := expr.Plus(exp, expr.NewInt(-1))
		return expr.Times(exp, expr.Power(base, em1), r.diff(base, x))
	case baseFree:
		// base^e * Log[base] * e'
		return expr.Times(
			expr.Power(base, exp),
			expr.NewCall(config.LogHead, base),
			r.diff(exp, x),
		)
	default:
		// base^e * (e' Log[base] + e base'/base)
		inner := expr.Plus(
			expr.Times(r.diff(exp, x), expr.NewCall(config.LogHead, base)),
			expr.Times(exp, r.diff(base, x), expr.Reciprocal(base)),
		)
		return expr.Times(expr.Power(base, exp), inner)
	}
}

func freeOf(e expr.Expr, x string) bool {
	switch v := e.(type) {
	case *expr.Symbol:
		return v.Name != x
	case *expr.Call:
		for _, a := range v.Args {
			if !freeOf(a, x) {
				return false
			}
		}
	}
	return true
}
