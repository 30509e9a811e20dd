// Package builtin is the catalog of elementary transcendental definitions:
// the exponential, logarithms, circular and hyperbolic functions with their
// inverses, and the named constants they lean on. Each definition bundles an
// ordered rule table with optional numeric and bridge capabilities; the
// engine package decides when each part runs.
package builtin

import (
	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// Standard builds the full catalog and freezes it. Hosts call this once at
// startup; the returned registry is safe for concurrent evaluation.
func Standard() *engine.Registry {
	r := engine.NewRegistry()
	for _, def := range All() {
		r.MustRegister(def)
	}
	r.Freeze()
	return r
}

// All returns every catalog definition in registration order: constants
// first, then each function family.
func All() []*engine.Definition {
	return []*engine.Definition{
		piDef(), eulerDef(), goldenRatioDef(),
		expDef(), logDef(), log2Def(), log10Def(),
		sinDef(), cosDef(), tanDef(), secDef(), cscDef(), cotDef(),
		arcSinDef(), arcCosDef(), arcTanDef(), arcSecDef(), arcCscDef(), arcCotDef(),
		sinhDef(), coshDef(), tanhDef(), sechDef(), cschDef(), cothDef(),
		arcSinhDef(), arcCoshDef(), arcTanhDef(), arcSechDef(), arcCschDef(), arcCothDef(),
	}
}

var (
	constantAttrs = []engine.Attribute{engine.ConstantAttr, engine.Protected, engine.ReadProtected}
	functionAttrs = []engine.Attribute{engine.Listable, engine.NumericFunction, engine.Protected}
)

var (
	zero   = expr.NewInt(0)
	one    = expr.NewInt(1)
	negOne = expr.NewInt(-1)
)

func halfPi() expr.Expr    { return expr.Times(expr.NewRat(1, 2), expr.Pi()) }
func quarterPi() expr.Expr { return expr.Times(expr.NewRat(1, 4), expr.Pi()) }
func negHalfPi() expr.Expr { return expr.Times(expr.NewRat(-1, 2), expr.Pi()) }
func halfIPi() expr.Expr {
	return expr.Times(expr.NewRat(1, 2), expr.ImaginaryI(), expr.Pi())
}

// value is the common literal rule form: Head[in] rewrites to out.
func value(head string, in, out expr.Expr) pattern.Rule {
	return pattern.NewRule(pattern.Callp(head, pattern.Lit(in)), pattern.Out(out))
}

// reciprocalOf rewrites Head[x] -> inner[x]^-1 for exact numeric arguments
// only. A symbolic argument stays unevaluated (the reciprocal form is the
// bridge's business) and an inexact one reaches the dedicated numeric
// primitive and rounds once.
func reciprocalOf(head, inner string) pattern.Rule {
	return pattern.NewRule(
		pattern.Callp(head, pattern.Number("x")),
		inv(fn(inner, pattern.Var("x"))),
	)
}

func reciprocalBridge(inner string) engine.SymbolicBridge {
	return engine.UnaryBridge(func(arg expr.Expr) expr.Expr {
		return expr.Reciprocal(expr.NewCall(inner, arg))
	})
}

func inverseReciprocalBridge(outer string) engine.SymbolicBridge {
	return engine.UnaryBridge(func(arg expr.Expr) expr.Expr {
		return expr.NewCall(outer, expr.Reciprocal(arg))
	})
}

// Template shorthands for derivative bodies and rule right-hand sides.

func num(v int64) pattern.Template    { return pattern.Out(expr.NewInt(v)) }
func rat(p, q int64) pattern.Template { return pattern.Out(expr.NewRat(p, q)) }
func slot() pattern.Template          { return pattern.Slot() }

func fn(head string, args ...pattern.Template) pattern.Template {
	return pattern.Build(head, args...)
}

func times(args ...pattern.Template) pattern.Template {
	return pattern.Build(config.TimesHead, args...)
}

func plus(args ...pattern.Template) pattern.Template {
	return pattern.Build(config.PlusHead, args...)
}

func pow(base, exp pattern.Template) pattern.Template {
	return pattern.Build(config.PowerHead, base, exp)
}

func sqrt(t pattern.Template) pattern.Template { return pow(t, rat(1, 2)) }
func neg(t pattern.Template) pattern.Template  { return times(num(-1), t) }
func inv(t pattern.Template) pattern.Template  { return pow(t, num(-1)) }

func deriv(body pattern.Template) *engine.DerivativeRule {
	return &engine.DerivativeRule{Body: body}
}
