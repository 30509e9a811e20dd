package builtin

import (
	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The exponential and the logarithms. Log2 and Log10 rewrite exact
// arguments onto Log and send inexact ones to their own base-scaled
// primitives, so Log2[2.0] reduces all the way to 1.

func expDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Exp",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Exp", zero, one),
			value("Exp", one, expr.EulerE()),
			// Exp[Log[x_]] -> x
			pattern.NewRule(
				pattern.Callp("Exp", pattern.Callp(config.LogHead, pattern.Any("x"))),
				pattern.Var("x"),
			),
		},
		Derivative: deriv(fn("Exp", slot())),
		Numeric:    engine.Primitive{Name: "Exp"},
		Examples: []engine.Example{
			{In: "Exp[1]", Out: "E"},
			{In: "Exp[10.0]", Out: "22026.4657948067"},
			{In: "Exp[Log[5]]", Out: "5"},
		},
	}
}

func logDef() *engine.Definition {
	return &engine.Definition{
		Name:       config.LogHead,
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			// The inexact-zero rule precedes the exact one: Log[0.] is
			// Indeterminate while Log[0] is the directed -Infinity.
			value(config.LogHead, expr.NewReal(0), expr.Indeterminate()),
			value(config.LogHead, zero, expr.NegInfinity()),
			value(config.LogHead, one, zero),
			value(config.LogHead, expr.EulerE(), one),
			// Log[E ^ x_Integer] -> x
			pattern.NewRule(
				pattern.Callp(config.LogHead,
					pattern.Callp(config.PowerHead,
						pattern.Lit(expr.EulerE()),
						pattern.Typed("x", expr.INTEGER_EXPR))),
				pattern.Var("x"),
			),
			// Log[b_, z_] -> Log[z] / Log[b]
			pattern.NewRule(
				pattern.Callp(config.LogHead, pattern.Any("b"), pattern.Any("z")),
				times(fn(config.LogHead, pattern.Var("z")), inv(fn(config.LogHead, pattern.Var("b")))),
			),
		},
		Derivative:     deriv(inv(slot())),
		Numeric:        engine.Primitive{Name: config.LogHead},
		DomainFallback: expr.Indeterminate(),
		Examples: []engine.Example{
			{In: "Log[0]", Out: "-Infinity"},
			{In: "Log[0.]", Out: "Indeterminate"},
			{In: "Log[E ^ 3]", Out: "3"},
			{In: "Log[2.0]", Out: "0.693147180559945"},
		},
	}
}

func log2Def() *engine.Definition {
	return &engine.Definition{
		Name:       "Log2",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			pattern.NewRule(
				pattern.Callp("Log2", pattern.Exact("x")),
				times(fn(config.LogHead, pattern.Var("x")), inv(fn(config.LogHead, num(2)))),
			),
		},
		// 1 / (# Log[2])
		Derivative:     deriv(inv(times(slot(), fn(config.LogHead, num(2))))),
		Numeric:        engine.Primitive{Name: "Log2"},
		DomainFallback: expr.Indeterminate(),
		Examples: []engine.Example{
			{In: "Log2[x]", Out: "Log[x] / Log[2]"},
			{In: "Log2[2.0]", Out: "1."},
		},
	}
}

func log10Def() *engine.Definition {
	return &engine.Definition{
		Name:       "Log10",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			pattern.NewRule(
				pattern.Callp("Log10", pattern.Exact("x")),
				times(fn(config.LogHead, pattern.Var("x")), inv(fn(config.LogHead, num(10)))),
			),
		},
		// 1 / (# Log[10])
		Derivative:     deriv(inv(times(slot(), fn(config.LogHead, num(10))))),
		Numeric:        engine.Primitive{Name: "Log10"},
		DomainFallback: expr.Indeterminate(),
		Examples: []engine.Example{
			{In: "Log10[x]", Out: "Log[x] / Log[10]"},
			{In: "Log10[1000.0]", Out: "3."},
		},
	}
}
