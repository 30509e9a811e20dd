package builtin

import (
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The circular functions. Sin and Cos absorb whole multiples of Pi exactly;
// Tan declares the pole at Pi/2. The reciprocal family (Sec, Csc, Cot)
// rewrites exact numbers to the reciprocal form, leaves symbolic arguments
// alone and sends inexact ones to dedicated primitives.

func sinDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Sin",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Sin", zero, zero),
			value("Sin", expr.Pi(), zero),
			value("Sin", halfPi(), one),
			// Sin[n_Integer Pi] -> 0
			pattern.NewRule(
				pattern.Callp("Sin", pattern.IntMultiple("n", expr.PiName)),
				pattern.Out(zero),
			),
		},
		Derivative: deriv(fn("Cos", slot())),
		Numeric:    engine.Primitive{Name: "Sin"},
		Examples: []engine.Example{
			{In: "Sin[0]", Out: "0"},
			{In: "Sin[3 Pi]", Out: "0"},
			{In: "Sin[0.5]", Out: "0.479425538604203"},
			{In: "Sin[1.0 + 1.0 I]", Out: "1.29845758141598 + 0.634963914784736 I"},
		},
	}
}

func cosDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Cos",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Cos", zero, one),
			value("Cos", expr.Pi(), negOne),
			value("Cos", halfPi(), zero),
			// Cos[n_Integer Pi] -> (-1)^n
			pattern.NewRule(
				pattern.Callp("Cos", pattern.IntMultiple("n", expr.PiName)),
				pow(num(-1), pattern.Var("n")),
			),
		},
		Derivative: deriv(neg(fn("Sin", slot()))),
		Numeric:    engine.Primitive{Name: "Cos"},
		Examples: []engine.Example{
			{In: "Cos[0]", Out: "1"},
			{In: "Cos[2 Pi]", Out: "1"},
			{In: "Cos[3 Pi]", Out: "-1"},
			{In: "Cos[0.5]", Out: "0.877582561890373"},
		},
	}
}

func tanDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Tan",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Tan", zero, zero),
			value("Tan", halfPi(), expr.ComplexInfinity()),
		},
		Derivative:     deriv(pow(fn("Sec", slot()), num(2))),
		Numeric:        engine.Primitive{Name: "Tan"},
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "Tan[0]", Out: "0"},
			{In: "Tan[Pi / 2]", Out: "ComplexInfinity"},
			{In: "Tan[0.5]", Out: "0.546302489843791"},
		},
	}
}

func secDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Sec",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Sec", zero, one),
			reciprocalOf("Sec", "Cos"),
		},
		Derivative:     deriv(times(fn("Sec", slot()), fn("Tan", slot()))),
		Numeric:        engine.Primitive{Name: "Sec"},
		Bridge:         reciprocalBridge("Cos"),
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "Sec[0]", Out: "1"},
			{In: "Sec[1]", Out: "1 / Cos[1]"},
			{In: "Sec[1.]", Out: "1.85081571768093"},
		},
	}
}

func cscDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Csc",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Csc", zero, expr.ComplexInfinity()),
			reciprocalOf("Csc", "Sin"),
		},
		Derivative:     deriv(times(num(-1), fn("Cot", slot()), fn("Csc", slot()))),
		Numeric:        engine.Primitive{Name: "Csc"},
		Bridge:         reciprocalBridge("Sin"),
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "Csc[0]", Out: "ComplexInfinity"},
			{In: "Csc[1]", Out: "1 / Sin[1]"},
			{In: "Csc[1.]", Out: "1.18839510577812"},
		},
	}
}

func cotDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Cot",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Cot", zero, expr.ComplexInfinity()),
		},
		Derivative:     deriv(neg(pow(fn("Csc", slot()), num(2)))),
		Numeric:        engine.Primitive{Name: "Cot"},
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "Cot[0]", Out: "ComplexInfinity"},
			{In: "Cot[1.]", Out: "0.642092615934331"},
		},
	}
}
