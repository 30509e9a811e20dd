package builtin

import (
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The hyperbolic functions. Csch and Coth carry an inexact-zero rule so a
// pole is reported as ComplexInfinity instead of a backend failure.

func sinhDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Sinh",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Sinh", zero, zero),
		},
		Derivative: deriv(fn("Cosh", slot())),
		Numeric:    engine.Primitive{Name: "Sinh"},
		Examples: []engine.Example{
			{In: "Sinh[0]", Out: "0"},
			{In: "Sinh[1.0]", Out: "1.1752011936438"},
		},
	}
}

func coshDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Cosh",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Cosh", zero, one),
		},
		Derivative: deriv(fn("Sinh", slot())),
		Numeric:    engine.Primitive{Name: "Cosh"},
		Examples: []engine.Example{
			{In: "Cosh[0]", Out: "1"},
			{In: "Cosh[1.0]", Out: "1.54308063481524"},
		},
	}
}

func tanhDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Tanh",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Tanh", zero, zero),
		},
		Derivative: deriv(pow(fn("Sech", slot()), num(2))),
		Numeric:    engine.Primitive{Name: "Tanh"},
		Examples: []engine.Example{
			{In: "Tanh[0]", Out: "0"},
			{In: "Tanh[1.0]", Out: "0.761594155955765"},
		},
	}
}

func sechDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Sech",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Sech", zero, one),
			reciprocalOf("Sech", "Cosh"),
		},
		Derivative: deriv(times(num(-1), fn("Sech", slot()), fn("Tanh", slot()))),
		Numeric:    engine.Primitive{Name: "Sech"},
		Bridge:     reciprocalBridge("Cosh"),
		Examples: []engine.Example{
			{In: "Sech[0]", Out: "1"},
			{In: "Sech[1]", Out: "1 / Cosh[1]"},
			{In: "Sech[1.]", Out: "0.648054273663885"},
		},
	}
}

func cschDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Csch",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Csch", zero, expr.ComplexInfinity()),
			value("Csch", expr.NewReal(0), expr.ComplexInfinity()),
			reciprocalOf("Csch", "Sinh"),
		},
		Derivative:     deriv(times(num(-1), fn("Coth", slot()), fn("Csch", slot()))),
		Numeric:        engine.Primitive{Name: "Csch"},
		Bridge:         reciprocalBridge("Sinh"),
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "Csch[0]", Out: "ComplexInfinity"},
			{In: "Csch[1]", Out: "1 / Sinh[1]"},
			{In: "Csch[1.]", Out: "0.850918128239322"},
		},
	}
}

func cothDef() *engine.Definition {
	return &engine.Definition{
		Name:       "Coth",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("Coth", zero, expr.ComplexInfinity()),
			value("Coth", expr.NewReal(0), expr.ComplexInfinity()),
		},
		Derivative:     deriv(neg(pow(fn("Csch", slot()), num(2)))),
		Numeric:        engine.Primitive{Name: "Coth"},
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "Coth[0]", Out: "ComplexInfinity"},
			{In: "Coth[1.]", Out: "1.31303528549933"},
		},
	}
}
