package builtin

import (
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The inverse circular functions. ArcSec and ArcCsc have no primitives of
// their own conceptually; their backend entries and bridges both compose
// through the reciprocal argument.

func arcSinDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcSin",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcSin", zero, zero),
			value("ArcSin", one, halfPi()),
		},
		// 1 / Sqrt[1 - #^2]
		Derivative: deriv(pow(plus(num(1), neg(pow(slot(), num(2)))), rat(-1, 2))),
		Numeric:    engine.Primitive{Name: "ArcSin"},
		Examples: []engine.Example{
			{In: "ArcSin[0]", Out: "0"},
			{In: "ArcSin[1]", Out: "Pi / 2"},
			{In: "ArcSin[0.5]", Out: "0.523598775598299"},
		},
	}
}

func arcCosDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcCos",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcCos", zero, halfPi()),
			value("ArcCos", one, zero),
		},
		// -1 / Sqrt[1 - #^2]
		Derivative: deriv(neg(pow(plus(num(1), neg(pow(slot(), num(2)))), rat(-1, 2)))),
		Numeric:    engine.Primitive{Name: "ArcCos"},
		Examples: []engine.Example{
			{In: "ArcCos[1]", Out: "0"},
			{In: "ArcCos[0]", Out: "Pi / 2"},
			{In: "ArcCos[0.5]", Out: "1.0471975511966"},
		},
	}
}

func arcTanDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcTan",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcTan", zero, zero),
			value("ArcTan", one, quarterPi()),
		},
		// 1 / (1 + #^2)
		Derivative: deriv(inv(plus(num(1), pow(slot(), num(2))))),
		Numeric:    engine.Primitive{Name: "ArcTan"},
		Examples: []engine.Example{
			{In: "ArcTan[1]", Out: "Pi / 4"},
			{In: "ArcTan[1.0]", Out: "0.785398163397448"},
		},
	}
}

func arcSecDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcSec",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcSec", zero, expr.ComplexInfinity()),
			value("ArcSec", one, zero),
			value("ArcSec", negOne, expr.Pi()),
		},
		// 1 / (Sqrt[1 - 1/#^2] #^2)
		Derivative: deriv(inv(times(
			sqrt(plus(num(1), neg(pow(slot(), num(-2))))),
			pow(slot(), num(2)),
		))),
		Numeric:        engine.Primitive{Name: "ArcSec"},
		Bridge:         inverseReciprocalBridge("ArcCos"),
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "ArcSec[1]", Out: "0"},
			{In: "ArcSec[-1]", Out: "Pi"},
			{In: "ArcSec[2.0]", Out: "1.0471975511966"},
		},
	}
}

func arcCscDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcCsc",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcCsc", zero, expr.ComplexInfinity()),
			value("ArcCsc", one, halfPi()),
			value("ArcCsc", negOne, negHalfPi()),
		},
		// -1 / (Sqrt[1 - 1/#^2] #^2)
		Derivative: deriv(neg(inv(times(
			sqrt(plus(num(1), neg(pow(slot(), num(-2))))),
			pow(slot(), num(2)),
		)))),
		Numeric:        engine.Primitive{Name: "ArcCsc"},
		Bridge:         inverseReciprocalBridge("ArcSin"),
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "ArcCsc[1]", Out: "Pi / 2"},
			{In: "ArcCsc[-1]", Out: "-Pi / 2"},
			{In: "ArcCsc[2.0]", Out: "0.523598775598299"},
		},
	}
}

func arcCotDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcCot",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcCot", zero, halfPi()),
			value("ArcCot", one, quarterPi()),
		},
		// -1 / (1 + #^2)
		Derivative: deriv(neg(inv(plus(num(1), pow(slot(), num(2)))))),
		Numeric:    engine.Primitive{Name: "ArcCot"},
		Examples: []engine.Example{
			{In: "ArcCot[0]", Out: "Pi / 2"},
			{In: "ArcCot[1]", Out: "Pi / 4"},
			{In: "ArcCot[1.0]", Out: "0.785398163397448"},
		},
	}
}
