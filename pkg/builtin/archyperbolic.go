package builtin

import (
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The inverse hyperbolic functions. ArcCosh and ArcCoth at an inexact zero
// rewrite to I Pi / 2 evaluated at the precision the argument carried, so a
// low-precision input cannot manufacture a high-precision answer.

func arcSinhDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcSinh",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcSinh", zero, zero),
			value("ArcSinh", expr.NewReal(0), expr.NewReal(0)),
		},
		// 1 / Sqrt[1 + #^2]
		Derivative: deriv(pow(plus(num(1), pow(slot(), num(2))), rat(-1, 2))),
		Numeric:    engine.Primitive{Name: "ArcSinh"},
		Examples: []engine.Example{
			{In: "ArcSinh[0]", Out: "0"},
			{In: "ArcSinh[1.0]", Out: "0.881373587019543"},
		},
	}
}

func arcCoshDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcCosh",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcCosh", zero, halfIPi()),
			value("ArcCosh", one, zero),
			// ArcCosh[z:0.0] keeps the argument's precision.
			pattern.NewRule(
				pattern.Callp("ArcCosh", pattern.NamedLit("z", expr.NewReal(0))),
				pattern.AtPrecisionOf(
					times(rat(1, 2), pattern.Out(expr.ImaginaryI()), pattern.Out(expr.Pi())),
					"z"),
			),
		},
		// 1 / (Sqrt[# - 1] Sqrt[# + 1])
		Derivative: deriv(inv(times(
			sqrt(plus(slot(), num(-1))),
			sqrt(plus(slot(), num(1))),
		))),
		Numeric: engine.Primitive{Name: "ArcCosh"},
		Examples: []engine.Example{
			{In: "ArcCosh[0]", Out: "I Pi / 2"},
			{In: "ArcCosh[1]", Out: "0"},
			{In: "ArcCosh[2.0]", Out: "1.31695789692482"},
		},
	}
}

func arcTanhDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcTanh",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcTanh", zero, zero),
			value("ArcTanh", one, expr.Infinity()),
			value("ArcTanh", negOne, expr.NegInfinity()),
		},
		// 1 / (1 - #^2)
		Derivative:     deriv(inv(plus(num(1), neg(pow(slot(), num(2)))))),
		Numeric:        engine.Primitive{Name: "ArcTanh"},
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "ArcTanh[0]", Out: "0"},
			{In: "ArcTanh[1]", Out: "Infinity"},
			{In: "ArcTanh[0.5]", Out: "0.549306144334055"},
		},
	}
}

func arcSechDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcSech",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcSech", zero, expr.Infinity()),
			value("ArcSech", expr.NewReal(0), expr.Indeterminate()),
			value("ArcSech", one, zero),
		},
		// -1 / (# Sqrt[(1 - #) / (1 + #)] (1 + #))
		Derivative: deriv(neg(inv(times(
			slot(),
			sqrt(times(plus(num(1), neg(slot())), inv(plus(num(1), slot())))),
			plus(num(1), slot()),
		)))),
		Numeric:        engine.Primitive{Name: "ArcSech"},
		Bridge:         inverseReciprocalBridge("ArcCosh"),
		DomainFallback: expr.Indeterminate(),
		Examples: []engine.Example{
			{In: "ArcSech[0]", Out: "Infinity"},
			{In: "ArcSech[1]", Out: "0"},
			{In: "ArcSech[0.5]", Out: "1.31695789692482"},
		},
	}
}

func arcCschDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcCsch",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcCsch", zero, expr.ComplexInfinity()),
			value("ArcCsch", expr.NewReal(0), expr.ComplexInfinity()),
		},
		// -1 / (Sqrt[1 + 1/#^2] #^2)
		Derivative: deriv(neg(inv(times(
			sqrt(plus(num(1), pow(slot(), num(-2)))),
			pow(slot(), num(2)),
		)))),
		Numeric:        engine.Primitive{Name: "ArcCsch"},
		Bridge:         inverseReciprocalBridge("ArcSinh"),
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "ArcCsch[0]", Out: "ComplexInfinity"},
			{In: "ArcCsch[1.0]", Out: "0.881373587019543"},
		},
	}
}

func arcCothDef() *engine.Definition {
	return &engine.Definition{
		Name:       "ArcCoth",
		Attributes: functionAttrs,
		Rules: []pattern.Rule{
			value("ArcCoth", zero, halfIPi()),
			value("ArcCoth", one, expr.Infinity()),
			value("ArcCoth", negOne, expr.NegInfinity()),
			pattern.NewRule(
				pattern.Callp("ArcCoth", pattern.NamedLit("z", expr.NewReal(0))),
				pattern.AtPrecisionOf(
					times(rat(1, 2), pattern.Out(expr.ImaginaryI()), pattern.Out(expr.Pi())),
					"z"),
			),
		},
		// 1 / (1 - #^2)
		Derivative:     deriv(inv(plus(num(1), neg(pow(slot(), num(2)))))),
		Numeric:        engine.Primitive{Name: "ArcCoth"},
		DomainFallback: expr.ComplexInfinity(),
		Examples: []engine.Example{
			{In: "ArcCoth[0]", Out: "I Pi / 2"},
			{In: "ArcCoth[1]", Out: "Infinity"},
			{In: "ArcCoth[0.5]", Out: "0.549306144334055 - 1.5707963267949 I"},
		},
	}
}
