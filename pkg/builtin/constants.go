package builtin

import (
	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"
)

// The named constants. Pi and E evaluate through backend primitives;
// GoldenRatio carries only an N rule expanding to its closed form, so a
// precision request flows through the radical instead of a dedicated series.

func piDef() *engine.Definition {
	return &engine.Definition{
		Name:       expr.PiName,
		Attributes: constantAttrs,
		Numeric:    engine.ConstantPrimitive{Name: expr.PiName},
		Examples: []engine.Example{
			{In: "N[Pi]", Out: "3.14159265358979"},
			{In: "N[Pi, 50]", Out: "3.1415926535897932384626433832795028841971693993751"},
		},
	}
}

func eulerDef() *engine.Definition {
	return &engine.Definition{
		Name:       expr.EName,
		Attributes: constantAttrs,
		Numeric:    engine.ConstantPrimitive{Name: expr.EName},
		Examples: []engine.Example{
			{In: "N[E]", Out: "2.71828182845905"},
			{In: "N[E, 50]", Out: "2.7182818284590452353602874713526624977572470937000"},
		},
	}
}

func goldenRatioDef() *engine.Definition {
	// N[GoldenRatio, prec_] -> N[(1 + Sqrt[5]) / 2, prec]
	nRule := pattern.NewRule(
		pattern.Callp(config.NHead,
			pattern.Lit(expr.NewSymbol(expr.GoldenRatioName)),
			pattern.Typed("prec", expr.INTEGER_EXPR)),
		pattern.Build(config.NHead,
			times(rat(1, 2), plus(num(1), pow(num(5), rat(1, 2)))),
			pattern.Var("prec")),
	)
	return &engine.Definition{
		Name:       expr.GoldenRatioName,
		Attributes: constantAttrs,
		Rules:      []pattern.Rule{nRule},
		Examples: []engine.Example{
			{In: "GoldenRatio", Out: "GoldenRatio"},
			{In: "N[GoldenRatio]", Out: "1.61803398874989"},
		},
	}
}
