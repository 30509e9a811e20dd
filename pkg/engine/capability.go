package engine

import (
	"fmt"

	"github.com/funvibe/exptrig/internal/bigmath"
	"github.com/funvibe/exptrig/internal/prec"
	"github.com/funvibe/exptrig/pkg/expr"
)

// Primitive is the standard NumericEval adapter: one named backend
// primitive invoked for a single numeric argument under a precision scope.
// The scope is released on every exit path; a nested evaluation pushes its
// own frame and never leaks precision into this one.
type Primitive struct {
	Name string
}

func (p Primitive) EvalNumeric(ctx *prec.Context, args []expr.Expr, bits uint) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrNotUnary)
	}
	fn, ok := bigmath.Lookup(p.Name)
	if !ok {
		return nil, fmt.Errorf("%s: no backend primitive", p.Name)
	}
	in, ok := toBackend(args[0], bits)
	if !ok {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrNotNumeric)
	}
	var out expr.Expr
	err := ctx.With(bits, func(b uint) error {
		res, ferr := fn(in, b)
		if ferr != nil {
			return ferr
		}
		out = fromBackend(res, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConstantPrimitive is the NumericEval adapter for the zero-argument
// constants (Pi, E).
type ConstantPrimitive struct {
	Name string
}

func (p ConstantPrimitive) EvalNumeric(ctx *prec.Context, args []expr.Expr, bits uint) (expr.Expr, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%s: constant primitive takes no arguments", p.Name)
	}
	fn, ok := bigmath.LookupConstant(p.Name)
	if !ok {
		return nil, fmt.Errorf("%s: no backend constant", p.Name)
	}
	var out expr.Expr
	err := ctx.With(bits, func(b uint) error {
		out = expr.NewRealFromFloat(fn(b))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
