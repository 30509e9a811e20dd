// Package pattern implements the typed pattern AST the rule tables are built
// from. Patterns are constructed once at registration time and matched
// structurally against expressions; nothing here parses text.
package pattern

import (
	"math/big"

	"github.com/funvibe/exptrig/pkg/expr"
)

// Bindings maps pattern-variable names to the sub-expressions they captured
// during a match. The derivative slot (#1) is stored under SlotKey.
type Bindings map[string]expr.Expr

const SlotKey = "#1"

// bind records name -> e, rejecting a conflicting rebind of the same name.
func (b Bindings) bind(name string, e expr.Expr) bool {
	if name == "" {
		return true
	}
	if prev, ok := b[name]; ok {
		return prev.Equal(e)
	}
	b[name] = e
	return true
}

type Pattern interface {
	// Match reports whether e matches, extending b with any captures.
	// On failure b may hold partial captures; callers retry with a fresh
	// Bindings per rule.
	Match(e expr.Expr, b Bindings) bool
}

// Literal matches one fixed expression. Real literals compare by value
// only, so a rule written against 0. fires for an inexact zero at any
// working precision. An optional Name captures the matched expression
// (the z:0.0 form).
type Literal struct {
	Name  string
	Value expr.Expr
}

func Lit(v expr.Expr) *Literal                { return &Literal{Value: v} }
func NamedLit(name string, v expr.Expr) *Literal { return &Literal{Name: name, Value: v} }

func (l *Literal) Match(e expr.Expr, b Bindings) bool {
	if want, ok := l.Value.(*expr.Real); ok {
		got, ok2 := e.(*expr.Real)
		if !ok2 || want.Value.Cmp(got.Value) != 0 {
			return false
		}
		return b.bind(l.Name, e)
	}
	if !l.Value.Equal(e) {
		return false
	}
	return b.bind(l.Name, e)
}

// Blank matches any expression, optionally constrained to one variant tag
// (the x_Integer form).
type Blank struct {
	Name string
	Head expr.ExprType
}

func Any(name string) *Blank                       { return &Blank{Name: name} }
func Typed(name string, head expr.ExprType) *Blank { return &Blank{Name: name, Head: head} }

func (p *Blank) Match(e expr.Expr, b Bindings) bool {
	if p.Head != "" && e.Type() != p.Head {
		return false
	}
	return b.bind(p.Name, e)
}

// ExactOnly matches any expression containing no inexact numerics. The
// base-conversion logarithm rewrites use it so the symbolic rewrite never
// steals an argument headed for the numeric path.
type ExactOnly struct {
	Name string
}

func Exact(name string) *ExactOnly { return &ExactOnly{Name: name} }

func (p *ExactOnly) Match(e expr.Expr, b Bindings) bool {
	if !expr.IsExact(e) {
		return false
	}
	return b.bind(p.Name, e)
}

// ExactNumber matches an exact numeric atom, Integer or Rational. The
// co-function reciprocal rules use it: an exact number rewrites to the
// reciprocal form, a symbolic argument stays unevaluated, and an inexact
// one falls through to the numeric path.
type ExactNumber struct {
	Name string
}

func Number(name string) *ExactNumber { return &ExactNumber{Name: name} }

func (p *ExactNumber) Match(e expr.Expr, b Bindings) bool {
	switch e.(type) {
	case *expr.Integer, *expr.Rational:
		return b.bind(p.Name, e)
	}
	return false
}

// CallPattern matches Head[a1, ..., an] argument-wise.
type CallPattern struct {
	Head string
	Args []Pattern
}

func Callp(head string, args ...Pattern) *CallPattern {
	return &CallPattern{Head: head, Args: args}
}

func (p *CallPattern) Match(e expr.Expr, b Bindings) bool {
	c, ok := e.(*expr.Call)
	if !ok || c.Head != p.Head || len(c.Args) != len(p.Args) {
		return false
	}
	for i, ap := range p.Args {
		if !ap.Match(c.Args[i], b) {
			return false
		}
	}
	return true
}

// ConstantMultiple matches an exact multiple of a symbolic constant:
// Times[coeff, Constant] with an Integer coefficient when Den is 1, or a
// Rational coefficient with the given denominator (half multiples of Pi use
// Den 2). The coefficient is captured under Name.
type ConstantMultiple struct {
	Name     string
	Constant string
	Den      int64
}

func IntMultiple(name, constant string) *ConstantMultiple {
	return &ConstantMultiple{Name: name, Constant: constant, Den: 1}
}

func HalfMultiple(name, constant string) *ConstantMultiple {
	return &ConstantMultiple{Name: name, Constant: constant, Den: 2}
}

func (p *ConstantMultiple) Match(e expr.Expr, b Bindings) bool {
	c, ok := e.(*expr.Call)
	if !ok || c.Head != "Times" || len(c.Args) != 2 {
		return false
	}
	sym, ok := c.Args[1].(*expr.Symbol)
	if !ok || sym.Name != p.Constant {
		return false
	}
	switch coeff := c.Args[0].(type) {
	case *expr.Integer:
		if p.Den != 1 {
			return false
		}
		return b.bind(p.Name, coeff)
	case *expr.Rational:
		if p.Den == 1 {
			return false
		}
		if coeff.Value.Denom().Cmp(big.NewInt(p.Den)) != 0 {
			return false
		}
		return b.bind(p.Name, coeff)
	}
	return false
}
