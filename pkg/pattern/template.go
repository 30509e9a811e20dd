package pattern

import (
	"fmt"

	"github.com/funvibe/exptrig/pkg/expr"
)

// Template is the right-hand side of a rule: a shape instantiated with the
// bindings a successful match produced.
type Template interface {
	Build(b Bindings) expr.Expr
}

// TLit yields a fixed expression.
type TLit struct {
	Value expr.Expr
}

func Out(v expr.Expr) *TLit { return &TLit{Value: v} }

func (t *TLit) Build(Bindings) expr.Expr { return t.Value }

// TVar yields the expression bound to Name.
type TVar struct {
	Name string
}

func Var(name string) *TVar { return &TVar{Name: name} }

func (t *TVar) Build(b Bindings) expr.Expr {
	v, ok := b[t.Name]
	if !ok {
		panic(fmt.Sprintf("pattern: unbound template variable %q", t.Name))
	}
	return v
}

// TSlot yields the derivative slot (#1). Derivative templates are anonymous
// functions of one argument; the differentiation pass binds the argument
// under SlotKey before instantiating.
type TSlot struct{}

func Slot() *TSlot { return &TSlot{} }

func (t *TSlot) Build(b Bindings) expr.Expr {
	v, ok := b[SlotKey]
	if !ok {
		panic("pattern: slot template instantiated outside a derivative pass")
	}
	return v
}

// TCall yields Head[args...].
type TCall struct {
	Head string
	Args []Template
}

func Build(head string, args ...Template) *TCall {
	return &TCall{Head: head, Args: args}
}

func (t *TCall) Build(b Bindings) expr.Expr {
	args := make([]expr.Expr, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Build(b)
	}
	return expr.NewCall(t.Head, args...)
}

// TAtPrecisionOf wraps Inner in an N request at the working precision of the
// inexact expression bound to Of. It backs the precision-preserving rules
// (ArcCosh[z:0.0] evaluates I Pi/2 at the precision of z).
type TAtPrecisionOf struct {
	Inner Template
	Of    string
}

func AtPrecisionOf(inner Template, of string) *TAtPrecisionOf {
	return &TAtPrecisionOf{Inner: inner, Of: of}
}

func (t *TAtPrecisionOf) Build(b Bindings) expr.Expr {
	v, ok := b[t.Of]
	if !ok {
		panic(fmt.Sprintf("pattern: unbound precision reference %q", t.Of))
	}
	digits := 17
	if r, ok := v.(*expr.Real); ok {
		digits = DigitsForPrec(r.Prec())
	}
	return expr.NewCall("N", t.Inner.Build(b), expr.NewInt(int64(digits)))
}

// DigitsForPrec converts a bit precision to certified decimal digits.
func DigitsForPrec(bits uint) int {
	d := int(float64(bits) * 0.3010299956639812)
	if d < 1 {
		d = 1
	}
	return d
}

// Rule pairs a left pattern with a right template. Tables are tried in
// declaration order; the first structural match wins.
type Rule struct {
	LHS Pattern
	RHS Template
}

func NewRule(lhs Pattern, rhs Template) Rule { return Rule{LHS: lhs, RHS: rhs} }

// Apply attempts the rule against e, returning the instantiated result.
func (r Rule) Apply(e expr.Expr) (expr.Expr, bool) {
	b := Bindings{}
	if !r.LHS.Match(e, b) {
		return nil, false
	}
	return r.RHS.Build(b), true
}
