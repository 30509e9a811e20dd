package expr

import "strings"

// Call is a function application in full form: Head[arg1, arg2, ...].
// Plus, Times and Power are ordinary calls; the host's canonical ordering
// (Orderless, Flat) is the host's business, not this package's.
type Call struct {
	Head string
	Args []Expr
}

func NewCall(head string, args ...Expr) *Call {
	return &Call{Head: head, Args: args}
}

func (c *Call) Type() ExprType { return CALL_EXPR }

func (c *Call) Inspect() string {
	var sb strings.Builder
	sb.WriteString(c.Head)
	sb.WriteString("[")
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Inspect())
	}
	sb.WriteString("]")
	return sb.String()
}

func (c *Call) Hash() uint32 {
	parts := make([]uint32, 0, len(c.Args)+1)
	parts = append(parts, hashString(c.Head))
	for _, a := range c.Args {
		parts = append(parts, a.Hash())
	}
	return hashCombine(parts...)
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	if !ok || c.Head != o.Head || len(c.Args) != len(o.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Convenience constructors for the arithmetic heads the rule templates use.

func Plus(args ...Expr) *Call  { return NewCall("Plus", args...) }
func Times(args ...Expr) *Call { return NewCall("Times", args...) }
func Power(base, exp Expr) *Call {
	return NewCall("Power", base, exp)
}

// Reciprocal builds x^-1 without evaluating it.
func Reciprocal(x Expr) *Call { return Power(x, NewInt(-1)) }

// Negate builds -1 * x without evaluating it.
func Negate(x Expr) *Call { return Times(NewInt(-1), x) }
