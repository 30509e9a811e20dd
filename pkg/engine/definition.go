package engine

import (
	"github.com/funvibe/exptrig/pkg/expr"
	"github.com/funvibe/exptrig/pkg/pattern"

	"github.com/funvibe/exptrig/internal/prec"
)

// Attribute is host-level metadata declared on a definition. The host
// consumes attributes for display and redefinition prevention; this
// subsystem only declares them.
type Attribute string

const (
	ConstantAttr    Attribute = "Constant"
	Protected       Attribute = "Protected"
	ReadProtected   Attribute = "ReadProtected"
	Listable        Attribute = "Listable"
	NumericFunction Attribute = "NumericFunction"
)

// Example is an opaque (input, expected output) pair in the host's own
// syntax, consumed by the external documentation/conformance harness. This
// subsystem never parses it.
type Example struct {
	In  string
	Out string
}

// NumericEval is the optional numeric capability of a definition: evaluate
// the (already reduced) arguments to an arbitrary-precision value under a
// precision scope. Presence of the interface is the capability check; there
// is no runtime type inspection beyond it.
type NumericEval interface {
	EvalNumeric(ctx *prec.Context, args []expr.Expr, bits uint) (expr.Expr, error)
}

// SymbolicBridge is the optional bridge capability: express a call in terms
// of functions that have backend primitives, for external symbolic tools
// (integration, simplification). Core rule and numeric dispatch never
// consult it. A false return means "no bridge" and is not an error.
type SymbolicBridge interface {
	Bridge(call *expr.Call) (expr.Expr, bool)
}

// DerivativeRule is the order-1 derivative template of a function, the
// Derivative[1][F] meta rule. Only the differentiation pass reads it;
// direct evaluation of F never does.
type DerivativeRule struct {
	Body pattern.Template
}

// Definition is one function descriptor: a rule table plus optional
// capabilities, registered once under a unique symbol name and immutable
// afterwards.
type Definition struct {
	Name       string
	Attributes []Attribute

	// Rules are tried in declaration order; the first structural match
	// wins. Rules whose pattern is headed by N participate in explicit
	// precision requests (the N[GoldenRatio, prec_] form).
	Rules []pattern.Rule

	Derivative *DerivativeRule

	Numeric NumericEval
	Bridge  SymbolicBridge

	// DomainFallback is the special value a backend domain failure maps
	// to for this function (the branch-cut/pole policy as data). Nil
	// leaves the call unevaluated on domain failure.
	DomainFallback expr.Expr

	Examples []Example
}

// validate rejects definitions that could never contribute to evaluation.
func (d *Definition) validate() error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if len(d.Rules) == 0 && d.Numeric == nil && d.Bridge == nil {
		return ErrIncompleteDefinition
	}
	return nil
}

// ApplyRules tries the rule table in declaration order against e.
func (d *Definition) ApplyRules(e expr.Expr) (expr.Expr, bool) {
	for _, r := range d.Rules {
		if out, ok := r.Apply(e); ok {
			return out, true
		}
	}
	return nil, false
}

// BridgeFunc adapts a plain function to the SymbolicBridge capability.
type BridgeFunc func(call *expr.Call) (expr.Expr, bool)

func (f BridgeFunc) Bridge(call *expr.Call) (expr.Expr, bool) { return f(call) }

// UnaryBridge builds the usual co-function bridge: declines anything that
// is not a single-argument call, otherwise applies fn to the argument.
func UnaryBridge(fn func(arg expr.Expr) expr.Expr) SymbolicBridge {
	return BridgeFunc(func(call *expr.Call) (expr.Expr, bool) {
		if len(call.Args) != 1 {
			return nil, false
		}
		return fn(call.Args[0]), true
	})
}
