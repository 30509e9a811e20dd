package expr

type SpecialKind string

const (
	// INFINITY is the positive real infinity of a one-sided pole.
	INFINITY SpecialKind = "Infinity"
	// NEG_INFINITY is the directed negative infinity (DirectedInfinity[-1]).
	NEG_INFINITY SpecialKind = "-Infinity"
	// COMPLEX_INFINITY is a pole with no defined direction in the plane.
	COMPLEX_INFINITY SpecialKind = "ComplexInfinity"
	// INDETERMINATE marks a limit that exists but cannot be represented,
	// e.g. Log of an inexact zero.
	INDETERMINATE SpecialKind = "Indeterminate"
)

// Special is one of the four extended values. The three pole outcomes are
// distinct and never interchangeable: which one a function produces at a
// singularity is part of that function's rule table.
type Special struct {
	Kind SpecialKind
}

func Infinity() *Special        { return &Special{Kind: INFINITY} }
func NegInfinity() *Special     { return &Special{Kind: NEG_INFINITY} }
func ComplexInfinity() *Special { return &Special{Kind: COMPLEX_INFINITY} }
func Indeterminate() *Special   { return &Special{Kind: INDETERMINATE} }

func (s *Special) Type() ExprType  { return SPECIAL_EXPR }
func (s *Special) Inspect() string { return string(s.Kind) }
func (s *Special) Hash() uint32    { return hashString(string(s.Kind)) }
func (s *Special) Equal(other Expr) bool {
	o, ok := other.(*Special)
	return ok && s.Kind == o.Kind
}

// IsInexact reports whether e is an approximate numeric leaf.
func IsInexact(e Expr) bool {
	switch e.(type) {
	case *Real, *Complex:
		return true
	}
	return false
}

// IsExact reports whether e contains no approximate numerics anywhere.
// Symbols and Specials count as exact: a symbolic constant carries no
// rounding error.
func IsExact(e Expr) bool {
	switch v := e.(type) {
	case *Real, *Complex:
		return false
	case *Call:
		for _, a := range v.Args {
			if !IsExact(a) {
				return false
			}
		}
	}
	return true
}
