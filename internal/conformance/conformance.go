// Package conformance loads the YAML behavior corpus the catalog tests
// replay. Cases carry structured expressions, not host syntax; nothing here
// parses input text beyond numbers.
package conformance

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/exptrig/internal/prec"
	"github.com/funvibe/exptrig/pkg/expr"
)

// Case is one replayable behavior check. Digits > 0 runs an explicit N
// request; otherwise the input is normalized symbolically.
type Case struct {
	Name   string `yaml:"name"`
	Digits int    `yaml:"digits,omitempty"`
	Eval   Node   `yaml:"eval"`
	Want   Node   `yaml:"want"`
}

// Node is one structured expression in the corpus. Exactly one of the
// variant fields is set.
type Node struct {
	Int     *int64       `yaml:"int,omitempty"`
	Rat     string       `yaml:"rat,omitempty"`
	Real    string       `yaml:"real,omitempty"`
	Sym     string       `yaml:"sym,omitempty"`
	Special string       `yaml:"special,omitempty"`
	Complex *ComplexNode `yaml:"complex,omitempty"`
	Call    string       `yaml:"call,omitempty"`
	Args    []Node       `yaml:"args,omitempty"`
}

type ComplexNode struct {
	Re string `yaml:"re"`
	Im string `yaml:"im"`
}

// Load reads a corpus file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: %w", err)
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("conformance: %s: %w", path, err)
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("conformance: %s: case %d has no name", path, i)
		}
	}
	return cases, nil
}

// Expr builds the expression a node describes.
func (n Node) Expr() (expr.Expr, error) {
	switch {
	case n.Int != nil:
		return expr.NewInt(*n.Int), nil
	case n.Rat != "":
		r, ok := new(big.Rat).SetString(n.Rat)
		if !ok {
			return nil, fmt.Errorf("conformance: bad rational %q", n.Rat)
		}
		return expr.NewRational(r), nil
	case n.Real != "":
		f, err := parseReal(n.Real)
		if err != nil {
			return nil, err
		}
		return expr.NewRealFromFloat(f), nil
	case n.Sym != "":
		return expr.NewSymbol(n.Sym), nil
	case n.Special != "":
		return specialByName(n.Special)
	case n.Complex != nil:
		re, err := parseReal(n.Complex.Re)
		if err != nil {
			return nil, err
		}
		im, err := parseReal(n.Complex.Im)
		if err != nil {
			return nil, err
		}
		return expr.NewComplex(re, im), nil
	case n.Call != "":
		args := make([]expr.Expr, len(n.Args))
		for i, a := range n.Args {
			e, err := a.Expr()
			if err != nil {
				return nil, err
			}
			args[i] = e
		}
		return expr.NewCall(n.Call, args...), nil
	}
	return nil, fmt.Errorf("conformance: empty node")
}

func specialByName(name string) (expr.Expr, error) {
	switch name {
	case "Infinity":
		return expr.Infinity(), nil
	case "-Infinity":
		return expr.NegInfinity(), nil
	case "ComplexInfinity":
		return expr.ComplexInfinity(), nil
	case "Indeterminate":
		return expr.Indeterminate(), nil
	}
	return nil, fmt.Errorf("conformance: unknown special %q", name)
}

// parseReal keeps as many bits as the decimal literal carries.
func parseReal(s string) (*big.Float, error) {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 1 {
		digits = 1
	}
	bits, err := prec.BitsForDigits(digits)
	if err != nil {
		return nil, fmt.Errorf("conformance: bad real %q: %w", s, err)
	}
	f, _, err := big.ParseFloat(s, 10, bits, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("conformance: bad real %q: %w", s, err)
	}
	return f, nil
}

// Matches checks got against the node. Exact wants compare structurally;
// inexact wants compare to within a few ulps of the stated value, so the
// corpus can quote values at display precision.
func (n Node) Matches(got expr.Expr) (bool, string) {
	want, err := n.Expr()
	if err != nil {
		return false, err.Error()
	}
	switch w := want.(type) {
	case *expr.Real:
		g, ok := got.(*expr.Real)
		if !ok {
			return false, fmt.Sprintf("want real %s, got %s", w.Inspect(), got.Inspect())
		}
		if !closeEnough(w.Value, g.Value) {
			return false, fmt.Sprintf("want %s, got %s", w.Inspect(), g.Inspect())
		}
		return true, ""
	case *expr.Complex:
		g, ok := got.(*expr.Complex)
		if !ok {
			return false, fmt.Sprintf("want complex %s, got %s", w.Inspect(), got.Inspect())
		}
		if !closeEnough(w.Re, g.Re) || !closeEnough(w.Im, g.Im) {
			return false, fmt.Sprintf("want %s, got %s", w.Inspect(), g.Inspect())
		}
		return true, ""
	}
	if !want.Equal(got) {
		return false, fmt.Sprintf("want %s, got %s", want.Inspect(), got.Inspect())
	}
	return true, ""
}

// closeEnough compares at the weaker of the two precisions. The slack covers
// the final rounding of the computed side plus the decimal quantization of
// the quoted side.
const slackBits = 8

func closeEnough(a, b *big.Float) bool {
	bits := a.Prec()
	if b.Prec() < bits {
		bits = b.Prec()
	}
	if a.Sign() == 0 || b.Sign() == 0 {
		if a.Sign() == 0 && b.Sign() == 0 {
			return true
		}
		nz := a
		if nz.Sign() == 0 {
			nz = b
		}
		// A zero against a non-zero: the non-zero must be negligible at
		// the comparison precision.
		return nz.MantExp(nil) < -int(bits)+slackBits
	}
	diff := new(big.Float).SetPrec(bits + 16).Sub(a, b)
	if diff.Sign() == 0 {
		return true
	}
	scale := a.MantExp(nil)
	return diff.MantExp(nil) <= scale-int(bits)+slackBits
}
