// Package prec provides the stack-disciplined precision context one
// evaluation call chain runs under. A Context belongs to a single goroutine;
// concurrent evaluations each carry their own.
package prec

import (
	"errors"
	"fmt"
	"math"

	"github.com/funvibe/exptrig/internal/config"
)

// ErrInvalidPrecision is returned for a malformed precision request. It is
// surfaced to the caller, never silently clamped or defaulted; turning it
// into an in-language outcome is the rule layer's decision.
var ErrInvalidPrecision = errors.New("prec: invalid precision request")

// BitsForDigits converts a requested decimal digit count to working bits.
func BitsForDigits(digits int) (uint, error) {
	if digits < config.MinDigits || digits > config.MaxDigits {
		return 0, fmt.Errorf("%w: %d digits", ErrInvalidPrecision, digits)
	}
	bits := uint(math.Ceil(float64(digits)*math.Log2(10))) + 4
	return bits, nil
}

// DefaultBits is the working precision of an unqualified N request.
func DefaultBits() uint {
	bits, _ := BitsForDigits(config.DefaultDigits)
	return bits
}

// Context is the precision scope stack for one call chain. Nested scopes
// come from reentrant evaluation (the host evaluating Cos while applying an
// ArcCos rule); an inner scope never leaks into the outer one.
type Context struct {
	stack []uint
}

func NewContext() *Context { return &Context{} }

// Current returns the innermost active precision, or the default when no
// scope is active.
func (c *Context) Current() uint {
	if len(c.stack) == 0 {
		return DefaultBits()
	}
	return c.stack[len(c.stack)-1]
}

// Depth reports how many scopes are active. Tests use it to verify release
// on every exit path.
func (c *Context) Depth() int { return len(c.stack) }

// With runs fn under a scope of the given working precision. The scope is
// released on every exit path, including an error or panic out of fn.
func (c *Context) With(bits uint, fn func(bits uint) error) error {
	if bits == 0 {
		return fmt.Errorf("%w: 0 bits", ErrInvalidPrecision)
	}
	c.stack = append(c.stack, bits)
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
	}()
	return fn(bits)
}
