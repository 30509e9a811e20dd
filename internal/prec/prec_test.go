package prec

import (
	"errors"
	"math"
	"testing"

	"github.com/funvibe/exptrig/internal/config"
)

func TestBitsForDigits(t *testing.T) {
	tests := []struct {
		name    string
		digits  int
		wantErr bool
	}{
		{"one digit", 1, false},
		{"default", config.DefaultDigits, false},
		{"large", 100000, false},
		{"zero digits", 0, true},
		{"negative", -5, true},
		{"over limit", config.MaxDigits + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := BitsForDigits(tt.digits)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPrecision) {
					t.Errorf("BitsForDigits(%d) err = %v, want ErrInvalidPrecision", tt.digits, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BitsForDigits(%d) err = %v", tt.digits, err)
			}
			// Certified digits must cover the request.
			if float64(bits)*math.Log10(2) < float64(tt.digits) {
				t.Errorf("BitsForDigits(%d) = %d bits, too few", tt.digits, bits)
			}
		})
	}
}

func TestScopeNesting(t *testing.T) {
	ctx := NewContext()
	if ctx.Current() != DefaultBits() {
		t.Fatalf("empty context Current() = %d, want default %d", ctx.Current(), DefaultBits())
	}
	err := ctx.With(100, func(bits uint) error {
		if bits != 100 || ctx.Current() != 100 {
			t.Errorf("outer scope sees %d, want 100", ctx.Current())
		}
		return ctx.With(200, func(inner uint) error {
			if ctx.Current() != 200 || ctx.Depth() != 2 {
				t.Errorf("inner scope Current() = %d Depth() = %d", ctx.Current(), ctx.Depth())
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("With returned %v", err)
	}
	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d after all scopes exited, want 0", ctx.Depth())
	}
}

func TestScopeReleasedOnError(t *testing.T) {
	ctx := NewContext()
	sentinel := errors.New("boom")
	err := ctx.With(64, func(uint) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Fatalf("With err = %v, want sentinel", err)
	}
	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d after error exit, want 0", ctx.Depth())
	}
}

func TestScopeReleasedOnPanic(t *testing.T) {
	ctx := NewContext()
	func() {
		defer func() { recover() }()
		_ = ctx.With(64, func(uint) error { panic("boom") })
	}()
	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d after panic exit, want 0", ctx.Depth())
	}
}

func TestZeroBitsRejected(t *testing.T) {
	ctx := NewContext()
	err := ctx.With(0, func(uint) error { return nil })
	if !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("With(0) err = %v, want ErrInvalidPrecision", err)
	}
}
