package engine

import (
	"errors"

	"github.com/funvibe/exptrig/internal/bigmath"
	"github.com/funvibe/exptrig/internal/prec"
)

var (
	// ErrEmptyName is returned when a definition registers without a name.
	ErrEmptyName = errors.New("engine(registry): empty definition name")
	// ErrDuplicateDefinition indicates an attempt to register a second
	// definition under an already-taken symbol name.
	ErrDuplicateDefinition = errors.New("engine(registry): duplicate definition")
	// ErrFrozenRegistry indicates registration after Freeze.
	ErrFrozenRegistry = errors.New("engine(registry): registry is frozen")
	// ErrIncompleteDefinition indicates a definition with no rules and no
	// capabilities, which could never contribute anything.
	ErrIncompleteDefinition = errors.New("engine(registry): definition has no rules and no capabilities")

	// ErrNotUnary is returned by the numeric dispatcher for a call that is
	// not a single-argument invocation of its primitive.
	ErrNotUnary = errors.New("engine(dispatch): primitive takes exactly one argument")
	// ErrNotNumeric is returned when an argument cannot be converted to a
	// backend value.
	ErrNotNumeric = errors.New("engine(dispatch): argument is not numeric")

	// ErrNumericDomain is the backend's domain failure, re-exported so the
	// rule layer can map it to a special value without importing the
	// backend.
	ErrNumericDomain = bigmath.ErrDomain

	// ErrInvalidPrecision is a malformed precision request, surfaced to
	// the caller rather than clamped.
	ErrInvalidPrecision = prec.ErrInvalidPrecision
)
