package config

// Canonical head names shared between the rule tables, the reference
// normalizer and the numeric dispatcher.
const (
	PlusHead       = "Plus"
	TimesHead      = "Times"
	PowerHead      = "Power"
	NHead          = "N"
	DerivativeHead = "Derivative"
	LogHead        = "Log"
)

// Precision policy. Requests are decimal digits at the surface; the backend
// works in bits. A malformed request is an error, never clamped.
const (
	// DefaultDigits is the precision used when N is called without an
	// explicit digit count (machine-double territory, like the host's
	// default display precision).
	DefaultDigits = 18

	// MinDigits is the smallest meaningful request.
	MinDigits = 1

	// MaxDigits bounds runaway requests before they turn into
	// multi-gigabyte mantissas.
	MaxDigits = 1_000_000

	// GuardBits is the extra working precision the backend carries so a
	// primitive rounds exactly once at the requested precision.
	GuardBits = 32
)
