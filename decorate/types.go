// Package decorate defines the core function types, parity constants, and
// sentinel errors shared by every decorator in this package.
package decorate

import "errors"

// Sentinel errors for decorate operations.
var (
	// ErrInvalidParity indicates a reflection symmetry outside {Even, Odd}.
	ErrInvalidParity = errors.New("decorate: parity must be Even (+1) or Odd (-1)")
)

// Func is a scalar real function f: ℝ → ℝ, the unit every decorator wraps.
type Func func(x float64) float64

// Decorator maps one Func to another, preserving purity: applying a
// Decorator never evaluates or mutates the wrapped function.
type Decorator func(f Func) Func

// Parity selects the reflection symmetry used by Reflect.
// Its numeric value is the sign multiplied into the mirrored branch.
type Parity int

const (
	// Even parity: g(x) = g(2·about − x); the mirrored branch keeps f's sign.
	Even Parity = 1
	// Odd parity: g(x) = −g(2·about − x); the mirrored branch flips sign
	// and g(about) is pinned to 0.
	Odd Parity = -1
)

// ParseParity maps the spellings "even" and "odd" onto Even and Odd.
// Any other string yields ErrInvalidParity.
func ParseParity(s string) (Parity, error) {
	switch s {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return 0, ErrInvalidParity
	}
}
