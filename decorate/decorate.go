package decorate

import "math"

// Periodicise returns a Decorator that extends f periodically: the
// decorated function repeats f's values on [xmin, xmax) over the whole
// real line.
//
// Algorithm:
//  1. shift(x) = ((x − xmin) mod (xmax − xmin)) + xmin, where the modulus
//     carries the sign of the divisor so that shift(x) ∈ [xmin, xmax) for
//     every finite x.
//  2. g(x) = f(shift(x)).
//
// Precondition: xmax > xmin. The modulus is deliberately unchecked; a
// non-positive period is undefined behavior owned by the caller.
//
// Complexity: O(1) per evaluation on top of f.
func Periodicise(xmin, xmax float64) Decorator {
	period := xmax - xmin
	shift := func(x float64) float64 {
		y := math.Mod(x-xmin, period)
		if y < 0 {
			y += period
		}
		return y + xmin
	}

	return func(f Func) Func {
		return func(x float64) float64 { return f(shift(x)) }
	}
}

// Reflect returns a Decorator that extends f by mirroring it across
// x = about with the given parity.
//
// The decorated function is piecewise:
//
//	x > about  →  f(x)
//	x == about →  f(about) for Even, 0 for Odd
//	x < about  →  sig · f(2·about − x)
//
// sig outside {Even, Odd} yields ErrInvalidParity; this is the only
// decorator in the package that validates its arguments.
//
// Complexity: O(1) per evaluation on top of f.
func Reflect(sig Parity, about float64) (Decorator, error) {
	if sig != Even && sig != Odd {
		return nil, ErrInvalidParity
	}

	return func(f Func) Func {
		return func(x float64) float64 {
			switch {
			case x > about:
				return f(x)
			case x == about:
				if sig == Even {
					return f(x)
				}
				return 0
			default:
				return float64(sig) * f(2*about-x)
			}
		}
	}, nil
}

// Clip returns a Decorator that clamps f's output to [−1, 1].
//
// NOTE: maxamp is accepted but ignored; the clamp bounds are always ±1.
// Kept as-is for drop-in compatibility with existing callers. See ClipTo
// for the variant that actually honors the amplitude.
func Clip(maxamp float64) Decorator {
	_ = maxamp
	return func(f Func) Func {
		return func(x float64) float64 {
			return math.Max(-1, math.Min(1, f(x)))
		}
	}
}

// ClipTo returns a Decorator that clamps f's output to [−maxamp, maxamp].
// It is the parameterized counterpart of Clip for callers that want the
// amplitude bound to mean what it says.
func ClipTo(maxamp float64) Decorator {
	return func(f Func) Func {
		return func(x float64) float64 {
			return math.Max(-maxamp, math.Min(maxamp, f(x)))
		}
	}
}

// CompactSupport returns a Decorator that zeroes f outside [xmin, xmax]:
// the decorated function returns 0 for x < xmin or x > xmax and f(x)
// inside the interval, endpoints included.
//
// No validation is performed; xmax < xmin simply produces the zero
// function.
func CompactSupport(xmin, xmax float64) Decorator {
	return func(f Func) Func {
		return func(x float64) float64 {
			if x > xmax || x < xmin {
				return 0
			}
			return f(x)
		}
	}
}
