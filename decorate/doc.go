// Package decorate transforms scalar mathematical functions into periodic,
// reflected, clipped, or compactly-supported variants, plus helpers for
// elementwise (vectorized) evaluation.
//
// 🚀 What is a decorator here?
//
//	A Decorator takes a function f: ℝ→ℝ and returns a new function g with a
//	prescribed extension behavior, leaving f untouched:
//	  • Periodicise(xmin, xmax) — g repeats f over every period [xmin, xmax)
//	  • Reflect(Even|Odd, about) — g mirrors f across x = about
//	  • Clip / ClipTo           — g clamps f's output to a fixed band
//	  • CompactSupport          — g is zero outside [xmin, xmax]
//	  • Vectorize / SampleVec   — lift any scalar function to slices and
//	    gonum vectors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diffkit/decorate"
//
//	ref, err := decorate.Reflect(decorate.Odd, 0)
//	if err != nil { ... }
//	g := ref(decorate.Periodicise(0, 1)(math.Sqrt))
//	ys := decorate.Vectorize(g)(xs)
//
// Determinism & safety:
//
//   - Every decorator is pure and stateless; decorated functions may be
//     called concurrently.
//   - Only Reflect validates its arguments (ErrInvalidParity). All other
//     decorators deliberately accept any numeric input; in particular
//     Periodicise with xmax ≤ xmin is undefined behavior left to the
//     caller, mirroring the unchecked modulus it is built on.
//
// Errors:
//
//   - ErrInvalidParity: Reflect or ParseParity received a symmetry value
//     outside {Even, Odd} / {"even", "odd"}.
package decorate
