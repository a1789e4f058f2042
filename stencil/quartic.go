package stencil

import "gonum.org/v1/gonum/mat"

// quarticCoeffs is the 5-point central stencil for d⁴/dx⁴.
var quarticCoeffs = []float64{1, -4, 6, -4, 1}

// PeriodicQuartic builds the N×N periodic fourth-derivative operator from
// the 5-point central stencil (1, −4, 6, −4, 1)/Δx⁴ applied via cyclic
// shifts of ±1 and ±2 columns of the identity. Wrap-around entries carry
// the periodic boundary coupling; for n < 5 overlapping shifts accumulate,
// matching the roll-based construction exactly.
//
// Errors:
//   - ErrTooFewPoints: n < 1.
//
// Complexity: O(N²) time and memory.
func PeriodicQuartic(n int, dx float64) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrTooFewPoints
	}

	eye := identity(n)
	d4 := mat.NewDense(n, n, nil)
	d4.Scale(6, eye)
	for _, t := range []struct {
		k int
		c float64
	}{{2, 1}, {1, -4}, {-1, -4}, {-2, 1}} {
		term := CyclicShift(eye, t.k)
		term.Scale(t.c, term)
		d4.Add(d4, term)
	}
	d4.Scale(1/(dx*dx*dx*dx), d4)

	return d4, nil
}

// BoundedQuartic builds the N×N fourth-derivative operator with one-sided
// boundary handling: the interior is the same 5-point central stencil as
// PeriodicQuartic, while rows 0, 1, N−2 and N−1 are rewritten with the
// stencil (1, −4, 6, −4, 1)/Δx⁴ shifted into columns 0..4, 1..5, N−6..N−2
// and N−5..N−1 respectively, discarding the cyclic wrap entries.
//
// Errors:
//   - ErrTooFewPoints: n < 6 (row 1's stencil spans columns 1..5).
//
// Complexity: O(N²) time and memory.
func BoundedQuartic(n int, dx float64) (*mat.Dense, error) {
	if n < 6 {
		return nil, ErrTooFewPoints
	}

	d4, err := PeriodicQuartic(n, dx)
	if err != nil {
		return nil, err
	}

	scale := dx * dx * dx * dx
	setBoundaryRow(d4, 0, 0, quarticCoeffs, scale)
	setBoundaryRow(d4, 1, 1, quarticCoeffs, scale)
	setBoundaryRow(d4, n-2, n-6, quarticCoeffs, scale)
	setBoundaryRow(d4, n-1, n-5, quarticCoeffs, scale)

	return d4, nil
}
