package stencil

import "gonum.org/v1/gonum/mat"

// Discretisation bundles a uniform grid with its discrete operators:
// the sample points, their spacing, the identity matrix, and the first-
// and second-derivative matrices built from 2nd-order central stencils.
// All matrices are freshly allocated N×N *mat.Dense values.
type Discretisation struct {
	// Points holds the N uniformly spaced samples, endpoints included.
	Points []float64
	// Dx is the grid spacing Points[1] − Points[0].
	Dx float64
	// Identity is I_N, the mass matrix companion for eigen solves.
	Identity *mat.Dense
	// D1 approximates d/dx: central (f[i+1]−f[i−1])/(2Δx) on interior rows.
	D1 *mat.Dense
	// D2 approximates d²/dx²: central (f[i+1]−2f[i]+f[i−1])/Δx².
	D2 *mat.Dense
}

// Discretise builds the uniform grid over [xa, xb] and its identity,
// first- and second-derivative matrices.
//
// Algorithm:
//  1. N uniform points from xa to xb inclusive; Δx = Points[1] − Points[0].
//  2. E = I_N.
//  3. D1 = (roll(E,+1) − roll(E,−1)) / (2Δx),
//     D2 = (roll(E,+1) − 2E + roll(E,−1)) / Δx²,
//     where roll is CyclicShift: the wrap-around entries in rows 0 and N−1
//     encode periodic boundary coupling.
//  4. With WithBounded(), rows 0 and N−1 of D1 and D2 are overwritten by
//     one-sided stencils of matching truncation order:
//     D1[0]   = (−11/6, 3, −3/2, 1/3)/Δx over columns 0..3,
//     D1[N−1] = (−1/3, 3/2, −3, 11/6)/Δx over the last 4 columns,
//     D2[0]   = (2, −5, 4, −1)/Δx² over columns 0..3,
//     D2[N−1] = (−1, 4, −5, 2)/Δx² over the last 4 columns,
//     every other entry of those rows zeroed. Interior rows are untouched.
//
// Errors:
//   - ErrTooFewPoints: N < 2, or N < 4 with WithBounded().
//
// Complexity: O(N²) time and memory.
func Discretise(xa, xb float64, opts ...Option) (*Discretisation, error) {
	o := gatherOptions(opts)
	if o.n < 2 || (!o.periodic && o.n < 4) {
		return nil, ErrTooFewPoints
	}
	n := o.n

	xs := Linspace(xa, xb, n)
	dx := xs[1] - xs[0]

	eye := identity(n)
	plus := CyclicShift(eye, 1)   // ones on the superdiagonal, wrap at row N−1
	minus := CyclicShift(eye, -1) // ones on the subdiagonal, wrap at row 0

	// D1 = (plus − minus) / (2Δx)
	d1 := mat.NewDense(n, n, nil)
	d1.Sub(plus, minus)
	d1.Scale(1/(2*dx), d1)

	// D2 = (plus − 2E + minus) / Δx²
	d2 := mat.NewDense(n, n, nil)
	d2.Add(plus, minus)
	twoEye := mat.NewDense(n, n, nil)
	twoEye.Scale(2, eye)
	d2.Sub(d2, twoEye)
	d2.Scale(1/(dx*dx), d2)

	if !o.periodic {
		setBoundaryRow(d1, 0, 0, []float64{-11.0 / 6.0, 3, -1.5, 1.0 / 3.0}, dx)
		setBoundaryRow(d1, n-1, n-4, []float64{-1.0 / 3.0, 1.5, -3, 11.0 / 6.0}, dx)
		setBoundaryRow(d2, 0, 0, []float64{2, -5, 4, -1}, dx*dx)
		setBoundaryRow(d2, n-1, n-4, []float64{-1, 4, -5, 2}, dx*dx)
	}

	return &Discretisation{
		Points:   xs,
		Dx:       dx,
		Identity: eye,
		D1:       d1,
		D2:       d2,
	}, nil
}

// Linspace returns n uniformly spaced points from xa to xb inclusive.
// n == 1 yields {xa}; n <= 0 yields an empty slice. The last point is set
// to xb exactly so accumulated rounding never detaches the endpoint.
//
// Complexity: O(n).
func Linspace(xa, xb float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = xa
		return xs
	}
	step := (xb - xa) / float64(n-1)
	for i := range xs {
		xs[i] = xa + float64(i)*step
	}
	xs[n-1] = xb
	return xs
}

// CyclicShift returns a fresh matrix whose columns are those of m rolled k
// positions to the right with wrap-around (negative k rolls left); column j
// of m lands in column (j+k) mod C. This is the primitive that turns a
// central stencil into a periodic operator.
//
// Complexity: O(R×C) time and memory.
func CyclicShift(m *mat.Dense, k int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	k = ((k % c) + c) % c
	for j := 0; j < c; j++ {
		dst := (j + k) % c
		for i := 0; i < r; i++ {
			out.Set(i, dst, m.At(i, j))
		}
	}
	return out
}

// identity allocates I_n as a Dense so callers can pass it anywhere a
// general matrix is expected (eigen solves, row surgery).
func identity(n int) *mat.Dense {
	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}
	return eye
}

// setBoundaryRow zeroes row i of m and writes coeffs/scale starting at
// column start. Used to replace a cyclically-wrapped row with a one-sided
// stencil.
func setBoundaryRow(m *mat.Dense, i, start int, coeffs []float64, scale float64) {
	_, c := m.Dims()
	row := make([]float64, c)
	for j, v := range coeffs {
		row[start+j] = v / scale
	}
	m.SetRow(i, row)
}
