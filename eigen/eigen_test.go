package eigen_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/diffkit/eigen"
	"github.com/katalvlaran/diffkit/stencil"
)

//----------------------------------------------------------------------------//
// Ordering and scaling
//----------------------------------------------------------------------------//

// TestSortedGeneralized_DiagonalIdentity checks the canonical diagonal
// scenario: A = diag(3,1,2), E = I yields eigenvalues (1,2,3) in order,
// with axis-aligned eigenvectors scaled by √3.
func TestSortedGeneralized_DiagonalIdentity(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	e := eyeDense(3)

	vals, vecs, err := eigen.SortedGeneralized(a, e)
	require.NoError(t, err)
	require.Len(t, vals, 3)

	for i, want := range []float64{1, 2, 3} {
		require.InDelta(t, want, real(vals[i]), 1e-10, "value %d", i)
		require.InDelta(t, 0, imag(vals[i]), 1e-10, "value %d imag", i)
	}

	// λ=1 ↔ axis 1, λ=2 ↔ axis 2, λ=3 ↔ axis 0; sign is solver's choice,
	// amplitude must be √3.
	sqrt3 := math.Sqrt(3)
	axis := []int{1, 2, 0}
	for col, row := range axis {
		for i := 0; i < 3; i++ {
			want := 0.0
			if i == row {
				want = sqrt3
			}
			require.InDelta(t, want, cmplx.Abs(vecs.At(i, col)), 1e-10,
				"vector %d component %d", col, i)
		}
	}
}

// TestSortedGeneralized_MassMatrix verifies the generalized form: with
// E = 2I every eigenvalue of A is halved.
func TestSortedGeneralized_MassMatrix(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 6, 0,
		0, 0, 4,
	})
	e := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 2, 0,
		0, 0, 2,
	})

	vals, _, err := eigen.SortedGeneralized(a, e)
	require.NoError(t, err)
	for i, want := range []float64{1, 2, 3} {
		require.InDelta(t, want, real(vals[i]), 1e-10, "value %d", i)
	}
}

// TestSortedGeneralized_StableTies checks that equal eigenvalues keep the
// solver's original pair order.
func TestSortedGeneralized_StableTies(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		5, 0, 0,
		0, 5, 0,
		0, 0, 1,
	})

	vals, vecs, err := eigen.SortedGeneralized(a, eyeDense(3))
	require.NoError(t, err)

	require.InDelta(t, 1, real(vals[0]), 1e-10)
	require.InDelta(t, 5, real(vals[1]), 1e-10)
	require.InDelta(t, 5, real(vals[2]), 1e-10)

	// The tied pair came out of the solver as (axis 0, axis 1); stable
	// ordering must not swap them.
	sqrt3 := math.Sqrt(3)
	require.InDelta(t, sqrt3, cmplx.Abs(vecs.At(0, 1)), 1e-10)
	require.InDelta(t, sqrt3, cmplx.Abs(vecs.At(1, 2)), 1e-10)
}

// TestSortedGeneralized_ComplexPair exercises a matrix with a conjugate
// eigenvalue pair (planar rotation: λ = ±i).
func TestSortedGeneralized_ComplexPair(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		0, -1,
		1, 0,
	})

	vals, _, err := eigen.SortedGeneralized(a, eyeDense(2))
	require.NoError(t, err)
	for i, v := range vals {
		require.InDelta(t, 0, real(v), 1e-10, "value %d real", i)
		require.InDelta(t, 1, math.Abs(imag(v)), 1e-10, "value %d imag", i)
	}
}

//----------------------------------------------------------------------------//
// Failure modes
//----------------------------------------------------------------------------//

// TestSortedGeneralized_ShapeMismatch covers every rejected shape combination.
func TestSortedGeneralized_ShapeMismatch(t *testing.T) {
	cases := []struct {
		name string
		a, e mat.Matrix
	}{
		{"NonSquareA", mat.NewDense(2, 3, nil), eyeDense(3)},
		{"NonSquareE", eyeDense(2), mat.NewDense(3, 2, nil)},
		{"SizeMismatch", eyeDense(2), eyeDense(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals, vecs, err := eigen.SortedGeneralized(tc.a, tc.e)
			require.ErrorIs(t, err, eigen.ErrShapeMismatch)
			require.Nil(t, vals, "no partial values on failure")
			require.Nil(t, vecs, "no partial vectors on failure")
		})
	}
}

// TestSortedGeneralized_SingularMass verifies a singular E fails outright.
func TestSortedGeneralized_SingularMass(t *testing.T) {
	a := eyeDense(2)
	e := mat.NewDense(2, 2, nil) // zero matrix

	vals, vecs, err := eigen.SortedGeneralized(a, e)
	require.ErrorIs(t, err, eigen.ErrEigenFailed)
	require.Nil(t, vals)
	require.Nil(t, vecs)
}

//----------------------------------------------------------------------------//
// Integration with stencil operators
//----------------------------------------------------------------------------//

// TestSortedGeneralized_PeriodicLaplacian checks the discrete spectrum of
// the periodic D2 operator: λ_k = −(4/Δx²)·sin²(πk/N), all real, with the
// constant mode λ = 0 coming out last in ascending order.
func TestSortedGeneralized_PeriodicLaplacian(t *testing.T) {
	const n = 16
	// Wrap-consistent grid: N·Δx spans the full period.
	d, err := stencil.Discretise(0, 2*math.Pi*float64(n-1)/float64(n), stencil.WithPoints(n))
	require.NoError(t, err)

	vals, _, err := eigen.SortedGeneralized(d.D2, d.Identity)
	require.NoError(t, err)

	for i, v := range vals {
		require.InDelta(t, 0, imag(v), 1e-8, "value %d imag", i)
	}
	// Constant mode: largest eigenvalue is 0.
	require.InDelta(t, 0, real(vals[n-1]), 1e-8)
	// First harmonic is doubly degenerate.
	wantK1 := -4 / (d.Dx * d.Dx) * math.Pow(math.Sin(math.Pi/float64(n)), 2)
	require.InDelta(t, wantK1, real(vals[n-2]), 1e-6)
	require.InDelta(t, wantK1, real(vals[n-3]), 1e-6)
}

// eyeDense returns I_n as a *mat.Dense for test fixtures.
func eyeDense(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
