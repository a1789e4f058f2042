package eigen

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for eigen operations.
var (
	// ErrShapeMismatch indicates A or E is non-square or their sizes differ.
	ErrShapeMismatch = errors.New("eigen: operands must be square matrices of equal size")
	// ErrEigenFailed indicates the solver could not produce a full result:
	// E is singular or the factorization failed to converge.
	ErrEigenFailed = errors.New("eigen: generalized eigendecomposition failed")
)

// SortedGeneralized solves the generalized eigenproblem A·v = λ·E·v and
// returns all N eigenvalue/eigenvector pairs in ascending order of the
// eigenvalue's real part.
//
// Algorithm:
//  1. Validate A and E are square with matching size.
//  2. Reduce to the standard problem on E⁻¹A (one dense solve of E·X = A).
//  3. Factorize E⁻¹A for right eigenvectors.
//  4. Stable-sort pair indices by real(λ); ties keep solver order.
//  5. Reorder eigenvector columns accordingly, scaling each by √N.
//
// The returned values may be complex; eigenvectors come back as an N×N
// complex dense matrix whose column j pairs with values[j].
//
// Errors:
//   - ErrShapeMismatch: A or E non-square, or sizes differ.
//   - ErrEigenFailed: E singular, or the factorization did not converge.
//     No partial result is returned in either case.
//
// Complexity: O(N³) time, O(N²) memory.
func SortedGeneralized(a, e mat.Matrix) ([]complex128, *mat.CDense, error) {
	ar, ac := a.Dims()
	er, ec := e.Dims()
	if ar != ac || er != ec || ar != er {
		return nil, nil, fmt.Errorf("SortedGeneralized: A is %d×%d, E is %d×%d: %w", ar, ac, er, ec, ErrShapeMismatch)
	}
	n := ar

	// Reduce A·v = λ·E·v to (E⁻¹A)·v = λ·v. A finite Condition error means
	// the solve succeeded on an ill-conditioned E; an infinite condition
	// (E singular) or any other error is fatal.
	var reduced mat.Dense
	if err := reduced.Solve(e, a); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, nil, fmt.Errorf("SortedGeneralized: solve E·X = A: %w", ErrEigenFailed)
		}
	}

	var ed mat.Eigen
	if ok := ed.Factorize(&reduced, mat.EigenRight); !ok {
		return nil, nil, fmt.Errorf("SortedGeneralized: factorize: %w", ErrEigenFailed)
	}

	values := ed.Values(nil)
	var vectors mat.CDense
	ed.VectorsTo(&vectors)

	// Stable ascending order by real part; ties keep solver order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return real(values[order[i]]) < real(values[order[j]])
	})

	sortedValues := make([]complex128, n)
	scale := complex(math.Sqrt(float64(n)), 0)
	sortedVectors := mat.NewCDense(n, n, nil)
	for j, src := range order {
		sortedValues[j] = values[src]
		for i := 0; i < n; i++ {
			sortedVectors.Set(i, j, scale*vectors.At(i, src))
		}
	}

	return sortedValues, sortedVectors, nil
}
