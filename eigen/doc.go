// Package eigen wraps gonum's dense eigendecomposition with the ordering
// and normalization conventions used throughout diffkit.
//
// What:
//
//   - SortedGeneralized solves the generalized eigenproblem A·v = λ·E·v,
//     returns eigenvalues sorted ascending by real part (stable: ties keep
//     their original order), and rescales every eigenvector by √N so
//     vector amplitudes match the grid-spacing convention of package
//     stencil.
//
// Why:
//
//   - Eigenvalue studies of discrete operators: pass stencil's D2 (or a
//     quartic operator) as A and the grid identity as E, and read modes
//     off in frequency order.
//   - Mass-matrix problems: E need not be the identity, only square and
//     invertible.
//
// Failure model:
//
//	The solve either returns a full (values, vectors) pair or fails with a
//	sentinel error; no partial result is ever returned and nothing is
//	retried.
//
// Errors:
//
//   - ErrShapeMismatch: A or E is not square, or their sizes differ.
//   - ErrEigenFailed: E is singular or the factorization did not converge.
package eigen
