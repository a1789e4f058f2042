// Package stencil builds dense finite-difference operators on uniform 1-D
// grids: identity, first-, second-, and fourth-derivative matrices, in both
// periodic and bounded flavors.
//
// What:
//
//   - Discretise: N uniform points over [xa, xb] plus the identity and the
//     2nd-order central first/second derivative matrices.
//   - PeriodicQuartic / BoundedQuartic: the 5-point fourth-derivative
//     operator, with cyclic wrap-around or one-sided boundary rows.
//   - Linspace and CyclicShift: the grid and column-roll primitives the
//     builders are made of, exported for direct use.
//
// Why:
//
//   - Spectral/eigenvalue studies: feed D1, D2 or the quartic operator into
//     eigen.SortedGeneralized.
//   - Method-of-lines PDE discretisation: D·u approximates du/dx on the grid.
//   - Quick convergence checks: operators are plain *mat.Dense values, so
//     gonum's full toolbox applies.
//
// Boundary handling:
//
//   - Periodic (default): cyclic column shifts encode the wrap-around
//     coupling; every row carries the central stencil and sums to ≈0.
//   - Bounded: only the outermost rows are rewritten with one-sided
//     stencils of matching truncation order; interior rows keep the
//     central stencil untouched.
//
// Complexity:
//
//   - Discretise: O(N²) time and memory (dense operators).
//   - PeriodicQuartic / BoundedQuartic: O(N²) time and memory.
//
// Errors:
//
//   - ErrTooFewPoints: the requested grid cannot carry the stencil
//     (fewer than 2 points; fewer than 4 for bounded first/second
//     derivatives; fewer than 6 for the bounded quartic).
package stencil
