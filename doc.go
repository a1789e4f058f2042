// Package diffkit is a small toolbox for 1-D numerical studies: function
// decorators that extend or restrict scalar functions, and finite-difference
// operators on uniform grids, backed by gonum dense matrices.
//
// 🚀 What is diffkit?
//
//	A compact library that brings together:
//		• Function decorators: periodic extension, even/odd reflection,
//		  clipping, compact support, elementwise vectorization
//		• Grid discretisation: uniform grids with identity, first- and
//		  second-derivative matrices (2nd-order central stencils)
//		• Quartic operators: periodic and boundary-aware fourth-derivative
//		  matrices (5-point stencils)
//		• Eigen tooling: generalized eigen-decomposition with stable
//		  ascending ordering and √N-normalized eigenvectors
//
// ✨ Why choose diffkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, fresh allocations, no global state
//   - Safe by construction – sentinel errors via errors.Is, no panics on
//     user-triggered conditions
//   - Plays well with gonum – all operators are plain *mat.Dense values
//
// Under the hood, everything is organized under three subpackages:
//
//	decorate/ — function decorators (Periodicise, Reflect, Clip, CompactSupport, Vectorize)
//	stencil/  — uniform grids and derivative matrices (Discretise, PeriodicQuartic, BoundedQuartic)
//	eigen/    — sorted generalized eigen-decomposition (SortedGeneralized)
//
// Quick sketch:
//
//	    f ──decorate──▶ g ──SampleVec──▶ u ──D1·u──▶ du/dx samples
//
// Every function is independently callable from multiple goroutines: all
// inputs are taken by value and all outputs are freshly allocated.
//
//	go get github.com/katalvlaran/diffkit
package diffkit
