package decorate

import "gonum.org/v1/gonum/mat"

// Vectorize lifts a scalar Func to slices: the returned function applies f
// to every element of xs and collects the results in a freshly allocated
// slice of the same length. The input slice is never mutated.
//
// Complexity: O(n) per call, Memory: O(n).
func Vectorize(f Func) func(xs []float64) []float64 {
	return func(xs []float64) []float64 {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = f(x)
		}
		return ys
	}
}

// SampleVec samples f at each grid point of xs and returns the values as a
// fresh *mat.VecDense, ready to be multiplied by the differentiation
// matrices in package stencil.
//
// Complexity: O(n), Memory: O(n).
func SampleVec(f Func, xs []float64) *mat.VecDense {
	v := mat.NewVecDense(len(xs), nil)
	for i, x := range xs {
		v.SetVec(i, f(x))
	}
	return v
}
