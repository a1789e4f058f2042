package stencil_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/diffkit/stencil"
)

// BenchmarkDiscretise measures dense operator construction on the default
// 101-point grid.
func BenchmarkDiscretise(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := stencil.Discretise(0, 2*math.Pi); err != nil {
			b.Fatalf("Discretise failed: %v", err)
		}
	}
}

// BenchmarkDiscretise_Bounded includes the boundary-row rewrites.
func BenchmarkDiscretise_Bounded(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := stencil.Discretise(0, 1, stencil.WithPoints(501), stencil.WithBounded()); err != nil {
			b.Fatalf("Discretise failed: %v", err)
		}
	}
}

// BenchmarkPeriodicQuartic builds the 5-point operator on a 501-point grid.
func BenchmarkPeriodicQuartic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := stencil.PeriodicQuartic(501, 0.01); err != nil {
			b.Fatalf("PeriodicQuartic failed: %v", err)
		}
	}
}
