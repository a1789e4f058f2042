// Package stencil: functional configuration for grid discretisation.
// Defaults mirror the conventions used throughout diffkit: 101 points and
// periodic boundary coupling unless the caller opts out.
package stencil

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPoints is the grid size used when WithPoints is not supplied.
	DefaultPoints = 101
)

// options carries the resolved Discretise configuration.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	n        int
	periodic bool
}

// Option configures Discretise.
type Option func(*options)

// WithPoints sets the number of grid points N (endpoints included).
// Values below 2 surface as ErrTooFewPoints from Discretise rather than
// panicking here, so table-driven callers get a matchable error.
func WithPoints(n int) Option {
	return func(o *options) { o.n = n }
}

// WithBounded switches off periodic wrap-around: the two outermost rows of
// D1 and D2 are rewritten with one-sided stencils of matching order.
func WithBounded() Option {
	return func(o *options) { o.periodic = false }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{n: DefaultPoints, periodic: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
