package delaunay

// Options configures a Build call. The zero value is sequential,
// single-threaded construction.
type Options struct {
	// Parallel enables the errgroup-sharded seed-selection reductions
	// (bounding-box centre, closest-to-centre, closest-to-seed-vertex,
	// minimal-circumradius third point). It has no effect on the
	// insertion loop itself, which stays single-threaded: a single
	// triangulation is never sharded across goroutines, only the
	// seed-selection scan that precedes it.
	Parallel bool
}

// Option is a functional option for Build, following the same pattern
// used by package config.
type Option func(*Options)

// WithParallel enables or disables the parallel seed-selection
// reductions. Default: disabled.
func WithParallel(enabled bool) Option {
	return func(o *Options) { o.Parallel = enabled }
}

func resolveOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
