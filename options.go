package romgo

import (
	"github.com/hupe1980/romgo/eigen"
)

type options struct {
	normalize        bool
	solver           eigen.Solver
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		normalize:        true,
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a decomposition call.
type Option func(*options)

// WithNormalize controls whether retained modes are scaled to unit norm
// under the inner product. Defaults to true.
func WithNormalize(normalize bool) Option {
	return func(o *options) {
		o.normalize = normalize
	}
}

// WithSolver configures the symmetric eigensolver.
//
// If nil is passed, the gonum-backed eigen.DenseSolver is used.
func WithSolver(s eigen.Solver) Option {
	return func(o *options) {
		o.solver = s
	}
}

// WithParallelism bounds concurrent inner-product evaluations during the
// correlation matrix build and, for block input, concurrent per-block
// pipelines. Values <= 1 mean serial execution (the default).
//
// Pairwise evaluations are independent reads of two snapshots writing
// distinct matrix cells, and blocks share no state, so the results are
// identical to a serial run.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger configures structured logging for decomposition calls.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
