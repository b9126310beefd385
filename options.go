package cubealg

import "go.uber.org/zap"

const (
	// DefaultMaxDepth bounds bracket nesting when no WithMaxDepth option is given.
	DefaultMaxDepth = 64

	// DefaultMaxMoves bounds the length of an expansion when no WithMaxMoves
	// option is given. Each commutator level doubles its operands, so
	// depth alone does not bound the output.
	DefaultMaxMoves = 100_000
)

// Option configures parsing and simplification.
type Option func(*config)

type config struct {
	maxDepth int
	maxMoves int
	cancel   bool
	logger   *zap.Logger
}

func defaultConfig() *config {
	return &config{
		maxDepth: DefaultMaxDepth,
		maxMoves: DefaultMaxMoves,
		cancel:   false,
		logger:   zap.NewNop(),
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxDepth limits how deeply brackets may nest.
// Expressions nested deeper than n fail with ErrTooDeep. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithMaxMoves limits how many moves an expression may expand to.
// Longer expansions fail with ErrTooLong before anything is allocated.
// Values below 1 are ignored.
func WithMaxMoves(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxMoves = n
		}
	}
}

// WithCancellation merges adjacent same-face moves in the result.
// Disabled by default so output is the literal expansion.
func WithCancellation(enabled bool) Option {
	return func(c *config) {
		c.cancel = enabled
	}
}

// WithLogger sets a logger that receives debug events for every expansion.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
