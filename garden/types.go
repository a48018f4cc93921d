package garden

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cyclesim/cycle"
)

// DefaultMaxLayers bounds how many BFS layers InfiniteReachable expands
// before giving up on finding a periodic growth pattern.
const DefaultMaxLayers = 20_000

// DefaultConfirmations is how many further periods must repeat the growth
// window before it is trusted for extrapolation.
const DefaultConfirmations = 2

var (
	// ErrNoStart is returned when the map has no 'S' tile.
	ErrNoStart = errors.New("garden: no start tile")
	// ErrMultipleStarts is returned when the map has more than one 'S' tile.
	ErrMultipleStarts = errors.New("garden: multiple start tiles")
	// ErrUnexpectedTile is returned for tiles other than '.', '#' and 'S'.
	ErrUnexpectedTile = errors.New("garden: unexpected tile")
)

// Option configures InfiniteReachable.
type Option func(*Options)

// Options holds the InfiniteReachable configuration.
type Options struct {
	// Period is the layer lag used for second differences. Zero means
	// LCM(Width, Height).
	Period int
	// Confirmations is the number of extra periods the growth window must
	// repeat for.
	Confirmations int
	// MaxLayers bounds the layers expanded before ErrNoCycle.
	MaxLayers int
	// Logger receives debug events; zerolog.Nop() by default.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Period 0 (derived from the map),
// DefaultConfirmations, DefaultMaxLayers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Confirmations: DefaultConfirmations,
		MaxLayers:     DefaultMaxLayers,
		Logger:        zerolog.Nop(),
	}
}

// WithPeriod overrides the layer lag. p <= 0 is an option violation.
func WithPeriod(p int) Option {
	return func(o *Options) {
		if p <= 0 {
			o.err = fmt.Errorf("%w: Period must be positive (%d)", cycle.ErrOptionViolation, p)
			return
		}
		o.Period = p
	}
}

// WithConfirmations sets how many repeated periods are required.
// k < 0 is an option violation.
func WithConfirmations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Confirmations must be non-negative (%d)", cycle.ErrOptionViolation, k)
			return
		}
		o.Confirmations = k
	}
}

// WithMaxLayers bounds the layers expanded. n <= 0 is an option violation.
func WithMaxLayers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLayers must be positive (%d)", cycle.ErrOptionViolation, n)
			return
		}
		o.MaxLayers = n
	}
}

// WithLogger injects a logger for detection events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
