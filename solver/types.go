package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for solving.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrPassLimit is returned when the board is still changing after the
	// configured number of passes.
	ErrPassLimit = errors.New("solver: pass limit exceeded")
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds the parameters and hooks of a Solve run.
type Options struct {
	// Ctx is checked between passes.
	Ctx context.Context

	// Logger receives one debug record per pass and an info record per
	// solve. Nil means the board's own logger.
	Logger *slog.Logger

	// MaxPasses, if > 0, caps the number of passes. 0 means unbounded.
	MaxPasses int

	// OnPass is called after every pass with its statistics.
	OnPass func(PassStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the board logger
//   - no pass limit
//   - a no-op pass hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    nil,
		MaxPasses: 0,
		OnPass:    func(PassStats) {},
		err:       nil,
	}
}

// WithContext sets a context whose cancellation stops Solve between passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for pass and summary records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxPasses caps the number of passes.
//
//	n > 0: at most n passes, then ErrPassLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithPassHook registers a callback run after every pass.
func WithPassHook(fn func(PassStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// PassStats describes one pass of the Solve loop.
type PassStats struct {
	// Pass is the 1-based pass number.
	Pass int
	// EdgesAdded counts bridges placed by the pass.
	EdgesAdded int
	// SlotsClosed counts slots moved from open to closed by the pass.
	SlotsClosed int
	// Vetoed counts connections closed by the disjointness rule.
	Vetoed int
	// Joined counts bridges forced by the single-exit rule.
	Joined int
	// Complete is the board flag after the pass.
	Complete bool
}

// Report is the outcome of Solve.
type Report struct {
	Passes      int
	EdgesAdded  int
	SlotsClosed int
	Vetoed      int
	Joined      int
	// Complete reports whether every vertex reached its degree.
	Complete bool
}
