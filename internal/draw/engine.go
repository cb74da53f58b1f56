// Package draw implements the lucky draw state machine.
//
// A draw spins for a fixed duration, showing a new uniformly random
// provisional name every tick. The name sampled on the final tick is the
// winner. The engine itself never sleeps: the caller delivers ticks, either
// from Bubble Tea's tea.Tick or from a time.Ticker in Run.
package draw

import (
	"math/rand"
	"slices"
	"time"

	"github.com/Iron-Ham/hrkit/internal/errors"
)

// Defaults match the draw.* config keys.
const (
	DefaultTick     = 50 * time.Millisecond
	DefaultDuration = 2000 * time.Millisecond
)

// Phase is the engine state.
type Phase int

const (
	// PhaseIdle means no draw is running.
	PhaseIdle Phase = iota
	// PhaseSpinning means a draw is running and ticks are accepted.
	PhaseSpinning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// Step is the result of one accepted tick.
type Step struct {
	Cycle       uint64
	Provisional string
	Elapsed     time.Duration
	// Done is set on the final tick, when Winner holds the committed name.
	Done   bool
	Winner string
}

// Engine runs one draw at a time. It is not safe for concurrent use.
type Engine struct {
	tick     time.Duration
	duration time.Duration
	rng      *rand.Rand

	phase   Phase
	cycle   uint64
	pool    []string
	elapsed time.Duration
	current string
}

// Option configures an Engine.
type Option func(*Engine)

// WithTick sets the interval between provisional names.
func WithTick(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tick = d
		}
	}
}

// WithDuration sets how long a draw spins. Zero means the first tick finishes it.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.duration = d
		}
	}
}

// WithRand sets the random source, for reproducible draws in tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// New creates an idle Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		tick:     DefaultTick,
		duration: DefaultDuration,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a draw over a snapshot of names and returns its cycle number,
// which the caller attaches to every tick it delivers. Starting with no names
// or while a draw is spinning fails and leaves the engine unchanged.
func (e *Engine) Start(names []string) (uint64, error) {
	if len(names) == 0 {
		return 0, errors.NewDrawError("cannot start draw", errors.ErrEmptyNameList).WithCycle(e.cycle)
	}
	if e.phase == PhaseSpinning {
		return 0, errors.NewDrawError("cannot start draw", errors.ErrDrawInProgress).WithCycle(e.cycle)
	}

	e.cycle++
	e.phase = PhaseSpinning
	e.pool = slices.Clone(names)
	e.elapsed = 0
	e.current = ""
	return e.cycle, nil
}

// Tick advances the draw by one interval. Ticks for another cycle, or while
// idle, are ignored and report false.
func (e *Engine) Tick(cycle uint64) (Step, bool) {
	if e.phase != PhaseSpinning || cycle != e.cycle {
		return Step{}, false
	}

	e.current = e.pool[e.rng.Intn(len(e.pool))]
	e.elapsed += e.tick

	step := Step{
		Cycle:       e.cycle,
		Provisional: e.current,
		Elapsed:     e.elapsed,
	}
	if e.elapsed >= e.duration {
		step.Done = true
		step.Winner = e.current
		e.finish()
	}
	return step, true
}

// Cancel stops a spinning draw without a winner. In-flight ticks for the
// canceled cycle are dropped by Tick.
func (e *Engine) Cancel() bool {
	if e.phase != PhaseSpinning {
		return false
	}
	e.finish()
	e.cycle++
	return true
}

func (e *Engine) finish() {
	e.phase = PhaseIdle
	e.pool = nil
	e.elapsed = 0
}

// Phase returns the current state.
func (e *Engine) Phase() Phase { return e.phase }

// Spinning reports whether a draw is running.
func (e *Engine) Spinning() bool { return e.phase == PhaseSpinning }

// Cycle returns the number of the current or most recent draw.
func (e *Engine) Cycle() uint64 { return e.cycle }

// Current returns the last provisional name shown, or "" before the first tick.
func (e *Engine) Current() string { return e.current }

// TickInterval returns the configured tick interval.
func (e *Engine) TickInterval() time.Duration { return e.tick }

// Duration returns the configured draw duration.
func (e *Engine) Duration() time.Duration { return e.duration }
