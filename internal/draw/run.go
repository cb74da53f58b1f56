package draw

import (
	"context"
	"time"

	"github.com/Iron-Ham/hrkit/internal/errors"
)

// StepFunc observes each accepted tick of a blocking draw.
type StepFunc func(Step)

// Run performs a whole draw on the calling goroutine, ticking with a
// time.Ticker, and returns the winner. onStep may be nil. If ctx ends first
// the draw is canceled and the context error is returned in a DrawError.
func (e *Engine) Run(ctx context.Context, names []string, onStep StepFunc) (string, error) {
	cycle, err := e.Start(names)
	if err != nil {
		return "", err
	}

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.Cancel()
			return "", errors.NewDrawError("draw interrupted", ctx.Err()).WithCycle(cycle)
		case <-ticker.C:
			step, ok := e.Tick(cycle)
			if !ok {
				return "", errors.NewDrawError("draw interrupted", errors.ErrCanceled).WithCycle(cycle)
			}
			if onStep != nil {
				onStep(step)
			}
			if step.Done {
				return step.Winner, nil
			}
		}
	}
}
