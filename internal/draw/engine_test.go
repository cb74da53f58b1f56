package draw

import (
	"context"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/Iron-Ham/hrkit/internal/errors"
)

func seeded() Option {
	return WithRand(rand.New(rand.NewSource(1)))
}

func TestNew_Defaults(t *testing.T) {
	e := New()
	if e.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 50ms", e.TickInterval())
	}
	if e.Duration() != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", e.Duration())
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want idle", e.Phase())
	}
}

func TestNew_IgnoresInvalidOptions(t *testing.T) {
	e := New(WithTick(0), WithDuration(-time.Second), WithRand(nil))
	if e.TickInterval() != DefaultTick || e.Duration() != DefaultDuration {
		t.Errorf("invalid options changed settings: tick=%v duration=%v", e.TickInterval(), e.Duration())
	}
	if e.rng == nil {
		t.Error("rng should not be nil")
	}
}

func TestStart_Errors(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		e := New()
		_, err := e.Start(nil)
		if !errors.Is(err, errors.ErrEmptyNameList) {
			t.Fatalf("Start(nil) error = %v, want ErrEmptyNameList", err)
		}
		if e.Spinning() {
			t.Error("engine should stay idle")
		}
	})

	t.Run("already spinning", func(t *testing.T) {
		e := New()
		cycle, err := e.Start([]string{"A", "B"})
		if err != nil {
			t.Fatal(err)
		}

		_, err = e.Start([]string{"C"})
		if !errors.Is(err, errors.ErrDrawInProgress) {
			t.Fatalf("second Start() error = %v, want ErrDrawInProgress", err)
		}
		var drawErr *errors.DrawError
		if !errors.As(err, &drawErr) {
			t.Fatalf("error type = %T, want *errors.DrawError", err)
		}
		if e.Cycle() != cycle {
			t.Errorf("Cycle() = %d, want %d (unchanged)", e.Cycle(), cycle)
		}
	})
}

func TestTick_FullDraw(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	e := New(WithTick(50*time.Millisecond), WithDuration(2000*time.Millisecond), seeded())

	cycle, err := e.Start(names)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Spinning() {
		t.Fatal("engine should be spinning after Start")
	}

	var steps []Step
	for i := 0; i < 100; i++ {
		step, ok := e.Tick(cycle)
		if !ok {
			break
		}
		steps = append(steps, step)
		if !slices.Contains(names, step.Provisional) {
			t.Fatalf("provisional %q not in list", step.Provisional)
		}
	}

	if len(steps) != 40 {
		t.Fatalf("got %d ticks, want 40 (2000ms / 50ms)", len(steps))
	}
	for i, step := range steps[:39] {
		if step.Done {
			t.Fatalf("step %d reported Done early", i)
		}
		if step.Elapsed != time.Duration(i+1)*50*time.Millisecond {
			t.Errorf("step %d Elapsed = %v", i, step.Elapsed)
		}
	}

	last := steps[39]
	if !last.Done {
		t.Fatal("final step should be Done")
	}
	if last.Winner != last.Provisional {
		t.Errorf("Winner = %q, want final provisional %q", last.Winner, last.Provisional)
	}
	if e.Spinning() {
		t.Error("engine should be idle after the draw")
	}
	if e.Current() != last.Winner {
		t.Errorf("Current() = %q, want %q", e.Current(), last.Winner)
	}
}

func TestTick_IgnoredWhenIdleOrStale(t *testing.T) {
	e := New(seeded())

	if _, ok := e.Tick(0); ok {
		t.Error("Tick() while idle should be ignored")
	}

	first, err := e.Start([]string{"A"})
	if err != nil {
		t.Fatal(err)
	}
	if !e.Cancel() {
		t.Fatal("Cancel() should report a canceled draw")
	}
	if _, ok := e.Tick(first); ok {
		t.Error("tick for a canceled cycle should be ignored")
	}

	second, err := e.Start([]string{"A"})
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Fatal("new draw must get a new cycle")
	}
	if _, ok := e.Tick(first); ok {
		t.Error("stale tick accepted by the new draw")
	}
	if _, ok := e.Tick(second); !ok {
		t.Error("current tick rejected")
	}
}

func TestCancel_WhenIdle(t *testing.T) {
	e := New()
	if e.Cancel() {
		t.Error("Cancel() while idle should report false")
	}
}

func TestZeroDuration_FinishesOnFirstTick(t *testing.T) {
	e := New(WithDuration(0), seeded())
	cycle, err := e.Start([]string{"Solo"})
	if err != nil {
		t.Fatal(err)
	}
	step, ok := e.Tick(cycle)
	if !ok || !step.Done || step.Winner != "Solo" {
		t.Errorf("Tick() = %+v, %v; want immediate winner Solo", step, ok)
	}
}

func TestStart_SnapshotsNames(t *testing.T) {
	names := []string{"A"}
	e := New(WithDuration(0), seeded())
	cycle, err := e.Start(names)
	if err != nil {
		t.Fatal(err)
	}
	names[0] = "Z"

	step, _ := e.Tick(cycle)
	if step.Winner != "A" {
		t.Errorf("Winner = %q, want A from the snapshot", step.Winner)
	}
}

func TestTick_Uniform(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	e := New(WithDuration(0), seeded())

	counts := make(map[string]int)
	const draws = 8000
	for i := 0; i < draws; i++ {
		cycle, err := e.Start(names)
		if err != nil {
			t.Fatal(err)
		}
		step, _ := e.Tick(cycle)
		counts[step.Winner]++
	}

	expected := draws / len(names)
	for _, name := range names {
		if got := counts[name]; got < expected*8/10 || got > expected*12/10 {
			t.Errorf("%s won %d times, want about %d", name, got, expected)
		}
	}
}

func TestRun(t *testing.T) {
	e := New(WithTick(time.Millisecond), WithDuration(5*time.Millisecond), seeded())

	var steps int
	winner, err := e.Run(context.Background(), []string{"A", "B"}, func(Step) { steps++ })
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if winner != "A" && winner != "B" {
		t.Errorf("Run() winner = %q", winner)
	}
	if steps != 5 {
		t.Errorf("onStep called %d times, want 5", steps)
	}
	if e.Spinning() {
		t.Error("engine should be idle after Run")
	}
}

func TestRun_Canceled(t *testing.T) {
	e := New(WithTick(time.Millisecond), WithDuration(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := e.Run(ctx, []string{"A"}, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() error = %v, want DeadlineExceeded", err)
	}
	if e.Spinning() {
		t.Error("engine should be idle after a canceled Run")
	}
}

func TestRun_EmptyList(t *testing.T) {
	_, err := New().Run(context.Background(), nil, nil)
	if !errors.Is(err, errors.ErrEmptyNameList) {
		t.Errorf("Run(nil) error = %v, want ErrEmptyNameList", err)
	}
}

func TestPhase_String(t *testing.T) {
	if PhaseIdle.String() != "idle" || PhaseSpinning.String() != "spinning" || Phase(7).String() != "unknown" {
		t.Error("unexpected Phase.String() output")
	}
}
