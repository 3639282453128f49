package engine

// TimerState tracks where a countdown run currently is.
type TimerState uint8

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
)

// Timer is a single-shot countdown driven by external Tick calls. Expiry is
// edge-triggered: Tick reports it exactly once per run, on the tick that
// crosses zero. Cancelling a run returns the timer to idle without expiring.
type Timer struct {
	State     TimerState
	Duration  float64
	Remaining float64
}

// Start arms the timer for a new run. Restarting a running timer replaces
// the current run without raising expiry.
func (t *Timer) Start(seconds float64) {
	t.Duration = seconds
	t.Remaining = seconds
	t.State = TimerRunning
}

// Tick advances the countdown by dt seconds while running. It returns true
// on the single tick that crosses zero.
func (t *Timer) Tick(dt float64) bool {
	if t.State != TimerRunning {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= 0 {
		t.Remaining = 0
		t.State = TimerExpired
		return true
	}
	return false
}

// Cancel stops a running countdown without expiring it.
func (t *Timer) Cancel() {
	if t.State == TimerRunning {
		t.State = TimerIdle
	}
}

// Progress is the remaining fraction of the current run, clamped to [0,1].
// It decreases monotonically over a run.
func (t *Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	f := t.Remaining / t.Duration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
