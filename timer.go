package rowan

// Timer invokes a callback after an interval of scene time. Repeating
// timers re-arm themselves by carrying leftover time into the next cycle;
// one-shot timers complete after the first fire and are dropped by the
// owning scene at the end of the update that completed them.
type Timer struct {
	// IntervalMs is the time between fires, in milliseconds.
	IntervalMs float64

	// Repeats keeps the timer alive after each fire when true.
	Repeats bool

	fn       func()
	elapsed  float64
	complete bool
}

// NewTimer creates a timer that calls fn every intervalMs milliseconds of
// scene time. A nil fn is allowed; the timer then only tracks completion.
func NewTimer(intervalMs float64, repeats bool, fn func()) *Timer {
	return &Timer{IntervalMs: intervalMs, Repeats: repeats, fn: fn}
}

// Update advances the timer by deltaMs, firing as many times as full
// intervals have elapsed. Scenes call this after actor updates and
// kill/cancel reconciliation.
func (t *Timer) Update(deltaMs float64) {
	if t.complete {
		return
	}
	t.elapsed += deltaMs
	if t.IntervalMs <= 0 {
		// Degenerate interval: fire once per update.
		t.fire()
		return
	}
	for t.elapsed >= t.IntervalMs && !t.complete {
		t.elapsed -= t.IntervalMs
		t.fire()
	}
}

func (t *Timer) fire() {
	if t.fn != nil {
		t.fn()
	}
	if !t.Repeats {
		t.complete = true
	}
}

// Complete reports whether the timer has finished and should be dropped.
func (t *Timer) Complete() bool {
	return t.complete
}

// Cancel marks the timer complete without firing.
func (t *Timer) Cancel() {
	t.complete = true
}
