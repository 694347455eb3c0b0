package rowan

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is one time-based behavior in an actor's queue. Update advances the
// action by deltaMs; Complete reports whether the queue should move on.
// Reset returns the action to its unstarted state so Repeat can replay it.
// Actions that read the actor's state (start position, current scale) must
// capture it on their first Update, not at construction, so queued actions
// chain from wherever the previous action left the actor.
type Action interface {
	Update(a *Actor, deltaMs float64)
	Complete(a *Actor) bool
	Reset()
}

// ActionQueue is an ordered queue of actions. Exactly one action executes at
// a time; when it completes the queue pops it and starts the next on the
// following update.
type ActionQueue struct {
	actions []Action
}

// NewActionQueue creates an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Add appends an action to the queue.
func (q *ActionQueue) Add(action Action) {
	q.actions = append(q.actions, action)
}

// Update advances the current action and pops it once complete.
func (q *ActionQueue) Update(a *Actor, deltaMs float64) {
	if len(q.actions) == 0 {
		return
	}
	cur := q.actions[0]
	cur.Update(a, deltaMs)
	if cur.Complete(a) {
		copy(q.actions, q.actions[1:])
		q.actions[len(q.actions)-1] = nil
		q.actions = q.actions[:len(q.actions)-1]
	}
}

// ClearActions discards every queued action, including the one in progress.
func (q *ActionQueue) ClearActions() {
	for i := range q.actions {
		q.actions[i] = nil
	}
	q.actions = q.actions[:0]
}

// Actions returns the queued actions. The returned slice MUST NOT be mutated.
func (q *ActionQueue) Actions() []Action {
	return q.actions
}

// --- Tween-backed actions ---

// tweenAction drives one or more actor fields with gween tweens. The tween
// targets are built lazily on the first Update so the action starts from the
// actor's state at execution time.
type tweenAction struct {
	build   func(a *Actor, t *tweenAction)
	tweens  []*gween.Tween
	fields  []*float64
	started bool
	done    bool
}

// tween registers one field animation. A non-positive duration snaps the
// field to its target and contributes nothing to Update.
func (t *tweenAction) tween(field *float64, to float64, durationSec float64, fn ease.TweenFunc) {
	if durationSec <= 0 {
		*field = to
		return
	}
	t.tweens = append(t.tweens, gween.New(float32(*field), float32(to), float32(durationSec), fn))
	t.fields = append(t.fields, field)
}

func (t *tweenAction) Update(a *Actor, deltaMs float64) {
	if !t.started {
		t.tweens = t.tweens[:0]
		t.fields = t.fields[:0]
		t.build(a, t)
		t.started = true
		if len(t.tweens) == 0 {
			t.done = true
			return
		}
	}
	dt := float32(deltaMs / 1000)
	all := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		*t.fields[i] = float64(v)
		if !finished {
			all = false
		}
	}
	t.done = all
}

func (t *tweenAction) Complete(*Actor) bool { return t.done }

func (t *tweenAction) Reset() {
	t.started = false
	t.done = false
}

// MoveToAction moves the actor's origin to (x, y) at speed px/s.
func MoveToAction(x, y, speed float64) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		dur := math.Hypot(x-a.X, y-a.Y) / speed
		if speed <= 0 {
			dur = 0
		}
		t.tween(&a.X, x, dur, ease.Linear)
		t.tween(&a.Y, y, dur, ease.Linear)
	}}
}

// MoveByAction moves the actor by (dx, dy) over durationMs.
func MoveByAction(dx, dy, durationMs float64) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		t.tween(&a.X, a.X+dx, durationMs/1000, ease.Linear)
		t.tween(&a.Y, a.Y+dy, durationMs/1000, ease.Linear)
	}}
}

// EaseToAction moves the actor's origin to (x, y) over durationMs using the
// given gween easing function.
func EaseToAction(x, y, durationMs float64, fn ease.TweenFunc) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		t.tween(&a.X, x, durationMs/1000, fn)
		t.tween(&a.Y, y, durationMs/1000, fn)
	}}
}

// RotateToAction rotates the actor to angle radians at speed rad/s.
func RotateToAction(angle, speed float64) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		dur := math.Abs(angle-a.Rotation) / speed
		if speed <= 0 {
			dur = 0
		}
		t.tween(&a.Rotation, angle, dur, ease.Linear)
	}}
}

// RotateByAction rotates the actor by delta radians over durationMs.
func RotateByAction(delta, durationMs float64) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		t.tween(&a.Rotation, a.Rotation+delta, durationMs/1000, ease.Linear)
	}}
}

// ScaleToAction scales the actor to the target factor at speed units/s.
func ScaleToAction(scale, speed float64) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		dur := math.Abs(scale-a.Scale) / speed
		if speed <= 0 {
			dur = 0
		}
		t.tween(&a.Scale, scale, dur, ease.Linear)
	}}
}

// ScaleByAction scales the actor by delta over durationMs.
func ScaleByAction(delta, durationMs float64) Action {
	return &tweenAction{build: func(a *Actor, t *tweenAction) {
		t.tween(&a.Scale, a.Scale+delta, durationMs/1000, ease.Linear)
	}}
}

// --- Stateful actions ---

// delayAction waits for a fixed number of milliseconds.
type delayAction struct {
	durationMs float64
	elapsed    float64
}

// DelayAction waits durationMs before the queue moves on.
func DelayAction(durationMs float64) Action {
	return &delayAction{durationMs: durationMs}
}

func (d *delayAction) Update(_ *Actor, deltaMs float64) { d.elapsed += deltaMs }
func (d *delayAction) Complete(*Actor) bool             { return d.elapsed >= d.durationMs }
func (d *delayAction) Reset()                           { d.elapsed = 0 }

// blinkAction toggles visibility every intervalMs for durationMs, then
// restores visibility.
type blinkAction struct {
	intervalMs float64
	durationMs float64
	elapsed    float64
	sinceFlip  float64
	done       bool
}

// BlinkAction toggles the actor's visibility every intervalMs until
// durationMs has elapsed, leaving the actor visible afterwards.
func BlinkAction(intervalMs, durationMs float64) Action {
	return &blinkAction{intervalMs: intervalMs, durationMs: durationMs}
}

func (b *blinkAction) Update(a *Actor, deltaMs float64) {
	if b.done {
		return
	}
	b.elapsed += deltaMs
	b.sinceFlip += deltaMs
	if b.elapsed >= b.durationMs {
		a.Visible = true
		b.done = true
		return
	}
	if b.intervalMs > 0 {
		for b.sinceFlip >= b.intervalMs {
			b.sinceFlip -= b.intervalMs
			a.Visible = !a.Visible
		}
	}
}

func (b *blinkAction) Complete(*Actor) bool { return b.done }
func (b *blinkAction) Reset() {
	b.elapsed = 0
	b.sinceFlip = 0
	b.done = false
}

// followAction tracks a moving target, holding at the given distance from
// its origin. Never completes.
type followAction struct {
	target   *Actor
	distance float64
	speed    float64
}

// FollowAction moves toward target at speed px/s, stopping while within
// distance of the target's origin. It never completes; clear the queue to
// stop following.
func FollowAction(target *Actor, distance, speed float64) Action {
	return &followAction{target: target, distance: distance, speed: speed}
}

func (f *followAction) Update(a *Actor, deltaMs float64) {
	dx := f.target.X - a.X
	dy := f.target.Y - a.Y
	dist := math.Hypot(dx, dy)
	if dist <= f.distance || dist == 0 {
		return
	}
	step := f.speed * deltaMs / 1000
	if step > dist-f.distance {
		step = dist - f.distance
	}
	a.X += dx / dist * step
	a.Y += dy / dist * step
}

func (f *followAction) Complete(*Actor) bool { return false }
func (f *followAction) Reset()               {}

// meetAction moves toward the target's origin and completes on arrival.
type meetAction struct {
	target *Actor
	speed  float64
	done   bool
}

// MeetAction moves toward target's origin at speed px/s and completes when
// the origins coincide. The target may move; the path re-aims every frame.
func MeetAction(target *Actor, speed float64) Action {
	return &meetAction{target: target, speed: speed}
}

func (m *meetAction) Update(a *Actor, deltaMs float64) {
	dx := m.target.X - a.X
	dy := m.target.Y - a.Y
	dist := math.Hypot(dx, dy)
	step := m.speed * deltaMs / 1000
	if step >= dist {
		a.X = m.target.X
		a.Y = m.target.Y
		m.done = true
		return
	}
	a.X += dx / dist * step
	a.Y += dy / dist * step
}

func (m *meetAction) Complete(*Actor) bool { return m.done }
func (m *meetAction) Reset()               { m.done = false }

// repeatAction replays a captured sequence of actions. times < 0 repeats
// forever.
type repeatAction struct {
	actions   []Action
	times     int
	remaining int
	index     int
	started   bool
}

// RepeatAction replays the given actions in order, times times. A negative
// count repeats forever; a zero count completes immediately without playing
// the sequence.
func RepeatAction(times int, actions ...Action) Action {
	return &repeatAction{actions: actions, times: times, remaining: times}
}

func (r *repeatAction) Update(a *Actor, deltaMs float64) {
	if !r.started {
		r.remaining = r.times
		r.index = 0
		for _, act := range r.actions {
			act.Reset()
		}
		r.started = true
	}
	if r.Complete(a) || len(r.actions) == 0 {
		return
	}
	cur := r.actions[r.index]
	cur.Update(a, deltaMs)
	if !cur.Complete(a) {
		return
	}
	r.index++
	if r.index < len(r.actions) {
		return
	}
	// One full pass done; rewind for the next unless the count is spent.
	if r.remaining > 0 {
		r.remaining--
	}
	if r.remaining != 0 {
		r.index = 0
		for _, act := range r.actions {
			act.Reset()
		}
	}
}

func (r *repeatAction) Complete(*Actor) bool {
	if !r.started {
		return false
	}
	if len(r.actions) == 0 || r.times == 0 {
		return true
	}
	return r.remaining == 0 && r.index >= len(r.actions)
}

func (r *repeatAction) Reset() { r.started = false }

// --- Chainable shorthands ---
//
// Each shorthand enqueues one action on the actor's queue and returns the
// actor for chaining:
//
//	hero.MoveTo(100, 40, 50).Delay(500).Blink(100, 1000)

// MoveTo enqueues a move to (x, y) at speed px/s.
func (a *Actor) MoveTo(x, y, speed float64) *Actor {
	a.actions.Add(MoveToAction(x, y, speed))
	return a
}

// MoveBy enqueues a relative move of (dx, dy) over durationMs.
func (a *Actor) MoveBy(dx, dy, durationMs float64) *Actor {
	a.actions.Add(MoveByAction(dx, dy, durationMs))
	return a
}

// EaseTo enqueues an eased move to (x, y) over durationMs.
func (a *Actor) EaseTo(x, y, durationMs float64, fn ease.TweenFunc) *Actor {
	a.actions.Add(EaseToAction(x, y, durationMs, fn))
	return a
}

// RotateTo enqueues a rotation to angle radians at speed rad/s.
func (a *Actor) RotateTo(angle, speed float64) *Actor {
	a.actions.Add(RotateToAction(angle, speed))
	return a
}

// RotateBy enqueues a relative rotation of delta radians over durationMs.
func (a *Actor) RotateBy(delta, durationMs float64) *Actor {
	a.actions.Add(RotateByAction(delta, durationMs))
	return a
}

// ScaleTo enqueues a scale to the target factor at speed units/s.
func (a *Actor) ScaleTo(scale, speed float64) *Actor {
	a.actions.Add(ScaleToAction(scale, speed))
	return a
}

// ScaleBy enqueues a relative scale change of delta over durationMs.
func (a *Actor) ScaleBy(delta, durationMs float64) *Actor {
	a.actions.Add(ScaleByAction(delta, durationMs))
	return a
}

// Blink enqueues a visibility blink every intervalMs for durationMs.
func (a *Actor) Blink(intervalMs, durationMs float64) *Actor {
	a.actions.Add(BlinkAction(intervalMs, durationMs))
	return a
}

// Delay enqueues a pause of durationMs.
func (a *Actor) Delay(durationMs float64) *Actor {
	a.actions.Add(DelayAction(durationMs))
	return a
}

// Repeat wraps everything queued so far into a single action replayed the
// given number of times. With an empty queue it is a no-op.
func (a *Actor) Repeat(times int) *Actor {
	if len(a.actions.actions) == 0 {
		return a
	}
	captured := make([]Action, len(a.actions.actions))
	copy(captured, a.actions.actions)
	a.actions.ClearActions()
	a.actions.Add(RepeatAction(times, captured...))
	return a
}

// RepeatForever wraps everything queued so far into an action replayed
// until the queue is cleared.
func (a *Actor) RepeatForever() *Actor {
	return a.Repeat(-1)
}

// Follow enqueues an endless follow of target at speed px/s, holding
// distance px from its origin.
func (a *Actor) Follow(target *Actor, distance, speed float64) *Actor {
	a.actions.Add(FollowAction(target, distance, speed))
	return a
}

// Meet enqueues a move that intercepts target's origin at speed px/s.
func (a *Actor) Meet(target *Actor, speed float64) *Actor {
	a.actions.Add(MeetAction(target, speed))
	return a
}

// ClearActions discards the actor's queued actions.
func (a *Actor) ClearActions() *Actor {
	a.actions.ClearActions()
	return a
}

// Actions returns the actor's action queue.
func (a *Actor) Actions() *ActionQueue {
	return a.actions
}
