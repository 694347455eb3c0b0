package rowan

// RepeatForeverTrigger is the sentinel repeat count for a trigger that
// never expires. Any negative count behaves the same way; the constant is
// the documented spelling.
const RepeatForeverTrigger = -1

// NewTrigger creates an invisible actor that invokes action each time its
// bounds overlap a qualifying actor, at most repeats times in total. When a
// target is later set with SetTriggerTarget the trigger only tests against
// it; otherwise it tests against every other member of its scene.
//
// The trigger's life is a state machine over the repeat counter: armed
// while the counter is positive (or the infinite sentinel), decremented on
// each firing, and expired when the counter reaches exactly zero. An
// expired trigger kills itself during the same update. Several overlaps in
// one frame fire the action once each.
func NewTrigger(x, y, width, height float64, repeats int, action func()) *Actor {
	a := &Actor{
		ID:     nextActorID(),
		Kind:   ActorTrigger,
		X:      x,
		Y:      y,
		width:  width,
		height: height,
	}
	actorDefaults(a)
	a.Visible = false
	a.PreventCollisions = true
	a.triggerAction = action
	a.repeats = repeats
	return a
}

// SetTriggerTarget restricts the trigger to testing against a single actor.
// Pass nil to go back to testing the whole scene.
func (a *Actor) SetTriggerTarget(target *Actor) {
	a.target = target
}

// TriggerRepeats returns the remaining repeat count (negative means
// infinite).
func (a *Actor) TriggerRepeats() int {
	return a.repeats
}

// updateTrigger runs the trigger's collision pass in place of the regular
// scan: every qualifying overlap this frame fires the action and spends one
// repeat, and a spent trigger removes itself from the scene.
func (a *Actor) updateTrigger() {
	if a.target != nil {
		if a.Collides(a.target) != SideNone {
			a.fireTrigger()
		}
	} else if a.scene != nil {
		for _, other := range a.scene.actors {
			if other == a {
				continue
			}
			if a.Collides(other) != SideNone {
				a.fireTrigger()
			}
		}
	}
	if a.repeats == 0 {
		a.Kill()
	}
}

func (a *Actor) fireTrigger() {
	if a.repeats == 0 {
		return
	}
	if a.triggerAction != nil {
		a.triggerAction()
	}
	if a.repeats > 0 {
		a.repeats--
	}
}
