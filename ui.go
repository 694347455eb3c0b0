package rowan

// NewUIActor creates a screen-anchored actor for HUD and interface
// elements. UI actors live on the screen-space coordinate plane rather than
// the world plane, are forced out of collision candidacy, and capture
// input. They draw wherever insertion order places them; by convention UI
// actors are added last so they render topmost.
//
// Contains on a UI actor maps world coordinates into screen space through
// the engine camera before testing, unless asked for a raw world test (see
// Actor.Contains).
func NewUIActor(x, y, width, height float64) *Actor {
	a := &Actor{
		ID:     nextActorID(),
		Kind:   ActorUI,
		X:      x,
		Y:      y,
		width:  width,
		height: height,
	}
	actorDefaults(a)
	a.PreventCollisions = true
	a.CaptureInput = true
	return a
}
