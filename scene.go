package rowan

// Scene is an ordered container of actors and timers with a deferred
// removal lifecycle and a derived collision-group index. Actor order is
// insertion order and only affects draw/update order.
//
// Removal is two-phase: RemoveChild and CancelTimer enqueue, and Update
// reconciles the queues after every live actor has been stepped, so the
// lists being iterated are never mutated mid-traversal. Actors added during
// an update are not visited until the next one.
type Scene struct {
	actors      []*Actor
	killQueue   []*Actor
	timers      []*Timer
	cancelQueue []*Timer

	// groups is the derived index from group name to member actors. It is
	// maintained solely by Scene (addToGroup/removeFromGroup), invoked from
	// actor mutators and child add/remove, and always equals the union of
	// each member's own group list.
	groups map[string][]*Actor

	engine *Engine // engine driving the current update; set each frame
	owner  *Actor  // owning actor when this is an embedded child scene
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{groups: make(map[string][]*Actor)}
}

// --- Actor lifecycle ---

// AddChild appends the actor to the scene, sets its parent back-reference,
// and folds its existing collision-group memberships into the derived
// index. An actor already in another scene is reparented: it is spliced out
// of the old scene immediately, not through that scene's kill queue.
func (s *Scene) AddChild(a *Actor) {
	if a == nil {
		panic("rowan: cannot add nil actor")
	}
	if a.scene == s {
		// Re-adding cancels a removal still pending from this frame; the
		// group memberships RemoveChild stripped come back with it.
		if s.unqueueKill(a) {
			s.indexGroups(a)
		}
		return
	}
	if a.scene != nil {
		old := a.scene
		old.unindexGroups(a)
		old.spliceActor(a)
	}
	a.scene = s
	s.indexGroups(a)
	s.actors = append(s.actors, a)
}

// RemoveChild strips the actor from every group's member list and enqueues
// it for removal from the actor list at the next reconciliation point.
// Actors belonging to a different scene are ignored.
func (s *Scene) RemoveChild(a *Actor) {
	if a == nil || a.scene != s {
		return
	}
	s.unindexGroups(a)
	s.killQueue = append(s.killQueue, a)
}

// Actors returns the scene's actors in order. The returned slice MUST NOT
// be mutated.
func (s *Scene) Actors() []*Actor {
	return s.actors
}

// Contains reports whether the actor is currently in the scene's live list.
// Actors enqueued for removal still count until reconciliation runs.
func (s *Scene) Contains(a *Actor) bool {
	for _, m := range s.actors {
		if m == a {
			return true
		}
	}
	return false
}

// --- Timers ---

// AddTimer registers a timer with the scene.
func (s *Scene) AddTimer(t *Timer) {
	if t == nil {
		return
	}
	s.timers = append(s.timers, t)
}

// CancelTimer enqueues the timer for removal at the next reconciliation
// point; it will not fire again after the current update's timer pass.
func (s *Scene) CancelTimer(t *Timer) {
	s.cancelQueue = append(s.cancelQueue, t)
}

// IsTimerActive reports whether the timer is registered, not complete, and
// not pending cancellation.
func (s *Scene) IsTimerActive(t *Timer) bool {
	if t == nil || t.Complete() {
		return false
	}
	for _, c := range s.cancelQueue {
		if c == t {
			return false
		}
	}
	for _, m := range s.timers {
		if m == t {
			return true
		}
	}
	return false
}

// --- Per-frame pipeline ---

// Update steps every current actor in list order, reconciles the kill and
// cancel queues, then steps the remaining timers and drops completed ones.
// Actors added during the pass are not visited until the next call;
// removals requested during the pass take effect at reconciliation, after
// all live actors (and their nested scenes) have fully updated.
func (s *Scene) Update(eng *Engine, deltaMs float64) {
	s.engine = eng

	// Range over the current slice header: actors appended during the pass
	// land beyond its length and wait for the next frame. Reparenting during
	// the pass splices the shared backing array in place, leaving nil slots
	// at the tail of the captured header; skip them.
	actors := s.actors
	for _, a := range actors {
		if a == nil {
			continue
		}
		a.Update(eng, deltaMs)
	}

	// Kill reconciliation. Each queued actor is removed once even when
	// enqueued multiple times; the final mailbox drain delivers EventKill
	// (and anything else still pending) to its subscribers.
	if len(s.killQueue) > 0 {
		for _, a := range s.killQueue {
			if s.spliceActor(a) {
				a.scene = nil
				a.dispatcher.update()
			}
		}
		s.killQueue = s.killQueue[:0]
	}

	// Cancel reconciliation.
	if len(s.cancelQueue) > 0 {
		for _, t := range s.cancelQueue {
			s.spliceTimer(t)
		}
		s.cancelQueue = s.cancelQueue[:0]
	}

	// Timers step last; completed ones are dropped in place.
	for i := 0; i < len(s.timers); {
		t := s.timers[i]
		t.Update(deltaMs)
		if t.Complete() {
			s.spliceTimer(t)
			continue
		}
		i++
	}
}

// Draw renders every actor in list order.
func (s *Scene) Draw(c Canvas, deltaMs float64) {
	for _, a := range s.actors {
		a.Draw(c, deltaMs)
	}
}

// DebugDraw renders every actor's bounding box outline in list order.
func (s *Scene) DebugDraw(c Canvas) {
	for _, a := range s.actors {
		a.DebugDraw(c)
	}
}

// --- Collision-group index maintenance ---

// addToGroup inserts the actor into the named member list if absent.
func (s *Scene) addToGroup(name string, a *Actor) {
	for _, m := range s.groups[name] {
		if m == a {
			return
		}
	}
	s.groups[name] = append(s.groups[name], a)
}

// removeFromGroup splices the actor out of the named member list.
func (s *Scene) removeFromGroup(name string, a *Actor) {
	members := s.groups[name]
	for i, m := range members {
		if m == a {
			copy(members[i:], members[i+1:])
			members[len(members)-1] = nil
			s.groups[name] = members[:len(members)-1]
			return
		}
	}
}

// indexGroups folds all of the actor's group memberships into the index.
func (s *Scene) indexGroups(a *Actor) {
	for _, g := range a.collisionGroups {
		s.addToGroup(g, a)
	}
}

// unindexGroups strips the actor from every group it belongs to.
func (s *Scene) unindexGroups(a *Actor) {
	for _, g := range a.collisionGroups {
		s.removeFromGroup(g, a)
	}
}

// Group returns the member list for a named collision group. The returned
// slice MUST NOT be mutated.
func (s *Scene) Group(name string) []*Actor {
	return s.groups[name]
}

// --- Internal splices ---

// spliceActor removes the actor from the live list, reporting whether it
// was present. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (s *Scene) spliceActor(a *Actor) bool {
	for i, m := range s.actors {
		if m == a {
			copy(s.actors[i:], s.actors[i+1:])
			s.actors[len(s.actors)-1] = nil
			s.actors = s.actors[:len(s.actors)-1]
			return true
		}
	}
	return false
}

// unqueueKill removes every pending kill entry for the actor, reporting
// whether any was present.
func (s *Scene) unqueueKill(a *Actor) bool {
	removed := false
	for i := 0; i < len(s.killQueue); {
		if s.killQueue[i] == a {
			copy(s.killQueue[i:], s.killQueue[i+1:])
			s.killQueue[len(s.killQueue)-1] = nil
			s.killQueue = s.killQueue[:len(s.killQueue)-1]
			removed = true
			continue
		}
		i++
	}
	return removed
}

func (s *Scene) spliceTimer(t *Timer) {
	for i, m := range s.timers {
		if m == t {
			copy(s.timers[i:], s.timers[i+1:])
			s.timers[len(s.timers)-1] = nil
			s.timers = s.timers[:len(s.timers)-1]
			return
		}
	}
}
