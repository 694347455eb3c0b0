package rowan

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ActorKind distinguishes update/draw behavior for an Actor. A single flat
// struct is used for all kinds to avoid an inheritance-shaped interface
// hierarchy; kind-specific state lives in dedicated field groups and is
// only meaningful for the matching kind.
type ActorKind uint8

const (
	ActorBasic   ActorKind = iota // positioned, drawable, collision-capable entity
	ActorLabel                    // text-drawing actor, fixed and collision-exempt
	ActorTrigger                  // invisible callback-on-overlap actor
	ActorUI                       // screen-anchored, collision-exempt, input-capturing
)

// ErrDrawingNotFound is returned by SetDrawing for an unknown drawing key.
var ErrDrawingNotFound = errors.New("drawing not found")

// actorIDCounter is a plain counter (no atomic; rowan is single-threaded).
var actorIDCounter uint32

func nextActorID() uint32 {
	actorIDCounter++
	return actorIDCounter
}

// Actor is the fundamental simulation unit: position, velocity, rotation,
// scale, bounding box, collision membership, nested child actors, a drawing
// set, an action queue, and an event dispatcher.
//
// Width and height are stored unscaled; every public geometry query (Width,
// Left, Right, Top, Bottom, Center) applies the current Scale and position.
type Actor struct {
	ID   uint32
	Name string
	Kind ActorKind

	// Transform and kinematics. Velocities are per second; Update integrates
	// them by deltaMs/1000.
	X, Y          float64
	width, height float64 // unscaled; read through the scaled accessors
	Rotation      float64 // radians
	RotationVel   float64 // rad/s
	Scale         float64 // uniform factor, unclamped
	ScaleVel      float64 // units/s
	Dx, Dy        float64 // px/s
	Ax, Ay        float64 // linear acceleration; carried but not integrated

	Visible bool

	// Fixed actors are immovable in collision resolution: they still report
	// collision events but receive no positional correction.
	Fixed bool

	// PreventCollisions opts the actor out of being a collision candidate
	// for other actors' scans. The actor's own scan still runs.
	PreventCollisions bool

	// Color fills the bounding box when no drawing is active.
	Color Color

	// CenterDrawingX/Y offset the current drawing so it centers over the
	// bounding box on that axis.
	CenterDrawingX bool
	CenterDrawingY bool

	collisionGroups []string

	frames         map[string]Drawable
	currentDrawing Drawable

	scene    *Scene // owning parent scene; nil while orphaned
	children *Scene // embedded child scene, exclusively owned

	actions    *ActionQueue
	dispatcher *Dispatcher

	// OnUpdate, when set, runs after the action queue and before kinematic
	// integration each frame. It is the per-actor update extension point.
	OnUpdate func(a *Actor, deltaMs float64)

	// Label fields (ActorLabel)
	Text string
	Font *SpriteFont

	// Trigger fields (ActorTrigger)
	triggerAction func()
	repeats       int
	target        *Actor

	// UI fields (ActorUI)
	CaptureInput bool
}

// NewActor creates a basic world actor at (x, y) with the given unscaled
// size.
func NewActor(x, y, width, height float64) *Actor {
	a := &Actor{
		ID:     nextActorID(),
		Kind:   ActorBasic,
		X:      x,
		Y:      y,
		width:  width,
		height: height,
	}
	actorDefaults(a)
	return a
}

// actorDefaults sets the common default field values shared by all
// constructors.
func actorDefaults(a *Actor) {
	a.Scale = 1
	a.Visible = true
	a.Color = ColorBlack
	a.children = NewScene()
	a.children.owner = a
	a.actions = NewActionQueue()
	a.dispatcher = NewDispatcher()
}

// --- Scaled geometry accessors ---

// Width returns the scaled width.
func (a *Actor) Width() float64 { return a.width * a.Scale }

// Height returns the scaled height.
func (a *Actor) Height() float64 { return a.height * a.Scale }

// SetWidth sets the scaled width: a subsequent Width() returns w for any
// positive Scale.
func (a *Actor) SetWidth(w float64) {
	if a.Scale != 0 {
		a.width = w / a.Scale
		return
	}
	a.width = w
}

// SetHeight sets the scaled height.
func (a *Actor) SetHeight(h float64) {
	if a.Scale != 0 {
		a.height = h / a.Scale
		return
	}
	a.height = h
}

// Left returns the x coordinate of the left edge.
func (a *Actor) Left() float64 { return a.X }

// Right returns the x coordinate of the right edge.
func (a *Actor) Right() float64 { return a.X + a.Width() }

// Top returns the y coordinate of the top edge.
func (a *Actor) Top() float64 { return a.Y }

// Bottom returns the y coordinate of the bottom edge.
func (a *Actor) Bottom() float64 { return a.Y + a.Height() }

// Center returns the center of the scaled bounding box.
func (a *Actor) Center() Vec2 {
	return Vec2{X: a.X + a.Width()/2, Y: a.Y + a.Height()/2}
}

// Scene returns the owning parent scene, or nil while orphaned.
func (a *Actor) Scene() *Scene { return a.scene }

// --- Drawing set ---

// AddDrawing registers a drawable under key. The first drawing added
// becomes the current one.
func (a *Actor) AddDrawing(key string, d Drawable) {
	if a.frames == nil {
		a.frames = make(map[string]Drawable)
	}
	a.frames[key] = d
	if a.currentDrawing == nil {
		a.currentDrawing = d
	}
}

// SetDrawing makes the drawing registered under key current. Returns
// ErrDrawingNotFound (wrapped with the key) when no such drawing exists;
// the current drawing is left unchanged.
func (a *Actor) SetDrawing(key string) error {
	d, ok := a.frames[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrDrawingNotFound, key)
	}
	a.currentDrawing = d
	return nil
}

// CurrentDrawing returns the active drawable, or nil when the actor falls
// back to its color fill.
func (a *Actor) CurrentDrawing() Drawable { return a.currentDrawing }

// --- Collision groups ---

// AddCollisionGroup adds the actor to the named group. The parent scene's
// derived group index is re-synchronized immediately.
func (a *Actor) AddCollisionGroup(name string) {
	for _, g := range a.collisionGroups {
		if g == name {
			return
		}
	}
	a.collisionGroups = append(a.collisionGroups, name)
	if a.scene != nil {
		a.scene.addToGroup(name, a)
	}
}

// RemoveCollisionGroup removes the actor from the named group, immediately
// re-synchronizing the parent scene's index.
func (a *Actor) RemoveCollisionGroup(name string) {
	for i, g := range a.collisionGroups {
		if g == name {
			copy(a.collisionGroups[i:], a.collisionGroups[i+1:])
			a.collisionGroups = a.collisionGroups[:len(a.collisionGroups)-1]
			if a.scene != nil {
				a.scene.removeFromGroup(name, a)
			}
			return
		}
	}
}

// CollisionGroups returns the actor's group memberships in insertion order.
// The returned slice MUST NOT be mutated.
func (a *Actor) CollisionGroups() []string { return a.collisionGroups }

// --- Child actors ---

// AddChild adds child to this actor's embedded scene. The child is updated
// and drawn within this actor's transform. Collision-group membership of
// the child is not touched.
func (a *Actor) AddChild(child *Actor) {
	a.children.AddChild(child)
}

// RemoveChild marks child for removal from this actor's embedded scene.
func (a *Actor) RemoveChild(child *Actor) {
	a.children.RemoveChild(child)
}

// Children returns the embedded child scene.
func (a *Actor) Children() *Scene { return a.children }

// --- Events ---

// On registers fn for events of type t on this actor's dispatcher.
func (a *Actor) On(t EventType, fn func(Event)) Subscription {
	return a.dispatcher.On(t, fn)
}

// Publish enqueues an event on this actor's dispatcher. Delivery happens at
// the start of the actor's next Update.
func (a *Actor) Publish(e Event) {
	a.dispatcher.Publish(e)
}

// Events returns the actor's dispatcher.
func (a *Actor) Events() *Dispatcher { return a.dispatcher }

// --- Lifecycle ---

// Kill marks the actor for removal from its parent scene at the end of the
// current (or next) scene update. Killing an orphaned actor is a warned
// no-op.
func (a *Actor) Kill() {
	if a.scene == nil {
		logger.Warn("kill called on actor with no scene",
			zap.Uint32("actor_id", a.ID),
			zap.String("actor_name", a.Name))
		return
	}
	a.dispatcher.Publish(Event{Type: EventKill, Actor: a})
	a.scene.RemoveChild(a)
}

// --- Per-frame update ---

// Update advances the actor by deltaMs. In order: the embedded child scene
// updates, queued dispatcher events are delivered, the action queue and
// OnUpdate hook run, kinematics integrate, the collision scan publishes
// events and corrects position, and input events plus one EventUpdate are
// published for delivery next frame.
func (a *Actor) Update(eng *Engine, deltaMs float64) {
	a.children.Update(eng, deltaMs)
	a.dispatcher.update()
	a.actions.Update(a, deltaMs)
	if a.OnUpdate != nil {
		a.OnUpdate(a, deltaMs)
	}

	dt := deltaMs / 1000
	a.X += a.Dx * dt
	a.Y += a.Dy * dt
	a.Rotation += a.RotationVel * dt
	a.Scale += a.ScaleVel * dt

	if a.Kind == ActorTrigger {
		a.updateTrigger()
	} else {
		a.scanCollisions()
	}

	a.publishInput(eng)
	a.dispatcher.Publish(Event{Type: EventUpdate, Actor: a, DeltaMs: deltaMs})
}

// scanCollisions tests this actor against its broad-phase candidates,
// publishing one EventCollision per colliding pair and pushing a non-fixed
// actor out along the axis of smaller penetration.
func (a *Actor) scanCollisions() {
	for _, other := range a.collisionCandidates() {
		if other == a || other.PreventCollisions {
			continue
		}
		side := a.Collides(other)
		if side == SideNone {
			continue
		}
		a.dispatcher.Publish(Event{Type: EventCollision, Actor: a, Other: other, Side: side})
		if a.Fixed {
			continue
		}
		ov := a.OverlapWith(other)
		if math.Abs(ov.Y) < math.Abs(ov.X) {
			a.Y += ov.Y
		} else {
			a.X += ov.X
		}
	}
}

// collisionCandidates builds the broad-phase candidate set. An actor with
// no named groups is tested against every actor in its scene; otherwise the
// candidate set is the union of the scene's member lists for each of the
// actor's groups, deduplicated by identity so a multi-group partner cannot
// produce duplicate events or a doubled push-out.
func (a *Actor) collisionCandidates() []*Actor {
	s := a.scene
	if s == nil {
		return nil
	}
	if len(a.collisionGroups) == 0 {
		return s.actors
	}
	if len(a.collisionGroups) == 1 {
		return s.groups[a.collisionGroups[0]]
	}
	var out []*Actor
	seen := make(map[*Actor]struct{})
	for _, g := range a.collisionGroups {
		for _, m := range s.groups[g] {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// publishInput enqueues one event per held key and per pointer/touch event
// whose world position falls inside the actor's bounds.
func (a *Actor) publishInput(eng *Engine) {
	if eng == nil {
		return
	}
	for _, k := range eng.input.keysDown {
		a.dispatcher.Publish(Event{Type: EventKeyHeld, Actor: a, Key: k})
	}
	if a.Kind == ActorUI && !a.CaptureInput {
		return
	}
	for _, pe := range eng.input.pointer {
		if !a.Contains(pe.X, pe.Y, false) {
			continue
		}
		a.dispatcher.Publish(Event{
			Type:   pe.Type,
			Actor:  a,
			X:      pe.X,
			Y:      pe.Y,
			Button: pe.Button,
		})
	}
}

// --- Draw ---

// Draw renders the actor and its children. The transform applies
// translate, rotate, then scale around the actor's origin; the canvas state
// is scoped with Save/Restore regardless of the draw outcome.
func (a *Actor) Draw(c Canvas, deltaMs float64) {
	c.Save()
	defer c.Restore()

	x, y := a.X, a.Y
	if a.Kind == ActorUI {
		// Screen-anchored: cancel the camera offset the engine applied to
		// the canvas so the actor stays put on screen.
		if eng := a.engine(); eng != nil {
			x, y = eng.ScreenToWorld(x, y)
		}
	}
	c.Translate(x, y)
	c.Rotate(a.Rotation)
	c.Scale(a.Scale, a.Scale)

	if a.Visible {
		a.drawSelf(c)
	}
	a.children.Draw(c, deltaMs)
}

// drawSelf renders the actor's own visual inside the already-applied
// transform, where one unit equals one unscaled pixel.
func (a *Actor) drawSelf(c Canvas) {
	switch a.Kind {
	case ActorTrigger:
		// Triggers never draw.
	case ActorLabel:
		a.drawText(c)
	default:
		if a.currentDrawing != nil {
			var ox, oy float64
			if a.CenterDrawingX {
				ox = (a.width - a.currentDrawing.Width()) / 2
			}
			if a.CenterDrawingY {
				oy = (a.height - a.currentDrawing.Height()) / 2
			}
			a.currentDrawing.Draw(c, ox, oy)
			return
		}
		if a.Text != "" {
			a.drawText(c)
			return
		}
		c.FillRect(0, 0, a.width, a.height, a.Color)
	}
}

// DebugDraw outlines the actor's world bounding box; triggers get a
// distinct color and a name label.
func (a *Actor) DebugDraw(c Canvas) {
	col := debugOutlineColor
	if a.Kind == ActorTrigger {
		col = debugTriggerColor
		c.FillText(a.debugLabel(), a.X, a.Y-12)
	}
	c.StrokeRect(a.Left(), a.Top(), a.Width(), a.Height(), col)
	a.children.DebugDraw(c)
}

func (a *Actor) debugLabel() string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("trigger %d", a.ID)
}

// engine returns the engine driving the actor's scene this frame, walking
// up through nested child scenes. Nil while detached or before the first
// update.
func (a *Actor) engine() *Engine {
	for s := a.scene; s != nil; {
		if s.engine != nil {
			return s.engine
		}
		if s.owner == nil {
			return nil
		}
		s = s.owner.scene
	}
	return nil
}
