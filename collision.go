package rowan

import "math"

// Side is the face of an actor's bounding box reported by a pairwise
// collision test. Exactly one side is reported per overlapping pair.
type Side uint8

const (
	SideNone   Side = iota // no overlap
	SideTop                // overlap entered through this actor's top face
	SideBottom             // overlap entered through this actor's bottom face
	SideLeft               // overlap entered through this actor's left face
	SideRight              // overlap entered through this actor's right face
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Overlap is the signed x/y penetration depth between two axis-aligned
// boxes. The sign encodes the direction that moves the first box out of the
// second: add Overlap.X to its X (or Overlap.Y to its Y) to separate them
// along that axis.
type Overlap struct {
	X, Y float64
}

// Collides reports which face of a's bounding box overlaps b, or SideNone.
//
// The test compares the combined half-extents against the center-to-center
// deltas; overlap requires strict inequality on both axes, so boxes that
// exactly touch do not collide. The side is picked by weighing the deltas
// against the combined extents (w*dy vs h*dx), a symmetric-rectangle
// heuristic rather than an exact minimum-translation rule. Because the
// heuristic weighs by the combined box, a.Collides(b) and b.Collides(a) can
// report different sides for the same overlap; this asymmetry is accepted.
func (a *Actor) Collides(b *Actor) Side {
	ac := a.Center()
	bc := b.Center()
	dx := bc.X - ac.X
	dy := bc.Y - ac.Y
	w := (a.Width() + b.Width()) / 2
	h := (a.Height() + b.Height()) / 2

	if math.Abs(dx) >= w || math.Abs(dy) >= h {
		return SideNone
	}

	wy := w * dy
	hx := h * dx
	if wy > hx {
		if wy > -hx {
			return SideBottom
		}
		return SideLeft
	}
	if wy > -hx {
		return SideRight
	}
	return SideTop
}

// OverlapWith computes the signed penetration depths between a and b.
// Meaningful only when the boxes overlap; for disjoint boxes the result is
// unspecified. Positional correction moves a along the axis of smaller
// absolute penetration (see Actor.Update).
func (a *Actor) OverlapWith(b *Actor) Overlap {
	ac := a.Center()
	bc := b.Center()
	penX := (a.Width()+b.Width())/2 - math.Abs(bc.X-ac.X)
	penY := (a.Height()+b.Height())/2 - math.Abs(bc.Y-ac.Y)

	var ov Overlap
	if ac.X < bc.X {
		ov.X = -penX
	} else {
		ov.X = penX
	}
	if ac.Y < bc.Y {
		ov.Y = -penY
	} else {
		ov.Y = penY
	}
	return ov
}

// Contains reports whether the world-space point (x, y) lies inside the
// actor's current scaled bounds. For screen-anchored actors (ActorUI) the
// point is first mapped from world to screen space through the engine
// camera unless useWorld is true; world actors ignore useWorld.
func (a *Actor) Contains(x, y float64, useWorld bool) bool {
	if a.Kind == ActorUI && !useWorld {
		if eng := a.engine(); eng != nil {
			x, y = eng.WorldToScreen(x, y)
		}
	}
	return x >= a.Left() && x <= a.Right() &&
		y >= a.Top() && y <= a.Bottom()
}

// Within reports whether the Euclidean distance between the two actors'
// origins is at most distance. Origins, not centers; the looser test is a
// deliberate approximation.
func (a *Actor) Within(b *Actor, distance float64) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) <= distance
}
