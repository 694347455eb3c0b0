package rowan

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors used by defaults and debug drawing.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// rgba converts to the 8-bit premultiplied form the render backend wants.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API. The coordinate system has its origin at the top-left, Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// EventType identifies a kind of event delivered through an actor's
// dispatcher mailbox.
type EventType uint8

const (
	EventUpdate      EventType = iota // fires once per actor update, carries DeltaMs
	EventCollision                    // fires per colliding candidate, carries Other and Side
	EventKeyHeld                      // fires per held key per frame
	EventClick                        // pointer press+release over the actor
	EventPointerDown                  // pointer button pressed over the actor
	EventPointerMove                  // pointer moved over the actor
	EventPointerUp                    // pointer button released over the actor
	EventTouchStart                   // touch began over the actor
	EventTouchMove                    // touch moved over the actor
	EventTouchEnd                     // touch ended over the actor
	EventTouchCancel                  // touch cancelled (synthetic/injected only)
	EventKill                         // actor removed from its scene; delivered at reconcile
)

// Event is the payload delivered to dispatcher subscribers. Only the fields
// relevant to the Type are populated; the rest are zero.
type Event struct {
	Type  EventType
	Actor *Actor // actor the event was published on

	// Collision fields
	Other *Actor
	Side  Side

	// Input fields. X and Y are world coordinates.
	Key    Key
	X, Y   float64
	Button MouseButton

	// Update fields
	DeltaMs float64
}
