package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key identifies a keyboard key. Rowan uses ebiten's key codes directly.
type Key = ebiten.Key

// PointerEvent is one frame's record of a mouse or touch occurrence. X and
// Y are world coordinates; ScreenX and ScreenY are the raw screen position
// the event arrived at.
type PointerEvent struct {
	Type             EventType
	X, Y             float64
	ScreenX, ScreenY float64
	Button           MouseButton
}

// inputState is the engine's per-frame input snapshot. Scene updates read
// it; the engine rebuilds it at the start of every tick.
type inputState struct {
	keysDown []Key
	pointer  []PointerEvent
}

func (in *inputState) reset() {
	in.keysDown = in.keysDown[:0]
	in.pointer = in.pointer[:0]
}

// pollInput rebuilds the input snapshot from ebiten's device state, then
// appends any synthetically injected events. Called once per engine tick,
// before the scene update consumes the snapshot.
func (e *Engine) pollInput() {
	e.input.reset()

	e.input.keysDown = inpututil.AppendPressedKeys(e.input.keysDown[:0])

	e.pollMouse()
	e.pollTouches()
	e.drainInjected()
}

// mouseButtons maps ebiten buttons to rowan's MouseButton values.
var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	rb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

func (e *Engine) pollMouse() {
	cx, cy := ebiten.CursorPosition()
	sx, sy := float64(cx), float64(cy)
	wx, wy := e.ScreenToWorld(sx, sy)

	if cx != e.prevCursorX || cy != e.prevCursorY {
		e.appendPointer(EventPointerMove, wx, wy, sx, sy, MouseButtonLeft)
		e.prevCursorX, e.prevCursorY = cx, cy
	}

	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			e.appendPointer(EventPointerDown, wx, wy, sx, sy, m.rb)
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			e.appendPointer(EventPointerUp, wx, wy, sx, sy, m.rb)
			// A release also counts as a click at the release position.
			e.appendPointer(EventClick, wx, wy, sx, sy, m.rb)
		}
	}
}

func (e *Engine) pollTouches() {
	e.touchBuf = inpututil.AppendJustPressedTouchIDs(e.touchBuf[:0])
	for _, id := range e.touchBuf {
		x, y := ebiten.TouchPosition(id)
		sx, sy := float64(x), float64(y)
		wx, wy := e.ScreenToWorld(sx, sy)
		e.appendPointer(EventTouchStart, wx, wy, sx, sy, MouseButtonLeft)
	}

	e.touchBuf = ebiten.AppendTouchIDs(e.touchBuf[:0])
	for _, id := range e.touchBuf {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue // started this tick; already reported as TouchStart
		}
		x, y := ebiten.TouchPosition(id)
		sx, sy := float64(x), float64(y)
		wx, wy := e.ScreenToWorld(sx, sy)
		e.appendPointer(EventTouchMove, wx, wy, sx, sy, MouseButtonLeft)
	}

	e.touchBuf = inpututil.AppendJustReleasedTouchIDs(e.touchBuf[:0])
	for _, id := range e.touchBuf {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		sx, sy := float64(x), float64(y)
		wx, wy := e.ScreenToWorld(sx, sy)
		e.appendPointer(EventTouchEnd, wx, wy, sx, sy, MouseButtonLeft)
	}
}

func (e *Engine) appendPointer(t EventType, wx, wy, sx, sy float64, b MouseButton) {
	e.input.pointer = append(e.input.pointer, PointerEvent{
		Type: t, X: wx, Y: wy, ScreenX: sx, ScreenY: sy, Button: b,
	})
}

// --- Synthetic input injection ---
//
// Injected events queue up and enter the snapshot on the next FlushInput or
// engine tick, exactly like real device input. Coordinates are screen
// coordinates; the engine converts to world through its camera. This is the
// seam headless tests drive input through.

type injectedEvent struct {
	kind    uint8 // 0 = key, 1 = pointer
	key     Key
	ptrType EventType
	x, y    float64
	button  MouseButton
}

// InjectKeyDown queues a synthetic held-key report for the next frame.
func (e *Engine) InjectKeyDown(k Key) {
	e.injectQueue = append(e.injectQueue, injectedEvent{kind: 0, key: k})
}

// InjectPointer queues a synthetic pointer or touch event at screen
// coordinates (x, y).
func (e *Engine) InjectPointer(t EventType, x, y float64, b MouseButton) {
	e.injectQueue = append(e.injectQueue, injectedEvent{kind: 1, ptrType: t, x: x, y: y, button: b})
}

// InjectClick queues a synthetic left-button click at screen coordinates.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPointer(EventClick, x, y, MouseButtonLeft)
}

// FlushInput rebuilds the snapshot from injected events only, without
// touching real devices. Headless callers use this before driving
// Scene.Update directly.
func (e *Engine) FlushInput() {
	e.input.reset()
	e.drainInjected()
}

func (e *Engine) drainInjected() {
	for _, ev := range e.injectQueue {
		switch ev.kind {
		case 0:
			e.input.keysDown = append(e.input.keysDown, ev.key)
		case 1:
			wx, wy := e.ScreenToWorld(ev.x, ev.y)
			e.appendPointer(ev.ptrType, wx, wy, ev.x, ev.y, ev.button)
		}
	}
	e.injectQueue = e.injectQueue[:0]
}

// KeysDown returns the keys held this frame. The returned slice MUST NOT be
// mutated.
func (e *Engine) KeysDown() []Key {
	return e.input.keysDown
}

// PointerEvents returns this frame's pointer and touch events. The returned
// slice MUST NOT be mutated.
func (e *Engine) PointerEvents() []PointerEvent {
	return e.input.pointer
}
