package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneRegistry(t *testing.T) {
	e := NewEngine(RunConfig{})
	menu := NewScene()
	game := NewScene()
	e.AddScene("menu", menu)
	e.AddScene("game", game)

	assert.Nil(t, e.CurrentScene(), "no current scene before GoToScene")

	e.GoToScene("menu")
	assert.Same(t, menu, e.CurrentScene())
	assert.Equal(t, "menu", e.CurrentSceneName())

	e.GoToScene("nope") // unknown name: warned no-op
	assert.Same(t, menu, e.CurrentScene(), "unknown scene must not change the current one")
	assert.Equal(t, "menu", e.CurrentSceneName())

	e.GoToScene("game")
	assert.Same(t, game, e.CurrentScene())
}

func TestCameraMapping(t *testing.T) {
	e := NewEngine(RunConfig{})
	e.CameraX, e.CameraY = 50, -20

	sx, sy := e.WorldToScreen(100, 30)
	assert.Equal(t, 50.0, sx)
	assert.Equal(t, 50.0, sy)

	wx, wy := e.ScreenToWorld(sx, sy)
	assert.Equal(t, 100.0, wx)
	assert.Equal(t, 30.0, wy)
}

func TestLayoutUsesConfiguredResolution(t *testing.T) {
	e := NewEngine(RunConfig{Width: 320, Height: 240})
	w, h := e.Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	e = NewEngine(RunConfig{})
	w, h = e.Layout(0, 0)
	assert.Equal(t, 640, w, "defaults apply")
	assert.Equal(t, 480, h)
}

// Injected keys reach every actor as key-held events, one frame later.
func TestInjectedKeyHeldEvents(t *testing.T) {
	e := NewEngine(RunConfig{})
	s := NewScene()
	a := NewActor(0, 0, 10, 10)
	s.AddChild(a)

	var keys []Key
	a.On(EventKeyHeld, func(ev Event) { keys = append(keys, ev.Key) })

	e.InjectKeyDown(ebiten.KeyArrowRight)
	e.FlushInput()
	s.Update(e, 16)
	require.Empty(t, keys, "delivery lags one frame")

	e.FlushInput()
	s.Update(e, 16)
	require.Len(t, keys, 1)
	assert.Equal(t, ebiten.KeyArrowRight, keys[0])

	// Nothing held any more: no further events.
	e.FlushInput()
	s.Update(e, 16)
	assert.Len(t, keys, 1)
}

// Clicks only reach actors whose bounds contain the point.
func TestInjectedClickHitTest(t *testing.T) {
	e := NewEngine(RunConfig{})
	s := NewScene()
	hit := NewActor(10, 10, 20, 20)
	miss := NewActor(100, 100, 20, 20)
	hit.PreventCollisions = true
	miss.PreventCollisions = true
	s.AddChild(hit)
	s.AddChild(miss)

	var clicks []Event
	hit.On(EventClick, func(ev Event) { clicks = append(clicks, ev) })
	miss.On(EventClick, func(Event) { t.Error("click outside bounds must not be delivered") })

	e.InjectClick(15, 15)
	e.FlushInput()
	s.Update(e, 16)
	e.FlushInput()
	s.Update(e, 16)

	require.Len(t, clicks, 1)
	assert.Equal(t, 15.0, clicks[0].X)
	assert.Equal(t, 15.0, clicks[0].Y)
	assert.Equal(t, MouseButtonLeft, clicks[0].Button)
}

// With the camera panned, world actors are hit through world coordinates
// while screen-anchored actors keep responding at their screen position.
func TestClickMappingUnderCamera(t *testing.T) {
	e := NewEngine(RunConfig{})
	e.CameraX = 50
	s := NewScene()

	world := NewActor(60, 10, 20, 20)
	world.PreventCollisions = true
	ui := NewUIActor(10, 10, 20, 20)
	s.AddChild(world)
	s.AddChild(ui)

	var worldHits, uiHits int
	world.On(EventClick, func(Event) { worldHits++ })
	ui.On(EventClick, func(Event) { uiHits++ })

	// Screen (15, 15) is world (65, 15): inside both.
	e.InjectClick(15, 15)
	e.FlushInput()
	s.Update(e, 16)
	e.FlushInput()
	s.Update(e, 16)

	assert.Equal(t, 1, worldHits, "world actor hit through the camera offset")
	assert.Equal(t, 1, uiHits, "screen-anchored actor hit at its screen bounds")
}

func TestUIActorWithoutCaptureIgnoresPointer(t *testing.T) {
	e := NewEngine(RunConfig{})
	s := NewScene()
	ui := NewUIActor(0, 0, 100, 100)
	ui.CaptureInput = false
	s.AddChild(ui)

	ui.On(EventClick, func(Event) { t.Error("capture-disabled UI actor must not receive pointer events") })

	e.InjectClick(50, 50)
	e.FlushInput()
	s.Update(e, 16)
	e.FlushInput()
	s.Update(e, 16)
}

func TestPointerEventCarriesScreenAndWorld(t *testing.T) {
	e := NewEngine(RunConfig{})
	e.CameraX, e.CameraY = 100, 200
	e.InjectPointer(EventPointerDown, 5, 7, MouseButtonRight)
	e.FlushInput()

	events := e.PointerEvents()
	require.Len(t, events, 1)
	pe := events[0]
	assert.Equal(t, EventPointerDown, pe.Type)
	assert.Equal(t, 5.0, pe.ScreenX)
	assert.Equal(t, 7.0, pe.ScreenY)
	assert.Equal(t, 105.0, pe.X)
	assert.Equal(t, 207.0, pe.Y)
	assert.Equal(t, MouseButtonRight, pe.Button)

	e.FlushInput()
	assert.Empty(t, e.PointerEvents(), "injections are consumed by one flush")
}

// One frame of the full pipeline: a moving actor hits a fixed wall, is pushed
// back flush against it, and the collision event arrives the next frame.
func TestCollisionScenario(t *testing.T) {
	e := NewEngine(RunConfig{})
	s := NewScene()
	mover := NewActor(0, 0, 10, 10)
	wall := NewActor(5, 0, 10, 10)
	wall.Fixed = true
	s.AddChild(mover)
	s.AddChild(wall)

	var hits []Event
	mover.On(EventCollision, func(ev Event) { hits = append(hits, ev) })

	s.Update(e, 16)
	assert.Equal(t, wall.Left(), mover.Right(), "mover pushed flush against the wall")
	require.Empty(t, hits, "collision event lags one frame")

	s.Update(e, 16)
	require.Len(t, hits, 1)
	assert.Equal(t, SideRight, hits[0].Side)
	assert.Same(t, wall, hits[0].Other)
}

// The renderer honors the same camera offset the input mapping uses: a
// world actor draws at exactly the screen pixel whose click hits it, while
// screen-anchored actors stay pinned.
func TestDrawAppliesCameraOffset(t *testing.T) {
	e := NewEngine(RunConfig{})
	e.CameraX = 50
	s := NewScene()
	world := NewActor(60, 10, 20, 20)
	world.PreventCollisions = true
	ui := NewUIActor(10, 40, 20, 20)
	s.AddChild(world)
	s.AddChild(ui)
	s.Update(e, 16) // binds the scene to the engine

	c := &offsetCanvas{}
	c.Translate(-e.CameraX, -e.CameraY) // the offset Engine.Draw applies
	s.Draw(c, 16)

	require.Len(t, c.fills, 2)
	assert.Equal(t, [2]float64{10, 10}, c.fills[0], "world actor shifted by the camera")
	assert.Equal(t, [2]float64{10, 40}, c.fills[1], "UI actor pinned to its screen position")

	// Clicking inside the drawn rectangle reaches the world actor.
	var hits int
	world.On(EventClick, func(Event) { hits++ })
	e.InjectClick(c.fills[0][0]+5, c.fills[0][1]+5)
	e.FlushInput()
	s.Update(e, 16)
	e.FlushInput()
	s.Update(e, 16)
	assert.Equal(t, 1, hits, "click at the drawn pixel must hit the actor")
}

// offsetCanvas records the absolute positions of fills and text under the
// accumulated translation. Rotation and scale are ignored; camera tests
// only translate.
type offsetCanvas struct {
	ox, oy float64
	stack  [][2]float64
	fills  [][2]float64
	texts  [][2]float64
}

func (c *offsetCanvas) Save()    { c.stack = append(c.stack, [2]float64{c.ox, c.oy}) }
func (c *offsetCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.ox, c.oy = c.stack[n-1][0], c.stack[n-1][1]
		c.stack = c.stack[:n-1]
	}
}
func (c *offsetCanvas) Translate(x, y float64) { c.ox += x; c.oy += y }
func (c *offsetCanvas) Rotate(float64)         {}
func (c *offsetCanvas) Scale(_, _ float64)     {}
func (c *offsetCanvas) FillRect(x, y, _, _ float64, _ Color) {
	c.fills = append(c.fills, [2]float64{c.ox + x, c.oy + y})
}
func (c *offsetCanvas) StrokeRect(_, _, _, _ float64, _ Color) {}
func (c *offsetCanvas) FillText(_ string, x, y float64) {
	c.texts = append(c.texts, [2]float64{c.ox + x, c.oy + y})
}
func (c *offsetCanvas) DrawImage(_ *ebiten.Image, _, _ float64) {}

func TestFPSLabelDraws(t *testing.T) {
	l := NewFPSLabel(4, 4)
	c := &nullCanvas{}
	l.Draw(c, 16)
	assert.Equal(t, 1, c.texts, "overlay text must render")
	assert.Zero(t, c.fills, "no rect fill behind the text")
}

func TestFPSLabelDefaults(t *testing.T) {
	l := NewFPSLabel(4, 4)
	assert.Equal(t, ActorUI, l.Kind)
	assert.False(t, l.CaptureInput, "overlay must not swallow clicks")
	require.NotNil(t, l.OnUpdate)

	l.OnUpdate(l, 600) // past the refresh interval
	assert.Contains(t, l.Text, "FPS:")
	assert.Contains(t, l.Text, "TPS:")
}
