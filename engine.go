package rowan

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Engine drives the frame loop: it owns the named-scene registry, the
// per-frame input snapshot, and the world↔screen camera offset, and it
// implements ebiten.Game so it can be handed straight to ebiten.RunGame.
// Each tick runs one Scene.Update followed by one Scene.Draw; all per-frame
// work is synchronous and single-threaded.
type Engine struct {
	cfg RunConfig

	scenes      map[string]*Scene
	current     *Scene
	currentName string

	// CameraX and CameraY translate world space relative to screen space:
	// screen = world - camera.
	CameraX, CameraY float64

	input       inputState
	injectQueue []injectedEvent
	touchBuf    []ebiten.TouchID
	prevCursorX int
	prevCursorY int
}

// NewEngine creates an engine with the given configuration. The engine
// starts with no current scene; add one with AddScene and GoToScene.
func NewEngine(cfg RunConfig) *Engine {
	return &Engine{
		cfg:    cfg.withDefaults(),
		scenes: make(map[string]*Scene),
	}
}

// AddScene registers a scene under a name. Re-registering a name replaces
// the previous scene.
func (e *Engine) AddScene(name string, s *Scene) {
	e.scenes[name] = s
}

// GoToScene makes the named scene current. An unknown name is a warned
// no-op; the current scene is left in place.
func (e *Engine) GoToScene(name string) {
	s, ok := e.scenes[name]
	if !ok {
		logger.Warn("go to unknown scene", zap.String("scene", name))
		return
	}
	e.current = s
	e.currentName = name
}

// CurrentScene returns the scene the engine is driving, or nil before the
// first GoToScene.
func (e *Engine) CurrentScene() *Scene {
	return e.current
}

// CurrentSceneName returns the registry name of the current scene.
func (e *Engine) CurrentSceneName() string {
	return e.currentName
}

// WorldToScreen maps a world-space point to screen space through the
// camera offset.
func (e *Engine) WorldToScreen(x, y float64) (float64, float64) {
	return x - e.CameraX, y - e.CameraY
}

// ScreenToWorld maps a screen-space point to world space through the
// camera offset.
func (e *Engine) ScreenToWorld(x, y float64) (float64, float64) {
	return x + e.CameraX, y + e.CameraY
}

// tickMs returns the fixed per-tick delta in milliseconds.
func (e *Engine) tickMs() float64 {
	return 1000.0 / float64(ebiten.TPS())
}

// Update implements ebiten.Game: it snapshots input and steps the current
// scene by one fixed tick.
func (e *Engine) Update() error {
	e.pollInput()
	if e.current == nil {
		return nil
	}
	if e.cfg.Debug {
		t0 := time.Now()
		e.current.Update(e, e.tickMs())
		e.logFrame(frameStats{
			phase:    "update",
			duration: time.Since(t0),
			actors:   len(e.current.actors),
			timers:   len(e.current.timers),
		})
		return nil
	}
	e.current.Update(e, e.tickMs())
	return nil
}

// Draw implements ebiten.Game: it clears the screen and renders the
// current scene through the camera offset, plus bounding-box outlines in
// debug mode. Screen-anchored actors (ActorUI) cancel the offset in their
// own Draw.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.cfg.ClearColor.rgba())
	if e.current == nil {
		return
	}
	c := NewCanvas(screen)
	c.Translate(-e.CameraX, -e.CameraY)
	if e.cfg.Debug {
		t0 := time.Now()
		e.current.Draw(c, e.tickMs())
		e.current.DebugDraw(c)
		e.logFrame(frameStats{
			phase:    "draw",
			duration: time.Since(t0),
			actors:   len(e.current.actors),
		})
		return
	}
	e.current.Draw(c, e.tickMs())
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

// Run creates an engine for the scene, opens a window per cfg, and runs the
// game loop until the window closes. The scene is registered under the name
// "main". For multiple scenes, build the Engine yourself and call
// ebiten.RunGame directly.
func Run(scene *Scene, cfg RunConfig) error {
	e := NewEngine(cfg)
	e.AddScene("main", scene)
	e.GoToScene("main")

	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	if e.cfg.TPS > 0 {
		ebiten.SetTPS(e.cfg.TPS)
	}
	return ebiten.RunGame(e)
}
