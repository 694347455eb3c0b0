package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSLabel creates a screen-anchored label that displays the current FPS
// and TPS, refreshed every ~0.5 seconds. Add it to a scene last so it draws
// on top.
func NewFPSLabel(x, y float64) *Actor {
	a := NewLabel("FPS: --\nTPS: --", x, y, nil)
	a.Kind = ActorUI
	a.CaptureInput = false

	var sinceRefresh float64
	a.OnUpdate = func(a *Actor, deltaMs float64) {
		sinceRefresh += deltaMs
		if sinceRefresh < 500 {
			return
		}
		sinceRefresh = 0
		a.SetText(fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return a
}
