package rowan

import (
	"time"

	"go.uber.org/zap"
)

// Debug outline colors. Triggers use a distinct color so they stand out in
// DebugDraw despite never drawing normally.
var (
	debugOutlineColor = Color{1, 1, 0, 1}   // yellow
	debugTriggerColor = Color{0, 1, 0.5, 1} // spring green
)

// frameStats holds per-phase timing and scene size metrics. Only collected
// when RunConfig.Debug is set.
type frameStats struct {
	phase    string
	duration time.Duration
	actors   int
	timers   int
}

// logFrame emits one debug record for a frame phase.
func (e *Engine) logFrame(s frameStats) {
	logger.Debug("frame",
		zap.String("phase", s.phase),
		zap.Duration("duration", s.duration),
		zap.Int("actors", s.actors),
		zap.Int("timers", s.timers),
		zap.String("scene", e.currentName))
}
