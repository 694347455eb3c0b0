package rowan

import "go.uber.org/zap"

// logger is the package-wide logger. It defaults to a no-op logger so that
// library users pay nothing unless they opt in. Rowan never fails an
// operation because of a logging problem; invalid operations in the frame
// pipeline degrade to warnings (see Actor.Kill, Engine.GoToScene).
var logger = zap.NewNop()

// SetLogger installs a logger for rowan's warnings and debug diagnostics.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
