// Package rowan is a retained-mode 2D actor/scene runtime for [Ebitengine].
//
// Rowan provides the entity model, scene lifecycle, event-driven collision
// detection with group partitioning, an action queue for time-based
// behaviors, and the ordered per-frame update/collision/draw pipeline that
// a 2D game builds on.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := rowan.NewScene()
//	hero := rowan.NewActor(40, 40, 16, 16)
//	scene.AddChild(hero)
//	hero.MoveTo(200, 40, 60).Blink(100, 800)
//	if err := rowan.Run(scene, rowan.RunConfig{Title: "My Game"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build an [Engine] yourself, register scenes with
// [Engine.AddScene], and pass the engine to ebiten.RunGame.
//
// # Actors and scenes
//
// Every simulation entity is an [Actor]: a positioned, drawable box with
// velocity, rotation, uniform scale, a drawing set, an action queue, and an
// event dispatcher. One flat struct covers all actor kinds; [NewLabel],
// [NewTrigger], and [NewUIActor] configure the kind-specific behavior.
// Actors nest: [Actor.AddChild] places children in an embedded scene that
// updates and draws inside the parent's transform.
//
// A [Scene] owns its actors and timers. Removal is deferred: actors marked
// with [Scene.RemoveChild] (or [Actor.Kill]) leave the scene at a fixed
// reconciliation point after all actors have updated, never mid-traversal.
//
// # Collision
//
// Collision is event-driven, axis-aligned overlap only; there is no
// impulse resolution. Each actor scans its broad-phase candidates every
// frame: the whole scene, or the union of its named collision groups.
// Overlaps publish [EventCollision] and push non-fixed actors out along the
// axis of least penetration.
//
// # Events
//
// Each actor carries a [Dispatcher] mailbox. Publishing enqueues; delivery
// happens at the start of the actor's next update, one frame later. Input
// (held keys, clicks, touches that hit the actor's bounds) and collision
// notifications arrive through the same mailbox.
//
// [Ebitengine]: https://ebitengine.org
package rowan
