// Package glide smooths numeric values toward targets, one frame at a time.
//
// Instead of assigning a new position, opacity or zoom directly, hand the
// value to glide and move its target. Every tick the current value covers a
// fraction speed*dt of the remaining distance, clamped to [0, 1], so it
// eases in without ever overshooting and snaps exactly onto the target
// after a long frame stall.
//
// # Quick start
//
// The package-level functions use a default scheduler that drives itself
// from [DefaultFrames]. Pump that queue once per frame from the host loop:
//
//	opacity, _ := glide.Float(0, glide.WithSpeed(4))
//	opacity.OnChange = func(v float64) { sprite.Alpha = v }
//	opacity.Target = 1
//
//	func (g *Game) Update() error {
//		glide.DefaultFrames().Pump()
//		return nil
//	}
//
// For full control, create your own [Scheduler] and call [Scheduler.Tick]
// with the frame's elapsed seconds:
//
//	s := glide.NewScheduler()
//	x, _ := s.Bind(&node.X, glide.WithSpeed(8))
//	x.Target = 320
//	// each frame:
//	if err := s.Tick(dt); err != nil { ... }
//
// # Shapes
//
// Three shapes are supported: [Scalar] for one float64, [Sequence] for a
// fixed-length []float64 (positions, colors) and [Record] for named fields of
// a map[string]float64, optionally restricted with [WithFields]. Assigning a
// Sequence target of another length, or dropping a tracked Record field,
// makes the next tick fail with [ErrShapeMismatch] or [ErrMissingField].
//
// # Lifecycle
//
// [Scheduler.Kill] marks a value dead; the scheduler drops it on its next
// tick. Paused values are skipped and never dropped, even once killed.
// [Scheduler.KillAll] empties the scheduler immediately and
// [Scheduler.Destroy] also stops self-driving for good.
//
// Adapters for [Ebitengine] live in glide/ebitenframes and for [Donburi] in
// the glide/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package glide
