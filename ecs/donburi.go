package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// Frame carries the seconds elapsed since the previous host frame.
type Frame struct {
	Elapsed float64
}

// FrameEventType is the Donburi event type that advances attached schedulers
// and smoothed positions.
var FrameEventType = events.NewEventType[Frame]()

// Attach ticks s on every Frame event processed on world. Tick errors are
// passed to onErr when it is non-nil.
func Attach(world donburi.World, s *glide.Scheduler, onErr func(error)) {
	FrameEventType.Subscribe(world, func(w donburi.World, f Frame) {
		if err := s.Tick(f.Elapsed); err != nil && onErr != nil {
			onErr(err)
		}
	})
}

// SmoothPositionData smooths an entity position toward Target.
type SmoothPositionData struct {
	Current math.Vec2
	Target  math.Vec2
	// Speed is the decay rate coefficient; 0 freezes the position.
	Speed float64
}

// Settled reports whether both axes are within epsilon of the target.
func (p *SmoothPositionData) Settled(epsilon float64) bool {
	dx := p.Current.X - p.Target.X
	dy := p.Current.Y - p.Target.Y
	return dx <= epsilon && dx >= -epsilon && dy <= epsilon && dy >= -epsilon
}

// SmoothPosition is the component type for SmoothPositionData.
var SmoothPosition = donburi.NewComponentType[SmoothPositionData]()

var positionQuery = donburi.NewQuery(filter.Contains(SmoothPosition))

// UpdatePositions advances every SmoothPosition on world by elapsed seconds.
func UpdatePositions(world donburi.World, elapsed float64) {
	positionQuery.Each(world, func(entry *donburi.Entry) {
		p := SmoothPosition.Get(entry)
		p.Current.X = glide.Smooth(p.Current.X, p.Target.X, elapsed, p.Speed)
		p.Current.Y = glide.Smooth(p.Current.Y, p.Target.Y, elapsed, p.Speed)
	})
}

// AttachPositions runs UpdatePositions on every Frame event processed on
// world.
func AttachPositions(world donburi.World) {
	FrameEventType.Subscribe(world, func(w donburi.World, f Frame) {
		UpdatePositions(w, f.Elapsed)
	})
}
