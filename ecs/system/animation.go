package system

import (
	"time"

	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
)

// AnimationSystem advances sprite frames on moving entities. It reads the velocity
// written by MovementSystem in the same tick.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	for _, e := range w.Query(
		component.AnimationComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.SpriteComponent.Kind(),
	) {
		anim := ecs.MustGet(w, e, component.AnimationComponent.Kind())
		vel := ecs.MustGet(w, e, component.VelocityComponent.Kind())
		sprite := ecs.MustGet(w, e, component.SpriteComponent.Kind())
		Animate(anim, *vel, sprite.Sheet.Frames, dt)
	}
}

// Animate ticks the frame timer while the body moves and steps one frame per
// completed period. A body at rest holds its frame and its timer.
func Animate(anim *component.Animation, vel component.Velocity, frames int, dt time.Duration) {
	if vel.IsZero() {
		return
	}
	if frames < 1 {
		panic("animation: sprite sheet has no frames")
	}

	if fired := anim.Timer.Tick(dt); fired > 0 {
		anim.Frame = (anim.Frame + fired) % frames
	}
}
