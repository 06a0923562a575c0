package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/walker/common"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
)

// MovementSystem accelerates the player from held input and moves it inside
// the level. It must run before anything that reads this tick's position or velocity.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player := playerEntity(w, "movement")
	level := currentLevel(w, "movement")
	dt := w.Delta().Seconds()

	input := ecs.MustGet(w, player, component.InputComponent.Kind())
	kin := ecs.MustGet(w, player, component.KinematicsComponent.Kind())
	vel := ecs.MustGet(w, player, component.VelocityComponent.Kind())
	transform := ecs.MustGet(w, player, component.TransformComponent.Kind())

	vel.Vector = Accelerate(vel.Vector, input.Direction(), *kin, dt)
	Integrate(transform, vel.Vector, dt, level)
}

// Accelerate returns the velocity after one tick. With a direction held the body
// speeds up toward it, capped at MaxSpeed. Without one it slows along its heading
// and snaps to rest once a tick's worth of deceleration would pass zero.
func Accelerate(v cp.Vector, dir float64, k component.Kinematics, dt float64) cp.Vector {
	if !finite(v) {
		v = cp.Vector{}
	}
	if !common.Finite(dt) || dt < 0 {
		dt = 0
	}

	acc := k.Acceleration * dt
	desired := cp.Vector{X: dir}

	switch {
	case desired.Length() > 0:
		return ClampSpeed(v.Add(desired.Normalize().Mult(acc)), k.MaxSpeed)
	case v.Length() > acc:
		return ClampSpeed(v.Add(v.Normalize().Mult(-acc)), k.MaxSpeed)
	default:
		return cp.Vector{}
	}
}

// Integrate moves pos by v*dt one axis at a time. An axis whose new coordinate
// would leave the level keeps its old coordinate; the velocity is left alone.
func Integrate(pos *component.Transform, v cp.Vector, dt float64, level component.Level) {
	change := v.Mult(dt)

	if x := pos.X + change.X; level.Horizontal().Contains(x) {
		pos.X = x
	}
	if y := pos.Y + change.Y; level.Vertical().Contains(y) {
		pos.Y = y
	}
}

// ClampSpeed shortens v to at most limit. A non-positive limit stops the body.
func ClampSpeed(v cp.Vector, limit float64) cp.Vector {
	if limit <= 0 {
		return cp.Vector{}
	}
	v = v.Clamp(limit)
	// Clamp normalises through a reciprocal and can land an ulp long.
	for v.Length() > limit {
		v = v.Mult(math.Nextafter(1, 0))
	}
	return v
}

func finite(v cp.Vector) bool {
	return common.Finite(v.X) && common.Finite(v.Y)
}
