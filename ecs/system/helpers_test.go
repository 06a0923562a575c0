package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/walker/assets"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
)

var testLevel = component.Level{
	Length:     5120,
	ViewWidth:  1280,
	ViewHeight: 720,
	TileSize:   100,
}

type fixedInput component.Input

func (f *fixedInput) Sample() component.Input { return component.Input(*f) }

type testRig struct {
	w      *ecs.World
	player ecs.Entity
	camera ecs.Entity
}

func newTestRig(t *testing.T, kin component.Kinematics) *testRig {
	t.Helper()
	w := ecs.NewWorld()

	level := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, level, component.LevelComponent.Kind(), &component.Level{
		Length: testLevel.Length, ViewWidth: testLevel.ViewWidth,
		ViewHeight: testLevel.ViewHeight, TileSize: testLevel.TileSize,
	}))

	camera := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	mustAdd(t, ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{Z: 999}))

	x, y := testLevel.Spawn()
	player := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: 900}))
	mustAdd(t, ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}))
	mustAdd(t, ecs.Add(w, player, component.KinematicsComponent.Kind(), &kin))
	mustAdd(t, ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{
		Timer: component.NewTimer(200 * time.Millisecond),
	}))
	mustAdd(t, ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Sheet: assets.Sheet{Key: "walker", Frames: 4, FrameW: 100, FrameH: 100},
	}))

	return &testRig{w: w, player: player, camera: camera}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func (r *testRig) velocity() cp.Vector {
	return ecs.MustGet(r.w, r.player, component.VelocityComponent.Kind()).Vector
}

func (r *testRig) setVelocity(v cp.Vector) {
	ecs.MustGet(r.w, r.player, component.VelocityComponent.Kind()).Vector = v
}

func (r *testRig) position() *component.Transform {
	return ecs.MustGet(r.w, r.player, component.TransformComponent.Kind())
}

func (r *testRig) hold(in component.Input) {
	*ecs.MustGet(r.w, r.player, component.InputComponent.Kind()) = in
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
