package gameflow

import (
	"fmt"
	"time"

	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/system"
)

const StateChangedEvent = "state_changed"

// StateChange is the payload of a StateChangedEvent.
type StateChange struct {
	From State
	To   State
}

// Readiness reports whether every startup asset has loaded.
type Readiness interface {
	Ready() bool
}

// Stepper is a Readiness that loads incrementally. The driver steps it once per
// tick while Loading.
type Stepper interface {
	Readiness
	Step() error
}

// Spawner carries out transition commands against the world.
type Spawner interface {
	Spawn(w *ecs.World, cmd Command) error
}

// Driver owns the current state and runs one game tick at a time: it
// evaluates a transition, applies its commands, then runs the systems that
// are allowed in the resulting state.
type Driver struct {
	world   *ecs.World
	state   State
	ready   Readiness
	spawner Spawner
	sched   *ecs.Scheduler

	startRequested bool
}

func NewDriver(w *ecs.World, ready Readiness, spawner Spawner, source system.InputSource) (*Driver, error) {
	if w == nil || ready == nil || spawner == nil {
		return nil, fmt.Errorf("gameflow: driver needs a world, readiness and spawner")
	}

	d := &Driver{world: w, ready: ready, spawner: spawner}
	d.sched = ecs.NewScheduler(Pipeline(d.InState(Playing), source)...)
	if _, err := d.sched.Order(); err != nil {
		return nil, fmt.Errorf("gameflow: pipeline: %w", err)
	}

	state, cmds := Initial()
	d.state = state
	if err := d.apply(cmds); err != nil {
		return nil, err
	}
	return d, nil
}

// Pipeline is the per-tick system order. Every step is gated on gate;
// movement runs before the systems that read its results.
func Pipeline(gate func() bool, source system.InputSource) []ecs.Step {
	return []ecs.Step{
		{Name: "input", System: system.NewInputSystem(source), RunIf: gate},
		{Name: "move_player", System: system.NewMovementSystem(), After: []string{"input"}, RunIf: gate},
		{Name: "animate_player", System: system.NewAnimationSystem(), After: []string{"move_player"}, RunIf: gate},
		{Name: "move_camera", System: system.NewCameraSystem(), After: []string{"move_player"}, RunIf: gate},
	}
}

func (d *Driver) State() State {
	return d.state
}

func (d *Driver) World() *ecs.World {
	return d.world
}

func (d *Driver) Scheduler() *ecs.Scheduler {
	return d.sched
}

// InState returns a gate that is open while the driver is in s.
func (d *Driver) InState(s State) func() bool {
	return func() bool { return d.state == s }
}

// RequestStart records a start activation for the next tick. Requests made
// outside the main menu are dropped.
func (d *Driver) RequestStart() {
	if d.state != MainMenu {
		return
	}
	d.startRequested = true
}

// Tick advances the game by dt. Errors are fatal to the game loop.
func (d *Driver) Tick(dt time.Duration) error {
	d.world.BeginTick(dt)

	if d.state == Loading {
		if s, ok := d.ready.(Stepper); ok {
			if err := s.Step(); err != nil {
				return fmt.Errorf("gameflow: loading: %w", err)
			}
		}
	}

	sig := Signals{
		AssetsReady:  d.ready.Ready(),
		StartPressed: d.startRequested,
	}
	d.startRequested = false

	next, cmds := Next(d.state, sig)
	if next != d.state {
		prev := d.state
		if err := d.apply(cmds); err != nil {
			return err
		}
		d.state = next
		d.world.Events().Push(ecs.Event{
			Type: StateChangedEvent,
			Data: StateChange{From: prev, To: next},
		})
	}

	d.sched.Update(d.world)
	return nil
}

func (d *Driver) apply(cmds []Command) error {
	for _, cmd := range cmds {
		if err := d.spawner.Spawn(d.world, cmd); err != nil {
			return fmt.Errorf("gameflow: %s: %w", cmd, err)
		}
	}
	return nil
}
