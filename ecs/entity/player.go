package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/walker/assets"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/ecs/system"
	"github.com/milk9111/walker/prefabs"
)

var (
	ErrAlreadySpawned = errors.New("already spawned")
	ErrNotSpawned     = errors.New("not spawned")
)

// NewPlayer spawns the player at the level's spawn point, at rest, on the first
// frame of sheet.
func NewPlayer(w *ecs.World, sheet assets.Sheet) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, playerSpec, sheet)
}

func NewPlayerFromSpec(w *ecs.World, playerSpec *prefabs.PlayerSpec, sheet assets.Sheet) (ecs.Entity, error) {
	if playerSpec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if w.Count(component.PlayerTagComponent.Kind()) > 0 {
		return 0, fmt.Errorf("player: %w", ErrAlreadySpawned)
	}
	if !sheet.Valid() {
		return 0, fmt.Errorf("player: sheet %q: %w", sheet.Key, assets.ErrInvalidSheet)
	}
	levelEntity, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("player: level: %w", ErrNotSpawned)
	}
	level := ecs.MustGet(w, levelEntity, component.LevelComponent.Kind())
	x, y := level.Spawn()

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X: x,
		Y: y,
		Z: playerSpec.Transform.Z,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}

	if err := ecs.Add(w, player, component.KinematicsComponent.Kind(), &component.Kinematics{
		Acceleration: playerSpec.Acceleration,
		MaxSpeed:     playerSpec.Speed,
	}); err != nil {
		return 0, fmt.Errorf("player: add kinematics: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{
		Timer: component.NewTimer(playerSpec.Animation.Period()),
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{Sheet: sheet}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	return player, nil
}

// SheetDeclaration is the asset the player's animation needs loaded.
func SheetDeclaration(playerSpec *prefabs.PlayerSpec) assets.Declaration {
	a := playerSpec.Animation
	columns := a.GridColumns()
	rows := (a.FrameCount + columns - 1) / columns
	return assets.Declaration{
		Key:  a.Sheet,
		Kind: assets.KindSheet,
		Path: a.Sheet,
		Grid: assets.Grid{FrameW: a.FrameW, FrameH: a.FrameH, Columns: columns, Rows: rows, Count: a.FrameCount},
	}
}

// RetunePlayer applies edited speed, acceleration and animation period to a live
// player. A velocity above the new speed is clamped at once.
func RetunePlayer(w *ecs.World, playerSpec *prefabs.PlayerSpec) error {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Errorf("player: retune: %w", ErrNotSpawned)
	}

	kin := ecs.MustGet(w, player, component.KinematicsComponent.Kind())
	kin.Acceleration = playerSpec.Acceleration
	kin.MaxSpeed = playerSpec.Speed

	vel := ecs.MustGet(w, player, component.VelocityComponent.Kind())
	vel.Vector = system.ClampSpeed(vel.Vector, kin.MaxSpeed)

	anim := ecs.MustGet(w, player, component.AnimationComponent.Kind())
	if period := playerSpec.Animation.Period(); period != anim.Timer.Period {
		anim.Timer = component.NewTimer(period)
	}
	return nil
}
