package entity

import (
	"fmt"

	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/prefabs"
)

func NewLevel(w *ecs.World) (ecs.Entity, error) {
	levelSpec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return 0, fmt.Errorf("level: load spec: %w", err)
	}
	return NewLevelFromSpec(w, levelSpec)
}

func NewLevelFromSpec(w *ecs.World, levelSpec *prefabs.LevelSpec) (ecs.Entity, error) {
	if levelSpec == nil {
		return 0, fmt.Errorf("level: nil spec")
	}
	if w.Count(component.LevelComponent.Kind()) > 0 {
		return 0, fmt.Errorf("level: %w", ErrAlreadySpawned)
	}

	level := ecs.CreateEntity(w)
	if err := ecs.Add(w, level, component.LevelTagComponent.Kind(), &component.LevelTag{}); err != nil {
		return 0, fmt.Errorf("level: add level tag: %w", err)
	}

	bounds := LevelFromSpec(levelSpec)
	if err := ecs.Add(w, level, component.LevelComponent.Kind(), &bounds); err != nil {
		return 0, fmt.Errorf("level: add level: %w", err)
	}

	return level, nil
}

func LevelFromSpec(levelSpec *prefabs.LevelSpec) component.Level {
	return component.Level{
		Length:     levelSpec.Length,
		ViewWidth:  float64(levelSpec.Window.Width),
		ViewHeight: float64(levelSpec.Window.Height),
		TileSize:   levelSpec.TileSize,
	}
}

// RetuneLevel replaces the live level bounds. The player is left where it is;
// movement only refuses steps that leave the new bounds.
func RetuneLevel(w *ecs.World, levelSpec *prefabs.LevelSpec) error {
	e, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		return fmt.Errorf("level: retune: %w", ErrNotSpawned)
	}
	*ecs.MustGet(w, e, component.LevelComponent.Kind()) = LevelFromSpec(levelSpec)
	return nil
}
