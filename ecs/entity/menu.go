package entity

import (
	"fmt"

	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/prefabs"
)

func NewMenu(w *ecs.World) error {
	menuSpec, err := prefabs.LoadMenuSpec()
	if err != nil {
		return fmt.Errorf("menu: load spec: %w", err)
	}
	return NewMenuFromSpec(w, menuSpec)
}

// NewMenuFromSpec spawns the title and the start button. The UI layer builds
// its widgets from these entities.
func NewMenuFromSpec(w *ecs.World, menuSpec *prefabs.MenuSpec) error {
	if menuSpec == nil {
		return fmt.Errorf("menu: nil spec")
	}
	if w.Count(component.MenuTagComponent.Kind()) > 0 {
		return fmt.Errorf("menu: %w", ErrAlreadySpawned)
	}

	items := []component.MenuItem{
		{Kind: component.MenuTitle, Label: menuSpec.Title},
		{Kind: component.MenuStartButton, Label: menuSpec.Button.Label},
	}
	for i := range items {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.MenuTagComponent.Kind(), &component.MenuTag{}); err != nil {
			return fmt.Errorf("menu: add menu tag: %w", err)
		}
		if err := ecs.Add(w, e, component.MenuItemComponent.Kind(), &items[i]); err != nil {
			return fmt.Errorf("menu: add item: %w", err)
		}
	}
	return nil
}

// DespawnMenu destroys every menu entity and returns how many there were.
func DespawnMenu(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.MenuTagComponent.Kind()) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
