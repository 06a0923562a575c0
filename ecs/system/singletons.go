package system

import (
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
)

// playerEntity returns the only player. Zero or several players while the
// player systems run is a wiring bug.
func playerEntity(w *ecs.World, system string) ecs.Entity {
	e, err := w.Single(component.PlayerTagComponent.Kind())
	if err != nil {
		panic(system + ": player: " + err.Error())
	}
	return e
}

func cameraEntity(w *ecs.World, system string) ecs.Entity {
	e, err := w.Single(component.CameraTagComponent.Kind())
	if err != nil {
		panic(system + ": camera: " + err.Error())
	}
	return e
}

func currentLevel(w *ecs.World, system string) component.Level {
	e, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		panic(system + ": no level loaded")
	}
	return *ecs.MustGet(w, e, component.LevelComponent.Kind())
}
