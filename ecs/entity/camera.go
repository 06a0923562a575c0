package entity

import (
	"fmt"

	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	if cameraSpec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}
	if w.Count(component.CameraTagComponent.Kind()) > 0 {
		return 0, fmt.Errorf("camera: %w", ErrAlreadySpawned)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: cameraSpec.Transform.X,
		Y: cameraSpec.Transform.Y,
		Z: cameraSpec.Transform.Z,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	return camera, nil
}
