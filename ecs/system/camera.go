package system

import (
	"github.com/milk9111/walker/common"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
)

// CameraSystem keeps the camera on the player's X without showing past either
// end of the level. The camera's Y never changes.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player := playerEntity(w, "camera")
	camera := cameraEntity(w, "camera")
	level := currentLevel(w, "camera")

	target := ecs.MustGet(w, player, component.TransformComponent.Kind())
	camTransform := ecs.MustGet(w, camera, component.TransformComponent.Kind())
	camTransform.X = Follow(target.X, level)
}

// Follow returns the camera X for a player at x.
func Follow(x float64, level component.Level) float64 {
	r := level.Camera()
	return common.Clamp(x, r.Min, r.Max)
}
