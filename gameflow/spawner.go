package gameflow

import (
	"fmt"

	"github.com/milk9111/walker/assets"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/entity"
	"github.com/milk9111/walker/prefabs"
)

// SheetSource looks up loaded sprite sheets.
type SheetSource interface {
	Sheet(key string) (assets.Sheet, bool)
}

// EntitySpawner builds entities from the prefab specs.
type EntitySpawner struct {
	Sheets SheetSource
	Level  *prefabs.LevelSpec
	Player *prefabs.PlayerSpec
	Camera *prefabs.CameraSpec
	Menu   *prefabs.MenuSpec
}

// LoadEntitySpawner reads every spec the spawner needs.
func LoadEntitySpawner(sheets SheetSource) (*EntitySpawner, error) {
	level, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	camera, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	menu, err := prefabs.LoadMenuSpec()
	if err != nil {
		return nil, err
	}
	return &EntitySpawner{Sheets: sheets, Level: level, Player: player, Camera: camera, Menu: menu}, nil
}

func (s *EntitySpawner) Spawn(w *ecs.World, cmd Command) error {
	switch cmd {
	case SpawnLevel:
		_, err := entity.NewLevelFromSpec(w, s.Level)
		return err
	case SpawnCamera:
		_, err := entity.NewCameraFromSpec(w, s.Camera)
		return err
	case SpawnMenu:
		return entity.NewMenuFromSpec(w, s.Menu)
	case DespawnMenu:
		entity.DespawnMenu(w)
		return nil
	case SpawnPlayer:
		if s.Player == nil {
			return fmt.Errorf("no player spec")
		}
		key := s.Player.Animation.Sheet
		sheet, ok := s.Sheets.Sheet(key)
		if !ok {
			return fmt.Errorf("sheet %q not loaded", key)
		}
		_, err := entity.NewPlayerFromSpec(w, s.Player, sheet)
		return err
	default:
		return fmt.Errorf("unknown command %d", cmd)
	}
}
