package gameflow

// State is the top-level phase of the game.
type State int

const (
	Loading State = iota
	MainMenu
	Playing
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case MainMenu:
		return "main_menu"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Command is a world change that accompanies a transition.
type Command int

const (
	SpawnLevel Command = iota
	SpawnCamera
	SpawnMenu
	DespawnMenu
	SpawnPlayer
)

func (c Command) String() string {
	switch c {
	case SpawnLevel:
		return "spawn_level"
	case SpawnCamera:
		return "spawn_camera"
	case SpawnMenu:
		return "spawn_menu"
	case DespawnMenu:
		return "despawn_menu"
	case SpawnPlayer:
		return "spawn_player"
	default:
		return "unknown"
	}
}

// Signals are the external inputs a transition may depend on.
type Signals struct {
	AssetsReady  bool
	StartPressed bool
}

// Initial is the state the game boots into and the commands that set up the
// world for it.
func Initial() (State, []Command) {
	return Loading, []Command{SpawnLevel, SpawnCamera}
}

// Next evaluates at most one transition. It returns current and no commands
// when nothing fires. Playing has no way out.
func Next(current State, sig Signals) (State, []Command) {
	switch current {
	case Loading:
		if sig.AssetsReady {
			return MainMenu, []Command{SpawnMenu}
		}
	case MainMenu:
		if sig.StartPressed {
			return Playing, []Command{SpawnPlayer, DespawnMenu}
		}
	}
	return current, nil
}
