package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()

// MenuTag marks entities that belong to the main menu presentation.
type MenuTag struct{}

var MenuTagComponent = NewComponent[MenuTag]()

type MenuItemKind int

const (
	MenuTitle MenuItemKind = iota
	MenuStartButton
)

// MenuItem describes one widget the menu UI builds.
type MenuItem struct {
	Kind  MenuItemKind
	Label string
}

var MenuItemComponent = NewComponent[MenuItem]()
