package component

// Level stores the level length and the window it is viewed through.
type Level struct {
	Length     float64
	ViewWidth  float64
	ViewHeight float64
	TileSize   float64
}

// Range is an inclusive interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Horizontal is where a tile-sized body may stand along X.
func (l Level) Horizontal() Range {
	return Range{
		Min: -(l.ViewWidth / 2) + l.TileSize/2,
		Max: l.Length - (l.ViewWidth/2 + l.TileSize/2),
	}
}

// Vertical is where a tile-sized body may stand along Y. The floor sits one tile
// above the bottom edge of the window.
func (l Level) Vertical() Range {
	return Range{
		Min: -(l.ViewHeight / 2) + l.TileSize*1.5,
		Max: l.ViewHeight/2 - l.TileSize/2,
	}
}

// Camera is the range of camera X positions that keep the view inside the level.
func (l Level) Camera() Range {
	maxX := l.Length - l.ViewWidth
	if maxX < 0 {
		maxX = 0
	}
	return Range{Min: 0, Max: maxX}
}

// Spawn is where the player appears on entering play.
func (l Level) Spawn() (x, y float64) {
	return 0, l.Vertical().Min
}

var LevelComponent = NewComponent[Level]()
