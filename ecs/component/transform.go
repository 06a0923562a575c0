package component

// Transform is a world-space position. The origin is the window centre, +Y is up,
// and Z orders drawing (higher draws later).
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
