package component

// Input stores which directional keys are held this tick.
type Input struct {
	Left  bool
	Right bool
}

// Direction is -1, 0 or +1 on the horizontal axis. Holding both cancels out.
func (in Input) Direction() float64 {
	d := 0.0
	if in.Left {
		d -= 1
	}
	if in.Right {
		d += 1
	}
	return d
}

var InputComponent = NewComponent[Input]()
