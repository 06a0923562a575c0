package input

import "github.com/milk9111/walker/ecs/component"

// Fixed reports the same held keys every tick.
type Fixed struct {
	Held component.Input
}

func (f *Fixed) Sample() component.Input {
	return f.Held
}

// Sequence replays one snapshot per tick and repeats the last one when it runs out.
type Sequence struct {
	Steps []component.Input
	next  int
}

func (s *Sequence) Sample() component.Input {
	if len(s.Steps) == 0 {
		return component.Input{}
	}
	in := s.Steps[min(s.next, len(s.Steps)-1)]
	s.next++
	return in
}
