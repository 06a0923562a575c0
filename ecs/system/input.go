package system

import (
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
)

// InputSource produces the held-key snapshot for one tick.
type InputSource interface {
	Sample() component.Input
}

// InputSystem copies one sample per tick onto every entity with an Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	snapshot := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}
