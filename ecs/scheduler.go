package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateStep = errors.New("ecs: duplicate step")
	ErrUnknownStep   = errors.New("ecs: unknown step")
	ErrCycle         = errors.New("ecs: step dependency cycle")
)

type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Step is one named system in the tick pipeline.
type Step struct {
	Name   string
	System System
	// After lists steps that must finish earlier in the same tick.
	After []string
	// RunIf gates the step; nil always runs.
	RunIf func() bool
}

// Scheduler runs steps once per tick in dependency order.
// Steps without an ordering constraint keep their insertion order.
type Scheduler struct {
	steps []Step
	order []int
	dirty bool
}

func NewScheduler(steps ...Step) *Scheduler {
	s := &Scheduler{}
	for _, step := range steps {
		s.Add(step)
	}
	return s
}

func (s *Scheduler) Add(step Step) {
	if step.System == nil {
		return
	}
	s.steps = append(s.steps, step)
	s.dirty = true
}

// Order resolves and returns the step names in execution order.
func (s *Scheduler) Order() ([]string, error) {
	if err := s.resolve(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.order))
	for _, idx := range s.order {
		names = append(names, s.steps[idx].Name)
	}
	return names, nil
}

// Update runs every step whose gate is open. An unresolvable order is a wiring bug.
func (s *Scheduler) Update(w *World) {
	if err := s.resolve(); err != nil {
		panic("scheduler: " + err.Error())
	}
	for _, idx := range s.order {
		step := s.steps[idx]
		if step.RunIf != nil && !step.RunIf() {
			continue
		}
		step.System.Update(w)
	}
}

func (s *Scheduler) Steps() []Step {
	steps := make([]Step, 0, len(s.steps))
	return append(steps, s.steps...)
}

func (s *Scheduler) resolve() error {
	if !s.dirty && s.order != nil {
		return nil
	}

	index := make(map[string]int, len(s.steps))
	for i, step := range s.steps {
		if _, dup := index[step.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateStep, step.Name)
		}
		index[step.Name] = i
	}
	for _, step := range s.steps {
		for _, dep := range step.After {
			if _, ok := index[dep]; !ok {
				return fmt.Errorf("%w: %q needed by %q", ErrUnknownStep, dep, step.Name)
			}
		}
	}

	placed := make([]bool, len(s.steps))
	order := make([]int, 0, len(s.steps))
	for len(order) < len(s.steps) {
		next := -1
		for i, step := range s.steps {
			if placed[i] {
				continue
			}
			ready := true
			for _, dep := range step.After {
				if !placed[index[dep]] {
					ready = false
					break
				}
			}
			if ready {
				next = i
				break
			}
		}
		if next < 0 {
			return ErrCycle
		}
		placed[next] = true
		order = append(order, next)
	}

	s.order = order
	s.dirty = false
	return nil
}
