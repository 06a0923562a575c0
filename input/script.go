package input

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/prefabs"
)

// ScriptSource drives input from a tengo script. The script sees the tick
// number as `tick` and sets the booleans `left` and `right`.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
	tick     int
	failed   bool
}

// LoadScript compiles a script from prefabs/scripts.
func LoadScript(name string) (*ScriptSource, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("input: load script %s: %w", name, err)
	}
	return NewScriptSource(name, src)
}

func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script %s: %w", name, err)
	}
	return &ScriptSource{name: name, compiled: compiled}, nil
}

// Sample runs the script for the next tick. A script error is logged once and
// releases every key from then on.
func (s *ScriptSource) Sample() component.Input {
	if s.failed {
		return component.Input{}
	}

	if err := s.compiled.Set("tick", s.tick); err != nil {
		return s.fail(err)
	}
	s.tick++
	if err := s.run(); err != nil {
		return s.fail(err)
	}

	return component.Input{
		Left:  s.compiled.Get("left").Bool(),
		Right: s.compiled.Get("right").Bool(),
	}
}

// run executes the script. Some tengo operations, integer division by zero
// among them, panic instead of returning an error.
func (s *ScriptSource) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.compiled.Run()
}

func (s *ScriptSource) Ticks() int {
	return s.tick
}

func (s *ScriptSource) fail(err error) component.Input {
	log.Printf("input: script %s: %v", s.name, err)
	s.failed = true
	return component.Input{}
}
