package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/walker/common"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("invalid spec")

// Validator is implemented by specs that can reject bad values after decoding.
type Validator interface {
	Validate() error
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	return DecodeSpec[T](filename, data)
}

// DecodeSpec unmarshals data and runs Validate when the spec has one.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	if v, ok := any(&spec).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, fmt.Errorf("prefabs: %s: %w", filename, err)
		}
	}

	return spec, nil
}

const (
	LevelFile  = "level.yaml"
	PlayerFile = "player.yaml"
	CameraFile = "camera.yaml"
	MenuFile   = "menu.yaml"
)

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LevelSpec struct {
	Name        string     `yaml:"name"`
	Window      WindowSpec `yaml:"window"`
	TileSize    float64    `yaml:"tile_size"`
	Length      float64    `yaml:"length"`
	Background  *YAMLColor `yaml:"background"`
	GroundColor *YAMLColor `yaml:"ground_color"`
}

func (s *LevelSpec) Validate() error {
	switch {
	case !common.Finite(s.TileSize) || !common.Finite(s.Length):
		return fmt.Errorf("%w: tile_size %v length %v", ErrInvalidSpec, s.TileSize, s.Length)
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSpec, s.Window.Width, s.Window.Height)
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tile_size %v", ErrInvalidSpec, s.TileSize)
	case s.Length <= 0:
		return fmt.Errorf("%w: length %v", ErrInvalidSpec, s.Length)
	}
	return nil
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name         string        `yaml:"name"`
	Speed        float64       `yaml:"speed"`
	Acceleration float64       `yaml:"acceleration"`
	Transform    TransformSpec `yaml:"transform"`
	Animation    AnimationSpec `yaml:"animation"`
}

func (s *PlayerSpec) Validate() error {
	switch {
	case !common.Finite(s.Speed) || !common.Finite(s.Acceleration):
		return fmt.Errorf("%w: speed %v acceleration %v", ErrInvalidSpec, s.Speed, s.Acceleration)
	case s.Speed < 0:
		return fmt.Errorf("%w: speed %v", ErrInvalidSpec, s.Speed)
	case s.Acceleration < 0:
		return fmt.Errorf("%w: acceleration %v", ErrInvalidSpec, s.Acceleration)
	}
	return s.Animation.Validate()
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type MenuSpec struct {
	Name   string     `yaml:"name"`
	Title  string     `yaml:"title"`
	Button ButtonSpec `yaml:"button"`
}

type ButtonSpec struct {
	Label        string     `yaml:"label"`
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	Image        string     `yaml:"image"`
	PressedImage string     `yaml:"pressed_image"`
	TextColor    *YAMLColor `yaml:"text_color"`
}

func (s *MenuSpec) Validate() error {
	if strings.TrimSpace(s.Button.Label) == "" {
		return fmt.Errorf("%w: button label is empty", ErrInvalidSpec)
	}
	if s.Button.Width <= 0 || s.Button.Height <= 0 {
		return fmt.Errorf("%w: button %dx%d", ErrInvalidSpec, s.Button.Width, s.Button.Height)
	}
	return nil
}

func LoadMenuSpec() (*MenuSpec, error) {
	spec, err := LoadSpec[MenuSpec](MenuFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type AnimationSpec struct {
	Sheet      string `yaml:"sheet"`
	FrameW     int    `yaml:"frame_w"`
	FrameH     int    `yaml:"frame_h"`
	FrameCount int    `yaml:"frame_count"`
	Columns    int    `yaml:"columns"`
	PeriodMS   int    `yaml:"period_ms"`
}

func (a AnimationSpec) Validate() error {
	switch {
	case strings.TrimSpace(a.Sheet) == "":
		return fmt.Errorf("%w: animation sheet is empty", ErrInvalidSpec)
	case a.FrameCount < 1:
		return fmt.Errorf("%w: animation frame_count %d", ErrInvalidSpec, a.FrameCount)
	case a.FrameW <= 0 || a.FrameH <= 0:
		return fmt.Errorf("%w: animation frame %dx%d", ErrInvalidSpec, a.FrameW, a.FrameH)
	case a.PeriodMS <= 0:
		return fmt.Errorf("%w: animation period_ms %d", ErrInvalidSpec, a.PeriodMS)
	}
	return nil
}

func (a AnimationSpec) Period() time.Duration {
	return time.Duration(a.PeriodMS) * time.Millisecond
}

// GridColumns defaults to a single row holding every frame.
func (a AnimationSpec) GridColumns() int {
	if a.Columns > 0 {
		return a.Columns
	}
	return a.FrameCount
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when none was set.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
