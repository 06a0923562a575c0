package assets

import (
	"errors"
	"fmt"
	"image"
)

var ErrInvalidSheet = errors.New("assets: invalid sprite sheet")

// Grid slices an image into equally sized frames, row by row.
type Grid struct {
	FrameW  int
	FrameH  int
	Columns int
	Rows    int
	// Count is the number of frames in use, filled row by row. Zero means every cell.
	Count int
}

// Sheet is the handle systems hold for a sliced image: the image key plus the
// grid geometry. Renderers look the pixels up by Key.
type Sheet struct {
	Key    string
	Frames int
	FrameW int
	FrameH int
	Grid   Grid
}

// NewSheet validates g against img and returns the sheet handle.
func NewSheet(key string, img image.Image, g Grid) (Sheet, error) {
	if g.Columns <= 0 || g.Rows <= 0 {
		return Sheet{}, fmt.Errorf("%w: %q has %dx%d frames", ErrInvalidSheet, key, g.Columns, g.Rows)
	}
	if g.FrameW <= 0 || g.FrameH <= 0 {
		return Sheet{}, fmt.Errorf("%w: %q frame size %dx%d", ErrInvalidSheet, key, g.FrameW, g.FrameH)
	}
	if img == nil {
		return Sheet{}, fmt.Errorf("%w: %q has no image", ErrInvalidSheet, key)
	}
	frames := g.Count
	if frames == 0 {
		frames = g.Columns * g.Rows
	}
	if frames < 1 || frames > g.Columns*g.Rows {
		return Sheet{}, fmt.Errorf("%w: %q declares %d frames in a %dx%d grid", ErrInvalidSheet, key, frames, g.Columns, g.Rows)
	}
	b := img.Bounds()
	if b.Dx() < g.Columns*g.FrameW || b.Dy() < g.Rows*g.FrameH {
		return Sheet{}, fmt.Errorf("%w: %q is %dx%d, grid needs %dx%d", ErrInvalidSheet, key,
			b.Dx(), b.Dy(), g.Columns*g.FrameW, g.Rows*g.FrameH)
	}
	return Sheet{
		Key:    key,
		Frames: frames,
		FrameW: g.FrameW,
		FrameH: g.FrameH,
		Grid:   g,
	}, nil
}

// Valid reports whether the sheet can be animated.
func (s Sheet) Valid() bool {
	return s.Frames >= 1 && s.FrameW > 0 && s.FrameH > 0
}

// Frame returns the source rectangle of frame i, wrapping i into range.
func (s Sheet) Frame(i int) image.Rectangle {
	if !s.Valid() || s.Grid.Columns <= 0 {
		return image.Rectangle{}
	}
	i %= s.Frames
	if i < 0 {
		i += s.Frames
	}
	col := i % s.Grid.Columns
	row := i / s.Grid.Columns
	x := col * s.FrameW
	y := row * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}
