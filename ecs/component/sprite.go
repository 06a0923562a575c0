package component

import "github.com/milk9111/walker/assets"

// Sprite draws one frame of a sliced sheet. The sheet is shared and read-only.
type Sprite struct {
	Sheet assets.Sheet
}

var SpriteComponent = NewComponent[Sprite]()
