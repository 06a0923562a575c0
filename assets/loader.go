package assets

import (
	"fmt"
	"image"
	"io/fs"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Kind int

const (
	KindImage Kind = iota
	KindSheet
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSheet:
		return "sheet"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// Declaration names one asset the loading phase waits for.
type Declaration struct {
	Key  string
	Kind Kind
	// Path is the file path for images and sheets, or a built-in face name for fonts.
	Path string
	Grid Grid
}

// BasicFont is the built-in face name for golang.org/x/image's 7x13 bitmap font.
const BasicFont = "basic7x13"

var builtinFaces = map[string]font.Face{
	BasicFont: basicfont.Face7x13,
}

// Loader loads declared assets one per Step so loading can be spread over ticks
// and its progress reported.
type Loader struct {
	fsys   fs.FS
	decls  []Declaration
	next   int
	images map[string]image.Image
	sheets map[string]Sheet
	fonts  map[string]font.Face
}

// NewLoader loads from the embedded asset files.
func NewLoader(decls ...Declaration) *Loader {
	return NewLoaderFS(assetsFS, decls...)
}

func NewLoaderFS(fsys fs.FS, decls ...Declaration) *Loader {
	return &Loader{
		fsys:   fsys,
		decls:  append([]Declaration(nil), decls...),
		images: make(map[string]image.Image),
		sheets: make(map[string]Sheet),
		fonts:  make(map[string]font.Face),
	}
}

// Declare adds an asset to wait for. Declaring after Ready makes the loader pending again.
func (l *Loader) Declare(d Declaration) {
	l.decls = append(l.decls, d)
}

// Step loads the next pending asset. It is a no-op once everything is loaded.
// A failed asset stays pending.
func (l *Loader) Step() error {
	if l.Ready() {
		return nil
	}
	d := l.decls[l.next]
	if err := l.load(d); err != nil {
		return fmt.Errorf("assets: load %s %q: %w", d.Kind, d.Key, err)
	}
	l.next++
	return nil
}

// LoadAll steps until every declared asset is loaded.
func (l *Loader) LoadAll() error {
	for !l.Ready() {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Ready reports whether every declared asset has loaded.
func (l *Loader) Ready() bool {
	return l.next >= len(l.decls)
}

func (l *Loader) Progress() (loaded, total int) {
	return l.next, len(l.decls)
}

func (l *Loader) Image(key string) (image.Image, bool) {
	img, ok := l.images[key]
	return img, ok
}

func (l *Loader) Sheet(key string) (Sheet, bool) {
	s, ok := l.sheets[key]
	return s, ok
}

func (l *Loader) Font(key string) (font.Face, bool) {
	f, ok := l.fonts[key]
	return f, ok
}

func (l *Loader) load(d Declaration) error {
	switch d.Kind {
	case KindImage:
		img, err := decodeImage(l.fsys, d.Path)
		if err != nil {
			return err
		}
		l.images[d.Key] = img
	case KindSheet:
		img, err := decodeImage(l.fsys, d.Path)
		if err != nil {
			return err
		}
		sheet, err := NewSheet(d.Key, img, d.Grid)
		if err != nil {
			return err
		}
		l.images[d.Key] = img
		l.sheets[d.Key] = sheet
	case KindFont:
		face, ok := builtinFaces[d.Path]
		if !ok {
			return fmt.Errorf("unknown font %q", d.Path)
		}
		l.fonts[d.Key] = face
	default:
		return fmt.Errorf("unknown asset kind %d", d.Kind)
	}
	return nil
}
