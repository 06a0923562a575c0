package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestNewSheet(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 400, 100))
	cases := []struct {
		name   string
		grid   Grid
		frames int
		ok     bool
	}{
		{"single_row", Grid{FrameW: 100, FrameH: 100, Columns: 4, Rows: 1}, 4, true},
		{"partial_use", Grid{FrameW: 50, FrameH: 50, Columns: 2, Rows: 2}, 4, true},
		{"no_columns", Grid{FrameW: 100, FrameH: 100, Rows: 1}, 0, false},
		{"zero_frame", Grid{Columns: 4, Rows: 1}, 0, false},
		{"too_wide", Grid{FrameW: 100, FrameH: 100, Columns: 5, Rows: 1}, 0, false},
		{"too_tall", Grid{FrameW: 100, FrameH: 100, Columns: 1, Rows: 2}, 0, false},
		{"declared_count", Grid{FrameW: 50, FrameH: 50, Columns: 4, Rows: 2, Count: 6}, 6, true},
		{"count_exceeds_grid", Grid{FrameW: 100, FrameH: 100, Columns: 4, Rows: 1, Count: 5}, 0, false},
		{"negative_count", Grid{FrameW: 100, FrameH: 100, Columns: 4, Rows: 1, Count: -1}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sheet, err := NewSheet("walker", img, c.grid)
			if !c.ok {
				if !errors.Is(err, ErrInvalidSheet) {
					t.Fatalf("err = %v, want ErrInvalidSheet", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if sheet.Frames != c.frames || !sheet.Valid() {
				t.Fatalf("sheet = %+v", sheet)
			}
		})
	}

	if _, err := NewSheet("nil", nil, Grid{FrameW: 1, FrameH: 1, Columns: 1, Rows: 1}); !errors.Is(err, ErrInvalidSheet) {
		t.Fatalf("nil image err = %v", err)
	}
}

func TestSheetFrame(t *testing.T) {
	s := Sheet{Key: "k", Frames: 6, FrameW: 10, FrameH: 20, Grid: Grid{FrameW: 10, FrameH: 20, Columns: 4, Rows: 2}}
	cases := []struct {
		i    int
		want image.Rectangle
	}{
		{0, image.Rect(0, 0, 10, 20)},
		{3, image.Rect(30, 0, 40, 20)},
		{4, image.Rect(0, 20, 10, 40)},
		{6, image.Rect(0, 0, 10, 20)},
		{-1, image.Rect(10, 20, 20, 40)},
	}
	for _, c := range cases {
		if got := s.Frame(c.i); got != c.want {
			t.Errorf("Frame(%d) = %v, want %v", c.i, got, c.want)
		}
	}
	if got := (Sheet{}).Frame(0); got != (image.Rectangle{}) {
		t.Errorf("empty sheet frame = %v", got)
	}
}

func TestLoaderStepsOneAssetAtATime(t *testing.T) {
	fsys := fstest.MapFS{
		"sheet.png":  {Data: pngBytes(t, 40, 10)},
		"button.png": {Data: pngBytes(t, 20, 6)},
	}
	l := NewLoaderFS(fsys,
		Declaration{Key: "walker", Kind: KindSheet, Path: "assets/sheet.png", Grid: Grid{FrameW: 10, FrameH: 10, Columns: 4, Rows: 1}},
		Declaration{Key: "button", Kind: KindImage, Path: "button.png"},
		Declaration{Key: "ui", Kind: KindFont, Path: BasicFont},
	)

	for i := 0; i < 3; i++ {
		if l.Ready() {
			t.Fatalf("ready after %d steps", i)
		}
		if loaded, total := l.Progress(); loaded != i || total != 3 {
			t.Fatalf("progress = %d/%d", loaded, total)
		}
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if !l.Ready() {
		t.Fatal("not ready after every asset loaded")
	}
	if err := l.Step(); err != nil {
		t.Fatalf("step after ready: %v", err)
	}

	if sheet, ok := l.Sheet("walker"); !ok || sheet.Frames != 4 {
		t.Fatalf("sheet = %+v, %v", sheet, ok)
	}
	if _, ok := l.Image("walker"); !ok {
		t.Fatal("sheet image not kept")
	}
	if img, ok := l.Image("button"); !ok || img.Bounds().Dx() != 20 {
		t.Fatal("button image missing")
	}
	if _, ok := l.Font("ui"); !ok {
		t.Fatal("font missing")
	}
}

func TestLoaderFailureStaysPending(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not a png")}}
	l := NewLoaderFS(fsys,
		Declaration{Key: "bad", Kind: KindImage, Path: "bad.png"},
		Declaration{Key: "font", Kind: KindFont, Path: BasicFont},
	)
	for i := 0; i < 2; i++ {
		if err := l.Step(); err == nil {
			t.Fatal("expected decode error")
		}
	}
	if loaded, _ := l.Progress(); loaded != 0 || l.Ready() {
		t.Fatalf("loaded = %d, ready = %v", loaded, l.Ready())
	}
}

func TestLoaderRejectsBadDeclarations(t *testing.T) {
	fsys := fstest.MapFS{"sheet.png": {Data: pngBytes(t, 10, 10)}}
	cases := []struct {
		name string
		decl Declaration
		want error
	}{
		{"sheet_without_frames", Declaration{Key: "s", Kind: KindSheet, Path: "sheet.png"}, ErrInvalidSheet},
		{"missing_file", Declaration{Key: "m", Kind: KindImage, Path: "missing.png"}, nil},
		{"unknown_font", Declaration{Key: "f", Kind: KindFont, Path: "comic"}, nil},
		{"unknown_kind", Declaration{Key: "k", Kind: Kind(9)}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := NewLoaderFS(fsys, c.decl).LoadAll()
			if err == nil {
				t.Fatal("expected error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestDeclareAfterReady(t *testing.T) {
	l := NewLoaderFS(fstest.MapFS{})
	if !l.Ready() {
		t.Fatal("empty loader should be ready")
	}
	l.Declare(Declaration{Key: "font", Kind: KindFont, Path: BasicFont})
	if l.Ready() {
		t.Fatal("declaring should make the loader pending")
	}
	if err := l.LoadAll(); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"walking.png", "button.png", "button_pressed.png"} {
		if _, err := LoadImage(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	img, err := LoadImage("assets/walking.png")
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 100 {
		t.Fatalf("walking sheet is %dx%d", b.Dx(), b.Dy())
	}
}
