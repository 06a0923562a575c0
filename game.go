package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/walker/assets"
	"github.com/milk9111/walker/common"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/entity"
	"github.com/milk9111/walker/ecs/render"
	"github.com/milk9111/walker/ecs/system"
	"github.com/milk9111/walker/gameflow"
	"github.com/milk9111/walker/input"
	"github.com/milk9111/walker/prefabs"
	"golang.org/x/image/colornames"
)

const menuFont = "menu_font"

type Options struct {
	Debug    bool
	SkipMenu bool
	// Script replaces the keyboard with a tengo input script from prefabs/scripts.
	Script string
}

type Game struct {
	driver   *gameflow.Driver
	loader   *assets.Loader
	spawner  *gameflow.EntitySpawner
	images   *render.Images
	renderer *render.Renderer
	menu     *ebitenui.UI
	watcher  *prefabs.Watcher

	last     time.Time
	width    float64
	height   float64
	debug    bool
	skipMenu bool
}

func NewGame(opts Options) (*Game, error) {
	loader := assets.NewLoader()
	spawner, err := gameflow.LoadEntitySpawner(loader)
	if err != nil {
		return nil, err
	}

	loader.Declare(entity.SheetDeclaration(spawner.Player))
	loader.Declare(assets.Declaration{Key: spawner.Menu.Button.Image, Kind: assets.KindImage, Path: spawner.Menu.Button.Image})
	loader.Declare(assets.Declaration{Key: spawner.Menu.Button.PressedImage, Kind: assets.KindImage, Path: spawner.Menu.Button.PressedImage})
	loader.Declare(assets.Declaration{Key: menuFont, Kind: assets.KindFont, Path: assets.BasicFont})

	var source system.InputSource = KeyboardInput{}
	if opts.Script != "" {
		script, err := input.LoadScript(opts.Script)
		if err != nil {
			return nil, err
		}
		source = script
	}

	driver, err := gameflow.NewDriver(ecs.NewWorld(), loader, spawner, source)
	if err != nil {
		return nil, err
	}

	images := render.NewImages(loader)
	g := &Game{
		driver:   driver,
		loader:   loader,
		spawner:  spawner,
		images:   images,
		renderer: render.NewRenderer(images, palette(spawner.Level)),
		width:    float64(spawner.Level.Window.Width),
		height:   float64(spawner.Level.Window.Height),
		debug:    opts.Debug,
		skipMenu: opts.SkipMenu,
	}

	if opts.Debug {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func palette(spec *prefabs.LevelSpec) render.Palette {
	p := render.DefaultPalette
	p.Background = spec.Background.Or(p.Background)
	p.Ground = spec.GroundColor.Or(p.Ground)
	return p
}

func (g *Game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = common.SanitizeDelta(now.Sub(g.last).Seconds())
	}
	g.last = now

	if g.driver.State() == gameflow.MainMenu {
		if g.menu != nil {
			g.menu.Update()
		}
		if g.skipMenu || startPressed() {
			g.driver.RequestStart()
		}
	}

	if err := g.driver.Tick(dt); err != nil {
		return err
	}

	g.handleEvents()
	g.reloadSpecs()
	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.driver.World().Events().Drain() {
		if ev.Type != gameflow.StateChangedEvent {
			continue
		}
		change := ev.Data.(gameflow.StateChange)
		log.Printf("game: %s -> %s", change.From, change.To)

		switch change.To {
		case gameflow.MainMenu:
			face, ok := g.loader.Font(menuFont)
			if !ok {
				log.Printf("game: menu font %q not loaded", menuFont)
				continue
			}
			g.menu = NewMenuUI(g.driver.World(), g.spawner.Menu, g.images, face, g.driver.RequestStart)
		case gameflow.Playing:
			g.menu = nil
		}
	}
}

// reloadSpecs applies edited prefabs to the running game. Sheet changes need a restart.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: prefab watcher: %v", err)
		}
	default:
	}

	w := g.driver.World()
	for _, name := range g.watcher.Pending() {
		switch name {
		case prefabs.PlayerFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.spawner.Player = spec
			if g.driver.State() == gameflow.Playing {
				if err := entity.RetunePlayer(w, spec); err != nil {
					log.Printf("game: reload %s: %v", name, err)
					continue
				}
			}
			log.Printf("game: reloaded %s", name)
		case prefabs.LevelFile:
			spec, err := prefabs.LoadLevelSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.spawner.Level = spec
			if err := entity.RetuneLevel(w, spec); err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.renderer = render.NewRenderer(g.images, palette(spec))
			log.Printf("game: reloaded %s", name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	state := g.driver.State()
	switch state {
	case gameflow.Loading:
		screen.Fill(colornames.Black)
		loaded, total := g.loader.Progress()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Loading %d/%d", loaded, total), 20, 20)
	case gameflow.MainMenu:
		g.renderer.Draw(screen, g.driver.World())
		if g.menu != nil {
			g.menu.Draw(screen)
		}
	case gameflow.Playing:
		g.renderer.Draw(screen, g.driver.World())
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    state: %s", ebiten.ActualFPS(), state))
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
