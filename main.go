package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode and prefab hot reload")
	skipMenu := flag.Bool("skipmenu", false, "start playing as soon as assets are loaded")
	script := flag.String("script", "", "drive input from a tengo script in prefabs/scripts instead of the keyboard")
	flag.Parse()

	game, err := NewGame(Options{Debug: *debug, SkipMenu: *skipMenu, Script: *script})
	if err != nil {
		log.Fatalf("walker: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(int(game.width), int(game.height))
	ebiten.SetWindowTitle("walker")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("walker: %v", err)
	}
}
