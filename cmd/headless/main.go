package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/walker/assets"
	"github.com/milk9111/walker/common"
	"github.com/milk9111/walker/ecs"
	"github.com/milk9111/walker/ecs/component"
	"github.com/milk9111/walker/ecs/entity"
	"github.com/milk9111/walker/gameflow"
	"github.com/milk9111/walker/input"
)

// headless replays the simulation without a window, driving input from a
// tengo script, and prints the player and camera every few ticks.
func main() {
	ticks := flag.Int("ticks", 600, "ticks to simulate after the menu")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	script := flag.String("script", "walk.tengo", "input script in prefabs/scripts")
	every := flag.Int("every", 30, "print every n ticks")
	flag.Parse()

	source, err := input.LoadScript(*script)
	if err != nil {
		log.Fatalf("headless: %v", err)
	}

	loader := assets.NewLoader()
	spawner, err := gameflow.LoadEntitySpawner(loader)
	if err != nil {
		log.Fatalf("headless: %v", err)
	}
	loader.Declare(entity.SheetDeclaration(spawner.Player))

	w := ecs.NewWorld()
	driver, err := gameflow.NewDriver(w, loader, spawner, source)
	if err != nil {
		log.Fatalf("headless: %v", err)
	}

	step := common.SanitizeDelta(*dt)
	for driver.State() != gameflow.MainMenu {
		if err := driver.Tick(step); err != nil {
			log.Fatalf("headless: %v", err)
		}
	}
	driver.RequestStart()

	fmt.Println("tick\tplayer_x\tvelocity_x\tframe\tcamera_x")
	for i := 0; i < *ticks; i++ {
		if err := driver.Tick(step); err != nil {
			log.Fatalf("headless: %v", err)
		}
		if *every > 0 && i%*every != 0 {
			continue
		}

		player, err := w.Single(component.PlayerTagComponent.Kind())
		if err != nil {
			log.Fatalf("headless: %v", err)
		}
		camera, err := w.Single(component.CameraTagComponent.Kind())
		if err != nil {
			log.Fatalf("headless: %v", err)
		}
		pos := ecs.MustGet(w, player, component.TransformComponent.Kind())
		vel := ecs.MustGet(w, player, component.VelocityComponent.Kind())
		anim := ecs.MustGet(w, player, component.AnimationComponent.Kind())
		cam := ecs.MustGet(w, camera, component.TransformComponent.Kind())
		fmt.Printf("%d\t%.2f\t%.2f\t%d\t%.2f\n", w.Ticks(), pos.X, vel.X, anim.Frame, cam.X)
	}

	for _, ev := range w.Events().Drain() {
		if change, ok := ev.Data.(gameflow.StateChange); ok {
			log.Printf("headless: %s -> %s", change.From, change.To)
		}
	}
}
