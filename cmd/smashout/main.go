package main

import (
	"flag"
	"log"

	"smashout/internal/game"
)

func main() {
	var (
		levelPath  = flag.String("level", "assets/levels/arena.json", "level file to play")
		configPath = flag.String("config", "", "optional physics tuning overrides (JSON)")
	)
	flag.Parse()

	g, err := game.New(*levelPath, *configPath)
	if err != nil {
		log.Fatalf("smashout: %v", err)
	}
	g.Run()
}
