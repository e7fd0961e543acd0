// Package game owns the window and the frame loop, gluing the input,
// simulation, render, and audio layers together.
package game

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"smashout/internal/audio"
	"smashout/internal/input"
	"smashout/internal/level"
	"smashout/internal/render"
	"smashout/internal/sim"
)

type Game struct {
	sim      *sim.Sim
	sampler  *input.Sampler
	renderer *render.Renderer
	paused   bool
}

// New loads the level and tuning config and builds a ready-to-run game.
func New(levelPath, configPath string) (*Game, error) {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	}

	lvl, err := level.Load(levelPath)
	if err != nil {
		return nil, err
	}
	log.Printf("game: loaded level %q (%d blocks)", lvl.Name, len(lvl.Blocks))

	return &Game{
		sim:      sim.New(lvl.Build(), cfg),
		sampler:  input.NewSampler(),
		renderer: render.New(),
	}, nil
}

// Run opens the window and loops until the window closes. Pausing stops
// feeding frames into the simulation; the world is left untouched.
func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "smashout")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	snd := audio.Init()
	defer snd.Close()
	snd.Listen(&g.sim.Events)

	snap := g.sim.World.Snapshot()
	for !rl.WindowShouldClose() {
		frameDt := rl.GetFrameTime()

		if rl.IsKeyPressed(rl.KeyP) {
			g.paused = !g.paused
		}

		in := g.sampler.Sample()
		if !g.paused && snap.PlayerAlive {
			g.sim.Advance(float64(frameDt), in)
			snap = g.sim.World.Snapshot()
		}

		cam := render.Camera(snap.Player.Center, g.sampler.Aim())

		rl.BeginDrawing()
		rl.ClearBackground(rl.SkyBlue)
		g.renderer.Draw(snap, cam)
		render.DrawHUD(snap, g.paused)
		rl.EndDrawing()
	}
}
