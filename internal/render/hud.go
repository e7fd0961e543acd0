package render

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"smashout/internal/sim"
)

// DrawHUD overlays score and marble count, plus the game-over panel once
// the player is dead. Called between BeginDrawing/EndDrawing, after the 3D
// pass.
func DrawHUD(snap sim.Snapshot, paused bool) {
	gui.Panel(rl.NewRectangle(10, 10, 180, 64), "")
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), 20, 20, 20, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("Marbles: %d", len(snap.Marbles)), 20, 44, 20, rl.DarkGray)

	if paused {
		rl.DrawText("PAUSED", int32(rl.GetScreenWidth())/2-60, 40, 30, rl.Gray)
	}

	if !snap.PlayerAlive {
		w := int32(rl.GetScreenWidth())
		h := int32(rl.GetScreenHeight())
		rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, 0.5))
		gui.Panel(rl.NewRectangle(float32(w)/2-160, float32(h)/2-60, 320, 120), "Game Over")
		rl.DrawText(fmt.Sprintf("Final score: %d", snap.Score), w/2-120, h/2-10, 24, rl.RayWhite)
		rl.DrawText("Press ESC to quit", w/2-100, h/2+24, 18, rl.LightGray)
	}
}
