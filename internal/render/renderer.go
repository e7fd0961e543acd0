// Package render draws simulation snapshots with raylib. It is strictly
// one-way: it reads snapshots and never feeds anything back into physics.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/sim"
)

func rlVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Renderer draws the world as untextured primitives: blocks as cubes
// tinted by damage state, marbles as spheres.
type Renderer struct {
	marbleColor rl.Color
}

func New() *Renderer {
	return &Renderer{marbleColor: rl.Orange}
}

// blockColor picks the tint for a block's current state. Rubble is drawn
// faded so the player can see where the destruction happened.
func blockColor(b sim.BlockSnapshot) rl.Color {
	switch b.State {
	case sim.BlockDestroyed:
		return rl.Fade(rl.DarkGray, 0.25)
	case sim.BlockDamaged:
		return rl.Brown
	default:
		if b.Destructible {
			return rl.Beige
		}
		return rl.Gray
	}
}

// Draw renders one frame of the world from the player's viewpoint.
func (r *Renderer) Draw(snap sim.Snapshot, cam rl.Camera3D) {
	rl.BeginMode3D(cam)

	for _, b := range snap.Blocks {
		center := rlVec(b.Bounds.Center())
		size := rlVec(b.Bounds.Size())
		rl.DrawCubeV(center, size, blockColor(b))
		if b.State != sim.BlockDestroyed {
			rl.DrawCubeWiresV(center, size, rl.DarkGray)
		}
	}

	for _, m := range snap.Marbles {
		rl.DrawSphere(rlVec(m.Center), m.Radius, r.marbleColor)
	}

	rl.DrawGrid(40, 1.0)
	rl.EndMode3D()
}

// Camera builds the raylib camera from the player sphere and aim direction.
func Camera(playerPos, aim mgl32.Vec3) rl.Camera3D {
	return rl.Camera3D{
		Position:   rlVec(playerPos),
		Target:     rlVec(playerPos.Add(aim)),
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}
