// Package input samples raylib keyboard/mouse state into plain per-tick
// values for the simulation. The sim never sees raylib types.
package input

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/sim"
)

// Sampler accumulates mouse-look angles across frames and converts the
// current device state into a sim.Input.
type Sampler struct {
	Yaw       float32 // degrees
	Pitch     float32 // degrees
	MoveSpeed float32 // units per second
	LookSpeed float32
}

func NewSampler() *Sampler {
	return &Sampler{
		Yaw:       -90,
		MoveSpeed: 8.0,
		LookSpeed: 0.1,
	}
}

// Sample reads this frame's device state. Move comes back as a per-second
// velocity; the fixed-step loop scales it by the tick duration, so player
// speed does not depend on the frame rate.
func (s *Sampler) Sample() sim.Input {
	mouseDelta := rl.GetMouseDelta()
	s.Yaw += mouseDelta.X * s.LookSpeed
	s.Pitch -= mouseDelta.Y * s.LookSpeed

	// Clamp pitch so the camera can't flip over.
	if s.Pitch > 89 {
		s.Pitch = 89
	}
	if s.Pitch < -89 {
		s.Pitch = -89
	}

	forward, right := s.directions()

	var move mgl32.Vec3
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeySpace) {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}
	if move.Len() > 0 {
		move = move.Normalize().Mul(s.MoveSpeed)
	}

	return sim.Input{
		Move:  move,
		Aim:   s.Aim(),
		Shoot: rl.IsMouseButtonPressed(rl.MouseLeftButton),
	}
}

// Aim returns the unit look direction from the current yaw/pitch.
func (s *Sampler) Aim() mgl32.Vec3 {
	yaw := float64(s.Yaw) * math.Pi / 180
	pitch := float64(s.Pitch) * math.Pi / 180
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
}

// directions returns the horizontal forward/right movement basis.
func (s *Sampler) directions() (forward, right mgl32.Vec3) {
	yaw := float64(s.Yaw) * math.Pi / 180
	forward = mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
	right = mgl32.Vec3{float32(-math.Sin(yaw)), 0, float32(math.Cos(yaw))}
	return
}
