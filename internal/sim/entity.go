package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/geom"
)

type BlockID uint64
type MarbleID uint64

// BlockState is the per-block damage state machine. Destroyed is terminal:
// the block is skipped by detection but stays in the world as rubble until
// the end-of-tick cleanup decides otherwise.
type BlockState int

const (
	BlockIntact BlockState = iota
	BlockDamaged
	BlockDestroyed
)

func (s BlockState) String() string {
	switch s {
	case BlockIntact:
		return "Intact"
	case BlockDamaged:
		return "Damaged"
	case BlockDestroyed:
		return "Destroyed"
	}
	return "Unknown"
}

// Block is an axis-aligned terrain obstacle. Blocks never move.
type Block struct {
	ID           BlockID
	Bounds       geom.AABB
	Health       int
	Destructible bool
	State        BlockState
}

// Collidable reports whether the block still participates in detection.
func (b *Block) Collidable() bool {
	return b.State != BlockDestroyed
}

// applyHit absorbs one qualifying impact and returns true when the hit
// destroyed the block. Indestructible blocks never change state.
func (b *Block) applyHit() bool {
	if !b.Destructible || b.State == BlockDestroyed {
		return false
	}
	b.Health--
	if b.Health <= 0 {
		b.State = BlockDestroyed
		return true
	}
	b.State = BlockDamaged
	return false
}

// Marble is a fired projectile: a sphere plus velocity.
type Marble struct {
	ID       MarbleID
	Body     geom.Sphere
	Velocity mgl32.Vec3
	Alive    bool
}

// Mass derives from volume at the given density, so bigger marbles hit harder.
func (m *Marble) Mass(density float32) float32 {
	r := float64(m.Body.Radius)
	return float32(4.0 / 3.0 * math.Pi * r * r * r * float64(density))
}

// Player is the camera bounding sphere. It is kinematic: input moves it,
// physics never does.
type Player struct {
	Body  geom.Sphere
	Alive bool
}
