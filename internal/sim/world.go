package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/geom"
)

// World owns every block, every live marble, and the single player sphere.
// Only the simulation loop mutates it; everyone else gets Snapshots.
type World struct {
	Blocks  []*Block
	Marbles []*Marble
	Player  Player
	Score   int

	blocksByID map[BlockID]*Block
	grid       *blockGrid
	nextBlock  BlockID
	nextMarble MarbleID
}

// NewWorld creates an empty world with the player at the given position.
func NewWorld(playerPos mgl32.Vec3, playerRadius float32) *World {
	return &World{
		Player:     Player{Body: geom.NewSphere(playerPos, playerRadius), Alive: true},
		blocksByID: make(map[BlockID]*Block),
		grid:       newBlockGrid(),
	}
}

// AddBlock validates and inserts a terrain block, returning its ID.
// Bounds validation happens in geom.NewAABB, which panics on inverted
// corners; level loading validates earlier and returns errors instead.
func (w *World) AddBlock(bounds geom.AABB, health int, destructible bool) BlockID {
	w.nextBlock++
	b := &Block{
		ID:           w.nextBlock,
		Bounds:       bounds,
		Health:       health,
		Destructible: destructible,
		State:        BlockIntact,
	}
	w.Blocks = append(w.Blocks, b)
	w.blocksByID[b.ID] = b
	w.grid.insert(b)
	return b.ID
}

// BlockByID returns the block with the given ID, or nil.
func (w *World) BlockByID(id BlockID) *Block {
	return w.blocksByID[id]
}

// SpawnMarble launches a marble from pos with the given velocity.
func (w *World) SpawnMarble(pos, velocity mgl32.Vec3, radius float32) *Marble {
	w.nextMarble++
	m := &Marble{
		ID:       w.nextMarble,
		Body:     geom.NewSphere(pos, radius),
		Velocity: velocity,
		Alive:    true,
	}
	w.Marbles = append(w.Marbles, m)
	return m
}

// marbleByID does a linear scan; live marble counts are small.
func (w *World) marbleByID(id MarbleID) *Marble {
	for _, m := range w.Marbles {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// pruneMarbles drops dead marbles from the active set, preserving order.
func (w *World) pruneMarbles() {
	live := w.Marbles[:0]
	for _, m := range w.Marbles {
		if m.Alive {
			live = append(live, m)
		}
	}
	// Clear the tail so dead marbles can be collected.
	for i := len(live); i < len(w.Marbles); i++ {
		w.Marbles[i] = nil
	}
	w.Marbles = live
}

// LiveMarbleCount returns the number of active marbles.
func (w *World) LiveMarbleCount() int {
	n := 0
	for _, m := range w.Marbles {
		if m.Alive {
			n++
		}
	}
	return n
}

// BlockSnapshot is a read-only copy of one block for the presentation layer.
type BlockSnapshot struct {
	ID           BlockID
	Bounds       geom.AABB
	Health       int
	Destructible bool
	State        BlockState
}

// MarbleSnapshot is a read-only copy of one marble.
type MarbleSnapshot struct {
	ID       MarbleID
	Center   mgl32.Vec3
	Radius   float32
	Velocity mgl32.Vec3
}

// Snapshot is the immutable world view handed to the renderer after each
// tick. It shares nothing with the live World.
type Snapshot struct {
	Blocks      []BlockSnapshot
	Marbles     []MarbleSnapshot
	Player      geom.Sphere
	PlayerAlive bool
	Score       int
}

// Snapshot copies the world state. Destroyed blocks are included so the
// renderer can draw rubble; callers filter by State as needed.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Blocks:      make([]BlockSnapshot, 0, len(w.Blocks)),
		Marbles:     make([]MarbleSnapshot, 0, len(w.Marbles)),
		Player:      w.Player.Body,
		PlayerAlive: w.Player.Alive,
		Score:       w.Score,
	}
	for _, b := range w.Blocks {
		snap.Blocks = append(snap.Blocks, BlockSnapshot{
			ID:           b.ID,
			Bounds:       b.Bounds,
			Health:       b.Health,
			Destructible: b.Destructible,
			State:        b.State,
		})
	}
	for _, m := range w.Marbles {
		if !m.Alive {
			continue
		}
		snap.Marbles = append(snap.Marbles, MarbleSnapshot{
			ID:       m.ID,
			Center:   m.Body.Center,
			Radius:   m.Body.Radius,
			Velocity: m.Velocity,
		})
	}
	return snap
}

func (w *World) String() string {
	return fmt.Sprintf("World{blocks=%d marbles=%d score=%d}", len(w.Blocks), len(w.Marbles), w.Score)
}
