// Package level loads JSON level files and builds the initial simulation
// world from them. Level data is the only file-format boundary the game
// has; everything here validates eagerly so the sim can assume clean
// geometry.
package level

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/geom"
	"smashout/internal/sim"
)

// BlockDef is one terrain block as stored on disk. Min/max corners rather
// than eight vertices: axis-alignment makes every intersection test an
// interval check, and there is no rotation state to keep redundant.
type BlockDef struct {
	Min          [3]float32 `json:"min"`
	Max          [3]float32 `json:"max"`
	Health       int        `json:"health"`
	Destructible bool       `json:"destructible"`
}

// File is the on-disk shape of a level.
type File struct {
	Name         string     `json:"name"`
	PlayerSpawn  [3]float32 `json:"player_spawn"`
	PlayerRadius float32    `json:"player_radius"`
	Blocks       []BlockDef `json:"blocks"`
}

// Load reads and validates a level file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return &f, nil
}

// Validate rejects geometry the sim would panic on, with block indexes in
// the message so bad levels are fixable.
func (f *File) Validate() error {
	if f.PlayerRadius <= 0 {
		return fmt.Errorf("player_radius must be positive, got %v", f.PlayerRadius)
	}
	if len(f.Blocks) == 0 {
		return fmt.Errorf("level has no blocks")
	}
	for i, b := range f.Blocks {
		for axis := 0; axis < 3; axis++ {
			if b.Min[axis] > b.Max[axis] {
				return fmt.Errorf("block %d: min > max on axis %d", i, axis)
			}
		}
		if b.Destructible && b.Health < 1 {
			return fmt.Errorf("block %d: destructible block needs health >= 1, got %d", i, b.Health)
		}
	}
	return nil
}

// Build constructs the initial world: all blocks intact, no marbles, the
// player at the spawn point.
func (f *File) Build() *sim.World {
	spawn := mgl32.Vec3{f.PlayerSpawn[0], f.PlayerSpawn[1], f.PlayerSpawn[2]}
	w := sim.NewWorld(spawn, f.PlayerRadius)
	for _, b := range f.Blocks {
		bounds := geom.NewAABB(
			mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]},
			mgl32.Vec3{b.Max[0], b.Max[1], b.Max[2]},
		)
		w.AddBlock(bounds, b.Health, b.Destructible)
	}
	return w
}
