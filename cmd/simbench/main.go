// Headless stress and determinism harness for the simulation core: seeds a
// field of blocks, fires a stream of marbles, and runs the same scenario
// twice to confirm tick-for-tick reproducibility while timing throughput.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/geom"
	"smashout/internal/sim"
)

func main() {
	var (
		blocks = flag.Int("blocks", 200, "number of terrain blocks")
		ticks  = flag.Int("ticks", 3600, "fixed steps to simulate (3600 = 60s)")
		seed   = flag.Int64("seed", 42, "layout seed")
	)
	flag.Parse()

	counts := []int{}
	for n := *blocks; n > 0; n /= 4 {
		counts = append([]int{n}, counts...)
	}

	for _, n := range counts {
		runScenario(n, *ticks, *seed)
	}
}

func buildWorld(blocks int, seed int64) *sim.Sim {
	cfg := sim.DefaultConfig()
	cfg.MaxMarbles = 256

	rng := rand.New(rand.NewSource(seed))
	w := sim.NewWorld(mgl32.Vec3{0, 5, 40}, 0.6)

	// Floor plus a random field of destructible towers.
	w.AddBlock(geom.NewAABB(mgl32.Vec3{-50, -1, -50}, mgl32.Vec3{50, 0, 50}), 0, false)
	for i := 0; i < blocks; i++ {
		x := rng.Float32()*60 - 30
		z := rng.Float32()*60 - 30
		h := 1 + rng.Float32()*3
		tower := geom.AABBFromCenter(mgl32.Vec3{x, h / 2, z}, mgl32.Vec3{1.5, h, 1.5})
		w.AddBlock(tower, 1+rng.Intn(3), true)
	}

	return sim.New(w, cfg)
}

func runOnce(blocks, ticks int, seed int64) (sim.Snapshot, time.Duration) {
	s := buildWorld(blocks, seed)
	in := sim.Input{Aim: mgl32.Vec3{0, -0.2, -1}.Normalize()}

	start := time.Now()
	for i := 0; i < ticks; i++ {
		in.Shoot = i%10 == 0
		s.Tick(in)
	}
	return s.World.Snapshot(), time.Since(start)
}

func runScenario(blocks, ticks int, seed int64) {
	a, elapsed := runOnce(blocks, ticks, seed)
	b, _ := runOnce(blocks, ticks, seed)

	identical := a.Score == b.Score && len(a.Marbles) == len(b.Marbles)
	if identical {
		for i := range a.Marbles {
			if a.Marbles[i] != b.Marbles[i] {
				identical = false
				break
			}
		}
	}
	if identical {
		for i := range a.Blocks {
			if a.Blocks[i] != b.Blocks[i] {
				identical = false
				break
			}
		}
	}

	perTick := elapsed / time.Duration(ticks)
	status := "deterministic"
	if !identical {
		status = "DIVERGED"
	}
	fmt.Printf("%5d blocks: %6v/tick | score %6d | %3d live marbles | %s\n",
		blocks, perTick.Round(time.Microsecond), a.Score, len(a.Marbles), status)
}
