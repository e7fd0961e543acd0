package sim

import (
	"math"
	"sort"

	"smashout/internal/geom"
)

// Spatial grid cell size. Blocks spanning multiple cells are inserted into
// every cell they touch.
const cellSize = 5.0

// cellKey addresses one cell of the spatial hash.
type cellKey struct {
	X, Y, Z int
}

func cellOf(v float32) int {
	return int(math.Floor(float64(v) / cellSize))
}

// blockGrid is a spatial hash over the static terrain. Built once as blocks
// are added; destroyed blocks are filtered at query time rather than
// removed, since destruction is rare and queries already check state.
type blockGrid struct {
	cells map[cellKey][]*Block
}

func newBlockGrid() *blockGrid {
	return &blockGrid{cells: make(map[cellKey][]*Block)}
}

func (g *blockGrid) insert(b *Block) {
	lo := b.Bounds.Min
	hi := b.Bounds.Max
	for x := cellOf(lo.X()); x <= cellOf(hi.X()); x++ {
		for y := cellOf(lo.Y()); y <= cellOf(hi.Y()); y++ {
			for z := cellOf(lo.Z()); z <= cellOf(hi.Z()); z++ {
				key := cellKey{x, y, z}
				g.cells[key] = append(g.cells[key], b)
			}
		}
	}
}

// query returns the collidable blocks whose cells overlap the sphere's
// bounding box, deduplicated and sorted by ID so narrow-phase order is
// deterministic.
func (g *blockGrid) query(s geom.Sphere) []*Block {
	lo := s.Center.Sub(mglVec3(s.Radius))
	hi := s.Center.Add(mglVec3(s.Radius))

	seen := make(map[BlockID]*Block)
	for x := cellOf(lo.X()); x <= cellOf(hi.X()); x++ {
		for y := cellOf(lo.Y()); y <= cellOf(hi.Y()); y++ {
			for z := cellOf(lo.Z()); z <= cellOf(hi.Z()); z++ {
				for _, b := range g.cells[cellKey{x, y, z}] {
					if b.Collidable() {
						seen[b.ID] = b
					}
				}
			}
		}
	}

	out := make([]*Block, 0, len(seen))
	for _, b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
