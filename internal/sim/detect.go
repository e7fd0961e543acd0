package sim

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/geom"
)

func mglVec3(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

// ContactKind distinguishes the three pairings the detector produces.
type ContactKind int

const (
	ContactMarbleBlock ContactKind = iota
	ContactMarbleMarble
	ContactMarblePlayer
	ContactPlayerBlock
)

// Contact is the ephemeral result of one intersection test. Normal always
// points in the direction that pushes the primary body (the marble, or the
// player) out of the other one. Produced and consumed within a single tick.
type Contact struct {
	Kind        ContactKind
	Marble      MarbleID // primary marble; zero for player contacts
	OtherMarble MarbleID // second marble for marble-marble pairs
	Block       BlockID  // zero for marble-marble pairs
	Normal      mgl32.Vec3
	Depth       float32
	Point       mgl32.Vec3
}

// DetectContacts tests every live marble against the terrain (and other
// marbles when enabled) plus the player sphere against the terrain, at
// post-integration positions. Output order is deterministic: deepest
// contact first, ties broken by ascending IDs, so resolution never depends
// on map or grid iteration order.
func (w *World) DetectContacts(marbleContacts bool) []Contact {
	var contacts []Contact

	// Marble vs block.
	for _, m := range w.Marbles {
		if !m.Alive {
			continue
		}
		for _, b := range w.grid.query(m.Body) {
			hit, depth, normal, point := geom.SphereAABB(m.Body, b.Bounds)
			if !hit {
				continue
			}
			contacts = append(contacts, Contact{
				Kind:   ContactMarbleBlock,
				Marble: m.ID,
				Block:  b.ID,
				Normal: normal,
				Depth:  depth,
				Point:  point,
			})
		}
	}

	// Marble vs marble, optionally. Live counts are small enough for the
	// direct pair loop; pairs are visited in ascending ID order.
	if marbleContacts {
		for i := 0; i < len(w.Marbles); i++ {
			a := w.Marbles[i]
			if !a.Alive {
				continue
			}
			for j := i + 1; j < len(w.Marbles); j++ {
				b := w.Marbles[j]
				if !b.Alive {
					continue
				}
				hit, depth, normal := geom.SphereOverlap(a.Body, b.Body)
				if !hit {
					continue
				}
				// SphereOverlap's normal points a->b; flip it so it pushes
				// the primary marble out.
				mid := a.Body.Center.Add(normal.Mul(a.Body.Radius - depth/2))
				contacts = append(contacts, Contact{
					Kind:        ContactMarbleMarble,
					Marble:      a.ID,
					OtherMarble: b.ID,
					Normal:      normal.Mul(-1),
					Depth:       depth,
					Point:       mid,
				})
			}
		}
	}

	// Marble vs player. Marbles bounce off the player sphere; they never
	// harm it. Normal points from the player toward the marble.
	if w.Player.Alive {
		for _, m := range w.Marbles {
			if !m.Alive {
				continue
			}
			hit, depth, normal := geom.SphereOverlap(w.Player.Body, m.Body)
			if !hit {
				continue
			}
			point := w.Player.Body.Center.Add(normal.Mul(w.Player.Body.Radius))
			contacts = append(contacts, Contact{
				Kind:   ContactMarblePlayer,
				Marble: m.ID,
				Normal: normal,
				Depth:  depth,
				Point:  point,
			})
		}
	}

	// Player vs block. Any hit is terminal for the player; the resolver
	// decides that, the detector just reports geometry.
	if w.Player.Alive {
		for _, b := range w.grid.query(w.Player.Body) {
			hit, depth, normal, point := geom.SphereAABB(w.Player.Body, b.Bounds)
			if !hit {
				continue
			}
			contacts = append(contacts, Contact{
				Kind:   ContactPlayerBlock,
				Block:  b.ID,
				Normal: normal,
				Depth:  depth,
				Point:  point,
			})
		}
	}

	sortContacts(contacts)
	return contacts
}

// sortContacts orders deepest first so the dominant penetration is resolved
// before shallow ones, with full ID tie-breaking for reproducibility.
func sortContacts(contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i], contacts[j]
		if a.Depth != b.Depth {
			return a.Depth > b.Depth
		}
		if a.Marble != b.Marble {
			return a.Marble < b.Marble
		}
		if a.Block != b.Block {
			return a.Block < b.Block
		}
		return a.OtherMarble < b.OtherMarble
	})
}
