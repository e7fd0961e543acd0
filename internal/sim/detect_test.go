package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"smashout/internal/geom"
)

func testWorld() *World {
	return NewWorld(mgl32.Vec3{0, 50, 0}, 0.8)
}

func TestDetectMarbleBlockContact(t *testing.T) {
	w := testWorld()
	blockID := w.AddBlock(geom.NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}), 1, true)
	m := w.SpawnMarble(mgl32.Vec3{0.5, 0.5, 1.3}, mgl32.Vec3{0, 0, -1}, 0.5)

	contacts := w.DetectContacts(true)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.Kind != ContactMarbleBlock || c.Marble != m.ID || c.Block != blockID {
		t.Errorf("wrong contact identity: %+v", c)
	}
	if c.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("normal = %v, want +Z", c.Normal)
	}
}

func TestDetectSkipsFarMarbles(t *testing.T) {
	w := testWorld()
	w.AddBlock(geom.NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}), 1, true)
	w.SpawnMarble(mgl32.Vec3{0.5, 0.5, 10}, mgl32.Vec3{}, 0.5)

	if contacts := w.DetectContacts(true); len(contacts) != 0 {
		t.Errorf("expected no contacts, got %d", len(contacts))
	}
}

func TestDetectSkipsDestroyedBlocks(t *testing.T) {
	w := testWorld()
	id := w.AddBlock(geom.NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}), 1, true)
	w.SpawnMarble(mgl32.Vec3{0.5, 0.5, 1.3}, mgl32.Vec3{}, 0.5)

	w.BlockByID(id).State = BlockDestroyed
	if contacts := w.DetectContacts(true); len(contacts) != 0 {
		t.Errorf("destroyed block produced %d contacts", len(contacts))
	}
}

func TestDetectDeterministicOrderDeepestFirst(t *testing.T) {
	w := testWorld()
	// Two blocks; the marble penetrates the second one deeper.
	w.AddBlock(geom.NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}), 1, true)
	deep := w.AddBlock(geom.NewAABB(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 1, 1}), 1, true)
	w.SpawnMarble(mgl32.Vec3{1.1, 0.5, 1.3}, mgl32.Vec3{}, 0.5)

	contacts := w.DetectContacts(true)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Block != deep {
		t.Errorf("deepest contact should come first, got block %d", contacts[0].Block)
	}
	if contacts[0].Depth < contacts[1].Depth {
		t.Errorf("contacts not sorted by depth: %v then %v", contacts[0].Depth, contacts[1].Depth)
	}

	// Same world state must yield the identical sequence.
	again := w.DetectContacts(true)
	for i := range contacts {
		if contacts[i] != again[i] {
			t.Fatalf("detection not reproducible at index %d: %+v vs %+v", i, contacts[i], again[i])
		}
	}
}

func TestDetectMarbleMarbleRespectsFlag(t *testing.T) {
	w := testWorld()
	w.SpawnMarble(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{}, 0.5)
	w.SpawnMarble(mgl32.Vec3{0.6, 10, 0}, mgl32.Vec3{}, 0.5)

	if contacts := w.DetectContacts(false); len(contacts) != 0 {
		t.Errorf("marble-marble disabled but got %d contacts", len(contacts))
	}
	contacts := w.DetectContacts(true)
	if len(contacts) != 1 || contacts[0].Kind != ContactMarbleMarble {
		t.Fatalf("expected one marble-marble contact, got %+v", contacts)
	}
	if contacts[0].Marble >= contacts[0].OtherMarble {
		t.Error("marble pair should be ordered by ascending ID")
	}
}

func TestDetectPlayerBlockContact(t *testing.T) {
	w := NewWorld(mgl32.Vec3{0.5, 0.5, 1.2}, 0.5)
	id := w.AddBlock(geom.NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}), 1, false)

	contacts := w.DetectContacts(true)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 player contact, got %d", len(contacts))
	}
	if contacts[0].Kind != ContactPlayerBlock || contacts[0].Block != id {
		t.Errorf("wrong contact: %+v", contacts[0])
	}
}

func TestBlockGridQuerySortedByID(t *testing.T) {
	w := testWorld()
	// Blocks spread across several grid cells around the origin.
	for i := 0; i < 5; i++ {
		min := mgl32.Vec3{float32(i) * 2, 0, 0}
		w.AddBlock(geom.NewAABB(min, min.Add(mgl32.Vec3{1.5, 1, 1})), 1, true)
	}
	got := w.grid.query(geom.NewSphere(mgl32.Vec3{4, 0.5, 0.5}, 6))
	if len(got) == 0 {
		t.Fatal("query returned nothing")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("grid query not sorted: %d before %d", got[i-1].ID, got[i].ID)
		}
	}
}
