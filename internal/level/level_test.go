package level

import (
	"os"
	"path/filepath"
	"testing"

	"smashout/internal/sim"
)

func writeLevel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validLevel = `{
	"name": "corridor",
	"player_spawn": [0, 2, 10],
	"player_radius": 0.6,
	"blocks": [
		{"min": [-5, -1, -20], "max": [5, 0, 20], "health": 0, "destructible": false},
		{"min": [-1, 0, 0], "max": [1, 2, 1], "health": 3, "destructible": true}
	]
}`

func TestLoadValidLevel(t *testing.T) {
	f, err := Load(writeLevel(t, validLevel))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Name != "corridor" || len(f.Blocks) != 2 {
		t.Errorf("unexpected level: %+v", f)
	}
}

func TestLoadRejectsInvertedBlock(t *testing.T) {
	bad := `{
		"player_spawn": [0, 0, 0],
		"player_radius": 0.5,
		"blocks": [{"min": [1, 0, 0], "max": [0, 1, 1], "health": 1, "destructible": true}]
	}`
	if _, err := Load(writeLevel(t, bad)); err == nil {
		t.Error("inverted block corners should fail validation")
	}
}

func TestLoadRejectsZeroHealthDestructible(t *testing.T) {
	bad := `{
		"player_spawn": [0, 0, 0],
		"player_radius": 0.5,
		"blocks": [{"min": [0, 0, 0], "max": [1, 1, 1], "health": 0, "destructible": true}]
	}`
	if _, err := Load(writeLevel(t, bad)); err == nil {
		t.Error("destructible block with zero health should fail validation")
	}
}

func TestLoadRejectsBadRadius(t *testing.T) {
	bad := `{
		"player_spawn": [0, 0, 0],
		"player_radius": 0,
		"blocks": [{"min": [0, 0, 0], "max": [1, 1, 1], "health": 1, "destructible": true}]
	}`
	if _, err := Load(writeLevel(t, bad)); err == nil {
		t.Error("non-positive player radius should fail validation")
	}
}

func TestBuildWorld(t *testing.T) {
	f, err := Load(writeLevel(t, validLevel))
	if err != nil {
		t.Fatal(err)
	}
	w := f.Build()

	if len(w.Blocks) != 2 {
		t.Fatalf("world has %d blocks, want 2", len(w.Blocks))
	}
	if !w.Player.Alive {
		t.Error("player should start alive")
	}
	if w.Player.Body.Center.Z() != 10 {
		t.Errorf("player spawn z = %v, want 10", w.Player.Body.Center.Z())
	}
	for _, b := range w.Blocks {
		if b.State != sim.BlockIntact {
			t.Errorf("block %d should start Intact, got %v", b.ID, b.State)
		}
	}
	if w.Blocks[1].Health != 3 || !w.Blocks[1].Destructible {
		t.Errorf("destructible block lost attributes: %+v", w.Blocks[1])
	}
}

func TestFetchRequiresArgs(t *testing.T) {
	if err := Fetch("", "somewhere"); err == nil {
		t.Error("empty destination should error")
	}
	if err := Fetch("somewhere", ""); err == nil {
		t.Error("empty source should error")
	}
}
