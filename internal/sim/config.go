package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// FixedTimestep is the simulation step in seconds, decoupled from frame rate.
const FixedTimestep = 1.0 / 60.0

// Config holds the tunable physics and gameplay parameters. The damage
// threshold and restitution are deliberately configuration, not constants.
type Config struct {
	Gravity    [3]float32 `json:"gravity"`
	LinearDrag float32    `json:"linear_drag"` // per-second velocity fraction lost to air
	Density    float32    `json:"density"`     // marble material density for mass

	Restitution    float32 `json:"restitution"`     // velocity fraction kept after a bounce
	ImpactSpeed    float32 `json:"impact_speed"`    // normal speed needed to damage a block
	LaunchSpeed    float32 `json:"launch_speed"`    // marble speed at spawn
	MarbleRadius   float32 `json:"marble_radius"`
	MaxMarbles     int     `json:"max_marbles"`
	MarbleContacts bool    `json:"marble_contacts"` // marble-marble collision on/off

	// Marbles outside these bounds are pruned.
	BoundsMin [3]float32 `json:"bounds_min"`
	BoundsMax [3]float32 `json:"bounds_max"`

	ScorePerHit     int `json:"score_per_hit"`
	ScorePerDestroy int `json:"score_per_destroy"`
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Gravity:         [3]float32{0, -9.8, 0},
		LinearDrag:      0.05,
		Density:         1.0,
		Restitution:     0.6,
		ImpactSpeed:     4.0,
		LaunchSpeed:     30,
		MarbleRadius:    0.5,
		MaxMarbles:      64,
		MarbleContacts:  true,
		BoundsMin:       [3]float32{-200, -50, -200},
		BoundsMax:       [3]float32{200, 200, 200},
		ScorePerHit:     10,
		ScorePerDestroy: 50,
	}
}

// LoadConfig reads tuning overrides from a JSON file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MarbleRadius <= 0 {
		return fmt.Errorf("marble_radius must be positive, got %v", c.MarbleRadius)
	}
	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("restitution must be in [0,1], got %v", c.Restitution)
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", c.Density)
	}
	for i := 0; i < 3; i++ {
		if c.BoundsMin[i] > c.BoundsMax[i] {
			return fmt.Errorf("bounds inverted on axis %d", i)
		}
	}
	return nil
}

func (c Config) gravity() mgl32.Vec3 {
	return mgl32.Vec3{c.Gravity[0], c.Gravity[1], c.Gravity[2]}
}
