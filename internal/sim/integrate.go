package sim

import "github.com/go-gl/mathgl/mgl32"

// Integrate advances every live marble by one step of semi-implicit Euler:
// velocity first, then position from the new velocity. Gravity scales
// slightly with marble radius so heavy marbles drop faster, and linear drag
// bleeds off a per-second fraction of velocity. The player sphere is
// kinematic and untouched here.
func (w *World) Integrate(cfg Config, dt float32) {
	gravity := cfg.gravity()
	for _, m := range w.Marbles {
		if !m.Alive {
			continue
		}

		scale := 1 + (m.Body.Radius-0.1)*0.5
		accel := gravity.Mul(scale)

		if cfg.LinearDrag > 0 {
			accel = accel.Sub(m.Velocity.Mul(cfg.LinearDrag))
		}

		m.Velocity = m.Velocity.Add(accel.Mul(dt))
		m.Body.Center = m.Body.Center.Add(m.Velocity.Mul(dt))
	}
}

// inBounds reports whether a point lies inside the playable volume.
func inBounds(p mgl32.Vec3, cfg Config) bool {
	for i := 0; i < 3; i++ {
		if p[i] < cfg.BoundsMin[i] || p[i] > cfg.BoundsMax[i] {
			return false
		}
	}
	return true
}
