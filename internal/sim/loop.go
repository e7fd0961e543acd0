package sim

import "github.com/go-gl/mathgl/mgl32"

// Input is the per-tick player intent, sampled by the input adapter and
// consumed here as plain values.
type Input struct {
	Move  mgl32.Vec3 // player movement velocity, world units per second
	Aim   mgl32.Vec3 // unit aim direction
	Shoot bool
}

// maxFrameTime caps how much wall-clock time one frame may feed into the
// accumulator, so a long stall doesn't trigger a catch-up avalanche.
const maxFrameTime = 0.25

// Sim drives the world with a fixed timestep. Rendering frame time is fed
// into Advance; the accumulator converts it into zero or more fixed ticks,
// keeping physics deterministic regardless of frame rate.
type Sim struct {
	World  *World
	Config Config
	Events Bus

	accumulator float64
	simTime     float64
	ticks       uint64
}

// New wraps a world in a simulation driver.
func New(w *World, cfg Config) *Sim {
	return &Sim{World: w, Config: cfg}
}

// SimTime returns the total simulated seconds, always a whole number of
// fixed steps.
func (s *Sim) SimTime() float64 { return s.simTime }

// Ticks returns how many fixed steps have run.
func (s *Sim) Ticks() uint64 { return s.ticks }

// Advance feeds one frame's wall-clock duration into the fixed-step
// accumulator and runs as many ticks as it covers. Move is a velocity and
// holds for every tick; Shoot is an edge-triggered click and is consumed by
// the first tick, so a long frame never multiplies one click into several
// marbles. Returns all events produced this frame.
func (s *Sim) Advance(frameDt float64, in Input) []Event {
	if frameDt > maxFrameTime {
		frameDt = maxFrameTime
	}
	s.accumulator += frameDt

	var events []Event
	for s.accumulator >= FixedTimestep {
		s.accumulator -= FixedTimestep
		events = append(events, s.Tick(in)...)
		in.Shoot = false
	}
	return events
}

// Tick runs exactly one fixed step in the required order: input, integrate,
// detect, resolve, prune, emit. Nothing mutates the world outside this
// sequence, which is what makes a fixed input/dt run reproducible.
func (s *Sim) Tick(in Input) []Event {
	w := s.World
	cfg := s.Config
	dt := float32(FixedTimestep)
	var events []Event

	// 1. Apply input: move the kinematic player, spawn a marble on shoot.
	// Move is per-second, scaled here by the fixed step so player speed
	// never depends on how many ticks a frame covers. A dead player no
	// longer moves or shoots.
	if w.Player.Alive {
		w.Player.Body.Center = w.Player.Body.Center.Add(in.Move.Mul(dt))
		if in.Shoot && w.LiveMarbleCount() < cfg.MaxMarbles {
			aim := in.Aim
			if aim.Len() > 1e-6 {
				aim = aim.Normalize()
				spawn := w.Player.Body.Center.Add(aim.Mul(w.Player.Body.Radius + cfg.MarbleRadius + 0.1))
				m := w.SpawnMarble(spawn, aim.Mul(cfg.LaunchSpeed), cfg.MarbleRadius)
				events = append(events, Event{Kind: EventMarbleSpawned, Marble: m.ID, Pos: spawn})
			}
		}
	}

	// 2. Integrate all active marbles under gravity and drag.
	w.Integrate(cfg, dt)

	// 3. Detect contacts at post-integration positions.
	contacts := w.DetectContacts(cfg.MarbleContacts)

	// 4. Resolve in deterministic order, updating object states.
	events = append(events, w.ResolveContacts(cfg, contacts)...)

	// 5. Out-of-bounds marbles die, then the dead are pruned.
	for _, m := range w.Marbles {
		if m.Alive && !inBounds(m.Body.Center, cfg) {
			m.Alive = false
			events = append(events, Event{Kind: EventMarbleDestroyed, Marble: m.ID, Pos: m.Body.Center})
		}
	}
	w.pruneMarbles()

	// 6. Hand the tick's events to subscribers.
	s.Events.publish(events)

	s.simTime += FixedTimestep
	s.ticks++
	return events
}
