package sim

import "smashout/internal/geom"

// ResolveContacts applies position and velocity corrections for each contact
// in the detector's deterministic order, updating block/marble/player state
// as it goes. It returns the events produced, in resolution order.
//
// Each contact is re-tested before it is resolved: resolving a deep contact
// moves the marble, which frequently clears its shallower contacts from the
// same tick, and re-checking keeps the correction idempotent.
func (w *World) ResolveContacts(cfg Config, contacts []Contact) []Event {
	var events []Event
	for _, c := range contacts {
		switch c.Kind {
		case ContactMarbleBlock:
			events = w.resolveMarbleBlock(cfg, c, events)
		case ContactMarbleMarble:
			events = w.resolveMarbleMarble(cfg, c, events)
		case ContactMarblePlayer:
			w.resolveMarblePlayer(cfg, c)
		case ContactPlayerBlock:
			events = w.resolvePlayerBlock(c, events)
		}
	}
	return events
}

func (w *World) resolveMarbleBlock(cfg Config, c Contact, events []Event) []Event {
	m := w.marbleByID(c.Marble)
	b := w.BlockByID(c.Block)
	if m == nil || b == nil || !m.Alive || !b.Collidable() {
		return events
	}

	hit, depth, normal, _ := geom.SphereAABB(m.Body, b.Bounds)
	if !hit {
		return events
	}

	// Pop the marble out along the normal so it never sinks in.
	m.Body.Center = m.Body.Center.Add(normal.Mul(depth))

	velAlongNormal := m.Velocity.Dot(normal)
	if velAlongNormal >= 0 {
		// Already separating; positional correction was enough.
		return events
	}
	impactSpeed := -velAlongNormal

	// Reflect about the normal, scaled by restitution.
	m.Velocity = m.Velocity.Sub(normal.Mul((1 + cfg.Restitution) * velAlongNormal))

	if impactSpeed < cfg.ImpactSpeed {
		// Soft graze: the marble just bounces.
		return events
	}

	// Qualifying impact: damage the block and shatter the marble.
	if b.Destructible {
		destroyed := b.applyHit()
		w.Score += cfg.ScorePerHit
		events = append(events, Event{Kind: EventBlockDamaged, Block: b.ID, Marble: m.ID, Pos: c.Point})
		if destroyed {
			w.Score += cfg.ScorePerDestroy
			events = append(events, Event{Kind: EventBlockDestroyed, Block: b.ID, Pos: c.Point})
		}
		events = append(events, Event{Kind: EventScoreChanged, Score: w.Score})
	}

	m.Alive = false
	events = append(events, Event{Kind: EventMarbleDestroyed, Marble: m.ID, Pos: m.Body.Center})
	return events
}

func (w *World) resolveMarbleMarble(cfg Config, c Contact, events []Event) []Event {
	a := w.marbleByID(c.Marble)
	b := w.marbleByID(c.OtherMarble)
	if a == nil || b == nil || !a.Alive || !b.Alive {
		return events
	}

	hit, depth, normal := geom.SphereOverlap(a.Body, b.Body)
	if !hit {
		return events
	}

	// Split the push by mass ratio so the light marble moves more.
	massA := a.Mass(cfg.Density)
	massB := b.Mass(cfg.Density)
	total := massA + massB
	a.Body.Center = a.Body.Center.Sub(normal.Mul(depth * massB / total))
	b.Body.Center = b.Body.Center.Add(normal.Mul(depth * massA / total))

	relVel := a.Velocity.Sub(b.Velocity)
	velAlongNormal := relVel.Dot(normal)
	if velAlongNormal <= 0 {
		// Moving apart already.
		return events
	}

	// Impulse: j = (1+e)·vn / (1/mA + 1/mB), purely elastic bookkeeping.
	// Marble-marble hits never score or damage.
	j := (1 + cfg.Restitution) * velAlongNormal / (1/massA + 1/massB)
	impulse := normal.Mul(j)
	a.Velocity = a.Velocity.Sub(impulse.Mul(1 / massA))
	b.Velocity = b.Velocity.Add(impulse.Mul(1 / massB))
	return events
}

// resolveMarblePlayer bounces a marble off the player sphere. The player is
// kinematic (effectively infinite mass), so the marble takes the full
// correction and the player does not move.
func (w *World) resolveMarblePlayer(cfg Config, c Contact) {
	m := w.marbleByID(c.Marble)
	if m == nil || !m.Alive || !w.Player.Alive {
		return
	}

	hit, depth, normal := geom.SphereOverlap(w.Player.Body, m.Body)
	if !hit {
		return
	}

	m.Body.Center = m.Body.Center.Add(normal.Mul(depth))

	velAlongNormal := m.Velocity.Dot(normal)
	if velAlongNormal < 0 {
		m.Velocity = m.Velocity.Sub(normal.Mul((1 + cfg.Restitution) * velAlongNormal))
	}
}

func (w *World) resolvePlayerBlock(c Contact, events []Event) []Event {
	if !w.Player.Alive {
		return events
	}
	b := w.BlockByID(c.Block)
	if b == nil || !b.Collidable() {
		return events
	}
	// Any terrain contact kills the player, exactly once.
	w.Player.Alive = false
	events = append(events, Event{Kind: EventPlayerDied, Block: b.ID, Pos: c.Point})
	return events
}
