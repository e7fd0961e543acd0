package sim

import "github.com/go-gl/mathgl/mgl32"

// EventKind identifies what happened during a tick. Events flow one way:
// the sim emits, the presentation layer (renderer/audio/HUD) consumes.
type EventKind int

const (
	EventMarbleSpawned EventKind = iota
	EventMarbleDestroyed
	EventBlockDamaged
	EventBlockDestroyed
	EventScoreChanged
	EventPlayerDied
)

func (k EventKind) String() string {
	switch k {
	case EventMarbleSpawned:
		return "MarbleSpawned"
	case EventMarbleDestroyed:
		return "MarbleDestroyed"
	case EventBlockDamaged:
		return "BlockDamaged"
	case EventBlockDestroyed:
		return "BlockDestroyed"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventPlayerDied:
		return "PlayerDied"
	}
	return "Unknown"
}

// Event carries the identifiers and position relevant to its kind; unused
// fields are zero.
type Event struct {
	Kind   EventKind
	Marble MarbleID
	Block  BlockID
	Score  int
	Pos    mgl32.Vec3
}

// Bus is a multicast event dispatcher. Listeners run synchronously in
// subscription order at the end of the tick that produced the event.
type Bus struct {
	listeners []func(Event)
}

// AddListener registers a callback invoked for every published event.
func (b *Bus) AddListener(fn func(Event)) {
	if fn == nil {
		return
	}
	b.listeners = append(b.listeners, fn)
}

// RemoveAllListeners clears all listeners.
func (b *Bus) RemoveAllListeners() {
	b.listeners = nil
}

func (b *Bus) publish(events []Event) {
	for _, ev := range events {
		for _, fn := range b.listeners {
			fn(ev)
		}
	}
}
