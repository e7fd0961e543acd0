// Package audio maps simulation events to sound cues. It subscribes to the
// sim's event bus and expects nothing back from it.
package audio

import (
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"smashout/internal/sim"
)

// cueFiles maps event kinds to the sound files the game ships with.
// Missing files are skipped so the game runs silent without assets.
var cueFiles = map[sim.EventKind]string{
	sim.EventMarbleSpawned:  "assets/sounds/shoot.wav",
	sim.EventBlockDamaged:   "assets/sounds/crack.wav",
	sim.EventBlockDestroyed: "assets/sounds/shatter.wav",
	sim.EventPlayerDied:     "assets/sounds/gameover.wav",
}

// Player owns the audio device and the loaded cues.
type Player struct {
	cues map[sim.EventKind]rl.Sound
}

// Init opens the audio device and loads whatever cue files exist.
func Init() *Player {
	rl.InitAudioDevice()
	p := &Player{cues: make(map[sim.EventKind]rl.Sound)}
	for kind, path := range cueFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		p.cues[kind] = rl.LoadSound(path)
	}
	if len(p.cues) == 0 {
		log.Println("audio: no sound files found, running silent")
	}
	return p
}

// Listen subscribes the player to a simulation event bus.
func (p *Player) Listen(bus *sim.Bus) {
	bus.AddListener(p.handle)
}

func (p *Player) handle(ev sim.Event) {
	if snd, ok := p.cues[ev.Kind]; ok {
		rl.PlaySound(snd)
	}
}

// Close unloads cues and shuts the device down.
func (p *Player) Close() {
	for _, snd := range p.cues {
		rl.UnloadSound(snd)
	}
	rl.CloseAudioDevice()
}
