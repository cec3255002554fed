package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/spritecore/loop"
)

// Particle is the churned entity. slot is its index in World.particles.
type Particle struct {
	Id   int
	TTL  float64
	slot int
}

func (p *Particle) String() string {
	return fmt.Sprintf("p%d", p.Id)
}

// World owns every live particle; groups only reference them weakly.
type World struct {
	particles []*Particle
	nextId    int
	maxTTL    float64
}

func (w *World) Spawn() *Particle {
	w.nextId++
	p := &Particle{
		Id:   w.nextId,
		TTL:  rand.Float64() * w.maxTTL,
		slot: len(w.particles),
	}
	w.particles = append(w.particles, p)
	return p
}

func (w *World) Release(p *Particle) {
	last := w.particles[len(w.particles)-1]
	w.particles[p.slot] = last
	last.slot = p.slot
	w.particles = w.particles[:len(w.particles)-1]
}

func (w *World) Len() int {
	return len(w.particles)
}

// SpawnSystem creates Rate particles per frame and sorts them by parity
type SpawnSystem struct {
	Alive loop.Group[Particle]
	Even  loop.Group[Particle]
	Odd   loop.Group[Particle]

	World *World
	Rate  int
}

func (s *SpawnSystem) Execute(frame *loop.UpdateFrame[Particle]) {
	for range s.Rate {
		p := s.World.Spawn()
		frame.Commands.Join(s.Alive.Id(), p)
		if p.Id%2 == 0 {
			frame.Commands.Join(s.Even.Id(), p)
		} else {
			frame.Commands.Join(s.Odd.Id(), p)
		}
	}
}

// DecaySystem despawns particles whose TTL ran out
type DecaySystem struct {
	Alive loop.Group[Particle]
	World *World
}

func (s *DecaySystem) Execute(frame *loop.UpdateFrame[Particle]) {
	for p := range s.Alive.All() {
		p.TTL -= frame.DeltaTime
		if p.TTL > 0 {
			continue
		}
		frame.Commands.Despawn(p)
		frame.Commands.Defer(func() {
			s.World.Release(p)
		})
	}
}

// SwapSystem moves a rotating sixteenth of the even group into the odd group
type SwapSystem struct {
	Even loop.Group[Particle]
	Odd  loop.Group[Particle]

	tick int
}

func (s *SwapSystem) Execute(frame *loop.UpdateFrame[Particle]) {
	s.tick++
	for p := range s.Even.All() {
		if p.Id%16 != s.tick%16 {
			continue
		}
		frame.Commands.Leave(s.Even.Id(), p)
		frame.Commands.Join(s.Odd.Id(), p)
	}
}
