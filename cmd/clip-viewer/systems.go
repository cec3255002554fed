package main

import (
	"github.com/plus3/spritecore/anim"
	"github.com/plus3/spritecore/loop"
)

// Sprite is one preview slot playing a single clip
type Sprite struct {
	Name   string
	Player *anim.Player
	Slot   int
}

func (s *Sprite) String() string {
	return s.Name
}

// AnimateSystem advances every visible sprite's player
type AnimateSystem struct {
	Visible loop.Group[Sprite]
}

func (s *AnimateSystem) Execute(frame *loop.UpdateFrame[Sprite]) {
	for sprite := range s.Visible.All() {
		sprite.Player.Advance(frame.DeltaTime)
	}
}

// RestartSystem moves sprites whose one-shot clip finished into the finished
// group, then replays them after they have been held for restartDelay seconds.
type RestartSystem struct {
	Visible  loop.Group[Sprite]
	Finished loop.Group[Sprite]

	held map[*Sprite]float64
}

const restartDelay = 1.0

func (s *RestartSystem) Execute(frame *loop.UpdateFrame[Sprite]) {
	if s.held == nil {
		s.held = make(map[*Sprite]float64)
	}

	for sprite := range s.Visible.All() {
		if sprite.Player.Finished() {
			if _, ok := s.held[sprite]; !ok {
				s.held[sprite] = 0
				frame.Commands.Join(s.Finished.Id(), sprite)
			}
		}
	}

	for sprite := range s.Finished.All() {
		s.held[sprite] += frame.DeltaTime
		if s.held[sprite] < restartDelay && sprite.Player.Finished() {
			continue
		}
		delete(s.held, sprite)
		sprite.Player.Reset()
		frame.Commands.Leave(s.Finished.Id(), sprite)
	}
}
