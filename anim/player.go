package anim

import "math"

// State is the playback state of a Player
type State uint8

const (
	Playing State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Player advances a frame cursor through a Clip as game time passes. Each sprite
// owns its own Player while the Clip itself may be shared.
//
// The clip's frames, delay and loop flag are read on every Advance, so live edits
// to a shared clip take effect on the next tick.
type Player struct {
	clip    *Clip
	cursor  int
	elapsed float64
	state   State
	loops   int

	// OnLoop is called each time a looped clip wraps back to its first frame.
	OnLoop func(p *Player)
	// OnFinish is called once when a non-looped clip stops on its last frame.
	OnFinish func(p *Player)
}

// NewPlayer creates a player positioned on the first frame of clip.
func NewPlayer(clip *Clip) *Player {
	return &Player{clip: clip}
}

// Clip returns the clip being played
func (p *Player) Clip() *Clip {
	return p.clip
}

// Play switches to clip, restarting from the first frame. Playing the clip that
// is already loaded does nothing.
func (p *Player) Play(clip *Clip) {
	if p.clip == clip {
		return
	}
	p.clip = clip
	p.Reset()
}

// Reset rewinds to the first frame and resumes playback.
func (p *Player) Reset() {
	p.cursor = 0
	p.elapsed = 0
	p.loops = 0
	p.state = Playing
}

func (p *Player) State() State {
	return p.state
}

// Finished reports whether a non-looped clip has stopped on its last frame.
func (p *Player) Finished() bool {
	return p.state == Stopped
}

// Cursor returns the current index into the clip's frames, clamped to the
// frames the clip has now.
func (p *Player) Cursor() int {
	if p.clip == nil {
		return 0
	}
	if n := len(p.clip.frames); p.cursor >= n && n > 0 {
		return n - 1
	}
	return p.cursor
}

// Loops returns how many times the clip wrapped since the last Reset.
func (p *Player) Loops() int {
	return p.loops
}

// Frame returns the frame index to draw. ok is false when there is no clip or
// the clip has no frames.
func (p *Player) Frame() (frame int, ok bool) {
	if p.clip == nil || len(p.clip.frames) == 0 {
		return 0, false
	}
	return p.clip.frames[p.Cursor()], true
}

const stepEpsilon = 1e-9

// Advance moves playback forward by dt seconds.
//
// A clip with a zero or negative delay advances exactly one frame per call.
func (p *Player) Advance(dt float64) {
	if p.clip == nil || p.state == Stopped || !(dt > 0) {
		return
	}

	delay := p.clip.delay
	if delay <= 0 {
		p.step(1)
		return
	}

	p.elapsed += dt
	// tolerance so that summed ticks landing on a frame boundary count as reaching it
	steps := math.Floor(p.elapsed/delay + stepEpsilon)
	if steps < 1 {
		return
	}
	p.elapsed -= steps * delay
	if p.elapsed < 0 {
		p.elapsed = 0
	}
	p.step(int(min(steps, math.MaxInt32)))
}

func (p *Player) step(steps int) {
	n := len(p.clip.frames)
	if n == 0 {
		return
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}

	target := p.cursor + steps
	if target < n {
		p.cursor = target
		return
	}

	if p.clip.looped {
		wraps := target / n
		p.cursor = target % n
		p.loops += wraps
		if p.OnLoop != nil {
			for i := 0; i < wraps; i++ {
				p.OnLoop(p)
			}
		}
		return
	}

	p.cursor = n - 1
	p.elapsed = 0
	p.state = Stopped
	if p.OnFinish != nil {
		p.OnFinish(p)
	}
}
