// Package anim describes sprite animation clips and plays them back over time.
//
// A Clip is a named frame sequence with a per-frame delay and a loop flag. Clips
// are usually defined once per sprite sheet in a Table and shared by every sprite
// that plays them; a Player holds the per-sprite cursor.
package anim

import (
	"math"
	"unsafe"

	"github.com/plus3/spritecore/ident"
)

// Clip is a named animation: the order frames play in, how long each one is shown
// and whether playback wraps after the last frame.
//
// A Clip has two notions of sameness. Hash derives only from the identity token
// assigned at construction, while Equal compares the visible fields. Two clips
// built from the same frames slice with the same name, delay and loop flag are
// Equal but hash differently, so Hash must not be used to bucket clips by value.
type Clip struct {
	id     ident.Token
	name   string
	frames []int
	delay  float64
	looped bool
}

// NewClipWithLoop creates a clip that shows each frame for 1/framerate seconds.
// It panics if framerate is not positive and finite.
func NewClipWithLoop(name string, frames []int, framerate float64, looped bool) *Clip {
	if !validFramerate(framerate) {
		panic("anim: framerate must be positive")
	}
	return &Clip{
		id:     ident.Next(),
		name:   name,
		frames: frames,
		delay:  1.0 / framerate,
		looped: looped,
	}
}

// NewClip creates a looping clip that plays at the given framerate.
func NewClip(name string, frames []int, framerate float64) *Clip {
	return NewClipWithLoop(name, frames, framerate, true)
}

// NewStaticClip creates a looping clip with no delay. The delay can be set later;
// until then a Player advances it one frame per tick.
func NewStaticClip(name string, frames []int) *Clip {
	return &Clip{
		id:     ident.Next(),
		name:   name,
		frames: frames,
		looped: true,
	}
}

// Id returns the clip's identity token
func (c *Clip) Id() ident.Token {
	return c.id
}

func (c *Clip) Name() string {
	return c.name
}

// SetName changes the display name. Clips registered in a Table should be renamed
// through Table.Rename so lookups follow.
func (c *Clip) SetName(name string) {
	c.name = name
}

// Frames returns the frame sequence. The slice is shared, not copied.
func (c *Clip) Frames() []int {
	return c.frames
}

func (c *Clip) SetFrames(frames []int) {
	c.frames = frames
}

// Delay returns the seconds each frame is shown
func (c *Clip) Delay() float64 {
	return c.delay
}

func (c *Clip) SetDelay(delay float64) {
	c.delay = delay
}

func (c *Clip) Looped() bool {
	return c.looped
}

func (c *Clip) SetLooped(looped bool) {
	c.looped = looped
}

// Framerate returns frames per second, or 0 when the delay is not positive.
func (c *Clip) Framerate() float64 {
	if c.delay <= 0 {
		return 0
	}
	return 1.0 / c.delay
}

// Duration returns the seconds one pass over all frames takes.
func (c *Clip) Duration() float64 {
	return c.delay * float64(len(c.frames))
}

// Clone returns a copy with its own identity and its own frames slice.
func (c *Clip) Clone() *Clip {
	var frames []int
	if c.frames != nil {
		frames = make([]int, len(c.frames))
		copy(frames, c.frames)
	}
	return &Clip{
		id:     ident.Next(),
		name:   c.name,
		frames: frames,
		delay:  c.delay,
		looped: c.looped,
	}
}

func (c *Clip) String() string {
	return c.name
}

// Hash returns the identity hash. It never changes over the clip's lifetime.
func (c *Clip) Hash() uint64 {
	return c.id.Hash()
}

// Equal reports whether other has the same name, delay, loop flag and frames.
// Frames compare by reference: both clips must share the same backing slice,
// element-wise equal copies are not Equal.
func (c *Clip) Equal(other *Clip) bool {
	if c == nil || other == nil {
		return false
	}
	return c.delay == other.delay &&
		sameSlice(c.frames, other.frames) &&
		c.looped == other.looped &&
		c.name == other.name
}

func sameSlice(a, b []int) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

// validFramerate reports whether fps can produce a finite positive delay
func validFramerate(fps float64) bool {
	return fps > 0 && !math.IsInf(fps, 1)
}
