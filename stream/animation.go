package stream

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/easecalc/curve"
)

// An Animation implements a way to render a specific animation.
type Animation interface {
	CalculateFrame(elapsed time.Duration) *Frame
	Length() time.Duration
}

// A LevelAnimation draws a curve's output as a bar that grows along the strip.
// Duration is read as seconds.
type LevelAnimation struct {
	config    curve.Config
	numPixels int
	from      colorful.Color
	to        colorful.Color
}

// NewLevelAnimation creates an instance of a LevelAnimation.
func NewLevelAnimation(c curve.Config, numPixels int, from, to colorful.Color) *LevelAnimation {
	a := new(LevelAnimation)
	a.config = c
	a.numPixels = numPixels
	a.from = from
	a.to = to
	return a
}

// Length is the curve duration as wall-clock time.
func (a *LevelAnimation) Length() time.Duration {
	return time.Duration(a.config.Duration * float64(time.Second))
}

// CalculateFrame creates a new Frame instance for the curve at elapsed,
// capped at the curve duration.
func (a *LevelAnimation) CalculateFrame(elapsed time.Duration) *Frame {
	t := math.Min(elapsed.Seconds(), a.config.Duration)

	f := NewFrame(a.numPixels)
	lit := int(math.Round(a.config.Level(t) * float64(a.numPixels)))
	for i := 0; i < lit; i++ {
		f.pixels[i] = a.from.BlendHcl(a.to, float64(i)/float64(a.numPixels))
	}

	return f
}
