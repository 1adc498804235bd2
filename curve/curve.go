// Package curve evaluates the easing curves supported by easecalc.
package curve

import (
	"fmt"
	"math"

	"github.com/fogleman/ease"
)

// Kind identifies one of the supported easing curve shapes.
type Kind int

const (
	Linear Kind = iota
	InQuad
	OutQuad
	InOutQuad
)

var kindNames = [...]string{
	Linear:    "Linear",
	InQuad:    "InQuad",
	OutQuad:   "OutQuad",
	InOutQuad: "InOutQuad",
}

// Kinds lists every supported curve in display order.
func Kinds() []Kind {
	return []Kind{Linear, InQuad, OutQuad, InOutQuad}
}

// ParseKind looks up a curve by its exact, case-sensitive name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Config holds the parameters of an easing curve. Callers are expected to
// have checked Upper > Lower >= 0 and Duration > 0.
type Config struct {
	Kind     Kind
	Lower    int
	Upper    int
	Duration float64
}

// Diff is the distance between the two bounds.
func (c Config) Diff() int {
	return c.Upper - c.Lower
}

// Mid is the truncated midpoint between the bounds.
func (c Config) Mid() int {
	return c.Lower + c.Diff()/2
}

// Value computes the real-valued curve output at time t, where
// 0 <= t <= Duration.
//
// The products are converted explicitly so that they are rounded before the
// following addition and never fused into a multiply-add.
func (c Config) Value(t float64) float64 {
	lower := float64(c.Lower)
	upper := float64(c.Upper)
	diff := float64(c.Diff())
	progress := t / c.Duration

	switch c.Kind {
	case Linear:
		return lower + float64(diff*ease.Linear(progress))
	case InQuad:
		return lower + float64(diff*ease.InQuad(progress))
	case OutQuad:
		return upper - float64(diff*ease.InQuad(1-progress))
	case InOutQuad:
		// Each half covers Lower..Mid, so the sub-curve range is Mid-Lower.
		half := float64(c.Mid() - c.Lower)
		if t <= c.Duration/2 {
			return lower + float64(half*ease.InQuad(2*t/c.Duration))
		}
		remaining := 1 - (t-c.Duration/2)/(c.Duration*c.Duration/2)
		return upper - float64(half*ease.InQuad(remaining))
	}

	panic(fmt.Sprintf("curve: unknown kind %v", c.Kind))
}

// Evaluate returns the curve output at time t truncated toward zero.
func (c Config) Evaluate(t float64) int {
	return int(math.Trunc(c.Value(t)))
}

// Level is the output at time t mapped onto [0, 1], where 0 is Lower and 1
// is Upper.
func (c Config) Level(t float64) float64 {
	level := (c.Value(t) - float64(c.Lower)) / float64(c.Diff())
	return math.Max(0, math.Min(1, level))
}

func (c Config) String() string {
	return fmt.Sprintf("%v,x_t0=%d,x_tmax=%d,duration=%g", c.Kind, c.Lower, c.Upper, c.Duration)
}
