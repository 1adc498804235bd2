package curve

// Point is a single evaluation of a curve.
type Point struct {
	Time  float64 `json:"time"`
	Value int     `json:"value"`
}

// Sample evaluates the curve at steps+1 evenly spaced times covering
// [0, Duration]. The last point is always at exactly Duration.
func (c Config) Sample(steps int) []Point {
	if steps < 1 {
		steps = 1
	}

	points := make([]Point, steps+1)
	for i := 0; i < steps; i++ {
		t := c.Duration * float64(i) / float64(steps)
		points[i] = Point{Time: t, Value: c.Evaluate(t)}
	}
	points[steps] = Point{Time: c.Duration, Value: c.Evaluate(c.Duration)}

	return points
}
