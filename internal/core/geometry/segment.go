package geometry

import "math"

// NewSegment joins two points. Degenerate segments (p1 == p2) are allowed.
func NewSegment(p1, p2 Point) Segment {
	return Segment{p1: p1, p2: p2}
}

// P1 returns the first endpoint.
func (s Segment) P1() Point { return s.p1 }

// P2 returns the second endpoint.
func (s Segment) P2() Point { return s.p2 }

// Length returns the Euclidean distance between the endpoints
func (s Segment) Length() float64 {
	return Distance(s.p1, s.p2)
}

// LoggedLength is Length with a descriptive line sent to l first. A nil l stays silent.
func (s Segment) LoggedLength(l Logger) float64 {
	if l != nil {
		l.Printf("Length of segment between %s and %s", s.p1, s.p2)
	}
	return s.Length()
}

func (s Segment) String() string {
	return s.p1.String() + "-" + s.p2.String()
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.x - a.x
	dy := b.y - a.y
	d := math.Sqrt(dx*dx + dy*dy)
	if math.IsInf(d, 0) {
		// squares overflowed; Hypot scales before squaring
		return math.Hypot(dx, dy)
	}
	return d
}
