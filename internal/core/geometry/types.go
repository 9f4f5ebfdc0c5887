// Package geometry holds the planar value types used by the segment demo.
package geometry

// Point represents a 2D point in space
type Point struct {
	x, y float64
}

// Segment represents a straight line between two points
type Segment struct {
	p1, p2 Point
}

// Origin is the zero value of Point.
var Origin = Point{}

// Logger receives descriptive lines from LoggedLength. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}
