package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPoint is returned by ParsePoint when the input is not in the "(x, y)" form.
var ErrMalformedPoint = errors.New("malformed point")

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{x: x, y: y} }

// X returns the horizontal coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the vertical coordinate.
func (p Point) Y() float64 { return p.y }

// Translated returns a copy of this point moved by (dx, dy).
func (p Point) Translated(dx, dy float64) Point {
	return Point{x: p.x + dx, y: p.y + dy}
}

// Equal reports whether both coordinates are identical.
func (p Point) Equal(other Point) bool {
	return p.x == other.x && p.y == other.y
}

// String renders the point as "(x, y)" using the shortest exact form of each coordinate
func (p Point) String() string {
	return "(" + formatCoord(p.x) + ", " + formatCoord(p.y) + ")"
}

// ParsePoint reads a point in the form produced by String. The round trip is
// exact for finite coordinates; "NaN" and "Inf" are accepted as strconv does.
func ParsePoint(s string) (Point, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return Point{}, fmt.Errorf("%w: %q is not parenthesised", ErrMalformedPoint, s)
	}

	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: %q needs exactly two coordinates", ErrMalformedPoint, s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: x coordinate: %w", ErrMalformedPoint, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: y coordinate: %w", ErrMalformedPoint, err)
	}

	return Point{x: x, y: y}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
