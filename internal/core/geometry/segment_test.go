package geometry

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentLength(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   float64
	}{
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"9-12-15", Pt(9, 12), Pt(18, 24), 15},
		{"15-20-25", Pt(29, 40), Pt(43, 60), 25},
		{"horizontal", Pt(-2, 1), Pt(5, 1), 7},
		{"vertical", Pt(0, -3), Pt(0, 3), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSegment(tt.p1, tt.p2).Length())
		})
	}
}

func TestSegmentDegenerate(t *testing.T) {
	for _, p := range []Point{Origin, Pt(3, 4), Pt(-1e9, 0.125)} {
		assert.Equal(t, 0.0, NewSegment(p, p).Length())
	}
}

func TestSegmentSymmetric(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0.3, 0.7), Pt(-11.1, 42)},
		{Pt(1e8, -1e8), Pt(3, 4)},
		{Pt(0.1, 0.2), Pt(0.3, 0.4)},
	}

	for _, pair := range pairs {
		forward := NewSegment(pair[0], pair[1]).Length()
		backward := NewSegment(pair[1], pair[0]).Length()
		assert.Equal(t, forward, backward)
	}
}

func TestSegmentLengthLargeCoordinates(t *testing.T) {
	s := NewSegment(Pt(-1e200, 0), Pt(1e200, 0))
	assert.Equal(t, 2e200, s.Length())

	diag := NewSegment(Pt(0, 0), Pt(3e200, 4e200))
	assert.InEpsilon(t, 5e200, diag.Length(), 1e-15)
	assert.Equal(t, diag.Length(), NewSegment(diag.P2(), diag.P1()).Length())
}

func TestSegmentLengthInfiniteEndpoint(t *testing.T) {
	s := NewSegment(Origin, Pt(math.Inf(1), 0))
	assert.True(t, math.IsInf(s.Length(), 1))
}

func TestSegmentEndpoints(t *testing.T) {
	s := NewSegment(Pt(1, 2), Pt(3, 4))
	assert.Equal(t, Pt(1, 2), s.P1())
	assert.Equal(t, Pt(3, 4), s.P2())
	assert.Equal(t, "(1, 2)-(3, 4)", s.String())
}

func TestLoggedLength(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	s := NewSegment(Pt(0, 0), Pt(3, 4))
	assert.Equal(t, 5.0, s.LoggedLength(logger))
	assert.Equal(t, "Length of segment between (0, 0) and (3, 4)\n", buf.String())
}

func TestLoggedLengthNilLogger(t *testing.T) {
	s := NewSegment(Pt(0, 0), Pt(3, 4))
	assert.Equal(t, 5.0, s.LoggedLength(nil))
}
