package route

import (
	"fmt"
	"io"
	"strconv"

	"chosenoffset.com/segments/internal/core/geometry"
)

// Route is a built chain of points and the segments pairing them
type Route struct {
	Points   []geometry.Point
	Segments []geometry.Segment
}

// Build walks the config's steps from its start point.
// Points are paired two by two: (P0,P1), (P2,P3), ... A trailing odd point joins no segment.
func Build(cfg *Config) *Route {
	current := geometry.Pt(cfg.Start.X, cfg.Start.Y)
	points := make([]geometry.Point, 0, len(cfg.Steps)+1)
	points = append(points, current)

	for _, step := range cfg.Steps {
		current = current.Translated(step.DX, step.DY)
		points = append(points, current)
	}

	segments := make([]geometry.Segment, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		segments = append(segments, geometry.NewSegment(points[i], points[i+1]))
	}

	return &Route{Points: points, Segments: segments}
}

// Lengths returns the length of every segment, in order.
func (r *Route) Lengths() []float64 {
	lengths := make([]float64, len(r.Segments))
	for i, seg := range r.Segments {
		lengths[i] = seg.Length()
	}
	return lengths
}

// Report prints each point, then "s<n> length: <value>" for each segment.
// l, when non-nil, receives one line per measured segment.
func (r *Route) Report(w io.Writer, l geometry.Logger) error {
	for _, p := range r.Points {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return fmt.Errorf("failed to write point: %w", err)
		}
	}

	for i, seg := range r.Segments {
		length := seg.LoggedLength(l)
		if _, err := fmt.Fprintf(w, "s%d length: %s\n", i+1, strconv.FormatFloat(length, 'g', -1, 64)); err != nil {
			return fmt.Errorf("failed to write segment %d: %w", i+1, err)
		}
	}

	return nil
}
