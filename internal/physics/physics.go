// Package physics provides collision tests for a wrapping world and a
// spatial grid for broad-phase queries.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Bounds is the size of a world whose edges wrap around.
type Bounds struct {
	W, H float64
}

// Delta returns the shortest signed offset from (x1,y1) to (x2,y2),
// crossing the wrapped edges when that is closer.
func (b Bounds) Delta(x1, y1, x2, y2 float64) (dx, dy float64) {
	return wrapDelta(x2-x1, b.W), wrapDelta(y2-y1, b.H)
}

// Distance is the wrapped distance between two points.
func (b Bounds) Distance(x1, y1, x2, y2 float64) float64 {
	dx, dy := b.Delta(x1, y1, x2, y2)
	return math.Hypot(dx, dy)
}

// PointInCircle is PointInCircle across wrapped edges.
func (b Bounds) PointInCircle(px, py, cx, cy, radius float64) bool {
	dx, dy := b.Delta(px, py, cx, cy)
	return dx*dx+dy*dy <= radius*radius
}

// CirclesOverlap is CirclesOverlap across wrapped edges.
func (b Bounds) CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx, dy := b.Delta(x1, y1, x2, y2)
	minDist := r1 + r2
	return dx*dx+dy*dy < minDist*minDist
}

// Wrap folds a position back into the world.
func (b Bounds) Wrap(x, y float64) (float64, float64) {
	return wrap(x, b.W), wrap(y, b.H)
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

func wrapDelta(d, size float64) float64 {
	if size <= 0 {
		return d
	}
	half := size / 2
	for d > half {
		d -= size
	}
	for d < -half {
		d += size
	}
	return d
}
