// Package geom holds the axis-aligned rectangle primitives shared by the grid
// engine and the placement resolver. All values live in one coordinate space
// whose origin is the top-left corner and whose y axis grows downwards.
package geom

import "math"

// Epsilon is the tolerance used by containment and equality checks.
const Epsilon = 1e-6

// Size is the natural, unconstrained size of a box.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// At places a size at the given top-left corner.
func (s Size) At(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}

func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether other lies entirely inside r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X-Epsilon &&
		other.Y >= r.Y-Epsilon &&
		other.Right() <= r.Right()+Epsilon &&
		other.Bottom() <= r.Bottom()+Epsilon
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overflow returns the total distance r sticks out of bounds on all four sides.
func (r Rect) Overflow(bounds Rect) float64 {
	var total float64
	total += math.Max(0, bounds.X-r.X)
	total += math.Max(0, bounds.Y-r.Y)
	total += math.Max(0, r.Right()-bounds.Right())
	total += math.Max(0, r.Bottom()-bounds.Bottom())
	return total
}

// ApproxEqual compares two rectangles within Epsilon.
func (r Rect) ApproxEqual(other Rect) bool {
	return Near(r.X, other.X) && Near(r.Y, other.Y) &&
		Near(r.Width, other.Width) && Near(r.Height, other.Height)
}

// Near reports whether a and b differ by at most Epsilon.
func Near(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Clamp limits v to [lo, hi]. When the range is empty lo wins.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
