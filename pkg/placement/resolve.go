package placement

import (
	"github.com/alexisbeaulieu97/antui/pkg/geom"
)

// DefaultArrowSize is the arrow size used when a request asks for an arrow
// without sizing it.
const DefaultArrowSize = 8

// Request describes where a floating box would like to go.
type Request struct {
	Preferred Placement
	// Offset is the gap between the anchor edge and the box edge.
	Offset float64
	// Arrow reserves ArrowSize extra space between anchor and box.
	Arrow     bool
	ArrowSize float64
	// Boundary is the viewport the box must stay inside.
	Boundary geom.Rect
}

func (r Request) arrowSize() float64 {
	if r.ArrowSize > 0 {
		return r.ArrowSize
	}
	return DefaultArrowSize
}

// Gap is the distance between the anchor and the box along the primary axis.
func (r Request) Gap() float64 {
	if r.Arrow {
		return r.Offset + r.arrowSize()
	}
	return r.Offset
}

// Result is the resolved box. X and Y are the top-left corner in the same
// coordinate space as the anchor and boundary.
type Result struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Placement is the placement actually used.
	Placement Placement `json:"placement"`
	// ArrowOffset is the signed distance from the middle of the box edge
	// facing the anchor to the point the arrow should render at.
	ArrowOffset float64 `json:"arrowOffset"`

	Flipped bool `json:"flipped,omitempty"`
	Clamped bool `json:"clamped,omitempty"`
}

// Rect returns the resolved box.
func (r Result) Rect() geom.Rect {
	return geom.NewRect(r.X, r.Y, r.Width, r.Height)
}

// Naive positions content flush against the anchor for placement p, ignoring
// any boundary.
func Naive(anchor geom.Rect, content geom.Size, p Placement, gap float64) geom.Rect {
	p = p.normalize()
	var x, y float64

	switch p.Side() {
	case SideTop:
		y = anchor.Y - gap - content.Height
	case SideBottom:
		y = anchor.Bottom() + gap
	case SideLeft:
		x = anchor.X - gap - content.Width
	case SideRight:
		x = anchor.Right() + gap
	}

	if p.Side().Vertical() {
		switch p.Alignment() {
		case AlignStart:
			x = anchor.X
		case AlignEnd:
			x = anchor.Right() - content.Width
		default:
			x = anchor.CenterX() - content.Width/2
		}
	} else {
		switch p.Alignment() {
		case AlignStart:
			y = anchor.Y
		case AlignEnd:
			y = anchor.Bottom() - content.Height
		default:
			y = anchor.CenterY() - content.Height/2
		}
	}

	return content.At(x, y)
}

// Resolve computes the on-screen box for a floating element. It tries the
// preferred placement, then its mirror, and finally clamps the preferred box
// into the boundary. It never fails and is a pure function of its inputs.
func Resolve(anchor geom.Rect, content geom.Size, req Request) Result {
	preferred := req.Preferred.normalize()
	gap := req.Gap()

	box := Naive(anchor, content, preferred, gap)
	result := Result{Placement: preferred}

	switch {
	case req.Boundary.Contains(box):
	case req.Boundary.Contains(Naive(anchor, content, preferred.Mirror(), gap)):
		box = Naive(anchor, content, preferred.Mirror(), gap)
		result.Placement = preferred.Mirror()
		result.Flipped = true
	default:
		box = clampInto(box, req.Boundary)
		result.Clamped = true
	}

	result.X, result.Y = box.X, box.Y
	result.Width, result.Height = box.Width, box.Height
	result.ArrowOffset = arrowOffset(anchor, box, result.Placement, req.arrowSize())
	return result
}

func clampInto(box, bounds geom.Rect) geom.Rect {
	box.X = geom.Clamp(box.X, bounds.X, bounds.Right()-box.Width)
	box.Y = geom.Clamp(box.Y, bounds.Y, bounds.Bottom()-box.Height)
	return box
}

// arrowOffset measures along the cross axis and keeps the arrow one arrow
// size away from the box corners.
func arrowOffset(anchor, box geom.Rect, p Placement, size float64) float64 {
	var raw, half float64
	if p.Side().Vertical() {
		raw = anchor.CenterX() - box.CenterX()
		half = box.Width / 2
	} else {
		raw = anchor.CenterY() - box.CenterY()
		half = box.Height / 2
	}
	limit := half - size
	if limit < 0 {
		limit = 0
	}
	return geom.Clamp(raw, -limit, limit)
}
