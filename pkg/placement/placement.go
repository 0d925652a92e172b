package placement

import (
	"fmt"
	"strings"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

// Side is the anchor edge a floating box is attached to.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Vertical reports whether the side stacks the box above or below the anchor.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Opposite flips the side across the primary axis.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Align is the cross-axis alignment of the box against the anchor.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "center"
	}
}

// Placement is one of the twelve compass positions.
type Placement int

const (
	Top Placement = iota
	TopLeft
	TopRight
	Bottom
	BottomLeft
	BottomRight
	Left
	LeftTop
	LeftBottom
	Right
	RightTop
	RightBottom
)

var placementNames = [...]string{
	"top", "topLeft", "topRight",
	"bottom", "bottomLeft", "bottomRight",
	"left", "leftTop", "leftBottom",
	"right", "rightTop", "rightBottom",
}

// All returns every placement in declaration order.
func All() []Placement {
	all := make([]Placement, len(placementNames))
	for i := range all {
		all[i] = Placement(i)
	}
	return all
}

// New combines a side and an alignment.
func New(side Side, align Align) Placement {
	var base Placement
	switch side {
	case SideBottom:
		base = Bottom
	case SideLeft:
		base = Left
	case SideRight:
		base = Right
	default:
		base = Top
	}
	switch align {
	case AlignStart:
		return base + 1
	case AlignEnd:
		return base + 2
	default:
		return base
	}
}

// Valid reports whether p is one of the twelve placements.
func (p Placement) Valid() bool {
	return p >= Top && p <= RightBottom
}

func (p Placement) normalize() Placement {
	if !p.Valid() {
		return Top
	}
	return p
}

// Side returns the primary-axis side.
func (p Placement) Side() Side {
	return Side(int(p.normalize()) / 3)
}

// Alignment returns the cross-axis alignment. For Top/Bottom placements start
// is the left edge; for Left/Right placements start is the top edge.
func (p Placement) Alignment() Align {
	switch int(p.normalize()) % 3 {
	case 1:
		return AlignStart
	case 2:
		return AlignEnd
	default:
		return AlignCenter
	}
}

// Mirror flips the primary axis and keeps the cross-axis alignment.
func (p Placement) Mirror() Placement {
	return New(p.Side().Opposite(), p.Alignment())
}

func (p Placement) String() string {
	if !p.Valid() {
		return fmt.Sprintf("placement(%d)", int(p))
	}
	return placementNames[p]
}

// MarshalText encodes the placement name.
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.normalize().String()), nil
}

// UnmarshalText decodes a placement name.
func (p *Placement) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Parse accepts names in camelCase ("topLeft"), kebab-case ("top-left") or
// snake_case ("top_left"), case-insensitively.
func Parse(name string) (Placement, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	for i, candidate := range placementNames {
		if strings.ToLower(candidate) == normalized {
			return Placement(i), nil
		}
	}
	return Top, antuierrors.NewInvalidSpecError("placement", name, "expected one of "+strings.Join(placementNames[:], ", "))
}
