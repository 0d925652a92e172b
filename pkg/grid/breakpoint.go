package grid

import (
	"fmt"
	"strings"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

// Breakpoint is a named viewport-width tier. Tiers are ordered from the
// smallest (XS) to the largest (XXL).
type Breakpoint int

const (
	XS Breakpoint = iota
	SM
	MD
	LG
	XL
	XXL
)

const breakpointCount = int(XXL) + 1

var breakpointNames = [breakpointCount]string{"xs", "sm", "md", "lg", "xl", "xxl"}

// AllBreakpoints returns every tier in ascending order.
func AllBreakpoints() []Breakpoint {
	return []Breakpoint{XS, SM, MD, LG, XL, XXL}
}

// Valid reports whether b is one of the declared tiers.
func (b Breakpoint) Valid() bool {
	return b >= XS && b <= XXL
}

func (b Breakpoint) String() string {
	if !b.Valid() {
		return fmt.Sprintf("breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// MarshalText encodes the tier name, which keeps JSON map keys readable.
func (b Breakpoint) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, antuierrors.NewInvalidSpecError("breakpoint", int(b), "unknown breakpoint")
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes a tier name.
func (b *Breakpoint) UnmarshalText(text []byte) error {
	parsed, err := ParseBreakpoint(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBreakpoint converts a tier name such as "md" into a Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range breakpointNames {
		if candidate == normalized {
			return Breakpoint(i), nil
		}
	}
	return XS, antuierrors.NewInvalidSpecError("breakpoint", name, "unknown breakpoint, expected one of xs, sm, md, lg, xl, xxl")
}

// Breakpoints holds the minimum width of every tier, indexed by Breakpoint.
// The zero value stands for DefaultBreakpoints.
type Breakpoints [breakpointCount]float64

// DefaultBreakpoints returns the design-system thresholds in pixels.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{0, 576, 768, 992, 1200, 1600}
}

// TerminalBreakpoints returns thresholds measured in terminal cells.
func TerminalBreakpoints() Breakpoints {
	return Breakpoints{0, 60, 80, 100, 120, 160}
}

// IsZero reports whether the table was left unset.
func (t Breakpoints) IsZero() bool {
	return t == Breakpoints{}
}

func (t Breakpoints) orDefault() Breakpoints {
	if t.IsZero() {
		return DefaultBreakpoints()
	}
	return t
}

// Min returns the threshold of tier b.
func (t Breakpoints) Min(b Breakpoint) float64 {
	if !b.Valid() {
		return 0
	}
	return t.orDefault()[b]
}

// Validate rejects tables whose thresholds are not strictly increasing.
func (t Breakpoints) Validate() error {
	if t.IsZero() {
		return nil
	}
	if t[XS] < 0 {
		return antuierrors.NewInvalidSpecError("breakpoints.xs", t[XS], "threshold must not be negative")
	}
	for b := SM; b <= XXL; b++ {
		if t[b] <= t[b-1] {
			return antuierrors.NewInvalidSpecError(
				"breakpoints."+b.String(), t[b],
				fmt.Sprintf("threshold must be greater than %s (%g)", (b - 1).String(), t[b-1]),
			)
		}
	}
	return nil
}

// Resolve returns the largest tier whose threshold is <= width. Widths below
// the smallest threshold resolve to the smallest tier.
func (t Breakpoints) Resolve(width float64) Breakpoint {
	table := t.orDefault()
	for b := XXL; b > XS; b-- {
		if width >= table[b] {
			return b
		}
	}
	return XS
}

// ResolveBreakpoint classifies a viewport width against DefaultBreakpoints.
func ResolveBreakpoint(viewportWidth float64) Breakpoint {
	return DefaultBreakpoints().Resolve(viewportWidth)
}
