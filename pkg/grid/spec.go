package grid

import (
	"fmt"
	"maps"
	"strings"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

// Columns is the number of grid units a full row spans.
const Columns = 24

// Int returns a pointer to v, for the optional fields of ColumnSpec.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v, for the optional fields of GutterOverride.
func Float(v float64) *float64 {
	return &v
}

// ColumnSpec is one grid item's declared geometry. Nil fields are unset and
// inherit from smaller breakpoints or the defaults (span 24, everything else 0).
type ColumnSpec struct {
	Span   *int `json:"span,omitempty" validate:"omitempty,min=0,max=24"`
	Offset *int `json:"offset,omitempty" validate:"omitempty,min=0,max=24"`
	Order  *int `json:"order,omitempty"`
	Pull   *int `json:"pull,omitempty" validate:"omitempty,min=-24,max=24"`
	Push   *int `json:"push,omitempty" validate:"omitempty,min=-24,max=24"`

	Responsive map[Breakpoint]ColumnSpec `json:"responsive,omitempty" validate:"omitempty,dive"`
}

// Col starts a column spec with the given span.
func Col(span int) ColumnSpec {
	return ColumnSpec{Span: Int(span)}
}

// WithSpan returns a copy with span set.
func (c ColumnSpec) WithSpan(span int) ColumnSpec {
	c.Span = Int(span)
	return c
}

// WithOffset returns a copy with offset set.
func (c ColumnSpec) WithOffset(offset int) ColumnSpec {
	c.Offset = Int(offset)
	return c
}

// WithOrder returns a copy with order set.
func (c ColumnSpec) WithOrder(order int) ColumnSpec {
	c.Order = Int(order)
	return c
}

// WithPull returns a copy with pull set.
func (c ColumnSpec) WithPull(pull int) ColumnSpec {
	c.Pull = Int(pull)
	return c
}

// WithPush returns a copy with push set.
func (c ColumnSpec) WithPush(push int) ColumnSpec {
	c.Push = Int(push)
	return c
}

// At returns a copy carrying an override for breakpoint bp.
func (c ColumnSpec) At(bp Breakpoint, override ColumnSpec) ColumnSpec {
	responsive := make(map[Breakpoint]ColumnSpec, len(c.Responsive)+1)
	maps.Copy(responsive, c.Responsive)
	responsive[bp] = override
	c.Responsive = responsive
	return c
}

// Effective merges the column's own responsive overrides for bp.
func (c ColumnSpec) Effective(bp Breakpoint) ColumnSpec {
	return EffectiveColumnSpec(c, c.Responsive, bp)
}

// SpanValue returns the span, defaulting to a full row.
func (c ColumnSpec) SpanValue() int { return valueOr(c.Span, Columns) }

// OffsetValue returns the offset, defaulting to 0.
func (c ColumnSpec) OffsetValue() int { return valueOr(c.Offset, 0) }

// OrderValue returns the order, defaulting to 0.
func (c ColumnSpec) OrderValue() int { return valueOr(c.Order, 0) }

// PullValue returns the pull, defaulting to 0.
func (c ColumnSpec) PullValue() int { return valueOr(c.Pull, 0) }

// PushValue returns the push, defaulting to 0.
func (c ColumnSpec) PushValue() int { return valueOr(c.Push, 0) }

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// EffectiveColumnSpec merges overrides onto base, mobile first: tiers from XS
// up to and including bp are applied in order and each one only replaces the
// fields it sets. The result has every field set and no overrides, so
// applying it again yields the same spec.
func EffectiveColumnSpec(base ColumnSpec, overrides map[Breakpoint]ColumnSpec, bp Breakpoint) ColumnSpec {
	merged := base
	for tier := XS; tier <= bp && tier <= XXL; tier++ {
		override, ok := overrides[tier]
		if !ok {
			continue
		}
		merged = mergeColumn(merged, override)
	}

	return ColumnSpec{
		Span:   Int(merged.SpanValue()),
		Offset: Int(merged.OffsetValue()),
		Order:  Int(merged.OrderValue()),
		Pull:   Int(merged.PullValue()),
		Push:   Int(merged.PushValue()),
	}
}

func mergeColumn(base, override ColumnSpec) ColumnSpec {
	if override.Span != nil {
		base.Span = override.Span
	}
	if override.Offset != nil {
		base.Offset = override.Offset
	}
	if override.Order != nil {
		base.Order = override.Order
	}
	if override.Pull != nil {
		base.Pull = override.Pull
	}
	if override.Push != nil {
		base.Push = override.Push
	}
	return base
}

// GutterOverride replaces one or both gutter axes at a breakpoint.
type GutterOverride struct {
	Horizontal *float64 `json:"horizontal,omitempty" validate:"omitempty,min=0"`
	Vertical   *float64 `json:"vertical,omitempty" validate:"omitempty,min=0"`
}

// Gutter is the gap inserted between adjacent items (horizontal) and between
// wrapped lines (vertical).
type Gutter struct {
	Horizontal float64 `json:"horizontal" validate:"min=0"`
	Vertical   float64 `json:"vertical" validate:"min=0"`

	Responsive map[Breakpoint]GutterOverride `json:"responsive,omitempty" validate:"omitempty,dive"`
}

// Gap builds a horizontal-only gutter.
func Gap(horizontal float64) Gutter {
	return Gutter{Horizontal: horizontal}
}

// Gaps builds a gutter pair.
func Gaps(horizontal, vertical float64) Gutter {
	return Gutter{Horizontal: horizontal, Vertical: vertical}
}

// At returns a copy with both axes overridden from bp upwards.
func (g Gutter) At(bp Breakpoint, horizontal, vertical float64) Gutter {
	responsive := make(map[Breakpoint]GutterOverride, len(g.Responsive)+1)
	maps.Copy(responsive, g.Responsive)
	responsive[bp] = GutterOverride{Horizontal: Float(horizontal), Vertical: Float(vertical)}
	g.Responsive = responsive
	return g
}

// Resolve returns the gutter pair active at bp using the same mobile-first
// cascade as column overrides.
func (g Gutter) Resolve(bp Breakpoint) (horizontal, vertical float64) {
	horizontal, vertical = g.Horizontal, g.Vertical
	for tier := XS; tier <= bp && tier <= XXL; tier++ {
		override, ok := g.Responsive[tier]
		if !ok {
			continue
		}
		if override.Horizontal != nil {
			horizontal = *override.Horizontal
		}
		if override.Vertical != nil {
			vertical = *override.Vertical
		}
	}
	return horizontal, vertical
}

// Align is the cross-axis alignment of items within a line.
type Align int

const (
	AlignTop Align = iota
	AlignMiddle
	AlignBottom
	AlignStretch
)

var alignNames = []string{"top", "middle", "bottom", "stretch"}

func (a Align) Valid() bool { return a >= AlignTop && a <= AlignStretch }

func (a Align) String() string {
	if !a.Valid() {
		return fmt.Sprintf("align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign converts a name such as "middle" into an Align.
func ParseAlign(name string) (Align, error) {
	idx, ok := lookupName(alignNames, name)
	if !ok {
		return AlignTop, antuierrors.NewInvalidSpecError("align", name, "expected one of "+strings.Join(alignNames, ", "))
	}
	return Align(idx), nil
}

// Justify distributes the leftover space of a line along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyNames = []string{"start", "end", "center", "space-between", "space-around", "space-evenly"}

func (j Justify) Valid() bool { return j >= JustifyStart && j <= JustifySpaceEvenly }

func (j Justify) String() string {
	if !j.Valid() {
		return fmt.Sprintf("justify(%d)", int(j))
	}
	return justifyNames[j]
}

// ParseJustify converts a name such as "space-between" into a Justify.
// Underscores are accepted in place of dashes.
func ParseJustify(name string) (Justify, error) {
	idx, ok := lookupName(justifyNames, strings.ReplaceAll(name, "_", "-"))
	if !ok {
		return JustifyStart, antuierrors.NewInvalidSpecError("justify", name, "expected one of "+strings.Join(justifyNames, ", "))
	}
	return Justify(idx), nil
}

func lookupName(names []string, name string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == normalized {
			return i, true
		}
	}
	return 0, false
}

// RowSpec configures a row of columns. It is transient: build it for a layout
// pass and throw it away.
type RowSpec struct {
	Gutter      Gutter      `json:"gutter"`
	Align       Align       `json:"align" validate:"grid_align"`
	Justify     Justify     `json:"justify" validate:"grid_justify"`
	Wrap        bool        `json:"wrap"`
	Breakpoints Breakpoints `json:"-"`
}

// NewRow returns a wrapping, start-justified, top-aligned row.
func NewRow() RowSpec {
	return RowSpec{Wrap: true}
}

// WithGutter returns a copy with the gutter replaced.
func (r RowSpec) WithGutter(g Gutter) RowSpec {
	r.Gutter = g
	return r
}

// WithJustify returns a copy with justify replaced.
func (r RowSpec) WithJustify(j Justify) RowSpec {
	r.Justify = j
	return r
}

// WithAlign returns a copy with align replaced.
func (r RowSpec) WithAlign(a Align) RowSpec {
	r.Align = a
	return r
}

// WithWrap returns a copy with wrapping toggled.
func (r RowSpec) WithWrap(wrap bool) RowSpec {
	r.Wrap = wrap
	return r
}

// WithBreakpoints returns a copy using a custom threshold table.
func (r RowSpec) WithBreakpoints(t Breakpoints) RowSpec {
	r.Breakpoints = t
	return r
}
