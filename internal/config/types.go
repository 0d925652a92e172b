package config

// Units selects the default breakpoint table of a document.
const (
	UnitsPixels = "px"
	UnitsCells  = "cells"
)

// Default viewport heights used when a placement scenario has no boundary.
const (
	DefaultPixelHeight = 800
	DefaultCellHeight  = 24
)

// Document is a layout document: named grid rows and named placement
// scenarios evaluated together at one viewport width.
type Document struct {
	Version     string             `yaml:"version" toml:"version" validate:"omitempty,semver"`
	Name        string             `yaml:"name" toml:"name" validate:"max=100"`
	Description string             `yaml:"description,omitempty" toml:"description"`
	Units       string             `yaml:"units,omitempty" toml:"units" validate:"omitempty,oneof=px cells"`
	Height      float64            `yaml:"height,omitempty" toml:"height" validate:"min=0"`
	Breakpoints map[string]float64 `yaml:"breakpoints,omitempty" toml:"breakpoints" validate:"omitempty,dive,keys,breakpoint,endkeys,min=0"`
	Rows        []Row              `yaml:"rows,omitempty" toml:"rows" validate:"omitempty,dive"`
	Placements  []Placement        `yaml:"placements,omitempty" toml:"placements" validate:"omitempty,dive"`
}

// Row describes one grid row.
type Row struct {
	ID      string  `yaml:"id" toml:"id" validate:"required,doc_id"`
	Gutter  Gutter  `yaml:"gutter,omitempty" toml:"gutter"`
	Align   string  `yaml:"align,omitempty" toml:"align" validate:"omitempty,align"`
	Justify string  `yaml:"justify,omitempty" toml:"justify" validate:"omitempty,justify"`
	Wrap    *bool   `yaml:"wrap,omitempty" toml:"wrap"`
	// Responsive overrides the gutter from a breakpoint upwards.
	Responsive map[string]Gutter `yaml:"responsive,omitempty" toml:"responsive" validate:"omitempty,dive,keys,breakpoint,endkeys"`
	Columns    []Column          `yaml:"columns" toml:"columns" validate:"required,min=1,dive"`
}

// Gutter is a gutter pair. Unset axes inherit from smaller breakpoints.
type Gutter struct {
	Horizontal *float64 `yaml:"horizontal,omitempty" toml:"horizontal" validate:"omitempty,min=0"`
	Vertical   *float64 `yaml:"vertical,omitempty" toml:"vertical" validate:"omitempty,min=0"`
}

// ColumnFields are the grid fields shared by a column and its overrides.
type ColumnFields struct {
	Span   *int `yaml:"span,omitempty" toml:"span" validate:"omitempty,min=0,max=24"`
	Offset *int `yaml:"offset,omitempty" toml:"offset" validate:"omitempty,min=0,max=24"`
	Order  *int `yaml:"order,omitempty" toml:"order"`
	Pull   *int `yaml:"pull,omitempty" toml:"pull" validate:"omitempty,min=-24,max=24"`
	Push   *int `yaml:"push,omitempty" toml:"push" validate:"omitempty,min=-24,max=24"`
}

// Column describes one column of a row.
type Column struct {
	Label        string `yaml:"label,omitempty" toml:"label"`
	ColumnFields `yaml:",inline"`
	Responsive   map[string]ColumnFields `yaml:"responsive,omitempty" toml:"responsive" validate:"omitempty,dive,keys,breakpoint,endkeys"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `yaml:"x" toml:"x" json:"x"`
	Y      float64 `yaml:"y" toml:"y" json:"y"`
	Width  float64 `yaml:"width" toml:"width" json:"width" validate:"min=0"`
	Height float64 `yaml:"height" toml:"height" json:"height" validate:"min=0"`
}

// Size is a content size.
type Size struct {
	Width  float64 `yaml:"width" toml:"width" validate:"min=0"`
	Height float64 `yaml:"height" toml:"height" validate:"min=0"`
}

// Placement describes a floating box to resolve against an anchor.
type Placement struct {
	ID        string  `yaml:"id" toml:"id" validate:"required,doc_id"`
	Anchor    Rect    `yaml:"anchor" toml:"anchor"`
	Content   Size    `yaml:"content" toml:"content"`
	Placement string  `yaml:"placement" toml:"placement" validate:"required,placement"`
	Offset    float64 `yaml:"offset,omitempty" toml:"offset" validate:"min=0"`
	Arrow     bool    `yaml:"arrow,omitempty" toml:"arrow"`
	ArrowSize float64 `yaml:"arrow_size,omitempty" toml:"arrow_size" validate:"min=0"`
	// Boundary defaults to the evaluation viewport.
	Boundary *Rect `yaml:"boundary,omitempty" toml:"boundary" validate:"omitempty"`
}
