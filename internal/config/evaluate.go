package config

import (
	"fmt"
	"math"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

// Report is the evaluation of a document at one viewport width.
type Report struct {
	Document   string            `json:"document,omitempty"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Breakpoint grid.Breakpoint   `json:"breakpoint"`
	Rows       []RowReport       `json:"rows"`
	Placements []PlacementReport `json:"placements"`
}

// RowReport holds the cells of one row in declaration order.
type RowReport struct {
	ID    string     `json:"id"`
	Lines int        `json:"lines"`
	Cells []CellInfo `json:"cells"`
}

// CellInfo is a grid cell with the column label.
type CellInfo struct {
	Label string `json:"label"`
	grid.Cell
}

// PlacementReport is the resolved box of one scenario.
type PlacementReport struct {
	ID        string           `json:"id"`
	Preferred string           `json:"preferred"`
	Anchor    geom.Rect        `json:"anchor"`
	Boundary  geom.Rect        `json:"boundary"`
	Result    placement.Result `json:"result"`
}

// Evaluate lays out every row and resolves every placement at width. Rows
// use the breakpoint resolved from width against the document table.
func Evaluate(doc *Document, width float64) (Report, error) {
	if doc == nil {
		return Report{}, antuierrors.NewValidationError("document", "document is nil", nil)
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return Report{}, antuierrors.NewInvalidSpecError("width", width, "must be a positive finite number")
	}

	table, err := doc.BreakpointTable()
	if err != nil {
		return Report{}, err
	}
	rows, err := doc.NamedRows()
	if err != nil {
		return Report{}, err
	}
	scenarios, err := doc.NamedPlacements()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Document:   doc.Name,
		Width:      width,
		Height:     doc.ViewportHeight(),
		Breakpoint: table.Resolve(width),
		Rows:       make([]RowReport, 0, len(rows)),
		Placements: make([]PlacementReport, 0, len(scenarios)),
	}

	for i, row := range rows {
		cells, err := grid.LayoutRowAt(row.Spec, row.Columns, width, report.Breakpoint)
		if err != nil {
			return Report{}, prefixed(fmt.Sprintf("rows[%d]", i), err)
		}
		rr := RowReport{ID: row.ID, Lines: len(grid.Lines(cells)), Cells: make([]CellInfo, len(cells))}
		for j, cell := range cells {
			rr.Cells[j] = CellInfo{Label: row.Labels[cell.Index], Cell: cell}
		}
		report.Rows = append(report.Rows, rr)
	}

	viewport := geom.NewRect(0, 0, width, report.Height)
	for _, scenario := range scenarios {
		req := scenario.Request
		if !scenario.HasBoundary {
			req.Boundary = viewport
		}
		report.Placements = append(report.Placements, PlacementReport{
			ID:        scenario.ID,
			Preferred: req.Preferred.String(),
			Anchor:    scenario.Anchor,
			Boundary:  req.Boundary,
			Result:    placement.Resolve(scenario.Anchor, scenario.Content, req),
		})
	}

	return report, nil
}
