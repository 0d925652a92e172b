package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size surface that styled blocks are composited onto.
// Coordinates are terminal cells with the origin at the top-left corner.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas returns a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// CanvasFrom returns a canvas of the given size holding background. Lines
// are cut or padded to fit.
func CanvasFrom(background string, width, height int) *Canvas {
	c := NewCanvas(width, height)
	c.Place(0, 0, background)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Place draws block with its top-left corner at (x, y). The block is treated
// as an opaque rectangle as wide as its widest line. Parts that fall outside
// the canvas are cut.
func (c *Canvas) Place(x, y int, block string) {
	if block == "" {
		return
	}
	rows := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)

	for i, segment := range rows {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		segment = padRight(segment, blockWidth)

		left := x
		if left < 0 {
			segment = ansi.TruncateLeft(segment, -left, "")
			left = 0
		}
		if left >= c.width {
			continue
		}
		if left+ansi.StringWidth(segment) > c.width {
			segment = ansi.Truncate(segment, c.width-left, "")
		}
		if segment == "" {
			continue
		}
		c.lines[row] = splice(c.lines[row], left, segment)
	}
}

// String returns the canvas content, one line per row.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func splice(line string, at int, segment string) string {
	head := padRight(ansi.Truncate(line, at, ""), at)
	tail := ansi.TruncateLeft(line, at+ansi.StringWidth(segment), "")
	return head + segment + tail
}

func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Snap converts a fractional span [x, x+width) to whole cells. Both edges
// round independently, so two spans that touch still touch after snapping
// and never overlap.
func Snap(x, width float64) (int, int) {
	left := int(math.Round(x))
	right := int(math.Round(x + width))
	return left, max(right-left, 0)
}
