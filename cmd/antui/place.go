package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

// unbounded stands in for a missing --boundary: nothing flips or clamps.
var unbounded = geom.NewRect(-1e9, -1e9, 2e9, 2e9)

type placeOptions struct {
	anchor     string
	content    string
	placement  string
	boundary   string
	offset     float64
	arrow      bool
	arrowSize  float64
	jsonOutput bool
}

type placeOutput struct {
	Anchor   geom.Rect         `json:"anchor"`
	Content  geom.Size         `json:"content"`
	Boundary *geom.Rect        `json:"boundary,omitempty"`
	Request  placement.Request `json:"-"`
	Result   placement.Result  `json:"result"`
}

func newPlaceCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Resolve where a floating box goes next to an anchor",
		Example: `  antui place --anchor 100,10,80,32 --content 120,40 --placement top --boundary 0,0,1024,768
  antui place --anchor 2,2,10,3 --content 20,4 --placement rightTop --arrow --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd.OutOrStdout(), opts, rootFlags)
		},
	}

	cmd.Flags().StringVar(&opts.anchor, "anchor", "", "Anchor rectangle as x,y,width,height")
	cmd.Flags().StringVar(&opts.content, "content", "", "Content size as width,height")
	cmd.Flags().StringVar(&opts.placement, "placement", "top", "Preferred placement, e.g. top, bottomLeft, rightTop")
	cmd.Flags().StringVar(&opts.boundary, "boundary", "", "Boundary rectangle as x,y,width,height (default unbounded)")
	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "Gap between anchor and content")
	cmd.Flags().BoolVar(&opts.arrow, "arrow", false, "Reserve room for an arrow")
	cmd.Flags().Float64Var(&opts.arrowSize, "arrow-size", 0, "Arrow size; zero uses the default")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func runPlace(out io.Writer, opts *placeOptions, rootFlags *rootFlags) error {
	output, err := resolvePlacement(opts)
	if err != nil {
		return newCommandError("place", "reading the placement flags", err, "Rectangles are x,y,width,height and sizes are width,height.")
	}

	rootFlags.log.WithFields(map[string]any{
		"preferred": output.Request.Preferred.String(),
		"resolved":  output.Result.Placement.String(),
		"flipped":   output.Result.Flipped,
		"clamped":   output.Result.Clamped,
	}).Debug("placement resolved")

	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	r := output.Result
	note := ""
	switch {
	case r.Flipped:
		note = " (flipped)"
	case r.Clamped:
		note = " (clamped)"
	}
	fmt.Fprintf(out, "placement: %s%s\n", r.Placement, note)
	fmt.Fprintf(out, "box: x=%g y=%g width=%g height=%g\n", r.X, r.Y, r.Width, r.Height)
	if opts.arrow {
		fmt.Fprintf(out, "arrow offset: %g\n", r.ArrowOffset)
	}
	return nil
}

func resolvePlacement(opts *placeOptions) (placeOutput, error) {
	anchor, err := parseRect(opts.anchor)
	if err != nil {
		return placeOutput{}, fmt.Errorf("--anchor: %w", err)
	}
	content, err := parseSize(opts.content)
	if err != nil {
		return placeOutput{}, fmt.Errorf("--content: %w", err)
	}
	preferred, err := placement.Parse(opts.placement)
	if err != nil {
		return placeOutput{}, fmt.Errorf("--placement: %w", err)
	}

	output := placeOutput{Anchor: anchor, Content: content}
	boundary := unbounded
	if strings.TrimSpace(opts.boundary) != "" {
		boundary, err = parseRect(opts.boundary)
		if err != nil {
			return placeOutput{}, fmt.Errorf("--boundary: %w", err)
		}
		output.Boundary = &boundary
	}
	if opts.offset < 0 || opts.arrowSize < 0 {
		return placeOutput{}, fmt.Errorf("--offset and --arrow-size must not be negative")
	}

	output.Request = placement.Request{
		Preferred: preferred,
		Offset:    opts.offset,
		Arrow:     opts.arrow,
		ArrowSize: opts.arrowSize,
		Boundary:  boundary,
	}
	output.Result = placement.Resolve(anchor, content, output.Request)
	return output, nil
}

func parseNumbers(value string, want int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %q", want, value)
	}
	numbers := make([]float64, want)
	for i, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		numbers[i] = n
	}
	return numbers, nil
}

func parseRect(value string) (geom.Rect, error) {
	n, err := parseNumbers(value, 4)
	if err != nil {
		return geom.Rect{}, err
	}
	if n[2] < 0 || n[3] < 0 {
		return geom.Rect{}, fmt.Errorf("width and height must not be negative")
	}
	return geom.NewRect(n[0], n[1], n[2], n[3]), nil
}

func parseSize(value string) (geom.Size, error) {
	n, err := parseNumbers(value, 2)
	if err != nil {
		return geom.Size{}, err
	}
	if n[0] < 0 || n[1] < 0 {
		return geom.Size{}, fmt.Errorf("width and height must not be negative")
	}
	return geom.Size{Width: n[0], Height: n[1]}, nil
}
