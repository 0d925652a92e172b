package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

const validYAML = `version: "1.0"
name: dashboard
rows:
  - id: header
    gutter:
      horizontal: 16
    justify: space-between
    columns:
      - label: logo
        span: 6
      - label: nav
        span: 12
        responsive:
          xs:
            span: 24
          md:
            span: 12
placements:
  - id: menu
    anchor: {x: 100, y: 10, width: 80, height: 32}
    content: {width: 120, height: 40}
    placement: bottomLeft
    offset: 4
`

const validTOML = `version = "1.0"
name = "dashboard"

[[rows]]
id = "header"
justify = "space-between"

[rows.gutter]
horizontal = 16

[[rows.columns]]
label = "logo"
span = 6

[[rows.columns]]
label = "nav"
span = 12

[rows.columns.responsive.xs]
span = 24

[rows.columns.responsive.md]
span = 12

[[placements]]
id = "menu"
placement = "bottomLeft"
offset = 4
anchor = { x = 100, y = 10, width = 80, height = 32 }
content = { width = 120, height = 40 }
`

func writeDoc(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadValidDocuments(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"layout.yaml", "layout.yml"} {
		doc, err := Load(writeDoc(t, name, validYAML), nil)
		require.NoError(t, err, name)
		assertDashboard(t, doc)
	}

	doc, err := Load(writeDoc(t, "layout.toml", validTOML), nil)
	require.NoError(t, err)
	assertDashboard(t, doc)
}

func assertDashboard(t *testing.T, doc *Document) {
	t.Helper()
	require.Equal(t, "dashboard", doc.Name)
	require.Len(t, doc.Rows, 1)
	row := doc.Rows[0]
	require.Equal(t, "header", row.ID)
	require.Equal(t, "space-between", row.Justify)
	require.NotNil(t, row.Gutter.Horizontal)
	require.InDelta(t, 16, *row.Gutter.Horizontal, 1e-9)
	require.Nil(t, row.Gutter.Vertical)
	require.Len(t, row.Columns, 2)
	require.Equal(t, 6, *row.Columns[0].Span)
	require.Equal(t, 24, *row.Columns[1].Responsive["xs"].Span)
	require.Len(t, doc.Placements, 1)
	require.Equal(t, "bottomLeft", doc.Placements[0].Placement)
	require.InDelta(t, 80, doc.Placements[0].Anchor.Width, 1e-9)
	require.Nil(t, doc.Placements[0].Boundary)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, err error)
	}{
		{
			name:     "yaml type error carries a line",
			file:     "a.yaml",
			contents: "name: x\nrows:\n  - id: r\n    columns:\n      - span: wide\n",
			assert: func(t *testing.T, err error) {
				var parseErr *antuierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 5, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "unknown yaml field",
			file:     "a.yaml",
			contents: "name: x\nbogus: 1\n",
			assert: func(t *testing.T, err error) {
				var parseErr *antuierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "toml syntax error carries a line",
			file:     "a.toml",
			contents: "name = \"x\"\nrows = [\n",
			assert: func(t *testing.T, err error) {
				var parseErr *antuierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown toml key",
			file:     "a.toml",
			contents: "name = \"x\"\nbogus = 1\n",
			assert: func(t *testing.T, err error) {
				var parseErr *antuierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "bogus")
			},
		},
		{
			name:     "unsupported extension",
			file:     "a.json",
			contents: "{}",
			assert: func(t *testing.T, err error) {
				var parseErr *antuierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, ".json")
			},
		},
		{
			name:     "span out of range",
			file:     "a.yaml",
			contents: "rows:\n  - id: r\n    columns:\n      - span: 30\n",
			assert: func(t *testing.T, err error) {
				var validationErr *antuierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "rows[0].columns[0].span", validationErr.Field)
			},
		},
		{
			name:     "unknown breakpoint key",
			file:     "a.yaml",
			contents: "rows:\n  - id: r\n    columns:\n      - responsive:\n          huge:\n            span: 1\n",
			assert: func(t *testing.T, err error) {
				var validationErr *antuierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "responsive")
			},
		},
		{
			name:     "unknown placement",
			file:     "a.yaml",
			contents: "placements:\n  - id: p\n    placement: north\n",
			assert: func(t *testing.T, err error) {
				var validationErr *antuierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "placements[0].placement", validationErr.Field)
			},
		},
		{
			name:     "row without columns",
			file:     "a.yaml",
			contents: "rows:\n  - id: r\n",
			assert: func(t *testing.T, err error) {
				var validationErr *antuierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "rows[0].columns", validationErr.Field)
			},
		},
		{
			name:     "duplicate row ids",
			file:     "a.yaml",
			contents: "rows:\n  - id: r\n    columns: [{span: 1}]\n  - id: r\n    columns: [{span: 1}]\n",
			assert: func(t *testing.T, err error) {
				var validationErr *antuierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "rows[1].id", validationErr.Field)
			},
		},
		{
			name:     "bad justify",
			file:     "a.yaml",
			contents: "rows:\n  - id: r\n    justify: sideways\n    columns: [{span: 1}]\n",
			assert: func(t *testing.T, err error) {
				var validationErr *antuierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "rows[0].justify", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Load(writeDoc(t, tc.file, tc.contents), nil)
			require.Error(t, err)
			require.Nil(t, doc)
			tc.assert(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	var parseErr *antuierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse(nil, FormatYAML, "empty.yaml")
	require.NoError(t, err)
	require.Empty(t, doc.Rows)
}
