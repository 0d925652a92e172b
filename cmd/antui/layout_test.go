package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/antui/internal/logger"
)

const layoutYAML = `version: "1.0"
name: %s
rows:
  - id: main
    columns:
      - label: left
        span: 12
      - label: right
        span: 12
      - label: gone
        span: 0
placements:
  - id: menu
    anchor: {x: 100, y: 10, width: 80, height: 32}
    content: {width: 120, height: 40}
    placement: bottomLeft
    offset: 4
`

func layoutDoc(name string) string {
	return fmt.Sprintf(layoutYAML, name)
}

func TestLayoutCommandTable(t *testing.T) {
	path := writeFile(t, t.TempDir(), "layout.yaml", layoutDoc("shell"))

	stdout, _, err := execute(t, "layout", path, "--width", "1200")
	require.NoError(t, err)

	require.Contains(t, stdout, "shell at 1200x800 (xl)")
	require.Contains(t, stdout, "ROW")
	require.Regexp(t, `main\s+left\s+0\s+0\.00\s+600\.00`, stdout)
	require.Regexp(t, `main\s+right\s+0\s+600\.00\s+600\.00`, stdout)
	require.Regexp(t, `main\s+gone\s+-\s+-\s+hidden`, stdout)
	require.Regexp(t, `menu\s+bottomLeft\s+bottomLeft\s+100\.00\s+46\.00\s+120\.00\s+40\.00`, stdout)
}

func TestLayoutCommandJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "layout.yaml", layoutDoc("shell"))

	stdout, _, err := execute(t, "layout", path, "--width", "700", "--json")
	require.NoError(t, err)

	var report struct {
		Document   string `json:"document"`
		Breakpoint string `json:"breakpoint"`
		Rows       []struct {
			ID    string `json:"id"`
			Cells []struct {
				Label string  `json:"label"`
				Width float64 `json:"width"`
			} `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Equal(t, "shell", report.Document)
	require.Equal(t, "sm", report.Breakpoint)
	require.Len(t, report.Rows, 1)
	require.Equal(t, "left", report.Rows[0].Cells[0].Label)
	require.InDelta(t, 350, report.Rows[0].Cells[0].Width, 1e-9)
}

func TestLayoutCommandReportsInvalidDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		contains string
	}{
		{
			name:     "span out of range",
			contents: "rows:\n  - id: r\n    columns:\n      - span: 30\n",
			contains: "rows[0].columns[0].span",
		},
		{
			name:     "unknown placement",
			contents: "placements:\n  - id: p\n    anchor: {x: 0, y: 0, width: 1, height: 1}\n    content: {width: 1, height: 1}\n    placement: north\n",
			contains: "placements[0].placement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "doc.yaml", tt.contents)

			_, _, err := execute(t, "layout", path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestWatchLayoutReevaluatesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "layout.yaml", layoutDoc("before"))

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- watchLayout(ctx, out, path, &layoutOptions{width: 1200}, logger.Nop(), 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return containsAll(out.String(), "before at 1200x800", "--- watching for changes")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(layoutDoc("after")), 0o644))
	require.Eventually(t, func() bool {
		return containsAll(out.String(), "after at 1200x800")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchLayoutKeepsGoingAfterErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- watchLayout(ctx, out, path, &layoutOptions{width: 1200}, logger.Nop(), 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return containsAll(out.String(), "Failed to evaluate layout", "--- watching for changes")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(layoutDoc("fixed")), 0o644))
	require.Eventually(t, func() bool {
		return containsAll(out.String(), "fixed at 1200x800")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}
