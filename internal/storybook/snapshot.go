package storybook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/antui/internal/logger"
	"github.com/alexisbeaulieu97/antui/internal/ui/components"
	"github.com/alexisbeaulieu97/antui/pkg/diff"
)

// SnapshotHeight is the terminal height stories are rendered at.
const SnapshotHeight = 24

// DefaultWidths are the snapshot widths: one per terminal breakpoint from sm
// to xl.
var DefaultWidths = []int{60, 80, 100, 120}

// SnapshotOptions tunes Snapshot.
type SnapshotOptions struct {
	// Concurrency caps the number of renders in flight. Zero means no limit.
	Concurrency int
	Logger      *logger.Logger
}

// Plain strips ANSI sequences and trailing blanks so snapshots diff cleanly.
func Plain(rendered string) string {
	lines := strings.Split(ansi.Strip(rendered), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// SnapshotPath returns the file a story snapshot at width is written to.
func SnapshotPath(dir string, story Story, width int) string {
	return filepath.Join(dir, story.Group, fmt.Sprintf("%s@%d.txt", story.Name, width))
}

// Snapshot renders every story at every width and writes the plain text to
// <dir>/<group>/<name>@<width>.txt. It returns the written paths sorted.
func Snapshot(ctx context.Context, reg *Registry, dir string, widths []int, opts SnapshotOptions) ([]string, error) {
	widths, err := snapshotWidths(widths)
	if err != nil {
		return nil, err
	}
	log := opts.Logger.Component("storybook")

	for _, group := range reg.Groups() {
		if err := os.MkdirAll(filepath.Join(dir, group), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	var mu sync.Mutex
	paths := make([]string, 0, reg.Len()*len(widths))
	err = renderAll(ctx, reg, widths, opts.Concurrency, func(story Story, width int, out string) error {
		path := SnapshotPath(dir, story, width)
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot %s: %w", path, err)
		}
		log.WithFields(map[string]any{"story": story.ID(), "width": width}).Debug("snapshot written")
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		log.Error(err, "snapshot failed")
		return nil, err
	}

	sort.Strings(paths)
	log.WithFields(map[string]any{"files": len(paths), "dir": dir}).Info("snapshots written")
	return paths, nil
}

// Mismatch is a story whose rendering no longer matches its snapshot file.
type Mismatch struct {
	Story   string
	Width   int
	Path    string
	Missing bool
	Diff    string
}

// Check renders every story at every width and compares the result with the
// files Snapshot wrote to dir. It returns the mismatches sorted by path; an
// empty result means every snapshot is current.
func Check(ctx context.Context, reg *Registry, dir string, widths []int, opts SnapshotOptions) ([]Mismatch, error) {
	widths, err := snapshotWidths(widths)
	if err != nil {
		return nil, err
	}
	log := opts.Logger.Component("storybook")

	var mu sync.Mutex
	var mismatches []Mismatch
	err = renderAll(ctx, reg, widths, opts.Concurrency, func(story Story, width int, out string) error {
		path := SnapshotPath(dir, story, width)
		mismatch := Mismatch{Story: story.ID(), Width: width, Path: path}

		stored, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			mismatch.Missing = true
		case err != nil:
			return fmt.Errorf("failed to read snapshot %s: %w", path, err)
		default:
			mismatch.Diff = diff.Unified(stored, []byte(out), path, fmt.Sprintf("%s@%d", story.ID(), width))
			if mismatch.Diff == "" {
				return nil
			}
		}

		log.WithFields(map[string]any{"story": story.ID(), "width": width, "missing": mismatch.Missing}).Debug("snapshot out of date")
		mu.Lock()
		mismatches = append(mismatches, mismatch)
		mu.Unlock()
		return nil
	})
	if err != nil {
		log.Error(err, "snapshot check failed")
		return nil, err
	}

	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Path < mismatches[j].Path })
	log.WithFields(map[string]any{"mismatches": len(mismatches), "dir": dir}).Info("snapshots checked")
	return mismatches, nil
}

func snapshotWidths(widths []int) ([]int, error) {
	if len(widths) == 0 {
		return DefaultWidths, nil
	}
	for _, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("snapshot width must be positive, got %d", w)
		}
	}
	return widths, nil
}

// renderAll renders every story at every width in plain text and hands each
// result to fn, with at most concurrency calls in flight when it is positive.
func renderAll(ctx context.Context, reg *Registry, widths []int, concurrency int, fn func(story Story, width int, out string) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for _, story := range reg.List() {
		for _, width := range widths {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return fn(story, width, Plain(story.Render(components.NewContext(width, SnapshotHeight))))
			})
		}
	}
	return g.Wait()
}
