package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/antui/internal/storybook"
	"github.com/alexisbeaulieu97/antui/internal/ui/components"
)

const fallbackWidth = 80

var errSnapshotsStale = errors.New("snapshots differ from the rendered stories")

func newStoriesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List, render and snapshot the built-in stories",
	}

	cmd.AddCommand(newStoriesListCmd())
	cmd.AddCommand(newStoriesRenderCmd())
	cmd.AddCommand(newStoriesSnapshotCmd(rootFlags))

	return cmd
}

func newStoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every story",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tDESCRIPTION")
			for _, story := range storybook.Default().List() {
				fmt.Fprintf(writer, "%s\t%s\n", story.ID(), story.Description)
			}
			return writer.Flush()
		},
	}
}

type renderOptions struct {
	width  int
	height int
	plain  bool
}

func newStoriesRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Render one story",
		Long:  `Render a story by ID (group/name) or by name when the name is unique.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := storybook.Default().Get(args[0])
			if err != nil {
				return newCommandError("render story", "looking up "+args[0], err, "Run 'antui stories list' to see the available stories.")
			}

			out := cmd.OutOrStdout()
			width := opts.width
			if width <= 0 {
				width = terminalWidth(out)
			}
			rendered := story.Render(components.NewContext(width, opts.height))
			if opts.plain || !isTerminal(out) {
				rendered = storybook.Plain(rendered)
			} else {
				rendered += "\n"
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width in cells (default: terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", storybook.SnapshotHeight, "Viewport height in lines")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip colours and styles")

	return cmd
}

type snapshotOptions struct {
	dir         string
	widths      []int
	concurrency int
	check       bool
}

func newStoriesSnapshotCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write plain-text snapshots of every story",
		Long:  `Render every story at each width and write <dir>/<group>/<name>@<width>.txt.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshotOpts := storybook.SnapshotOptions{Concurrency: opts.concurrency, Logger: rootFlags.log}
			if opts.check {
				return checkSnapshots(cmd, opts, snapshotOpts)
			}

			paths, err := storybook.Snapshot(cmd.Context(), storybook.Default(), opts.dir, opts.widths, snapshotOpts)
			if err != nil {
				return newCommandError("snapshot stories", "writing to "+opts.dir, err, "Check that the directory is writable.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d snapshots to %s\n", len(paths), opts.dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "snapshots", "Output directory")
	cmd.Flags().IntSliceVar(&opts.widths, "widths", storybook.DefaultWidths, "Comma-separated render widths")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Maximum renders in flight (0 for no limit)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare against the existing snapshots instead of writing them")

	return cmd
}

func checkSnapshots(cmd *cobra.Command, opts *snapshotOptions, snapshotOpts storybook.SnapshotOptions) error {
	mismatches, err := storybook.Check(cmd.Context(), storybook.Default(), opts.dir, opts.widths, snapshotOpts)
	if err != nil {
		return newCommandError("check snapshots", "reading "+opts.dir, err, "Check that the directory is readable.")
	}

	out := cmd.OutOrStdout()
	if len(mismatches) == 0 {
		fmt.Fprintf(out, "snapshots in %s are up to date\n", opts.dir)
		return nil
	}
	for _, m := range mismatches {
		if m.Missing {
			fmt.Fprintf(out, "missing: %s\n", m.Path)
			continue
		}
		fmt.Fprint(out, m.Diff)
	}
	return newCommandError("check snapshots", fmt.Sprintf("%d snapshots are out of date", len(mismatches)), errSnapshotsStale, "Run 'antui stories snapshot' to update them.")
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalWidth(writer io.Writer) int {
	if file, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallbackWidth
}
