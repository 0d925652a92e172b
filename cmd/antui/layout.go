package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/antui/internal/config"
	"github.com/alexisbeaulieu97/antui/internal/logger"
)

const watchDebounce = 150 * time.Millisecond

type layoutOptions struct {
	width      float64
	jsonOutput bool
	watch      bool
}

func newLayoutCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout <file>",
		Short: "Evaluate a layout document at a viewport width",
		Long: `Evaluate the rows and placement scenarios of a YAML or TOML layout document
and print every cell and resolved box.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return watchLayout(cmd.Context(), cmd.OutOrStdout(), args[0], opts, rootFlags.log, watchDebounce)
			}
			return runLayout(cmd.OutOrStdout(), args[0], opts, rootFlags.log)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", 1200, "Viewport width in the document's units")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Re-evaluate whenever the document changes")

	return cmd
}

func runLayout(out io.Writer, path string, opts *layoutOptions, log *logger.Logger) error {
	doc, err := config.Load(path, log)
	if err != nil {
		return newCommandError("evaluate layout", "loading "+path, err, "Fix the document and run the command again.")
	}

	report, err := config.Evaluate(doc, opts.width)
	if err != nil {
		return newCommandError("evaluate layout", "laying out "+path, err, "Check spans, offsets and breakpoint thresholds.")
	}

	if opts.jsonOutput {
		return renderReportJSON(out, report)
	}
	return renderReportTable(out, report)
}

func renderReportJSON(out io.Writer, report config.Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func renderReportTable(out io.Writer, report config.Report) error {
	name := report.Document
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(out, "%s at %gx%g (%s)\n", name, report.Width, report.Height, report.Breakpoint)

	if len(report.Rows) > 0 {
		fmt.Fprintln(out)
		writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ROW\tCOLUMN\tLINE\tX\tWIDTH")
		for _, row := range report.Rows {
			for _, cell := range row.Cells {
				if cell.Hidden {
					fmt.Fprintf(writer, "%s\t%s\t-\t-\thidden\n", row.ID, cell.Label)
					continue
				}
				fmt.Fprintf(writer, "%s\t%s\t%d\t%.2f\t%.2f\n", row.ID, cell.Label, cell.Line, cell.X, cell.Width)
			}
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}

	if len(report.Placements) > 0 {
		fmt.Fprintln(out)
		writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "PLACEMENT\tPREFERRED\tRESOLVED\tX\tY\tWIDTH\tHEIGHT\tARROW")
		for _, p := range report.Placements {
			resolved := p.Result.Placement.String()
			switch {
			case p.Result.Flipped:
				resolved += " (flipped)"
			case p.Result.Clamped:
				resolved += " (clamped)"
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
				p.ID, p.Preferred, resolved, p.Result.X, p.Result.Y, p.Result.Width, p.Result.Height, p.Result.ArrowOffset)
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// watchLayout evaluates the document once, then again after every burst of
// changes to it, until ctx is done. Evaluation errors are printed and the
// watch goes on.
func watchLayout(ctx context.Context, out io.Writer, path string, opts *layoutOptions, log *logger.Logger, debounce time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log = log.Component("watch").WithFields(map[string]any{"path": path})

	abs, err := filepath.Abs(path)
	if err != nil {
		return newCommandError("watch layout", "resolving "+path, err, "Pass an existing document path.")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("watch layout", "starting the file watcher", err, "Check the system file watch limits.")
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return newCommandError("watch layout", "watching "+filepath.Dir(abs), err, "Check that the directory exists and is readable.")
	}

	evaluate := func() {
		if err := runLayout(out, abs, opts, log); err != nil {
			fmt.Fprintln(out, err)
		}
		fmt.Fprintln(out, "--- watching for changes (ctrl+c to stop)")
	}
	evaluate()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.WithFields(map[string]any{"op": event.Op.String()}).Debug("document changed")
			timer.Reset(debounce)

		case <-timer.C:
			evaluate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error: " + err.Error())
		}
	}
}
