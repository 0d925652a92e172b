package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/antui/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "antui",
		Short:         "antui lays out Ant Design grids and floating overlays in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags, cmd)
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(newLayoutCmd(flags))
	cmd.AddCommand(newPlaceCmd(flags))
	cmd.AddCommand(newStoriesCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(flags *rootFlags, cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	var human bool
	switch flags.logFormat {
	case "console":
		human = true
	case "json":
	default:
		return nil, fmt.Errorf("unknown log format %q (want console or json)", flags.logFormat)
	}

	return logger.New(logger.Options{Level: level, HumanReadable: human, Writer: cmd.ErrOrStderr()})
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
