package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/antui/internal/logger"
	"github.com/alexisbeaulieu97/antui/internal/storybook"
	"github.com/alexisbeaulieu97/antui/internal/tui"
)

func newDemoCmd(rootFlags *rootFlags) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse the stories interactively",
		Long: `Launch the interactive story browser. Arrow keys move the target anchor,
p cycles its placement, enter toggles the popover and h simulates hovering.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The alternate screen owns stderr while the program runs.
			log := logger.Nop()
			if logFile != "" {
				file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return newCommandError("start demo", "opening "+logFile, err, "Pass a writable --log-file path.")
				}
				defer file.Close()

				level := "info"
				if rootFlags.verbose {
					level = "debug"
				}
				log, err = logger.New(logger.Options{Level: level, Writer: file})
				if err != nil {
					return err
				}
			}

			program := tea.NewProgram(
				tui.NewModel(storybook.Default(), log),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := program.Run(); err != nil {
				return newCommandError("run demo", "running the story browser", err, "Run the command in an interactive terminal.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the browser runs")

	return cmd
}
