package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/wstdesk/wstdesk/cmd/wstdesk/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive profile manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := openController()
		if err != nil {
			return err
		}

		model := tui.NewModel(ctl)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}
