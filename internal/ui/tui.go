// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the batch progress view
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates a new TUI model
func NewModel(dir string, factor float64) Model {
	return Model{
		dir:    dir,
		factor: factor,
	}
}

// Run starts the TUI
func Run(dir string, factor float64) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(dir, factor), tea.WithAltScreen())
	return p, nil
}
