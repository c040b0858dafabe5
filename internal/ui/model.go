// ABOUTME: Bubbletea model for batch progress TUI
// ABOUTME: Tracks scan results, per-file outcomes, and the closing summary
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sfxkit/respeed-go/internal/batch"
)

const maxRecent = 8

// Model represents the TUI state
type Model struct {
	// Run parameters
	dir    string
	factor float64

	// Progress
	found     int
	processed int
	failed    int
	current   string
	recent    []string

	// Completion
	done bool

	// Dimensions
	width  int
	height int
}

// ScanMsg reports how many audio files were found.
type ScanMsg struct {
	Found int
}

// ProgressMsg wraps a per-file batch event.
type ProgressMsg batch.Event

// DoneMsg reports the end-of-run summary.
type DoneMsg struct {
	Summary batch.Summary
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ScanMsg:
		m.found = msg.Found
	case ProgressMsg:
		m.applyProgress(batch.Event(msg))
	case DoneMsg:
		m.done = true
		m.processed = msg.Summary.Processed
		m.failed = msg.Summary.Failed
		m.current = ""
	}

	return m, nil
}

// applyProgress folds one batch event into the display state
func (m *Model) applyProgress(ev batch.Event) {
	switch ev.Kind {
	case batch.KindBackedUp:
		m.current = ev.File
		m.push(fmt.Sprintf("→ %s moved to backup", ev.File))
	case batch.KindExistingBackup:
		m.current = ev.File
		m.push(fmt.Sprintf("→ %s using existing backup", ev.File))
	case batch.KindProcessed:
		m.processed++
		m.current = ""
		m.push(fmt.Sprintf("✓ %s %dHz → %dHz (%.2fs)", ev.File, ev.OldRate, ev.NewRate, ev.Duration.Seconds()))
	case batch.KindFailed:
		m.failed++
		m.current = ""
		m.push(fmt.Sprintf("✗ %s: %v", ev.File, ev.Err))
	case batch.KindPlanned:
		m.processed++
		m.push(fmt.Sprintf("· %s (dry run)", ev.File))
	}
}

func (m *Model) push(line string) {
	m.recent = append(m.recent, line)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[len(m.recent)-maxRecent:]
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.renderHeader()
	s += m.renderProgress()
	s += m.renderRecent()
	s += m.renderFooter()

	return s
}

func (m Model) renderHeader() string {
	return fmt.Sprintf(`┌─ Respeed ────────────────────────────────────────────┐
│ Dir:    %-45s │
│ Factor: %-45s │
├──────────────────────────────────────────────────────┤
`, truncate(m.dir, 45), fmt.Sprintf("%.2fx", m.factor))
}

func (m Model) renderProgress() string {
	completed := m.processed + m.failed
	bar := renderBar(completed, max(m.found, 1), 20)
	status := fmt.Sprintf("%d/%d", completed, m.found)
	if m.current != "" {
		status += "  " + truncate(m.current, 20)
	}
	return fmt.Sprintf("│ [%s] %-30s │\n", bar, truncate(status, 30))
}

func (m Model) renderRecent() string {
	s := "├──────────────────────────────────────────────────────┤\n"
	for _, line := range m.recent {
		s += fmt.Sprintf("│ %-52s │\n", truncate(line, 52))
	}
	return s
}

func (m Model) renderFooter() string {
	if m.done {
		return fmt.Sprintf(`├──────────────────────────────────────────────────────┤
│ Done: %d processed, %d failed%-25s │
│ Originals preserved in the backup folder.            │
│ q:Quit                                               │
└──────────────────────────────────────────────────────┘
`, m.processed, m.failed, "")
	}
	return `│ q:Quit                                               │
└──────────────────────────────────────────────────────┘
`
}

// Utility functions
func renderBar(value, total, width int) string {
	filled := (value * width) / total
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	if length <= 3 {
		return s[:length]
	}
	return s[:length-3] + "..."
}
