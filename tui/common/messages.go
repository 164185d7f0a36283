package common

import tea "github.com/charmbracelet/bubbletea"

// NoticeMsg asks the root model to show a translated status line.
type NoticeMsg struct {
	Key string
}

// Notice wraps a NoticeMsg into a tea.Cmd.
func Notice(key string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Key: key} }
}
