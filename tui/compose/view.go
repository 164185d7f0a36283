package compose

import (
	"fmt"
	"strings"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

// View renders the composer.
func (m Model) View() string {
	var b strings.Builder
	header := m.labels.Title
	if m.target.ReplyTo != "" {
		header += " " + common.AuthorStyle.Render(m.target.ReplyTo)
	}
	b.WriteString(" " + header + "\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	b.WriteString(common.HintStyle.Render(
		fmt.Sprintf("%s • %d/%d", m.labels.Hint, len([]rune(m.textarea.Value())), charLimit),
	))
	return b.String()
}
