package inbox

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

// View renders the conversation list or the open thread.
func (m Model) View() string {
	if m.showThread {
		return m.renderThread()
	}
	return m.renderList()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-2, 30)
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(" " + common.AuthorStyle.Render(m.t("messages.conversations")) + "\n\n")
	if len(m.conversations) == 0 {
		b.WriteString("  " + m.t("messages.noConversations") + "\n")
		return b.String()
	}

	width := m.contentWidth()
	for i, c := range m.conversations {
		marker := "  "
		if i == m.cursor {
			marker = common.CursorStyle.Render("▸ ")
		}
		name := c.Participant.Name
		if !c.LastMessage.IsRead {
			name = common.UnreadStyle.Render(name + " •")
		} else {
			name = common.AuthorStyle.Render(name)
		}
		when := common.TimestampStyle.Render(m.relative(c.LastMessage.Timestamp))
		b.WriteString(marker + name + "  " + when + "\n")

		preview := common.Truncate(common.SingleLine(c.LastMessage.Text), width-6)
		b.WriteString("    " + common.TimestampStyle.Render(preview) + "\n")
	}
	return b.String()
}

func (m Model) renderThread() string {
	var b strings.Builder
	width := m.contentWidth()

	header := " " + common.AuthorStyle.Render(m.activeName())
	if c, ok := m.activeConversation(); ok {
		header += " " + common.TimestampStyle.Render("@"+c.Participant.Username)
	}
	b.WriteString(header + "\n")
	if m.searching || m.query != "" {
		m.search.Placeholder = m.t("messages.searchMessages")
		b.WriteString(" " + m.search.View() + "\n")
	}
	b.WriteString("\n")

	msgs := m.visibleMessages()
	var lines []string
	switch {
	case len(msgs) == 0 && m.query != "":
		lines = []string{"  " + m.t("messages.noSearchResults")}
	case len(msgs) == 0:
		lines = []string{"  " + m.t("messages.noMessages")}
	default:
		for _, msg := range msgs {
			lines = append(lines, strings.Split(m.renderMessage(msg, width), "\n")...)
		}
	}
	if h := m.threadViewportHeight(); h > 0 && len(lines) > h {
		lines = lines[len(lines)-h:]
	}
	b.WriteString(strings.Join(lines, "\n") + "\n\n")

	if m.writing {
		m.input.Placeholder = m.t("messages.typeMessage")
		b.WriteString(" " + m.input.View() + "\n")
	} else {
		b.WriteString(" " + common.TimestampStyle.Render("› "+m.t("messages.typeMessage")) + "\n")
	}
	return b.String()
}

func (m Model) renderMessage(msg domain.Message, width int) string {
	own := msg.Author.Username == m.self.Username
	bubbleWidth := max(width*2/3, 20)
	text := common.Wrap(msg.Content, bubbleWidth-2)

	style := common.OtherMessageStyle
	if own {
		style = common.OwnMessageStyle
	}
	bubble := style.Render(text)

	meta := msg.Timestamp.Format("15:04")
	if msg.Sync == domain.SyncLocal {
		meta += " (" + m.t("post.localOnly") + ")"
	}
	meta = common.TimestampStyle.Render(meta)

	align := lipgloss.Left
	if own {
		align = lipgloss.Right
	}
	block := lipgloss.JoinVertical(align, bubble, meta)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// threadViewportHeight leaves room for the header, search bar and input.
func (m Model) threadViewportHeight() int {
	if m.height <= 0 {
		return 0
	}
	chrome := 5
	if m.searching || m.query != "" {
		chrome++
	}
	return max(m.height-chrome, 3)
}

func (m Model) activeConversation() (domain.Conversation, bool) {
	for _, c := range m.conversations {
		if c.ID == m.activeID {
			return c, true
		}
	}
	return domain.Conversation{}, false
}

func (m Model) activeName() string {
	if c, ok := m.activeConversation(); ok {
		return c.Participant.Name
	}
	return m.t("messages.messages")
}

func (m Model) relative(ts time.Time) string {
	if key, ok := common.RelativeTimeKey(m.now(), ts); ok {
		return m.t(key)
	}
	return ts.Format("15:04")
}
