package compose

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

const charLimit = 500

// TargetKind says what the composed text becomes.
type TargetKind int

const (
	TargetComment TargetKind = iota
	TargetReply
)

// Target identifies where the composed text goes.
type Target struct {
	Kind      TargetKind
	PostID    string
	CommentID string // set for replies
	ReplyTo   string // author name shown in the header
}

// DoneMsg is sent when composing is complete (submit or cancel).
type DoneMsg struct {
	Target    Target
	Content   string
	Cancelled bool
}

// Labels are the translated strings the composer shows.
type Labels struct {
	Title       string
	Placeholder string
	Hint        string
}

// Model holds the state for the inline composer.
type Model struct {
	target   Target
	labels   Labels
	keys     common.KeyMap
	textarea textarea.Model
}

// New creates a focused composer for target.
func New(target Target, labels Labels, width int) Model {
	ta := textarea.New()
	ta.Placeholder = labels.Placeholder
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.SetWidth(composerWidth(width))
	ta.SetHeight(5)
	ta.Focus()

	return Model{
		target:   target,
		labels:   labels,
		keys:     common.DefaultKeyMap(),
		textarea: ta,
	}
}

func composerWidth(width int) int {
	if width <= 0 {
		return 72
	}
	return min(max(width-4, 20), 100)
}

// Target returns where the composed text goes.
func (m Model) Target() Target {
	return m.target
}

// Value returns the current text.
func (m Model) Value() string {
	return m.textarea.Value()
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the composer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(composerWidth(msg.Width))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, done(DoneMsg{Target: m.target, Cancelled: true})
		case key.Matches(msg, m.keys.Send):
			return m, done(DoneMsg{Target: m.target, Content: m.textarea.Value()})
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
