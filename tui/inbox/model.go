// Package inbox is the Messages view: the conversation list and the open
// thread with its input and search bars.
package inbox

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/app"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

const messageCharLimit = 1000

// Deps are the collaborators of the inbox view.
type Deps struct {
	Inbox     app.InboxService
	Localizer app.Localizer
	Self      domain.Participant // author of messages sent from here
	Now       func() time.Time
}

// Model holds the state for the inbox view.
type Model struct {
	svc  app.InboxService
	loc  app.Localizer
	self domain.Participant
	now  func() time.Time
	keys common.KeyMap

	conversations []domain.Conversation
	cursor        int
	showThread    bool
	activeID      string
	messages      []domain.Message

	writing   bool
	input     textinput.Model
	searching bool
	search    textinput.Model
	query     string

	width  int
	height int
}

// New creates an inbox model listing the service's conversations.
func New(deps Deps) Model {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	input := textinput.New()
	input.CharLimit = messageCharLimit
	input.Prompt = "› "

	search := textinput.New()
	search.Prompt = "/ "

	return Model{
		svc:           deps.Inbox,
		loc:           deps.Localizer,
		self:          deps.Self,
		now:           now,
		keys:          common.DefaultKeyMap(),
		conversations: deps.Inbox.Conversations(),
		input:         input,
		search:        search,
	}
}

// Init has nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Capturing reports whether keystrokes belong to a text input.
func (m Model) Capturing() bool {
	return m.writing || m.searching
}

// InThread reports whether a conversation is open.
func (m Model) InThread() bool {
	return m.showThread
}

// Update handles messages for the inbox view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 10)
		m.search.Width = max(msg.Width-6, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.writing:
			return m.handleWritingKey(msg)
		case m.searching:
			return m.handleSearchKey(msg)
		case m.showThread:
			return m.handleThreadKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}

	var cmd tea.Cmd
	if m.writing {
		m.input, cmd = m.input.Update(msg)
	} else if m.searching {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.conversations)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if len(m.conversations) == 0 {
			return m, nil
		}
		m.open(m.conversations[m.cursor].ID)
	}
	return m, nil
}

func (m *Model) open(id string) {
	m.messages = m.svc.SelectConversation(id)
	m.activeID = id
	m.conversations = m.svc.Conversations()
	m.showThread = true
	m.query = ""
	m.search.Reset()
}

func (m Model) handleThreadKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.query != "" {
			m.query = ""
			m.search.Reset()
			return m, nil
		}
		m.showThread = false
		return m, nil
	case key.Matches(msg, m.keys.Write):
		m.writing = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	}
	return m, nil
}

func (m Model) handleWritingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.writing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		return m.send()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send() (Model, tea.Cmd) {
	_, err := m.svc.SendMessage(m.activeID, m.input.Value())
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return m, common.Notice("status.emptyMessage")
	case err != nil:
		return m, common.Notice("status.targetGone")
	}
	m.input.Reset()
	m.messages = m.svc.Messages()
	return m, common.Notice("status.messageSent")
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.searching = false
		m.query = ""
		m.search.Reset()
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query = m.search.Value()
	return m, cmd
}

// visibleMessages applies the search filter to the open thread.
func (m Model) visibleMessages() []domain.Message {
	if m.query == "" {
		return m.messages
	}
	return m.svc.Search(m.query)
}

func (m Model) t(key string) string {
	return m.loc.T(key)
}
