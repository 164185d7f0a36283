package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/app"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/compose"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/feed"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/inbox"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed      app.FeedService
	Pager     app.PageTrigger
	Inbox     app.InboxService
	Localizer app.Localizer
	Resolver  app.LanguageResolver // nil skips startup detection
	Author    domain.Author
	Self      domain.Participant
	Context   context.Context
	Log       *slog.Logger
}

type activeView int

const (
	feedView activeView = iota
	inboxView
	composeView
)

// chromeLines is the header (title row with top padding, blank line) plus
// the footer (status with top padding, hints).
const chromeLines = 6

// LanguageResolvedMsg reports the startup language decision.
type LanguageResolvedMsg struct {
	Language domain.Language
}

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps     Deps
	ctx      context.Context
	log      *slog.Logger
	active   activeView
	returnTo activeView // view to restore when the composer closes
	feed     feed.Model
	inbox    inbox.Model
	compose  compose.Model
	keys     common.KeyMap
	status   string // transient, already translated
	width    int
	height   int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := deps.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return App{
		deps:   deps,
		ctx:    ctx,
		log:    log.With("component", "tui"),
		active: feedView,
		feed: feed.New(feed.Deps{
			Feed:      deps.Feed,
			Pager:     deps.Pager,
			Localizer: deps.Localizer,
			Author:    deps.Author,
		}),
		inbox: inbox.New(inbox.Deps{
			Inbox:     deps.Inbox,
			Localizer: deps.Localizer,
			Self:      deps.Self,
		}),
		keys: common.DefaultKeyMap(),
	}
}

// Init starts the sub-models and resolves the session language.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.feed.Init(),
		a.inbox.Init(),
		a.resolveLanguage(),
	)
}

func (a App) resolveLanguage() tea.Cmd {
	resolver := a.deps.Resolver
	if resolver == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		return LanguageResolvedMsg{Language: resolver.Resolve(ctx)}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-chromeLines, 0)}
		a.feed, _ = a.feed.Update(inner)
		a.inbox, _ = a.inbox.Update(inner)
		if a.active == composeView {
			a.compose, _ = a.compose.Update(inner)
		}
		return a, nil

	case LanguageResolvedMsg:
		a.log.Info("session language", "language", msg.Language)
		return a, nil

	case common.NoticeMsg:
		a.status = a.t(msg.Key)
		return a, nil

	// Page results and spinner ticks belong to the feed whichever view is
	// on screen.
	case feed.PageLoadedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case feed.CommentRequestMsg:
		return a.openCompose(compose.Target{Kind: compose.TargetComment, PostID: msg.PostID},
			a.t("post.comment"), a.t("post.writeAComment"))

	case feed.ReplyRequestMsg:
		return a.openCompose(compose.Target{
			Kind:      compose.TargetReply,
			PostID:    msg.PostID,
			CommentID: msg.CommentID,
			ReplyTo:   msg.Author,
		}, a.t("post.replyingTo"), a.t("post.writeAComment"))

	case compose.DoneMsg:
		a.active = a.returnTo
		if msg.Cancelled {
			a.status = a.t("status.cancelled")
			return a, nil
		}
		var forward tea.Msg
		switch msg.Target.Kind {
		case compose.TargetReply:
			forward = feed.AddReplyMsg{PostID: msg.Target.PostID, CommentID: msg.Target.CommentID, Content: msg.Content}
		default:
			forward = feed.AddCommentMsg{PostID: msg.Target.PostID, Content: msg.Content}
		}
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(forward)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == composeView {
			break
		}
		a.status = ""
		capturing := a.active == inboxView && a.inbox.Capturing()
		if !capturing {
			switch {
			case key.Matches(msg, a.keys.Quit) && a.atTopLevel():
				return a, tea.Quit
			case key.Matches(msg, a.keys.Tab):
				if a.active == feedView {
					a.active = inboxView
				} else {
					a.active = feedView
				}
				return a, nil
			case key.Matches(msg, a.keys.Language):
				return a.toggleLanguage()
			}
		}
	}

	// Delegate to the active sub-model.
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		a.feed, cmd = a.feed.Update(msg)
	case inboxView:
		a.inbox, cmd = a.inbox.Update(msg)
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	}
	return a, cmd
}

func (a App) atTopLevel() bool {
	switch a.active {
	case feedView:
		return !a.feed.IsInDetailView()
	case inboxView:
		return !a.inbox.InThread()
	}
	return false
}

func (a App) openCompose(target compose.Target, title, placeholder string) (tea.Model, tea.Cmd) {
	a.returnTo = a.active
	if a.returnTo == composeView {
		a.returnTo = feedView
	}
	a.active = composeView
	a.status = ""
	a.compose = compose.New(target, compose.Labels{
		Title:       title,
		Placeholder: placeholder,
		Hint:        a.t("hints.compose"),
	}, a.width)
	return a, a.compose.Init()
}

func (a App) toggleLanguage() (tea.Model, tea.Cmd) {
	lang, err := a.deps.Localizer.Toggle()
	if err != nil {
		a.log.Warn("language preference not saved", "language", lang, "error", err)
	}
	a.status = a.t("status.languageChanged")
	return a, nil
}

func (a App) t(key string) string {
	return a.deps.Localizer.T(key)
}

// View renders the header, the active sub-model, the status line and hints.
func (a App) View() string {
	s := a.renderHeader() + "\n\n"

	switch a.active {
	case feedView:
		s += a.feed.View()
	case inboxView:
		s += a.inbox.View()
	case composeView:
		s += a.compose.View()
	}

	if a.status != "" {
		s += common.StatusBarStyle.Render(a.status)
	}
	if hints := a.hintsKey(); hints != "" {
		s += "\n" + common.HintStyle.Render(a.t(hints))
	}
	return s
}

func (a App) renderHeader() string {
	home := common.TabInactiveStyle
	messages := common.TabInactiveStyle
	if a.active == inboxView {
		messages = common.TabActiveStyle
	} else {
		home = common.TabActiveStyle
	}
	lang := a.deps.Localizer.Language()
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		common.AppTitleStyle.Render("✿ "+a.t("app.title")),
		home.Render(a.t("nav.home")),
		messages.Render(a.t("nav.messages")),
		common.LanguageBadgeStyle.Render(a.t("language."+string(lang))),
	)
}

func (a App) hintsKey() string {
	switch a.active {
	case feedView:
		if a.feed.IsInDetailView() {
			return "hints.detail"
		}
		return "hints.feed"
	case inboxView:
		if a.inbox.InThread() {
			return "hints.thread"
		}
		return "hints.inbox"
	}
	return "" // the composer shows its own hints
}
