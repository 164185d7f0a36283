package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/app"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

const (
	prefetchTrigger = 3
	visibleComments = 2
	listLines       = 3 // body lines shown per card in the list
)

// PageLoadedMsg carries the result of a page load started by this model.
type PageLoadedMsg struct {
	ReqSeq int
	Posts  []domain.Post
	Err    error
}

// CommentRequestMsg asks the root to open the composer for a new comment.
type CommentRequestMsg struct {
	PostID string
}

// ReplyRequestMsg asks the root to open the composer for a reply.
type ReplyRequestMsg struct {
	PostID    string
	CommentID string
	Author    string
}

// AddCommentMsg delivers composed comment text.
type AddCommentMsg struct {
	PostID  string
	Content string
}

// AddReplyMsg delivers composed reply text.
type AddReplyMsg struct {
	PostID    string
	CommentID string
	Content   string
}

// Deps are the collaborators of the feed view.
type Deps struct {
	Feed      app.FeedService
	Pager     app.PageTrigger
	Localizer app.Localizer
	Author    domain.Author // signs local comments and replies
	NewID     func() string // defaults to uuid.NewString
}

type feedState struct {
	posts       []domain.Post
	cursor      int
	loadingMore bool
	reqSeq      int
	err         error
}

type uiState struct {
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
	startIndex int // first card rendered in the list
}

type detailState struct {
	showDetail      bool
	detailPostID    string
	detailCursor    int // 0 for the post, 1..n for visible comments
	showAllComments bool
}

// Model holds the state for the feed view.
type Model struct {
	svc    app.FeedService
	pager  app.PageTrigger
	loc    app.Localizer
	author domain.Author
	newID  func() string
	feedState
	uiState
	detailState
}

// New creates a feed model and loads the initial posts.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(common.Pink)

	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return Model{
		svc:    deps.Feed,
		pager:  deps.Pager,
		loc:    deps.Localizer,
		author: deps.Author,
		newID:  newID,
		feedState: feedState{
			posts: deps.Feed.LoadInitial(),
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// Posts returns the rendered snapshot.
func (m Model) Posts() []domain.Post {
	return m.posts
}

// Cursor returns the selected post index.
func (m Model) Cursor() int {
	return m.cursor
}

// LoadingMore reports whether a page load is in flight.
func (m Model) LoadingMore() bool {
	return m.loadingMore
}

// IsInDetailView reports whether a single post is open.
func (m Model) IsInDetailView() bool {
	return m.showDetail
}

// SelectedPost returns the post under the cursor, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	if len(m.posts) == 0 || m.cursor < 0 || m.cursor >= len(m.posts) {
		return domain.Post{}, false
	}
	return m.posts[m.cursor], true
}

func (m Model) t(key string) string {
	return m.loc.T(key)
}
