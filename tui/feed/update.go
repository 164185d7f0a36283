package feed

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case AddCommentMsg, AddReplyMsg:
		return m.handleLocalWrite(msg)

	case tea.KeyMsg:
		if m.showDetail {
			return m.handleDetailKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (Model, tea.Cmd) {
	if msg.ReqSeq != m.reqSeq {
		return m, nil
	}
	m.loadingMore = false
	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return m, nil
		}
		m.err = msg.Err
		return m, common.Notice("status.loadFailed")
	}
	m.err = nil
	// Re-read the store: it also holds comments and likes applied while
	// this page was loading.
	m.posts = m.svc.Posts()
	m.ensureCursorVisible()
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, m.maybeStartFeedPrefetch()

	case key.Matches(msg, m.keys.Enter):
		p, ok := m.SelectedPost()
		if !ok {
			return m, nil
		}
		m.showDetail = true
		m.detailPostID = p.ID
		m.detailCursor = 0
		m.showAllComments = false
		return m, nil

	case key.Matches(msg, m.keys.Like):
		p, ok := m.SelectedPost()
		if !ok {
			return m, nil
		}
		return m.toggleLike(p.ID)

	case key.Matches(msg, m.keys.Comment):
		p, ok := m.SelectedPost()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return CommentRequestMsg{PostID: p.ID} }
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p, ok := m.detailPost()
	if !ok {
		m.showDetail = false
		return m, common.Notice("status.targetGone")
	}
	comments := m.visibleComments(p)

	switch {
	case key.Matches(msg, m.keys.Back):
		m.showDetail = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.detailCursor > 0 {
			m.detailCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.detailCursor < len(comments) {
			m.detailCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.More):
		m.showAllComments = true
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if m.detailCursor == 0 {
			return m.toggleLike(p.ID)
		}
		c := comments[m.detailCursor-1]
		posts, ok := m.svc.LikeComment(p.ID, c.ID)
		if !ok {
			return m, common.Notice("status.targetGone")
		}
		m.posts = posts
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		return m, func() tea.Msg { return CommentRequestMsg{PostID: p.ID} }

	case key.Matches(msg, m.keys.Reply):
		if m.detailCursor == 0 {
			return m, nil
		}
		c := comments[m.detailCursor-1]
		return m, func() tea.Msg {
			return ReplyRequestMsg{PostID: p.ID, CommentID: c.ID, Author: c.Author.Name}
		}
	}
	return m, nil
}

func (m Model) toggleLike(postID string) (Model, tea.Cmd) {
	posts, ok := m.svc.ToggleLike(postID)
	if !ok {
		return m, common.Notice("status.targetGone")
	}
	m.posts = posts
	return m, nil
}

func (m Model) handleLocalWrite(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AddCommentMsg:
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return m, common.Notice("status.emptyMessage")
		}
		c := domain.Comment{
			ID:       m.newID(),
			Author:   m.author,
			Content:  content,
			PostedAt: "Just now",
			Sync:     domain.SyncLocal,
		}
		posts, ok := m.svc.AddComment(msg.PostID, c)
		if !ok {
			return m, common.Notice("status.targetGone")
		}
		m.posts = posts
		if m.showDetail && m.detailPostID == msg.PostID {
			m.detailCursor = 1
		}
		return m, common.Notice("status.commentAdded")

	case AddReplyMsg:
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return m, common.Notice("status.emptyMessage")
		}
		r := domain.Reply{
			ID:       m.newID(),
			Author:   m.author,
			Content:  content,
			PostedAt: "Just now",
			Sync:     domain.SyncLocal,
		}
		posts, ok := m.svc.AddReply(msg.PostID, msg.CommentID, r)
		if !ok {
			return m, common.Notice("status.targetGone")
		}
		m.posts = posts
		return m, common.Notice("status.replyAdded")
	}
	return m, nil
}
