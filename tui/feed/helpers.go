package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

// maybeStartFeedPrefetch fires the pager when the cursor reaches the last
// prefetchTrigger posts, which is where the end of the list is on screen.
func (m *Model) maybeStartFeedPrefetch() tea.Cmd {
	if m.loadingMore || len(m.posts) == 0 || m.pager == nil {
		return nil
	}
	if m.cursor < len(m.posts)-prefetchTrigger {
		return nil
	}
	ch, ok := m.pager.Fire()
	if !ok {
		return nil
	}
	m.loadingMore = true
	m.reqSeq++
	return waitForPage(ch, m.reqSeq)
}

func waitForPage(ch <-chan domain.PageResult, reqSeq int) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return PageLoadedMsg{ReqSeq: reqSeq}
		}
		return PageLoadedMsg{ReqSeq: reqSeq, Posts: res.Posts, Err: res.Err}
	}
}

func (m Model) detailPost() (domain.Post, bool) {
	for _, p := range m.posts {
		if p.ID == m.detailPostID {
			return p, true
		}
	}
	return domain.Post{}, false
}

func (m Model) visibleComments(p domain.Post) []domain.Comment {
	if m.showAllComments || len(p.Comments) <= visibleComments {
		return p.Comments
	}
	return p.Comments[:visibleComments]
}

func (m Model) cardWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-2, 30)
}

// listViewportHeight is the number of lines available for cards. Zero means
// the height is unknown and every card is rendered.
func (m Model) listViewportHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-1, 3) // one line for the loading indicator
}

func (m Model) cardHeight(i int) int {
	return common.LineCount(m.renderCard(m.posts[i], i == m.cursor))
}

func (m *Model) ensureCursorVisible() {
	if m.showDetail {
		return
	}
	if len(m.posts) == 0 {
		m.cursor, m.startIndex = 0, 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.posts)-1)
	m.startIndex = min(max(m.startIndex, 0), m.cursor)

	vh := m.listViewportHeight()
	if vh == 0 {
		return
	}
	for m.startIndex < m.cursor {
		used := 0
		for i := m.startIndex; i <= m.cursor; i++ {
			used += m.cardHeight(i)
		}
		if used <= vh {
			break
		}
		m.startIndex++
	}
}
