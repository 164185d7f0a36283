package feed

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	feedcore "github.com/Nguyen-Van-Truong/fe-hoan-hao/feed"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

type stubLocalizer struct{}

func (stubLocalizer) Language() domain.Language        { return domain.English }
func (stubLocalizer) T(key string) string              { return key }
func (stubLocalizer) Toggle() (domain.Language, error) { return domain.Vietnamese, nil }

type stubPager struct {
	busy  bool
	fired int
	ch    chan domain.PageResult
}

func (p *stubPager) Fire() (<-chan domain.PageResult, bool) {
	if p.busy {
		return nil, false
	}
	p.fired++
	p.ch = make(chan domain.PageResult, 1)
	return p.ch, true
}

func makePost(id string, comments int) domain.Post {
	p := domain.Post{
		ID:       id,
		Kind:     domain.KindPlain,
		Author:   domain.Author{Name: "Author " + id},
		PostedAt: "2 hours ago",
		Body:     "body of " + id,
		Engagement: domain.Engagement{
			LikeCount: 10, CommentCount: comments, ShareCount: 1,
		},
	}
	for i := range comments {
		p.Comments = append(p.Comments, domain.Comment{
			ID:       fmt.Sprintf("%s-c%d", id, i+1),
			Author:   domain.Author{Name: fmt.Sprintf("Commenter %d", i+1)},
			Content:  fmt.Sprintf("comment %d on %s", i+1, id),
			PostedAt: "1 hour ago",
		})
	}
	return p
}

func samplePosts() []domain.Post {
	gallery := makePost("p2", 0)
	gallery.Kind = domain.KindGallery
	for i := range 8 {
		gallery.Images = append(gallery.Images, fmt.Sprintf("https://img.example/%d.jpg", i))
	}
	gallery.TotalImageCount = 8

	return []domain.Post{
		makePost("p1", 3),
		gallery,
		makePost("p3", 0),
		makePost("p4", 1),
		makePost("p5", 0),
		makePost("p6", 0),
	}
}

func newTestModel(t *testing.T) (Model, *feedcore.Store, *stubPager) {
	t.Helper()
	store := feedcore.NewStore(feedcore.Options{Seed: samplePosts})
	pager := &stubPager{}
	ids := 0
	m := New(Deps{
		Feed:      store,
		Pager:     pager,
		Localizer: stubLocalizer{},
		Author:    domain.Author{Name: "Current User"},
		NewID: func() string {
			ids++
			return fmt.Sprintf("local-%d", ids)
		},
	})
	return m, store, pager
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func noticeKey(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected notice command")
	}
	n, ok := cmd().(common.NoticeMsg)
	if !ok {
		t.Fatalf("expected NoticeMsg")
	}
	return n.Key
}
