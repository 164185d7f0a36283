package feed

import (
	"fmt"
	"strings"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	feedcore "github.com/Nguyen-Van-Truong/fe-hoan-hao/feed"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

// View renders the feed list or the open post.
func (m Model) View() string {
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder
	if len(m.posts) == 0 {
		b.WriteString("  " + m.t("post.noPosts") + "\n")
		return b.String()
	}

	vh := m.listViewportHeight()
	used := 0
	for i := m.startIndex; i < len(m.posts); i++ {
		card := m.renderCard(m.posts[i], i == m.cursor)
		h := common.LineCount(card)
		if vh > 0 && used > 0 && used+h > vh {
			break
		}
		b.WriteString(card + "\n")
		used += h
	}

	if m.loadingMore {
		b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), m.t("post.loadingMorePosts")))
	} else if m.err != nil {
		b.WriteString(common.ErrorStyle.Render("  "+m.t("status.loadFailed")) + "\n")
	}
	return b.String()
}

func (m Model) renderCard(p domain.Post, selected bool) string {
	width := m.cardWidth()
	inner := width - 4

	lines := []string{m.renderPostHeader(p)}
	body := common.ClampLines(common.Wrap(p.Body, inner), listLines, inner)
	lines = append(lines, common.ContentStyle.Render(body))
	if g := m.renderGallery(p); g != "" {
		lines = append(lines, g)
	}
	lines = append(lines, m.renderEngagement(p))

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPostHeader(p domain.Post) string {
	return common.AuthorStyle.Render(p.Author.Name) + "  " +
		common.TimestampStyle.Render(m.postedAt(p.PostedAt))
}

// renderGallery draws one placeholder per previewed image plus "+N" for the
// rest.
func (m Model) renderGallery(p domain.Post) string {
	shown, remaining := feedcore.GalleryPreview(p)
	if len(shown) == 0 {
		return ""
	}
	cells := make([]string, 0, len(shown)+1)
	for range shown {
		cells = append(cells, "▣")
	}
	if remaining > 0 {
		cells = append(cells, fmt.Sprintf("+%d", remaining))
	}
	return common.GalleryStyle.Render(strings.Join(cells, " "))
}

func (m Model) renderEngagement(p domain.Post) string {
	heart := "♡"
	if p.Liked {
		heart = common.LikedStyle.Render("♥")
	}
	e := p.Engagement
	return heart + " " + common.EngagementStyle.Render(fmt.Sprintf("%s %s • %s %s • %s %s",
		common.CompactCount(e.LikeCount), m.t("post.likes"),
		common.CompactCount(e.CommentCount), m.t("post.comments"),
		common.CompactCount(e.ShareCount), m.t("post.shares"),
	))
}

// postedAt translates relative times such as "2 hours ago" when the
// dictionary knows them and shows the raw text otherwise.
func (m Model) postedAt(s string) string {
	key := "time." + strings.ToLower(s)
	if v := m.t(key); v != key {
		return v
	}
	return s
}
