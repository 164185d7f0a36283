package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui/common"
)

type detailBlock struct {
	text     string
	selected bool
}

func (m Model) renderDetailView() string {
	p, ok := m.detailPost()
	if !ok {
		return "  " + m.t("status.targetGone") + "\n"
	}
	width := m.cardWidth()
	inner := width - 4

	blocks := []detailBlock{{text: m.renderDetailPost(p, width, inner), selected: m.detailCursor == 0}}

	comments := m.visibleComments(p)
	if len(comments) == 0 {
		blocks = append(blocks, detailBlock{text: common.TimestampStyle.Render("  " + m.t("post.noComments"))})
	}
	for i, c := range comments {
		blocks = append(blocks, detailBlock{
			text:     m.renderComment(c, m.detailCursor == i+1, inner),
			selected: m.detailCursor == i+1,
		})
	}
	if hidden := len(p.Comments) - len(comments); hidden > 0 {
		blocks = append(blocks, detailBlock{
			text: common.HintStyle.Render(fmt.Sprintf("%s (%d) [m]", m.t("post.viewMoreComments"), hidden)),
		})
	}
	return windowBlocks(blocks, m.height)
}

func (m Model) renderDetailPost(p domain.Post, width, inner int) string {
	lines := []string{
		m.renderPostHeader(p),
		common.ContentStyle.Render(common.Wrap(p.Body, inner)),
	}
	if g := m.renderGallery(p); g != "" {
		lines = append(lines, g)
	}
	lines = append(lines, m.renderEngagement(p))

	style := common.UnselectedStyle
	if m.detailCursor == 0 {
		style = common.SelectedStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderComment(c domain.Comment, selected bool, inner int) string {
	marker := "  "
	if selected {
		marker = common.CursorStyle.Render("▸ ")
	}
	header := marker + common.AuthorStyle.Render(c.Author.Name) + "  " +
		common.TimestampStyle.Render(m.postedAt(c.PostedAt))
	if c.Sync == domain.SyncLocal {
		header += common.LocalBadgeStyle.Render("(" + m.t("post.localOnly") + ")")
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	for _, ln := range strings.Split(common.Wrap(c.Content, inner-2), "\n") {
		b.WriteString("  " + common.ContentStyle.Render(ln) + "\n")
	}
	meta := fmt.Sprintf("♥ %d", c.LikeCount)
	if len(c.Replies) > 0 {
		meta += fmt.Sprintf(" • %d %s", len(c.Replies), m.t("post.replies"))
	}
	b.WriteString("  " + common.EngagementStyle.Render(meta))

	for _, r := range c.Replies {
		line := "    ↳ " + common.AuthorStyle.Render(r.Author.Name) + ": " +
			common.ContentStyle.Render(common.Truncate(common.SingleLine(r.Content), replyContentWidth(inner, r.Author.Name)))
		if r.Sync == domain.SyncLocal {
			line += common.LocalBadgeStyle.Render("(" + m.t("post.localOnly") + ")")
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

// replyContentWidth is the cell budget left for a reply body after the
// indent, arrow and author name.
func replyContentWidth(inner int, author string) int {
	return max(inner-12-ansi.StringWidth(author), 10)
}

// windowBlocks joins blocks and, when height is known, cuts the output to
// height lines keeping the selected block on screen.
func windowBlocks(blocks []detailBlock, height int) string {
	var lines []string
	selTop, selBottom := 0, 0
	for _, blk := range blocks {
		top := len(lines)
		lines = append(lines, strings.Split(blk.text, "\n")...)
		if blk.selected {
			selTop, selBottom = top, len(lines)-1
		}
	}
	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n") + "\n"
	}
	start := 0
	if selBottom >= height {
		start = selBottom - height + 1
	}
	start = min(start, selTop)
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n") + "\n"
}
