package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

func TestGenerator_DeterministicWithStubbedSource(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	// gallery?, author, body, postedAt, likes, comments, shares, gallery set
	rng := &seqRand{vals: []int{1, 2, 3, 4, 0, 0, 0, 3}}
	g := NewGenerator(rng, fixedClock(now))

	posts := g.Generate(1)

	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, "random-1700000000000-0", p.ID)
	assert.Equal(t, domain.KindGallery, p.Kind)
	assert.Equal(t, "Sophia Lee", p.Author.Name)
	assert.Equal(t, generatedBodies[3], p.Body)
	assert.Equal(t, "1 hour ago", p.PostedAt)
	assert.Equal(t, domain.Engagement{LikeCount: 10, CommentCount: 5, ShareCount: 1}, p.Engagement)
	assert.Len(t, p.Images, 4)
	assert.Equal(t, 4, p.TotalImageCount)
}

func TestGenerator_StructuralProperties(t *testing.T) {
	g := NewGenerator(nil, nil)

	posts := g.Generate(50)

	require.Len(t, posts, 50)
	seen := map[string]bool{}
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Author.Name)
		assert.NotEmpty(t, p.Body)
		assert.Contains(t, []domain.PostKind{domain.KindPlain, domain.KindGallery}, p.Kind)
		assert.GreaterOrEqual(t, p.Engagement.LikeCount, 10)
		assert.Less(t, p.Engagement.LikeCount, 210)
		assert.GreaterOrEqual(t, p.Engagement.CommentCount, 5)
		assert.GreaterOrEqual(t, p.Engagement.ShareCount, 1)
		if p.Kind == domain.KindGallery {
			assert.NotEmpty(t, p.Images)
			assert.Equal(t, len(p.Images), p.TotalImageCount)
		} else {
			assert.Empty(t, p.Images)
		}
	}
}

func TestGenerator_CopiesImagePools(t *testing.T) {
	g := NewGenerator(&seqRand{vals: []int{1}}, nil)
	p := g.Generate(1)[0]
	require.NotEmpty(t, p.Images)
	p.Images[0] = "mutated"
	assert.NotEqual(t, "mutated", generatedGalleries[1][0])
}
