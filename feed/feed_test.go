package feed

import (
	"time"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// seqRand replays a fixed sequence of IntN results, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func samplePosts() []domain.Post {
	return []domain.Post{
		{
			ID:         "p1",
			Kind:       domain.KindPlain,
			Body:       "first",
			Engagement: domain.Engagement{LikeCount: 3, CommentCount: 10},
			Comments: []domain.Comment{
				{ID: "c1", Content: "one", LikeCount: 1},
				{ID: "c2", Content: "two", Replies: []domain.Reply{{ID: "r1", Content: "hi"}}},
			},
		},
		{
			ID:         "p2",
			Kind:       domain.KindGallery,
			Body:       "second",
			Engagement: domain.Engagement{LikeCount: 7, CommentCount: 2},
			Images:     []string{"a", "b"},
		},
	}
}
