package feed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// RandSource is the subset of *rand.Rand the generator needs.
type RandSource interface {
	IntN(n int) int
}

// Clock returns the current time.
type Clock func() time.Time

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

var (
	generatedAuthors = []domain.Author{
		{Name: "Emma Wilson", AvatarURL: avatarBase + "Emma"},
		{Name: "James Brown", AvatarURL: avatarBase + "James"},
		{Name: "Sophia Lee", AvatarURL: avatarBase + "Sophia2"},
		{Name: "Noah Garcia", AvatarURL: avatarBase + "Noah"},
		{Name: "Olivia Martinez", AvatarURL: avatarBase + "Olivia2"},
	}

	generatedBodies = []string{
		"Just got back from an amazing vacation! Can't wait to share more photos soon. #Travel #Vacation",
		"Tried a new recipe today and it turned out perfect! Who wants the recipe? #Cooking #FoodLover",
		"Finally finished that book I've been reading for months. Highly recommend it! #Reading #BookClub",
		"Beautiful sunset today! Sometimes you just need to stop and appreciate nature. #Nature #Sunset",
		"Had the best coffee this morning at this new café downtown. Anyone else been there? #Coffee #CaféHopping",
	}

	generatedPostedAt = []string{
		"Just now",
		"5 minutes ago",
		"10 minutes ago",
		"30 minutes ago",
		"1 hour ago",
		"2 hours ago",
	}

	generatedGalleries = [][]string{
		{
			"https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=500&q=80",
			"https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?w=500&q=80",
		},
		{
			"https://images.unsplash.com/photo-1484980972926-edee96e0960d?w=500&q=80",
			"https://images.unsplash.com/photo-1478145046317-39f10e56b5e9?w=500&q=80",
			"https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=500&q=80",
		},
		{
			"https://images.unsplash.com/photo-1496412705862-e0088f16f791?w=500&q=80",
		},
		{
			"https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=500&q=80",
			"https://images.unsplash.com/photo-1511884642898-4c92249e20b6?w=500&q=80",
			"https://images.unsplash.com/photo-1470770841072-f978cf4d019e?w=500&q=80",
			"https://images.unsplash.com/photo-1517760444937-f6397edcbbcd?w=500&q=80",
		},
	}
)

// Generator synthesizes feed posts from fixed pools.
type Generator struct {
	rng   RandSource
	clock Clock
}

// NewGenerator creates a Generator. A nil rng or clock falls back to a
// time-seeded source and time.Now.
func NewGenerator(rng RandSource, clock Clock) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if clock == nil {
		clock = time.Now
	}
	return &Generator{rng: rng, clock: clock}
}

// Generate returns count new posts. Each post independently picks plain or
// gallery with equal odds.
func (g *Generator) Generate(count int) []domain.Post {
	stamp := g.clock().UnixMilli()
	posts := make([]domain.Post, 0, count)
	for i := range count {
		gallery := g.rng.IntN(2) == 1
		author := generatedAuthors[g.rng.IntN(len(generatedAuthors))]
		body := generatedBodies[g.rng.IntN(len(generatedBodies))]
		postedAt := generatedPostedAt[g.rng.IntN(len(generatedPostedAt))]

		p := domain.Post{
			ID:       fmt.Sprintf("random-%d-%d", stamp, i),
			Kind:     domain.KindPlain,
			Author:   author,
			PostedAt: postedAt,
			Body:     body,
			Engagement: domain.Engagement{
				LikeCount:    g.rng.IntN(200) + 10,
				CommentCount: g.rng.IntN(50) + 5,
				ShareCount:   g.rng.IntN(20) + 1,
			},
		}
		if gallery {
			images := generatedGalleries[g.rng.IntN(len(generatedGalleries))]
			p.Kind = domain.KindGallery
			p.Images = append([]string(nil), images...)
			p.TotalImageCount = len(images)
		}
		posts = append(posts, p)
	}
	return posts
}
