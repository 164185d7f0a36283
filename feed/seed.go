package feed

import "github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"

// SeedPosts returns the initial feed. Every call returns fresh slices.
func SeedPosts() []domain.Post {
	return []domain.Post{
		{
			ID:       "1",
			Kind:     domain.KindPlain,
			Author:   domain.Author{Name: "Jane Doe", AvatarURL: avatarBase + "Jane"},
			PostedAt: "2 hours ago",
			Body:     "Just had the most amazing day! The weather was perfect for a picnic in the park. Anyone else enjoying this beautiful day? #SunnyDays #WeekendVibes",
			Engagement: domain.Engagement{
				LikeCount: 42, CommentCount: 12, ShareCount: 5,
			},
		},
		{
			ID:       "2",
			Kind:     domain.KindGallery,
			Author:   domain.Author{Name: "Jane Smith", AvatarURL: avatarBase + "Jane"},
			PostedAt: "3 hours ago",
			Body:     "Just had an amazing weekend with friends! Here are some highlights from our trip to the mountains. The views were breathtaking and the weather was perfect!",
			Engagement: domain.Engagement{
				LikeCount: 124, CommentCount: 43, ShareCount: 12,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?w=500&q=80",
				"https://images.unsplash.com/photo-1486870591958-9b9d0d1dda99?w=500&q=80",
				"https://images.unsplash.com/photo-1485470733090-0aae1788d5af?w=500&q=80",
				"https://images.unsplash.com/photo-1491555103944-7c647fd857e6?w=500&q=80",
				"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?w=500&q=80",
				"https://images.unsplash.com/photo-1486870591958-9b9d0d1dda99?w=500&q=80",
				"https://images.unsplash.com/photo-1485470733090-0aae1788d5af?w=500&q=80",
				"https://images.unsplash.com/photo-1491555103944-7c647fd857e6?w=500&q=80",
			},
			TotalImageCount: 8,
		},
		{
			ID:       "3",
			Kind:     domain.KindPlain,
			Author:   domain.Author{Name: "John Smith", AvatarURL: avatarBase + "John"},
			PostedAt: "5 hours ago",
			Body:     "Just finished reading an amazing book! I highly recommend 'The Midnight Library' by Matt Haig. Has anyone else read it? What did you think? #BookRecommendations #Reading",
			Engagement: domain.Engagement{
				LikeCount: 78, CommentCount: 25, ShareCount: 8,
			},
		},
		{
			ID:       "4",
			Kind:     domain.KindPlain,
			Author:   domain.Author{Name: "Sarah Johnson", AvatarURL: avatarBase + "Sarah"},
			PostedAt: "Yesterday",
			Body:     "Just got a promotion at work! So excited for this new chapter in my career. Thanks to everyone who supported me along the way! #CareerMilestone #Grateful",
			Engagement: domain.Engagement{
				LikeCount: 156, CommentCount: 64, ShareCount: 12,
			},
		},
		{
			ID:       "5",
			Kind:     domain.KindGallery,
			Author:   domain.Author{Name: "Mike Chen", AvatarURL: avatarBase + "Mike"},
			PostedAt: "4 hours ago",
			Body:     "My new apartment view! What do you think? #NewHome #CityLife",
			Engagement: domain.Engagement{
				LikeCount: 89, CommentCount: 31, ShareCount: 7,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=500&q=80",
			},
			TotalImageCount: 1,
		},
		{
			ID:       "6",
			Kind:     domain.KindGallery,
			Author:   domain.Author{Name: "Emily Wilson", AvatarURL: avatarBase + "Emily"},
			PostedAt: "6 hours ago",
			Body:     "Cooking class was amazing today! Made these two dishes from scratch. #FoodLover #Cooking",
			Engagement: domain.Engagement{
				LikeCount: 112, CommentCount: 28, ShareCount: 9,
			},
			Images: []string{
				"https://images.unsplash.com/photo-1476718406336-bb5a9690ee2a?w=500&q=80",
				"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=500&q=80",
			},
			TotalImageCount: 2,
		},
	}
}

// CurrentAuthor signs comments and replies written on this client.
var CurrentAuthor = domain.Author{Name: "Current User", AvatarURL: avatarBase + "CurrentUser"}
