package app

import "github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"

// FeedService owns the post list. Mutators return the updated list and
// whether the target was found; a miss leaves the list unchanged.
type FeedService interface {
	LoadInitial() []domain.Post
	Posts() []domain.Post
	AddComment(postID string, c domain.Comment) ([]domain.Post, bool)
	LikeComment(postID, commentID string) ([]domain.Post, bool)
	AddReply(postID, commentID string, r domain.Reply) ([]domain.Post, bool)
	ToggleLike(postID string) ([]domain.Post, bool)
}

// PageTrigger starts the next feed page load when the end of the list is
// visible. Fire returns false while a load is already running.
type PageTrigger interface {
	Fire() (<-chan domain.PageResult, bool)
}
