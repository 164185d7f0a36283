package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

const (
	DefaultPageSize  = 3
	DefaultPageDelay = 1500 * time.Millisecond
)

// Options configures a Store. Zero values pick the defaults.
type Options struct {
	PageSize  int
	PageDelay time.Duration
	Generator *Generator
	Seed      func() []domain.Post
	Logger    *slog.Logger
}

// Store owns the ordered post list, the page counter, and the busy flag.
// It is safe for concurrent use; page loads run off the UI goroutine.
type Store struct {
	mu       sync.Mutex
	posts    []domain.Post
	page     int
	loading  bool
	pageSize int
	delay    time.Duration
	gen      *Generator
	seed     func() []domain.Post
	log      *slog.Logger
}

// NewStore creates a store holding the seed posts.
func NewStore(opts Options) *Store {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.PageDelay < 0 {
		opts.PageDelay = 0
	}
	if opts.Generator == nil {
		opts.Generator = NewGenerator(nil, nil)
	}
	if opts.Seed == nil {
		opts.Seed = SeedPosts
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		posts:    opts.Seed(),
		page:     1,
		pageSize: opts.PageSize,
		delay:    opts.PageDelay,
		gen:      opts.Generator,
		seed:     opts.Seed,
		log:      opts.Logger.With("component", "feed"),
	}
}

// LoadInitial resets the feed to the seed list and returns it.
func (s *Store) LoadInitial() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = s.seed()
	s.page = 1
	return clonePosts(s.posts)
}

// LoadNextPage waits the simulated latency, then appends a page of generated
// posts. When a load is already in flight it returns the current list
// without starting another one. If ctx ends during the wait nothing is
// appended and ctx.Err() is returned alongside the current list.
func (s *Store) LoadNextPage(ctx context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	if s.loading {
		snapshot := clonePosts(s.posts)
		s.mu.Unlock()
		s.log.Debug("page load already in flight")
		return snapshot, nil
	}
	s.loading = true
	page := s.page
	s.mu.Unlock()

	s.log.Debug("page load started", "page", page+1, "delay", s.delay)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.mu.Lock()
		s.loading = false
		snapshot := clonePosts(s.posts)
		s.mu.Unlock()
		s.log.Info("page load cancelled", "page", page+1, "error", ctx.Err())
		return snapshot, ctx.Err()
	case <-timer.C:
	}

	fresh := s.gen.Generate(s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Post, 0, len(s.posts)+len(fresh))
	next = append(next, s.posts...)
	s.posts = append(next, fresh...)
	s.page++
	s.loading = false
	s.log.Debug("page load finished", "page", s.page, "added", len(fresh), "total", len(s.posts))
	return clonePosts(s.posts), nil
}

// Posts returns a snapshot of the current list.
func (s *Store) Posts() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePosts(s.posts)
}

// Loading reports whether a page load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Page returns the page counter. It starts at 1 and only grows.
func (s *Store) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// AddComment applies AddComment to the stored list. ok is false when the post is unknown.
func (s *Store) AddComment(postID string, c domain.Comment) ([]domain.Post, bool) {
	return s.apply(postID, "", func(posts []domain.Post) []domain.Post {
		return AddComment(posts, postID, c)
	})
}

// LikeComment applies LikeComment to the stored list.
func (s *Store) LikeComment(postID, commentID string) ([]domain.Post, bool) {
	return s.apply(postID, commentID, func(posts []domain.Post) []domain.Post {
		return LikeComment(posts, postID, commentID)
	})
}

// AddReply applies AddReply to the stored list.
func (s *Store) AddReply(postID, commentID string, r domain.Reply) ([]domain.Post, bool) {
	return s.apply(postID, commentID, func(posts []domain.Post) []domain.Post {
		return AddReply(posts, postID, commentID, r)
	})
}

// ToggleLike applies ToggleLike to the stored list.
func (s *Store) ToggleLike(postID string) ([]domain.Post, bool) {
	return s.apply(postID, "", func(posts []domain.Post) []domain.Post {
		return ToggleLike(posts, postID)
	})
}

func (s *Store) apply(postID, commentID string, fn func([]domain.Post) []domain.Post) ([]domain.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := indexOfPost(s.posts, postID) >= 0
	if ok && commentID != "" {
		_, ok = FindComment(s.posts, postID, commentID)
	}
	if !ok {
		s.log.Debug("mutation target not found", "post_id", postID, "comment_id", commentID)
		return clonePosts(s.posts), false
	}
	s.posts = fn(s.posts)
	return clonePosts(s.posts), true
}
