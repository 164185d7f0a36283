package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

func newTestStore(t *testing.T, delay time.Duration) *Store {
	t.Helper()
	return NewStore(Options{
		PageSize:  3,
		PageDelay: delay,
		Generator: NewGenerator(&seqRand{vals: []int{0, 1, 2, 3, 4, 5}}, fixedClock(time.UnixMilli(42))),
	})
}

func TestStore_LoadInitialReturnsSeed(t *testing.T) {
	s := newTestStore(t, 0)

	posts := s.LoadInitial()

	assert.Equal(t, SeedPosts(), posts)
	assert.Equal(t, 1, s.Page())
	assert.False(t, s.Loading())
}

func TestStore_LoadNextPageAppends(t *testing.T) {
	s := newTestStore(t, 0)
	seed := s.LoadInitial()

	posts, err := s.LoadNextPage(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, len(seed)+3)
	assert.Equal(t, seed, posts[:len(seed)])
	for _, p := range posts[len(seed):] {
		assert.Contains(t, p.ID, "random-42-")
	}
	assert.Equal(t, 2, s.Page())
	assert.False(t, s.Loading())

	posts, err = s.LoadNextPage(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, len(seed)+6)
	assert.Equal(t, 3, s.Page())
}

func TestStore_LoadNextPageWhileBusyIsNoop(t *testing.T) {
	s := newTestStore(t, time.Hour)
	seed := s.LoadInitial()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.LoadNextPage(ctx)
	}()
	require.Eventually(t, s.Loading, time.Second, time.Millisecond)

	posts, err := s.LoadNextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, posts)
	assert.Equal(t, 1, s.Page())

	cancel()
	wg.Wait()
}

func TestStore_CancelledLoadAppendsNothing(t *testing.T) {
	s := newTestStore(t, time.Hour)
	seed := s.LoadInitial()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	posts, err := s.LoadNextPage(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, seed, posts)
	assert.False(t, s.Loading())
	assert.Equal(t, 1, s.Page())
}

func TestStore_MutationsDuringLoadSurvive(t *testing.T) {
	s := newTestStore(t, 50*time.Millisecond)
	s.LoadInitial()

	done := make(chan []domain.Post, 1)
	go func() {
		posts, _ := s.LoadNextPage(context.Background())
		done <- posts
	}()
	require.Eventually(t, s.Loading, time.Second, time.Millisecond)

	_, ok := s.AddComment("1", domain.Comment{ID: "c-new", Content: "nice"})
	require.True(t, ok)

	posts := <-done
	require.NotEmpty(t, posts[0].Comments)
	assert.Equal(t, "c-new", posts[0].Comments[0].ID)
}

func TestStore_MutatorsReportLookupMisses(t *testing.T) {
	s := newTestStore(t, 0)
	s.LoadInitial()

	_, ok := s.AddComment("nope", domain.Comment{ID: "x"})
	assert.False(t, ok)
	_, ok = s.LikeComment("1", "nope")
	assert.False(t, ok)
	_, ok = s.AddReply("1", "nope", domain.Reply{ID: "x"})
	assert.False(t, ok)
	assert.Equal(t, SeedPosts(), s.Posts())

	_, ok = s.AddComment("1", domain.Comment{ID: "c1"})
	require.True(t, ok)
	posts, ok := s.LikeComment("1", "c1")
	require.True(t, ok)
	assert.Equal(t, 1, posts[0].Comments[0].LikeCount)
	posts, ok = s.AddReply("1", "c1", domain.Reply{ID: "r1"})
	require.True(t, ok)
	assert.Len(t, posts[0].Comments[0].Replies, 1)
	posts, ok = s.ToggleLike("1")
	require.True(t, ok)
	assert.True(t, posts[0].Liked)
	assert.Equal(t, 43, posts[0].Engagement.LikeCount)
}

func TestStore_SnapshotsAreIndependent(t *testing.T) {
	s := newTestStore(t, 0)
	posts := s.LoadInitial()
	posts[0].Body = "changed"

	assert.NotEqual(t, "changed", s.Posts()[0].Body)
}
