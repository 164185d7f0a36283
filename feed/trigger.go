package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// PageLoader appends the next page and returns the resulting list.
type PageLoader interface {
	LoadNextPage(ctx context.Context) ([]domain.Post, error)
}

// TriggerState is the state of the infinite-scroll trigger.
type TriggerState int

const (
	Idle TriggerState = iota
	Loading
)

func (s TriggerState) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

// Trigger turns "the end of the list became visible" signals into page
// loads, with at most one load in flight. The feed never ends, so there is
// no terminal state.
type Trigger struct {
	mu     sync.Mutex
	state  TriggerState
	loader PageLoader
	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger
}

// NewTrigger creates an idle trigger. Loads run under a context derived from
// parent and are cancelled by Close or by cancelling parent.
func NewTrigger(parent context.Context, loader PageLoader, log *slog.Logger) *Trigger {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(parent)
	return &Trigger{
		loader: loader,
		ctx:    ctx,
		cancel: cancel,
		log:    log.With("component", "scroll_trigger"),
	}
}

// Fire reports that the sentinel is visible. It starts a load and returns
// the channel its result arrives on, or returns false when a load is already
// in flight or the trigger is closed.
func (t *Trigger) Fire() (<-chan domain.PageResult, bool) {
	t.mu.Lock()
	if t.state == Loading || t.ctx.Err() != nil {
		t.mu.Unlock()
		return nil, false
	}
	t.state = Loading
	t.mu.Unlock()

	out := make(chan domain.PageResult, 1)
	go func() {
		posts, err := t.loader.LoadNextPage(t.ctx)
		t.mu.Lock()
		t.state = Idle
		t.mu.Unlock()
		if err != nil {
			t.log.Warn("page load failed", "error", err)
		}
		out <- domain.PageResult{Posts: posts, Err: err}
		close(out)
	}()
	return out, true
}

// State returns the current state.
func (t *Trigger) State() TriggerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close cancels any in-flight load and ignores later signals.
func (t *Trigger) Close() {
	t.cancel()
}
