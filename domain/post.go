package domain

// PostKind tags how a post renders.
type PostKind string

const (
	KindPlain   PostKind = "plain"
	KindGallery PostKind = "gallery"
)

// SyncState marks whether an entity came from the backend (seed or generated
// data) or was created locally and never confirmed.
type SyncState int

const (
	SyncConfirmed SyncState = iota
	SyncLocal
)

// Author identifies who wrote a post, comment, or reply.
type Author struct {
	Name      string
	AvatarURL string
}

// Engagement holds the counters shown under a post.
type Engagement struct {
	LikeCount    int
	CommentCount int // Seed value; may exceed len(Comments)
	ShareCount   int
}

// Post is a single feed entry.
type Post struct {
	ID              string
	Kind            PostKind
	Author          Author
	PostedAt        string // Display string ("2 hours ago"), not a timestamp
	Body            string
	Engagement      Engagement
	Images          []string // Only for KindGallery
	TotalImageCount int      // May exceed len(Images)
	Comments        []Comment
	Liked           bool // Local like toggle for the viewer
}

// Comment is owned by exactly one Post.
type Comment struct {
	ID        string
	Author    Author
	Content   string
	PostedAt  string
	LikeCount int
	Replies   []Reply
	Sync      SyncState
}

// Reply is owned by exactly one Comment.
type Reply struct {
	ID       string
	Author   Author
	Content  string
	PostedAt string
	Sync     SyncState
}

// PageResult is delivered once per started feed page load.
type PageResult struct {
	Posts []Post
	Err   error
}
