package feed

import "github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"

// The mutators below never modify their input. A call that changes something
// returns a fresh slice in which only the targeted post (and its comment
// slice) is rebuilt; every other element is copied through unchanged. A
// lookup miss returns the input slice itself.

// AddComment prepends c to the post's comments and bumps its comment count by one.
func AddComment(posts []domain.Post, postID string, c domain.Comment) []domain.Post {
	i := indexOfPost(posts, postID)
	if i < 0 {
		return posts
	}
	out := clonePosts(posts)
	p := out[i]
	comments := make([]domain.Comment, 0, len(p.Comments)+1)
	comments = append(comments, c)
	comments = append(comments, p.Comments...)
	p.Comments = comments
	p.Engagement.CommentCount++
	out[i] = p
	return out
}

// LikeComment increments the comment's like count. There is no unlike.
func LikeComment(posts []domain.Post, postID, commentID string) []domain.Post {
	return updateComment(posts, postID, commentID, func(c domain.Comment) domain.Comment {
		c.LikeCount++
		return c
	})
}

// AddReply appends r to the comment's replies.
func AddReply(posts []domain.Post, postID, commentID string, r domain.Reply) []domain.Post {
	return updateComment(posts, postID, commentID, func(c domain.Comment) domain.Comment {
		replies := make([]domain.Reply, 0, len(c.Replies)+1)
		replies = append(replies, c.Replies...)
		c.Replies = append(replies, r)
		return c
	})
}

// ToggleLike flips the viewer's like on a post and compensates the like count.
func ToggleLike(posts []domain.Post, postID string) []domain.Post {
	i := indexOfPost(posts, postID)
	if i < 0 {
		return posts
	}
	out := clonePosts(posts)
	p := out[i]
	if p.Liked {
		p.Engagement.LikeCount--
	} else {
		p.Engagement.LikeCount++
	}
	p.Liked = !p.Liked
	out[i] = p
	return out
}

// FindComment returns the comment with commentID on the post with postID.
func FindComment(posts []domain.Post, postID, commentID string) (domain.Comment, bool) {
	i := indexOfPost(posts, postID)
	if i < 0 {
		return domain.Comment{}, false
	}
	j := indexOfComment(posts[i].Comments, commentID)
	if j < 0 {
		return domain.Comment{}, false
	}
	return posts[i].Comments[j], true
}

func updateComment(posts []domain.Post, postID, commentID string, fn func(domain.Comment) domain.Comment) []domain.Post {
	i := indexOfPost(posts, postID)
	if i < 0 {
		return posts
	}
	j := indexOfComment(posts[i].Comments, commentID)
	if j < 0 {
		return posts
	}
	out := clonePosts(posts)
	p := out[i]
	comments := make([]domain.Comment, len(p.Comments))
	copy(comments, p.Comments)
	comments[j] = fn(comments[j])
	p.Comments = comments
	out[i] = p
	return out
}

func indexOfPost(posts []domain.Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfComment(comments []domain.Comment, id string) int {
	for i := range comments {
		if comments[i].ID == id {
			return i
		}
	}
	return -1
}

func clonePosts(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, len(posts))
	copy(out, posts)
	return out
}
