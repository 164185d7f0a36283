package domain

import "errors"

var (
	// ErrEmptyMessage indicates the user submitted blank text.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrUnknownPost indicates no post has the requested ID.
	ErrUnknownPost = errors.New("unknown post")

	// ErrUnknownComment indicates no comment on the post has the requested ID.
	ErrUnknownComment = errors.New("unknown comment")

	// ErrUnknownConversation indicates the conversation is not the active one or does not exist.
	ErrUnknownConversation = errors.New("unknown conversation")

	// ErrUnsupportedLanguage indicates a language tag other than english or vietnamese.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
