package app

import (
	"context"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// Localizer translates UI keys in the session language.
type Localizer interface {
	Language() domain.Language
	T(key string) string
	Toggle() (domain.Language, error)
}

// LanguageResolver picks the session language at startup, from a stored
// preference or by detecting the user's country.
type LanguageResolver interface {
	Resolve(ctx context.Context) domain.Language
}
