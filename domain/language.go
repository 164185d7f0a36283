package domain

import "strings"

// Language is a supported UI language tag.
type Language string

const (
	English    Language = "english"
	Vietnamese Language = "vietnamese"
)

// DefaultLanguage is used when neither a stored preference nor detection applies.
const DefaultLanguage = English

// ParseLanguage accepts the tags persisted by the app, ignoring surrounding
// whitespace. Case is significant.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.TrimSpace(s)) {
	case English:
		return English, nil
	case Vietnamese:
		return Vietnamese, nil
	default:
		return "", ErrUnsupportedLanguage
	}
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == Vietnamese {
		return English
	}
	return Vietnamese
}
