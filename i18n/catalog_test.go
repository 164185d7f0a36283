package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

func TestTranslate_KnownKeys(t *testing.T) {
	assert.Equal(t, "Home", Translate(domain.English, "nav.home"))
	assert.Equal(t, "Trang chủ", Translate(domain.Vietnamese, "nav.home"))
}

func TestTranslate_MissingKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Translate(domain.English, "no.such.key"))
	assert.Equal(t, "no.such.key", Translate(domain.Vietnamese, "no.such.key"))
}

func TestTranslate_UnknownLanguageReturnsKey(t *testing.T) {
	assert.Equal(t, "nav.home", Translate(domain.Language("klingon"), "nav.home"))
}

func TestTranslate_NeverFallsBackToOtherLanguage(t *testing.T) {
	c := NewCatalog(map[domain.Language]Dictionary{
		domain.English:    {"only.en": "English only"},
		domain.Vietnamese: {},
	})
	assert.Equal(t, "English only", c.Translate(domain.English, "only.en"))
	assert.Equal(t, "only.en", c.Translate(domain.Vietnamese, "only.en"))

	_, ok := c.Lookup(domain.Vietnamese, "only.en")
	assert.False(t, ok)
}

func TestLoadCatalog_DictionariesShareKeys(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	en := c.dicts[domain.English]
	vi := c.dicts[domain.Vietnamese]
	require.NotEmpty(t, en)
	require.NotEmpty(t, vi)

	for key := range en {
		_, ok := vi[key]
		assert.True(t, ok, "vietnamese dictionary missing %q", key)
	}
	for key := range vi {
		_, ok := en[key]
		assert.True(t, ok, "english dictionary missing %q", key)
	}
}

func TestLoadCatalog_KeysWithSpaces(t *testing.T) {
	assert.Equal(t, "just now", Translate(domain.English, "time.just now"))
	assert.Equal(t, "vừa xong", Translate(domain.Vietnamese, "time.just now"))
}
