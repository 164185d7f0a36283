package i18n

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// PreferenceStore persists the language tag between sessions.
type PreferenceStore interface {
	// LoadLanguage returns the stored tag and whether one exists.
	LoadLanguage() (string, bool, error)
	SaveLanguage(tag string) error
}

// CountryDetector guesses the user's ISO country code. It never fails; an
// unknown location is reported as a code other than "VN".
type CountryDetector interface {
	CountryCode(ctx context.Context) string
}

// Localizer is the session's language state. Create one per app and pass it
// to whatever renders text.
type Localizer struct {
	mu      sync.RWMutex
	lang    domain.Language
	chosen  bool // set by SetLanguage; detection never overrides it
	catalog *Catalog
	prefs   PreferenceStore
	log     *slog.Logger
}

// NewLocalizer starts in the default language. A nil catalog uses Default().
func NewLocalizer(catalog *Catalog, prefs PreferenceStore, log *slog.Logger) *Localizer {
	if catalog == nil {
		catalog = Default()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Localizer{
		lang:    domain.DefaultLanguage,
		catalog: catalog,
		prefs:   prefs,
		log:     log.With("component", "i18n"),
	}
}

// Language returns the current language.
func (l *Localizer) Language() domain.Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// T translates key in the current language.
func (l *Localizer) T(key string) string {
	return l.catalog.Translate(l.Language(), key)
}

// SetLanguage switches the language and persists it. The switch takes
// effect even when persisting fails.
func (l *Localizer) SetLanguage(lang domain.Language) error {
	lang, err := domain.ParseLanguage(string(lang))
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.chosen = true
	err = l.applyLocked(lang)
	l.mu.Unlock()

	if err != nil {
		l.log.Warn("saving language preference failed", "language", lang, "error", err)
		return err
	}
	l.log.Info("language changed", "language", lang)
	return nil
}

// applyLocked sets and saves lang. The save happens under l.mu so the
// stored tag always matches the last language applied.
func (l *Localizer) applyLocked(lang domain.Language) error {
	l.lang = lang
	if l.prefs == nil {
		return nil
	}
	return l.prefs.SaveLanguage(string(lang))
}

// Toggle switches between the two supported languages.
func (l *Localizer) Toggle() (domain.Language, error) {
	next := l.Language().Other()
	return next, l.SetLanguage(next)
}

// Restore applies a stored preference and reports whether one was applied.
// Unreadable files and unsupported tags count as no preference.
func (l *Localizer) Restore() bool {
	if l.prefs == nil {
		return false
	}
	stored, ok, err := l.prefs.LoadLanguage()
	if err != nil {
		l.log.Warn("reading language preference failed", "error", err)
		return false
	}
	if !ok {
		return false
	}
	lang, err := domain.ParseLanguage(stored)
	if err != nil {
		l.log.Warn("ignoring stored language", "value", stored)
		return false
	}
	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()
	return true
}

// Resolve picks the session language: a stored preference wins; otherwise
// the detector decides (Vietnam selects vietnamese, anything else english)
// and the result is persisted. If ctx ends during detection, or SetLanguage
// was called while it ran, nothing is persisted and the current language is
// kept.
func (l *Localizer) Resolve(ctx context.Context, detector CountryDetector) domain.Language {
	if l.Restore() {
		return l.Language()
	}
	if detector == nil {
		return l.Language()
	}

	code := detector.CountryCode(ctx)
	if ctx.Err() != nil {
		return l.Language()
	}
	lang := domain.English
	if code == "VN" {
		lang = domain.Vietnamese
	}

	l.mu.Lock()
	if l.chosen {
		cur := l.lang
		l.mu.Unlock()
		l.log.Debug("ignoring detected language after explicit choice", "country", code, "language", cur)
		return cur
	}
	err := l.applyLocked(lang)
	l.mu.Unlock()

	l.log.Info("language detected", "country", code, "language", lang)
	if err != nil {
		l.log.Warn("saving language preference failed", "language", lang, "error", err)
	}
	return lang
}

// Resolver binds a detector for callers that only need Resolve(ctx).
type Resolver struct {
	Localizer *Localizer
	Detector  CountryDetector
}

// Resolve runs Localizer.Resolve with the bound detector.
func (r Resolver) Resolve(ctx context.Context) domain.Language {
	return r.Localizer.Resolve(ctx, r.Detector)
}
