package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Prefs is the durable per-user state.
type Prefs struct {
	Language string `json:"language,omitempty"`
}

// LoadPrefs reads prefs from path. A missing file yields zero Prefs.
func LoadPrefs(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("reading prefs: %w", err)
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parsing prefs: %w", err)
	}
	return p, nil
}

// SavePrefs writes prefs atomically, creating the parent directory.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating prefs dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding prefs: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing prefs: %w", err)
	}
	return nil
}

// PrefsFile stores the language preference in a JSON file.
type PrefsFile struct {
	Path string
}

// LoadLanguage returns the stored language tag, if any.
func (f PrefsFile) LoadLanguage() (string, bool, error) {
	p, err := LoadPrefs(f.Path)
	if err != nil {
		return "", false, err
	}
	return p.Language, p.Language != "", nil
}

// SaveLanguage persists tag, keeping any other stored fields.
func (f PrefsFile) SaveLanguage(tag string) error {
	p, err := LoadPrefs(f.Path)
	if err != nil {
		p = Prefs{}
	}
	p.Language = tag
	return SavePrefs(f.Path, p)
}
