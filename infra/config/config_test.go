package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PINKSOCIAL_CONFIG_DIR", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Env != "production" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected env/level: %#v", cfg)
	}
	if cfg.GeoURL != "https://ipapi.co/json/" || cfg.GeoTimeout != 5*time.Second {
		t.Fatalf("unexpected geo config: %#v", cfg)
	}
	if cfg.PageDelay != 1500*time.Millisecond || cfg.PageSize != 3 {
		t.Fatalf("unexpected page config: %#v", cfg)
	}
	if cfg.PrefsPath != filepath.Join(dir, "prefs.json") {
		t.Fatalf("unexpected prefs path: %q", cfg.PrefsPath)
	}
	if cfg.LogPath != filepath.Join(dir, "pinksocial.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath)
	}
	if _, ok := cfg.ForcedLanguage(); ok {
		t.Fatalf("no language should be forced by default")
	}
}

func TestLoad_ParsesEnv(t *testing.T) {
	t.Setenv("PINKSOCIAL_CONFIG_DIR", t.TempDir())
	t.Setenv("PINKSOCIAL_ENV", "development")
	t.Setenv("PINKSOCIAL_PAGE_SIZE", "5")
	t.Setenv("PINKSOCIAL_PAGE_DELAY", "10ms")
	t.Setenv("PINKSOCIAL_GEO_URL", "http://127.0.0.1:8080/geo")
	t.Setenv("PINKSOCIAL_LANGUAGE", "vietnamese")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
	if cfg.PageSize != 5 || cfg.PageDelay != 10*time.Millisecond {
		t.Fatalf("unexpected page config: %#v", cfg)
	}
	lang, ok := cfg.ForcedLanguage()
	if !ok || lang != domain.Vietnamese {
		t.Fatalf("expected forced vietnamese, got %q ok=%v", lang, ok)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"relative geo url": {"PINKSOCIAL_GEO_URL", "/json"},
		"ftp geo url":      {"PINKSOCIAL_GEO_URL", "ftp://example.com/json"},
		"zero page size":   {"PINKSOCIAL_PAGE_SIZE", "0"},
		"bad language":     {"PINKSOCIAL_LANGUAGE", "french"},
		"bad timeout":      {"PINKSOCIAL_GEO_TIMEOUT", "0s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("PINKSOCIAL_CONFIG_DIR", t.TempDir())
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", kv[0], kv[1])
			}
		})
	}
}

func TestUsage_ListsVariables(t *testing.T) {
	if u := Usage(); u == "" {
		t.Fatalf("expected usage text")
	}
}

func TestPrefs_LoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	p, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("missing prefs should not error: %v", err)
	}
	if p != (Prefs{}) {
		t.Fatalf("expected empty prefs for missing file")
	}

	want := Prefs{Language: "vietnamese"}
	if err := SavePrefs(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded prefs got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt prefs failed: %v", err)
	}
	if _, err := LoadPrefs(path); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}

func TestPrefsFile_Language(t *testing.T) {
	f := PrefsFile{Path: filepath.Join(t.TempDir(), "prefs.json")}

	if _, ok, err := f.LoadLanguage(); ok || err != nil {
		t.Fatalf("expected no stored language, ok=%v err=%v", ok, err)
	}
	if err := f.SaveLanguage("english"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	tag, ok, err := f.LoadLanguage()
	if err != nil || !ok || tag != "english" {
		t.Fatalf("unexpected stored language %q ok=%v err=%v", tag, ok, err)
	}
}

func TestPrefsFile_SaveRecoversCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write corrupt prefs failed: %v", err)
	}
	f := PrefsFile{Path: path}
	if _, _, err := f.LoadLanguage(); err == nil {
		t.Fatalf("expected error reading corrupt prefs")
	}
	if err := f.SaveLanguage("vietnamese"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if tag, ok, _ := f.LoadLanguage(); !ok || tag != "vietnamese" {
		t.Fatalf("expected recovered preference, got %q", tag)
	}
}
