package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_CountryCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"1.2.3.4","country_code":"vn","timezone":"Asia/Ho_Chi_Minh"}`))
	}))
	defer srv.Close()

	code, err := NewClient(srv.URL, time.Second).CountryCode(context.Background())
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if code != "VN" {
		t.Fatalf("expected VN, got %q", code)
	}
}

func TestClient_ErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, time.Second).CountryCode(context.Background()); err == nil {
		t.Fatalf("expected error for 429")
	}
}

func TestClient_ErrorsOnMissingCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":true}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).CountryCode(context.Background())
	if !errors.Is(err, ErrNoCountry) {
		t.Fatalf("expected ErrNoCountry, got %v", err)
	}
}

func TestClient_HonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(srv.URL, 0).CountryCode(ctx); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

type stubLookup struct {
	code string
	err  error
}

func (s stubLookup) CountryCode(context.Context) (string, error) { return s.code, s.err }

func TestDetector_UsesLookup(t *testing.T) {
	d := NewDetector(stubLookup{code: "US"}, func() string { return "Asia/Ho_Chi_Minh" }, nil)
	if got := d.CountryCode(context.Background()); got != "US" {
		t.Fatalf("expected lookup result, got %q", got)
	}
}

func TestDetector_FallsBackToZone(t *testing.T) {
	d := NewDetector(stubLookup{err: errors.New("offline")}, func() string { return "Asia/Ho_Chi_Minh" }, nil)
	if got := d.CountryCode(context.Background()); got != "VN" {
		t.Fatalf("expected VN from zone, got %q", got)
	}

	d = NewDetector(stubLookup{err: errors.New("offline")}, func() string { return "Europe/Berlin" }, nil)
	if got := d.CountryCode(context.Background()); got != Unknown {
		t.Fatalf("expected %q, got %q", Unknown, got)
	}
}

func TestDetector_NilLookupUsesZone(t *testing.T) {
	d := NewDetector(nil, func() string { return "Asia/Ho_Chi_Minh" }, nil)
	if got := d.CountryCode(context.Background()); got != "VN" {
		t.Fatalf("expected VN, got %q", got)
	}
}

func TestLocalZone_PrefersTZ(t *testing.T) {
	t.Setenv("TZ", ":Asia/Ho_Chi_Minh")
	if got := LocalZone(); got != "Asia/Ho_Chi_Minh" {
		t.Fatalf("unexpected zone %q", got)
	}
}
