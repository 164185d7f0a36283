package common

import (
	"testing"
	"time"
)

func TestRelativeTimeKey(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age  time.Duration
		want string
		ok   bool
	}{
		{0, "time.just now", true},
		{-time.Minute, "time.just now", true},
		{90 * time.Second, "time.1 minute ago", true},
		{12 * time.Minute, "time.10 minutes ago", true},
		{90 * time.Minute, "time.1 hour ago", true},
		{150 * time.Minute, "time.2 hours ago", true},
		{10 * time.Hour, "", false},
		{30 * time.Hour, "time.yesterday", true},
		{10 * 24 * time.Hour, "time.last week", true},
		{5 * 365 * 24 * time.Hour, "time.a long time ago", true},
	}
	for _, tc := range cases {
		got, ok := RelativeTimeKey(now, now.Add(-tc.age))
		if got != tc.want || ok != tc.ok {
			t.Fatalf("age %v: got %q/%v want %q/%v", tc.age, got, ok, tc.want, tc.ok)
		}
	}
}
