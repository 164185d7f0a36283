package common

import "time"

// RelativeTimeKey returns the dictionary key ("time.<phrase>") for the age of
// ts at now. Ages between five hours and a day have no phrase; ok is false
// and callers show the clock time instead.
func RelativeTimeKey(now, ts time.Time) (key string, ok bool) {
	d := now.Sub(ts)
	if d < 0 {
		d = 0
	}
	const day = 24 * time.Hour
	var phrase string
	switch {
	case d < time.Minute:
		phrase = "just now"
	case d < 2*time.Minute:
		phrase = "1 minute ago"
	case d < 5*time.Minute:
		phrase = "2 minutes ago"
	case d < 10*time.Minute:
		phrase = "5 minutes ago"
	case d < 15*time.Minute:
		phrase = "10 minutes ago"
	case d < 30*time.Minute:
		phrase = "15 minutes ago"
	case d < 45*time.Minute:
		phrase = "30 minutes ago"
	case d < time.Hour:
		phrase = "45 minutes ago"
	case d < 2*time.Hour:
		phrase = "1 hour ago"
	case d < 3*time.Hour:
		phrase = "2 hours ago"
	case d < 4*time.Hour:
		phrase = "3 hours ago"
	case d < 5*time.Hour:
		phrase = "4 hours ago"
	case d < day:
		return "", false
	case d < 2*day:
		phrase = "yesterday"
	case d < 3*day:
		phrase = "2 days ago"
	case d < 7*day:
		phrase = "3 days ago"
	case d < 14*day:
		phrase = "last week"
	case d < 30*day:
		phrase = "2 weeks ago"
	case d < 60*day:
		phrase = "last month"
	case d < 90*day:
		phrase = "2 months ago"
	case d < 365*day:
		phrase = "3 months ago"
	case d < 2*365*day:
		phrase = "last year"
	case d < 3*365*day:
		phrase = "2 years ago"
	case d < 4*365*day:
		phrase = "3 years ago"
	default:
		phrase = "a long time ago"
	}
	return "time." + phrase, true
}
