package geo

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Unknown is reported when neither the service nor the zone identifies Vietnam.
const Unknown = "OTHER"

// CountryLookup is satisfied by *Client.
type CountryLookup interface {
	CountryCode(ctx context.Context) (string, error)
}

// Detector never fails: when the lookup errors it falls back to the time
// zone heuristic.
type Detector struct {
	lookup CountryLookup
	zone   func() string
	log    *slog.Logger
}

// NewDetector wires a lookup with the zone fallback. A nil zone uses LocalZone.
func NewDetector(lookup CountryLookup, zone func() string, log *slog.Logger) *Detector {
	if zone == nil {
		zone = LocalZone
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Detector{lookup: lookup, zone: zone, log: log.With("component", "geo")}
}

// CountryCode returns the detected country code.
func (d *Detector) CountryCode(ctx context.Context) string {
	if d.lookup != nil {
		code, err := d.lookup.CountryCode(ctx)
		if err == nil {
			return code
		}
		d.log.Warn("geolocation failed, using time zone", "error", err)
	}
	zone := d.zone()
	code := CountryFromZone(zone)
	d.log.Debug("country from time zone", "zone", zone, "country", code)
	return code
}

// CountryFromZone maps an IANA zone name to "VN" for Ho Chi Minh City and
// Unknown for everything else.
func CountryFromZone(zone string) string {
	if strings.Contains(zone, "Ho_Chi_Minh") {
		return "VN"
	}
	return Unknown
}

// LocalZone returns $TZ when set, otherwise the name of time.Local.
func LocalZone() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	return time.Local.String()
}
