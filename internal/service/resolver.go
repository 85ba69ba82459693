package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	// Embedded zoneinfo keeps resolution working on hosts without /usr/share/zoneinfo.
	_ "time/tzdata"

	"github.com/aidar/localtime-bot/internal/domain"
)

const (
	// TimeLayout renders wall-clock time as zero-padded 24-hour HH:MM
	TimeLayout = "15:04"

	// UnknownTimezone is returned instead of a time when the zone can't be resolved
	UnknownTimezone = "Unknown timezone"
)

// Clock returns the current instant
type Clock func() time.Time

// TimeZoneResolver converts timezone identifiers into the current local time.
// It holds no mutable state and is safe for concurrent use.
type TimeZoneResolver struct {
	now    Clock
	logger *slog.Logger
}

// NewTimeZoneResolver creates a new TimeZoneResolver. A nil clock means time.Now.
func NewTimeZoneResolver(logger *slog.Logger, now Clock) *TimeZoneResolver {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TimeZoneResolver{now: now, logger: logger}
}

// Resolve returns the current wall-clock time in the given zone, or
// UnknownTimezone if the identifier is not in the timezone database.
func (r *TimeZoneResolver) Resolve(timezoneID string) string {
	return r.ResolveAt(timezoneID, r.now())
}

// ResolveAt is Resolve for a fixed instant
func (r *TimeZoneResolver) ResolveAt(timezoneID string, instant time.Time) string {
	loc, err := LoadLocation(timezoneID)
	if err != nil {
		r.logger.Error("Unknown timezone", "timezone", timezoneID, "error", err)
		return UnknownTimezone
	}
	return instant.In(loc).Format(TimeLayout)
}

// LoadLocation looks up an IANA zone name, ignoring letter case. Unlike
// time.LoadLocation it rejects "" and "Local", which would silently map to
// UTC or the host zone.
func LoadLocation(timezoneID string) (*time.Location, error) {
	if timezoneID == "" || strings.EqualFold(timezoneID, "Local") {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTimezone, timezoneID)
	}
	if strings.EqualFold(timezoneID, "UTC") {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(timezoneID)
	if err == nil {
		return loc, nil
	}

	if canonical, ok := canonicalZoneName(timezoneID); ok && canonical != timezoneID {
		if loc, cerr := time.LoadLocation(canonical); cerr == nil {
			return loc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q: %w", domain.ErrUnknownTimezone, timezoneID, err)
}
