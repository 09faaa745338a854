// Package timezone serves the fixed set of display timezones the API
// supports and the current wall-clock time in each.
package timezone

import (
	"time"

	"github.com/dinerozz/time-format-service/internal/model/response"
	"github.com/pkg/errors"
)

// ErrUnknownTimezone is returned for any timezone outside the supported
// set. The HTTP layer maps it to a 400 response.
var ErrUnknownTimezone = errors.New("unknown or unsupported timezone")

// SupportedAbbreviations is the user-facing timezone set, in display order.
var SupportedAbbreviations = []string{"EST", "CST", "PST", "UTC"}

var abbrToIANA = map[string]string{
	"EST": "US/Eastern",
	"CST": "US/Central",
	"PST": "US/Pacific",
	"UTC": "UTC",
}

// Legacy IANA spellings are still accepted and normalized back to the
// abbreviation.
var ianaToAbbr = map[string]string{
	"US/Eastern": "EST",
	"US/Central": "CST",
	"US/Pacific": "PST",
	"UTC":        "UTC",
}

// Clock abstracts time.Now so tests can pin the instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Service struct {
	clock Clock
}

func NewService() *Service {
	return &Service{clock: realClock{}}
}

func NewServiceWithClock(clock Clock) *Service {
	return &Service{clock: clock}
}

// ResolveAbbreviation normalizes tz to one of SupportedAbbreviations.
func ResolveAbbreviation(tz string) (string, error) {
	if _, ok := abbrToIANA[tz]; ok {
		return tz, nil
	}
	if abbr, ok := ianaToAbbr[tz]; ok {
		return abbr, nil
	}
	return "", errors.Wrapf(ErrUnknownTimezone, "%q", tz)
}

func (s *Service) List() response.TimezoneList {
	return response.TimezoneList{
		Timezones:  SupportedAbbreviations,
		TotalCount: len(SupportedAbbreviations),
	}
}

// Current returns the wall-clock time in the given timezone, formatted as
// "YYYY-MM-DD HH:MM:SS" in 24-hour notation.
func (s *Service) Current(tz string) (response.CurrentTime, error) {
	abbr, err := ResolveAbbreviation(tz)
	if err != nil {
		return response.CurrentTime{}, err
	}

	loc, err := time.LoadLocation(abbrToIANA[abbr])
	if err != nil {
		return response.CurrentTime{}, errors.Wrapf(err, "load location for %s", abbr)
	}

	now := s.clock.Now().In(loc)

	return response.CurrentTime{
		CurrentTime:    now.Format("2006-01-02 15:04:05"),
		Timezone:       abbr,
		IsDST:          isDST(now, loc),
		TimezoneOffset: now.Format("-0700"),
	}, nil
}

// isDST reports whether t's offset differs from the zone's January
// (standard) offset. All supported zones are northern hemisphere or UTC.
func isDST(t time.Time, loc *time.Location) bool {
	_, offset := t.Zone()
	_, standard := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc).Zone()
	return offset != standard
}
