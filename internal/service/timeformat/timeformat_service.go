// Package timeformat implements the conversions between 24-hour and
// 12-hour clock notation. Every function is pure: the same input always
// produces the same output, and malformed input is reported as an error
// rather than a panic.
package timeformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dinerozz/time-format-service/internal/entity"
	"github.com/dinerozz/time-format-service/internal/model/response"
	"github.com/pkg/errors"
)

// ErrInvalidTimeFormat classifies every rejection of malformed input.
// The HTTP layer maps it to a 400 response.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// FormatStandardName is echoed in the /format/standard response body.
const FormatStandardName = "standard"

// ParseTime validates s against the HH:MM grammar and returns the parsed
// time of day. The hour may be written with one or two digits (0-23); the
// minute must be exactly two digits (00-59), so "9:05" is accepted and
// "14:3" is rejected. Surrounding whitespace is ignored.
func ParseTime(s string) (entity.TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)

	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return entity.TimeOfDay{}, errors.Wrapf(ErrInvalidTimeFormat, "%q: expected HH:MM", s)
	}

	hourPart, minutePart := parts[0], parts[1]
	if len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
		return entity.TimeOfDay{}, errors.Wrapf(ErrInvalidTimeFormat, "%q: expected HH:MM", s)
	}
	if !isDigits(hourPart) || !isDigits(minutePart) {
		return entity.TimeOfDay{}, errors.Wrapf(ErrInvalidTimeFormat, "%q: expected HH:MM", s)
	}

	hour, _ := strconv.Atoi(hourPart)
	minute, _ := strconv.Atoi(minutePart)

	if hour > 23 {
		return entity.TimeOfDay{}, errors.Wrapf(ErrInvalidTimeFormat, "hour must be between 0 and 23, got %d", hour)
	}
	if minute > 59 {
		return entity.TimeOfDay{}, errors.Wrapf(ErrInvalidTimeFormat, "minute must be between 0 and 59, got %d", minute)
	}

	return entity.TimeOfDay{Hour: hour, Minute: minute}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// FormatStandard renders t on the 12-hour clock: hour without a leading
// zero, minute zero-padded, AM for hours before noon. Midnight and noon
// both display as 12.
func FormatStandard(t entity.TimeOfDay) string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}

	hour12 := t.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, t.Minute, period)
}

// ConvertStandard parses a 24-hour HH:MM string and builds the
// /format/standard response body. The input is echoed back verbatim.
func ConvertStandard(timeStr string) (response.FormattedTime, error) {
	parsed, err := ParseTime(timeStr)
	if err != nil {
		return response.FormattedTime{}, err
	}

	return response.FormattedTime{
		OriginalTime:  timeStr,
		FormattedTime: FormatStandard(parsed),
		Format:        FormatStandardName,
	}, nil
}

// ToMilitary converts a 12-hour "H:MM AM" string back to zero-padded
// 24-hour HH:MM. The period is case-insensitive and the hour must be in
// 1-12.
func ToMilitary(time12 string) (response.MilitaryTime, error) {
	fields := strings.Fields(strings.TrimSpace(time12))
	if len(fields) != 2 {
		return response.MilitaryTime{}, errors.Wrapf(ErrInvalidTimeFormat, "%q: expected H:MM AM|PM", time12)
	}

	clock, period := fields[0], strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return response.MilitaryTime{}, errors.Wrapf(ErrInvalidTimeFormat, "%q: period must be AM or PM", time12)
	}

	parsed, err := ParseTime(clock)
	if err != nil {
		return response.MilitaryTime{}, err
	}
	if parsed.Hour < 1 || parsed.Hour > 12 {
		return response.MilitaryTime{}, errors.Wrapf(ErrInvalidTimeFormat, "hour must be between 1 and 12, got %d", parsed.Hour)
	}

	hour := parsed.Hour % 12
	if period == "PM" {
		hour += 12
	}

	return response.MilitaryTime{
		OriginalTime: time12,
		MilitaryTime: fmt.Sprintf("%02d:%02d", hour, parsed.Minute),
	}, nil
}
