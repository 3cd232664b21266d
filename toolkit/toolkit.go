// Package toolkit implements a fixed set of stateless date/time operations:
// current time, timezone lookup and listing, strict parsing, comparison,
// duration arithmetic, validation, and Unix timestamp conversion. Every
// operation is a pure function of its inputs and, where documented, the
// wall clock; failures are structured values, never faults.
package toolkit

import (
	"fmt"
	"math"
	"time"
)

type Toolkit struct {
	options Options
}

func New(opts ...Option) *Toolkit {
	return &Toolkit{
		options: NewOptions(opts...),
	}
}

// CurrentTime reports the current instant, optionally in the given zone.
// With no zone the local wall clock is reported as a zone-naive value with
// an empty offset, matching the "local" rendition of the other operations.
func (t *Toolkit) CurrentTime(zone string) (map[string]any, error) {
	now := t.options.Clock.Now()
	label := "local"
	iso := now.Format(isoNaiveLayout)
	offset := ""

	if len(zone) > 0 {
		if !t.options.Zones.Valid(zone) {
			return nil, &Error{
				Code:    CodeInvalidTimezone,
				Message: fmt.Sprintf("Invalid timezone: %s", zone),
				Sample:  t.options.Zones.Sample(10),
			}
		}

		loc, err := t.options.Zones.Location(zone)
		if err != nil {
			return nil, &Error{
				Code:    CodeInvalidTimezone,
				Message: fmt.Sprintf("Invalid timezone: %s", zone),
				Sample:  t.options.Zones.Sample(10),
			}
		}

		now = now.In(loc)
		label = zone
		iso = now.Format(isoOffsetLayout)
		offset = now.Format(offsetLayout)
	}

	return map[string]any{
		"datetime":        iso,
		"date":            now.Format(dateLayout),
		"time":            now.Format(timeLayout),
		"time_12h":        now.Format(time12hLayout),
		"timezone":        label,
		"timezone_offset": offset,
		"day_of_week":     now.Weekday().String(),
		"unix_timestamp":  now.Unix(),
		"formatted":       now.Format(longLayout),
	}, nil
}

// ZoneInfo reports a zone's offset and abbreviation at the current instant.
// The abbreviation is computed against "now" since daylight-saving rules
// change it over the year.
func (t *Toolkit) ZoneInfo(zone string) (map[string]any, error) {
	if !t.options.Zones.Valid(zone) {
		return nil, &Error{
			Code:    CodeInvalidTimezone,
			Message: fmt.Sprintf("Invalid timezone: %s", zone),
			Hint:    "Use list_timezones to see available options",
		}
	}

	loc, err := t.options.Zones.Location(zone)
	if err != nil {
		return nil, &Error{
			Code:    CodeInvalidTimezone,
			Message: fmt.Sprintf("Invalid timezone: %s", zone),
			Hint:    "Use list_timezones to see available options",
		}
	}

	now := t.options.Clock.Now().In(loc)
	abbreviation, offsetSeconds := now.Zone()

	return map[string]any{
		"timezone":     zone,
		"current_time": now.Format(isoOffsetLayout),
		"offset":       now.Format(offsetLayout),
		"offset_hours": float64(offsetSeconds) / 3600,
		"abbreviation": abbreviation,
	}, nil
}

// ListZones returns the sorted zone names, optionally restricted to those
// containing filter case-insensitively. Deterministic given the database.
func (t *Toolkit) ListZones(filter string) (map[string]any, error) {
	zones := t.options.Zones.Filter(filter)
	return map[string]any{
		"count":     len(zones),
		"timezones": zones,
	}, nil
}

// Parse strictly parses text against a strftime-style pattern and reports
// the parsed instant alongside its relation to the current wall clock.
func (t *Toolkit) Parse(text string, pattern string) (map[string]any, error) {
	if len(pattern) == 0 {
		pattern = DefaultFormat
	}

	dt, err := parseNaive(text, pattern)
	if err != nil {
		return nil, &Error{
			Code:    CodeParseFailure,
			Message: fmt.Sprintf("Failed to parse date: %v", err),
			Hint:    "Check that your text matches the format",
		}
	}

	now := naiveNow(t.options.Clock)

	return map[string]any{
		"original":       text,
		"parsed":         dt.Format(isoNaiveLayout),
		"date":           dt.Format(dateLayout),
		"time":           dt.Format(timeLayout),
		"day_of_week":    dt.Weekday().String(),
		"unix_timestamp": naiveUnix(dt),
		"is_past":        dt.Before(now),
		"is_future":      dt.After(now),
	}, nil
}

// Compare parses both inputs against the same pattern and reports the signed
// difference b - a. The signed totals keep their sign while the formatted
// decomposition is always of the magnitude; difference_days uses floor
// semantics, so a difference of minus one second is day -1.
func (t *Toolkit) Compare(a string, b string, pattern string) (map[string]any, error) {
	if len(pattern) == 0 {
		pattern = DefaultFormat
	}

	parseErr := func(err error) *Error {
		return &Error{
			Code:    CodeParseFailure,
			Message: fmt.Sprintf("Failed to parse dates: %v", err),
			Hint:    "Check that both time strings match the format",
		}
	}

	dt1, err := parseNaive(a, pattern)
	if err != nil {
		return nil, parseErr(err)
	}

	dt2, err := parseNaive(b, pattern)
	if err != nil {
		return nil, parseErr(err)
	}

	diff := dt2.Sub(dt1)
	totalSeconds := diff.Seconds()
	differenceDays := int64(math.Floor(totalSeconds / 86400))

	abs := diff
	if abs < 0 {
		abs = -abs
	}
	absSeconds := int64(abs / time.Second)

	return map[string]any{
		"time1":              dt1.Format(isoNaiveLayout),
		"time2":              dt2.Format(isoNaiveLayout),
		"difference_seconds": totalSeconds,
		"difference_days":    differenceDays,
		"difference_formatted": map[string]any{
			"days":    absSeconds / 86400,
			"hours":   (absSeconds % 86400) / 3600,
			"minutes": (absSeconds % 3600) / 60,
			"seconds": absSeconds % 60,
		},
		"time1_is_before_time2": dt1.Before(dt2),
		"time1_is_after_time2":  dt1.After(dt2),
		"times_are_equal":       dt1.Equal(dt2),
	}, nil
}

// AddDelta applies a signed days/hours/minutes/seconds delta to a parsed
// base value. Negative components subtract. The base carries no zone, so the
// arithmetic is plain duration addition with calendar-correct day rollover
// and no daylight-saving shifts.
func (t *Toolkit) AddDelta(base string, days, hours, minutes, seconds int, pattern string) (map[string]any, error) {
	if len(pattern) == 0 {
		pattern = DefaultFormat
	}

	dt, err := parseNaive(base, pattern)
	if err != nil {
		return nil, &Error{
			Code:    CodeParseFailure,
			Message: fmt.Sprintf("Failed to parse date: %v", err),
			Hint:    "Check that your base matches the format",
		}
	}

	result := dt.AddDate(0, 0, days).Add(
		time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second,
	)

	return map[string]any{
		"original": dt.Format(isoNaiveLayout),
		"delta_applied": map[string]any{
			"days":    days,
			"hours":   hours,
			"minutes": minutes,
			"seconds": seconds,
		},
		"result":         result.Format(isoNaiveLayout),
		"formatted":      result.Format(longLayout),
		"unix_timestamp": naiveUnix(result),
	}, nil
}

// Validate attempts the same strict parse as Parse and reports the outcome
// as a normal payload either way. It never returns an error.
func (t *Toolkit) Validate(text string, pattern string) (map[string]any, error) {
	if len(pattern) == 0 {
		pattern = DefaultFormat
	}

	dt, err := parseNaive(text, pattern)
	if err != nil {
		return map[string]any{
			"valid":   false,
			"error":   err.Error(),
			"message": "Failed to parse datetime with given format",
		}, nil
	}

	return map[string]any{
		"valid":   true,
		"parsed":  dt.Format(isoNaiveLayout),
		"message": "Successfully parsed datetime",
	}, nil
}

// FromUnix converts integer seconds since the epoch to a calendar instant in
// the given zone, or the local zone when omitted. Timestamps whose calendar
// year falls outside 1..9999 are out of the representable range.
func (t *Toolkit) FromUnix(timestamp int64, zone string) (map[string]any, error) {
	loc := time.Local
	label := "local"

	if len(zone) > 0 {
		if !t.options.Zones.Valid(zone) {
			return nil, &Error{
				Code:    CodeInvalidTimezone,
				Message: fmt.Sprintf("Invalid timezone: %s", zone),
				Hint:    "Use list_timezones to see available options",
			}
		}

		var err error
		loc, err = t.options.Zones.Location(zone)
		if err != nil {
			return nil, &Error{
				Code:    CodeInvalidTimezone,
				Message: fmt.Sprintf("Invalid timezone: %s", zone),
				Hint:    "Use list_timezones to see available options",
			}
		}
		label = zone
	}

	dt := time.Unix(timestamp, 0).In(loc)
	if dt.Year() < 1 || dt.Year() > 9999 {
		return nil, &Error{
			Code:    CodeInvalidTimestamp,
			Message: fmt.Sprintf("Invalid timestamp: %d is out of the representable range", timestamp),
			Hint:    "Timestamp should be a valid Unix timestamp in seconds",
		}
	}

	iso := dt.Format(isoOffsetLayout)
	if len(zone) == 0 {
		iso = dt.Format(isoNaiveLayout)
	}

	return map[string]any{
		"unix_timestamp": timestamp,
		"datetime":       iso,
		"date":           dt.Format(dateLayout),
		"time":           dt.Format(timeLayout),
		"formatted":      dt.Format(longLayout),
		"timezone":       label,
	}, nil
}
