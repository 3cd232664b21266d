package toolkit

import (
	"fmt"
	"strings"
	"time"
)

// DefaultFormat is the pattern applied when a call supplies none.
const DefaultFormat = "%Y-%m-%d %H:%M:%S"

const (
	isoNaiveLayout  = "2006-01-02T15:04:05"
	isoOffsetLayout = "2006-01-02T15:04:05-07:00"
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	time12hLayout   = "03:04:05 PM"
	offsetLayout    = "-0700"
	longLayout      = "Monday, January 02, 2006 at 03:04:05 PM"
)

// strftime-style directives and their Go reference-layout equivalents.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'A': "Monday",
	'a': "Mon",
	'B': "January",
	'b': "Jan",
	'j': "002",
	'z': "-0700",
	'Z': "MST",
}

// Layout translates a strftime-style pattern into a Go reference layout.
// A directive without an equivalent is an error so the caller can surface it
// as a parse failure rather than silently mis-parsing.
func Layout(pattern string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			sb.WriteByte(c)
			continue
		}

		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("trailing %% in format %q", pattern)
		}

		if pattern[i] == '%' {
			sb.WriteByte('%')
			continue
		}

		layout, ok := directives[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported format directive %%%c", pattern[i])
		}
		sb.WriteString(layout)
	}
	return sb.String(), nil
}

// parseNaive strictly parses text against a strftime-style pattern. The
// result carries no zone; it is a plain field container in UTC.
func parseNaive(text string, pattern string) (time.Time, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(layout, text)
}

// renderNaive formats a parsed value back through the same pattern grammar.
func renderNaive(t time.Time, pattern string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// naiveUnix reinterprets the fields of a zone-naive value in the process
// local zone, which is how the epoch seconds of an unzoned datetime are
// defined here.
func naiveUnix(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local).Unix()
}

// naiveNow captures the local wall clock as a zone-naive value, comparable
// with parsed datetimes.
func naiveNow(clock Clock) time.Time {
	now := clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}
