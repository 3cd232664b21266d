package toolkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLayoutTranslatesDirectives(t *testing.T) {
	cases := []struct {
		pattern string
		layout  string
	}{
		{"%Y-%m-%d %H:%M:%S", "2006-01-02 15:04:05"},
		{"%Y-%m-%d", "2006-01-02"},
		{"%m/%d/%Y", "01/02/2006"},
		{"%d/%m/%Y %H:%M", "02/01/2006 15:04"},
		{"%A, %B %d, %Y at %I:%M:%S %p", "Monday, January 02, 2006 at 03:04:05 PM"},
		{"%y%m%d", "060102"},
		{"%H:%M:%S %Z", "15:04:05 MST"},
		{"100%%", "100%"},
	}

	for _, c := range cases {
		layout, err := Layout(c.pattern)
		require.NoError(t, err, c.pattern)
		require.Equal(t, c.layout, layout, c.pattern)
	}
}

func TestLayoutRejectsUnknownDirectives(t *testing.T) {
	_, err := Layout("%Q-%m-%d")
	require.Error(t, err)
	require.Contains(t, err.Error(), "%Q")

	_, err = Layout("%Y-%m-%d %")
	require.Error(t, err)
}

func TestParseNaiveIsStrict(t *testing.T) {
	bad := []struct {
		text    string
		pattern string
	}{
		{"not a date", "%Y-%m-%d %H:%M:%S"},
		{"2025-11-21", "%Y-%m-%d %H:%M:%S"},          // missing time fields
		{"2025-02-30 00:00:00", "%Y-%m-%d %H:%M:%S"}, // impossible calendar date
		{"2025-04-31 00:00:00", "%Y-%m-%d %H:%M:%S"}, // day 31 in a 30-day month
		{"2025-13-01 00:00:00", "%Y-%m-%d %H:%M:%S"}, // month out of range
		{"2025-11-21 25:00:00", "%Y-%m-%d %H:%M:%S"}, // hour out of range
		{"2025-11-21 14:30:00 extra", "%Y-%m-%d %H:%M:%S"},
	}

	for _, c := range bad {
		_, err := parseNaive(c.text, c.pattern)
		require.Error(t, err, c.text)
	}

	dt, err := parseNaive("2024-02-29 23:59:59", "%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)
	require.Equal(t, 2024, dt.Year())
	require.Equal(t, time.February, dt.Month())
	require.Equal(t, 29, dt.Day())
}

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []struct {
		text    string
		pattern string
	}{
		{"2025-11-21 14:30:00", "%Y-%m-%d %H:%M:%S"},
		{"2025-11-21", "%Y-%m-%d"},
		{"11/21/2025", "%m/%d/%Y"},
		{"21/11/2025 14:30", "%d/%m/%Y %H:%M"},
		{"Friday, November 21, 2025 at 02:30:00 PM", "%A, %B %d, %Y at %I:%M:%S %p"},
	}

	for _, c := range cases {
		dt, err := parseNaive(c.text, c.pattern)
		require.NoError(t, err, c.text)

		rendered, err := renderNaive(dt, c.pattern)
		require.NoError(t, err, c.text)
		require.Equal(t, c.text, rendered)
	}
}
