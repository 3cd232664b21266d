package timekit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestKit(t *testing.T) *TimeKit {
	t.Helper()

	tk := toolkit.New(
		toolkit.WithClock(fixedClock{time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)}),
		toolkit.WithZones(toolkit.NewZoneRegistry("America/New_York", "Europe/London", "UTC")),
	)

	kit, err := New(toolhandler.WithToolkit(tk))
	require.NoError(t, err)
	return kit
}

func TestNewRegistersAllOperations(t *testing.T) {
	kit := newTestKit(t)

	specs := kit.Tools()
	require.Len(t, specs, 8)

	want := []string{
		"get_current_time",
		"get_timezone_info",
		"list_timezones",
		"parse_datetime",
		"compare_times",
		"add_time_delta",
		"is_valid_datetime",
		"unix_to_datetime",
	}
	for i, spec := range specs {
		require.Equal(t, want[i], spec.Name)
		require.NotEmpty(t, spec.Description)
		require.NotEmpty(t, spec.InputSchema)
	}
}

func TestCallDispatches(t *testing.T) {
	kit := newTestKit(t)
	ctx := context.Background()

	content, err := kit.Call(ctx, "list_timezones", map[string]any{"filter": "America"})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(content), &payload))
	require.Equal(t, float64(1), payload["count"])

	content, err = kit.Call(ctx, "parse_datetime", map[string]any{"text": "2025-11-21 14:30:00"})
	require.NoError(t, err)

	payload = map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(content), &payload))
	require.Equal(t, "Friday", payload["day_of_week"])
	require.Equal(t, true, payload["is_past"])
}

func TestCallSurfacesStructuredErrors(t *testing.T) {
	kit := newTestKit(t)

	content, err := kit.Call(context.Background(), "get_timezone_info", map[string]any{"zone": "Mars/Olympus"})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(content), &payload))
	require.Equal(t, "Invalid timezone: Mars/Olympus", payload["error"])
	require.Equal(t, "Use list_timezones to see available options", payload["hint"])
}

func TestCallUnknownTool(t *testing.T) {
	kit := newTestKit(t)

	_, err := kit.Call(context.Background(), "tell_fortune", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown tool")
}

func TestCallMissingRequiredArgument(t *testing.T) {
	kit := newTestKit(t)

	_, err := kit.Call(context.Background(), "get_timezone_info", map[string]any{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "zone")
}

func TestCallIsIdempotent(t *testing.T) {
	kit := newTestKit(t)
	ctx := context.Background()

	args := map[string]any{"a": "2025-01-01 00:00:00", "b": "2025-12-31 23:59:59"}

	first, err := kit.Call(ctx, "compare_times", args)
	require.NoError(t, err)
	second, err := kit.Call(ctx, "compare_times", args)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
