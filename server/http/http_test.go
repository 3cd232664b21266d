package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/w-h-a/timekit"
	toolhandler "github.com/w-h-a/timekit/tool_handler"
	"github.com/w-h-a/timekit/toolkit"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestServer(t *testing.T) *httpServer {
	t.Helper()

	tk := toolkit.New(
		toolkit.WithClock(fixedClock{time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)}),
		toolkit.WithZones(toolkit.NewZoneRegistry("America/New_York", "Europe/London", "UTC")),
	)

	kit, err := timekit.New(toolhandler.WithToolkit(tk))
	require.NoError(t, err)

	return NewServer(kit).(*httpServer)
}

func TestDiscover(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload struct {
		Version string `json:"version"`
		Tools   []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Len(t, payload.Tools, 8)
	require.Equal(t, "get_current_time", payload.Tools[0].Name)
}

func TestInvoke(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/list_timezones", strings.NewReader(`{"filter": "Europe"}`))
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, float64(1), payload["count"])
	require.Equal(t, []any{"Europe/London"}, payload["timezones"])
}

func TestInvokeEmptyBody(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/get_current_time", nil)
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "2026-03-15T12:00:00", payload["datetime"])
	require.Equal(t, "local", payload["timezone"])
}

func TestInvokeOperationFailure(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/get_timezone_info", strings.NewReader(`{"zone": "Nowhere/Land"}`))
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "Invalid timezone: Nowhere/Land", payload["error"])
}

func TestInvokeUnknownTool(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/no_such_tool", strings.NewReader(`{}`))
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Contains(t, payload["error"], "unknown tool")
}

func TestInvokeInvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/parse_datetime", strings.NewReader(`{"text":`))
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "invalid json", payload["error"])
}

func TestMiddlewareWraps(t *testing.T) {
	tk := toolkit.New(
		toolkit.WithZones(toolkit.NewZoneRegistry("UTC")),
	)
	kit, err := timekit.New(toolhandler.WithToolkit(tk))
	require.NoError(t, err)

	s := NewServer(kit, WithMiddleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Seen", "yes")
			next.ServeHTTP(w, r)
		})
	})).(*httpServer)

	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools", nil))

	require.Equal(t, "yes", rec.Header().Get("X-Seen"))
}
