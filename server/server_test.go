package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

const testDocument = `{
  "base_requests": [
    {"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.60, "road_distances": {"B": 1000}},
    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.60, "road_distances": {"C": 2000}},
    {"type": "Stop", "name": "C", "latitude": 55.62, "longitude": 37.61},
    {"type": "Stop", "name": "Island", "latitude": 55.70, "longitude": 37.70},
    {"type": "Bus", "name": "7", "stops": ["A", "B", "C"], "is_roundtrip": false}
  ],
  "render_settings": {
    "width": 600, "height": 400, "padding": 50,
    "stop_radius": 5, "line_width": 14,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 20, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
    "color_palette": ["green"]
  },
  "stat_requests": []
}`

func newTestServer(t *testing.T, entries int) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	routing := router.Settings{BusVelocity: 60, BusWaitTime: 2}
	h, _, err := request.Load(strings.NewReader(testDocument), "test", request.Options{Routing: &routing})
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Cache.RouteEntries = entries
	return New(h, cfg)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, 0), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	decode(t, rec, &body)
	assert.Equal(t, healthResponse{Status: "ok", Stops: 4, Buses: 1}, body)
}

func TestStops(t *testing.T) {
	s := newTestServer(t, 0)

	rec := get(t, s, "/api/stops")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []stopResponse
	decode(t, rec, &all)
	require.Len(t, all, 4)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, []string{"7"}, all[0].Buses)
	assert.Equal(t, "Island", all[3].Name)
	assert.Empty(t, all[3].Buses)

	rec = get(t, s, "/api/stops/B")
	require.Equal(t, http.StatusOK, rec.Code)
	var b stopResponse
	decode(t, rec, &b)
	assert.Equal(t, 55.61, b.Coordinates.Lat)

	rec = get(t, s, "/api/stops/Nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error_message":"not found"}`, rec.Body.String())
}

func TestBuses(t *testing.T) {
	s := newTestServer(t, 0)

	rec := get(t, s, "/api/buses/7")
	require.Equal(t, http.StatusOK, rec.Code)
	var bus busResponse
	decode(t, rec, &bus)
	assert.Equal(t, []string{"A", "B", "C", "B", "A"}, bus.Stops)
	assert.Equal(t, 5, bus.StopCount)
	assert.Equal(t, 3, bus.UniqueStopCount)
	assert.Equal(t, 6000.0, bus.RouteLength)
	assert.False(t, bus.IsRoundtrip)

	rec = get(t, s, "/api/buses")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []busResponse
	decode(t, rec, &all)
	assert.Len(t, all, 1)

	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/buses/99").Code)
}

func TestRoute(t *testing.T) {
	s := newTestServer(t, 16)

	rec := get(t, s, "/api/route?from=A&to=C")
	require.Equal(t, http.StatusOK, rec.Code)
	var body routeResponse
	decode(t, rec, &body)
	assert.InDelta(t, 2+3.0, body.TotalTime, 1e-9)
	require.Len(t, body.Items, 2)
	assert.Equal(t, request.RouteItem{Type: "Wait", StopName: "A", Time: 2}, body.Items[0])
	assert.Equal(t, "7", body.Items[1].Bus)
	assert.Equal(t, 2, body.Items[1].SpanCount)

	cached, err := s.routeCache.GetIFPresent("A\x00C")
	require.NoError(t, err)
	assert.True(t, cached.(router.RouteResponse).Success)

	// A cached answer is served unchanged.
	again := get(t, s, "/api/route?from=A&to=C")
	assert.Equal(t, rec.Body.String(), again.Body.String())

	rec = get(t, s, "/api/route?from=A&to=Island")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error_message":"`+router.ReasonNoRoute+`"}`, rec.Body.String())

	rec = get(t, s, "/api/route?from="+url.QueryEscape("Ghost Town")+"&to=A")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), router.ReasonUnknownStop)

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/route?from=A").Code)
}

func TestRouteWithoutCache(t *testing.T) {
	s := newTestServer(t, 0)
	assert.Nil(t, s.routeCache)
	assert.Equal(t, http.StatusOK, get(t, s, "/api/route?from=C&to=A").Code)
}

func TestMap(t *testing.T) {
	rec := get(t, newTestServer(t, 0), "/api/map.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<polyline")
}

func TestMapNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _, err := request.Load(strings.NewReader(`{"base_requests": []}`), "test", request.Options{})
	require.NoError(t, err)
	rec := get(t, New(h, config.Default()), "/api/map.svg")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, New(h, config.Default()), "/api/route?from=A&to=B")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, 0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://client.test")
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, 0)

	rec := get(t, s, "/api/health")
	id := rec.Header().Get(requestIDHeader)
	assert.Len(t, id, 36)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
