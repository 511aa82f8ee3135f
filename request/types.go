package request

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Request types.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

const notFound = "not found"

// Document is the top-level input.
type Document struct {
	BaseRequests    []BaseRequest      `json:"base_requests"`
	RenderSettings  *renderer.Settings `json:"render_settings,omitempty"`
	RoutingSettings *router.Settings   `json:"routing_settings,omitempty"`
	StatRequests    []StatRequest      `json:"stat_requests"`
}

// BaseRequest describes a stop or a bus. Fields not relevant to Type are
// ignored.
type BaseRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`

	// Stop
	Latitude      float64        `json:"latitude,omitempty"`
	Longitude     float64        `json:"longitude,omitempty"`
	RoadDistances map[string]int `json:"road_distances,omitempty"`

	// Bus
	Stops       []string `json:"stops,omitempty"`
	IsRoundtrip bool     `json:"is_roundtrip,omitempty"`
}

// StatRequest is a query.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Answer types. Fields are declared in key order so the output is sorted.

type ErrorAnswer struct {
	ErrorMessage string `json:"error_message"`
	RequestID    int    `json:"request_id"`
}

type StopAnswer struct {
	Buses     []string `json:"buses"`
	RequestID int      `json:"request_id"`
}

type BusAnswer struct {
	Curvature       float64 `json:"curvature"`
	RequestID       int     `json:"request_id"`
	RouteLength     float64 `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

type RouteAnswer struct {
	Items     []RouteItem `json:"items"`
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
}

// RouteItem is a Wait (StopName) or a Bus (Bus, SpanCount) leg.
type RouteItem struct {
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	StopName  string  `json:"stop_name,omitempty"`
	Time      float64 `json:"time"`
	Type      string  `json:"type"`
}

type MapAnswer struct {
	Map       string `json:"map"`
	RequestID int    `json:"request_id"`
}

// NewRouteItems converts router legs to their JSON form.
func NewRouteItems(items []router.RouteItem) []RouteItem {
	out := make([]RouteItem, 0, len(items))
	for _, it := range items {
		ri := RouteItem{Time: it.Time, Type: it.Type.String()}
		if it.Type == router.ItemBus {
			ri.Bus = it.Name
			ri.SpanCount = it.SpanCount
		} else {
			ri.StopName = it.Name
		}
		out = append(out, ri)
	}
	return out
}
