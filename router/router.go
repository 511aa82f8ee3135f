package router

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// Failure reasons reported in RouteResponse.Error.
const (
	ReasonNoEdges     = "the graph contains no connecting edges"
	ReasonUnknownStop = "one of the provided stops does not exist"
	ReasonNoRoute     = "failed to build route"
)

const (
	metersPerKilometer = 1000.0
	minutesPerHour     = 60.0
)

// ErrInvalidSettings is returned by New when the routing settings fail validation.
var ErrInvalidSettings = errors.New("invalid routing settings")

var validate = validator.New()

// Settings configures the router.
type Settings struct {
	BusVelocity float64 `json:"bus_velocity" yaml:"busVelocity" validate:"gt=0"` // km/h
	BusWaitTime int     `json:"bus_wait_time" yaml:"busWaitTime" validate:"gte=0"` // minutes
}

// Validate checks the settings against their struct tags.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// ItemType tags a route item.
type ItemType int

const (
	ItemWait ItemType = iota
	ItemBus
)

func (t ItemType) String() string {
	if t == ItemBus {
		return "Bus"
	}
	return "Wait"
}

// RouteItem is one leg of an itinerary. Name is the stop name for a wait and
// the bus name for a ride.
type RouteItem struct {
	Type      ItemType
	Name      string
	SpanCount int
	Time      float64 // minutes
}

// RouteResponse is the result of FindRoute.
type RouteResponse struct {
	Success   bool
	Error     string
	TotalTime float64 // minutes
	Items     []RouteItem
}

// Router holds the itinerary graph built from a frozen catalogue.
type Router struct {
	settings   Settings
	graph      *DirectedWeightedGraph
	stopVertex map[string]VertexID // stop name -> arrival vertex
	edgeItems  []RouteItem         // EdgeID -> item recorded at build time
}

// New builds the router graph from cat.
func New(settings Settings, cat *catalogue.Catalogue) (*Router, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	stops := cat.GetAllStops()
	r := &Router{
		settings:   settings,
		graph:      NewDirectedWeightedGraph(len(stops) * 2),
		stopVertex: make(map[string]VertexID, len(stops)),
	}
	r.createStopEdges(stops)
	r.createRouteEdges(cat)
	log.Printf("router built: %d vertices, %d edges", r.graph.VertexCount(), r.graph.EdgeCount())
	return r, nil
}

// createStopEdges allocates the arrival/boarding vertex pair of every stop
// and joins them with a wait edge.
func (r *Router) createStopEdges(stops []catalogue.Stop) {
	wait := float64(r.settings.BusWaitTime)
	vid := VertexID(0)
	for _, stop := range stops {
		r.stopVertex[stop.Name] = vid
		r.addEdge(Edge{From: vid, To: vid + 1, Weight: wait}, RouteItem{
			Type: ItemWait,
			Name: stop.Name,
			Time: wait,
		})
		vid += 2
	}
}

// createRouteEdges links every pair of stops on each bus's forward leg.
func (r *Router) createRouteEdges(cat *catalogue.Catalogue) {
	speed := r.settings.BusVelocity * metersPerKilometer / minutesPerHour // m/min
	for _, bus := range cat.GetAllBuses() {
		leg := bus.ForwardLeg()
		names := make([]string, len(leg))
		for i, sid := range leg {
			names[i] = cat.Stop(sid).Name
		}

		for i := 0; i < len(leg); i++ {
			forward, backward := 0.0, 0.0
			for j := i + 1; j < len(leg); j++ {
				forward += float64(cat.GetStopDistance(leg[j-1], leg[j])) / speed
				backward += float64(cat.GetStopDistance(leg[j], leg[j-1])) / speed
				span := j - i

				r.addEdge(Edge{
					From:   r.stopVertex[names[i]] + 1,
					To:     r.stopVertex[names[j]],
					Weight: forward,
				}, RouteItem{Type: ItemBus, Name: bus.Name, SpanCount: span, Time: forward})

				if !bus.IsRoundtrip {
					r.addEdge(Edge{
						From:   r.stopVertex[names[j]] + 1,
						To:     r.stopVertex[names[i]],
						Weight: backward,
					}, RouteItem{Type: ItemBus, Name: bus.Name, SpanCount: span, Time: backward})
				}
			}
		}
	}
}

func (r *Router) addEdge(e Edge, item RouteItem) {
	r.graph.AddEdge(e)
	r.edgeItems = append(r.edgeItems, item)
}

// FindRoute returns the fastest itinerary between two stops. Failures are
// reported through Success and Error.
func (r *Router) FindRoute(from, to string) RouteResponse {
	if r.graph.EdgeCount() == 0 {
		return RouteResponse{Error: ReasonNoEdges}
	}
	fromVID, ok1 := r.stopVertex[from]
	toVID, ok2 := r.stopVertex[to]
	if !ok1 || !ok2 {
		return RouteResponse{Error: ReasonUnknownStop}
	}

	info, ok := ShortestPath(r.graph, fromVID, toVID)
	if !ok {
		return RouteResponse{Error: ReasonNoRoute}
	}

	resp := RouteResponse{
		Success:   true,
		TotalTime: info.Weight,
		Items:     make([]RouteItem, 0, len(info.Edges)),
	}
	for _, eid := range info.Edges {
		resp.Items = append(resp.Items, r.edgeItems[eid])
	}
	return resp
}

// Settings returns the settings the graph was built with.
func (r *Router) Settings() Settings { return r.settings }

// VertexCount returns the graph size: two vertices per stop.
func (r *Router) VertexCount() int { return r.graph.VertexCount() }

// EdgeCount returns the number of wait and ride edges.
func (r *Router) EdgeCount() int { return r.graph.EdgeCount() }
