package request

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

var errNoRenderer = errors.New("render settings not provided")

// Handler answers queries against a frozen catalogue. Router and renderer
// are optional; without them Route and Map queries answer not found.
// A Handler is safe for concurrent use.
type Handler struct {
	cat      *catalogue.Catalogue
	router   *router.Router
	renderer *renderer.MapRenderer

	mapOnce sync.Once
	mapSVG  string
	mapErr  error
}

// NewHandler builds the router and renderer for cat. A nil settings pointer
// leaves that facility out.
func NewHandler(cat *catalogue.Catalogue, routing *router.Settings, render *renderer.Settings) (*Handler, error) {
	h := &Handler{cat: cat}
	if routing != nil {
		r, err := router.New(*routing, cat)
		if err != nil {
			return nil, err
		}
		h.router = r
	}
	if render != nil {
		m, err := renderer.New(*render, cat)
		if err != nil {
			return nil, err
		}
		h.renderer = m
	}
	return h, nil
}

// Catalogue returns the underlying catalogue.
func (h *Handler) Catalogue() *catalogue.Catalogue { return h.cat }

// Answer resolves one stat request. The second result is false for an
// unknown request type.
func (h *Handler) Answer(req StatRequest) (any, bool) {
	switch req.Type {
	case TypeStop:
		return h.stop(req), true
	case TypeBus:
		return h.bus(req), true
	case TypeRoute:
		return h.route(req), true
	case TypeMap:
		return h.drawMap(req), true
	default:
		return nil, false
	}
}

func (h *Handler) stop(req StatRequest) any {
	buses, ok := h.cat.GetStopBuses(req.Name)
	if !ok {
		return ErrorAnswer{ErrorMessage: notFound, RequestID: req.ID}
	}
	names := make([]string, 0, len(buses))
	for _, b := range buses {
		names = append(names, b.Name)
	}
	return StopAnswer{Buses: names, RequestID: req.ID}
}

func (h *Handler) bus(req StatRequest) any {
	stats := h.cat.GetRoute(req.Name)
	if !stats.Found {
		return ErrorAnswer{ErrorMessage: notFound, RequestID: req.ID}
	}
	return BusAnswer{
		Curvature:       stats.Curvature,
		RequestID:       req.ID,
		RouteLength:     stats.RouteLength,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
	}
}

func (h *Handler) route(req StatRequest) any {
	if h.router == nil {
		return ErrorAnswer{ErrorMessage: notFound, RequestID: req.ID}
	}
	resp := h.router.FindRoute(req.From, req.To)
	if !resp.Success {
		return ErrorAnswer{ErrorMessage: notFound, RequestID: req.ID}
	}
	return RouteAnswer{Items: NewRouteItems(resp.Items), RequestID: req.ID, TotalTime: resp.TotalTime}
}

func (h *Handler) drawMap(req StatRequest) any {
	svg, err := h.Map()
	if err != nil {
		log.Printf("render map: %v", err)
		return ErrorAnswer{ErrorMessage: notFound, RequestID: req.ID}
	}
	return MapAnswer{Map: svg, RequestID: req.ID}
}

// FindRoute runs a route query. It reports a failure when no router was
// configured.
func (h *Handler) FindRoute(from, to string) router.RouteResponse {
	if h.router == nil {
		return router.RouteResponse{Error: "routing is not configured"}
	}
	return h.router.FindRoute(from, to)
}

// Map renders the SVG map once and returns the cached document.
func (h *Handler) Map() (string, error) {
	if h.renderer == nil {
		return "", errNoRenderer
	}
	h.mapOnce.Do(func() {
		var sb strings.Builder
		h.mapErr = h.renderer.Render(&sb)
		h.mapSVG = sb.String()
	})
	return h.mapSVG, h.mapErr
}
