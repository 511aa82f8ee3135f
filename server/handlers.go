package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

type healthResponse struct {
	Status string `json:"status"`
	Stops  int    `json:"stops"`
	Buses  int    `json:"buses"`
}

type stopResponse struct {
	Name        string          `json:"name"`
	Coordinates geo.Coordinates `json:"coordinates"`
	Buses       []string        `json:"buses"`
}

type busResponse struct {
	Name            string   `json:"name"`
	IsRoundtrip     bool     `json:"is_roundtrip"`
	Stops           []string `json:"stops"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
	RouteLength     float64  `json:"route_length"`
	Curvature       float64  `json:"curvature"`
}

type routeResponse struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	TotalTime float64             `json:"total_time"`
	Items     []request.RouteItem `json:"items"`
}

type errorResponse struct {
	ErrorMessage string `json:"error_message"`
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, errorResponse{ErrorMessage: msg})
}

func (s *Server) handleHealth(c *gin.Context) {
	cat := s.handler.Catalogue()
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Stops: cat.GetStopCount(), Buses: cat.GetBusCount()})
}

func (s *Server) stopView(st catalogue.Stop) stopResponse {
	buses, _ := s.handler.Catalogue().GetStopBuses(st.Name)
	names := make([]string, 0, len(buses))
	for _, b := range buses {
		names = append(names, b.Name)
	}
	return stopResponse{Name: st.Name, Coordinates: st.Coordinates, Buses: names}
}

func (s *Server) handleStops(c *gin.Context) {
	stops := s.handler.Catalogue().GetAllStops()
	out := make([]stopResponse, 0, len(stops))
	for _, st := range stops {
		out = append(out, s.stopView(st))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleStop(c *gin.Context) {
	st, ok := s.handler.Catalogue().FindStop(c.Param("name"))
	if !ok {
		notFound(c, "not found")
		return
	}
	c.JSON(http.StatusOK, s.stopView(st))
}

func (s *Server) busView(b catalogue.Bus) busResponse {
	cat := s.handler.Catalogue()
	stats := cat.GetRoute(b.Name)
	stops := make([]string, len(b.Stops))
	for i, id := range b.Stops {
		stops[i] = cat.Stop(id).Name
	}
	return busResponse{
		Name:            b.Name,
		IsRoundtrip:     b.IsRoundtrip,
		Stops:           stops,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
		RouteLength:     stats.RouteLength,
		Curvature:       stats.Curvature,
	}
}

func (s *Server) handleBuses(c *gin.Context) {
	buses := s.handler.Catalogue().GetAllBuses()
	out := make([]busResponse, 0, len(buses))
	for _, b := range buses {
		out = append(out, s.busView(b))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleBus(c *gin.Context) {
	b, ok := s.handler.Catalogue().FindBus(c.Param("name"))
	if !ok {
		notFound(c, "not found")
		return
	}
	c.JSON(http.StatusOK, s.busView(b))
}

func (s *Server) handleRoute(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, errorResponse{ErrorMessage: "from and to are required"})
		return
	}

	resp := s.findRoute(from, to)
	if !resp.Success {
		notFound(c, resp.Error)
		return
	}
	c.JSON(http.StatusOK, routeResponse{
		From:      from,
		To:        to,
		TotalTime: resp.TotalTime,
		Items:     request.NewRouteItems(resp.Items),
	})
}

// findRoute consults the LRU before running Dijkstra.
func (s *Server) findRoute(from, to string) router.RouteResponse {
	if s.routeCache == nil {
		return s.handler.FindRoute(from, to)
	}
	key := from + "\x00" + to
	if cached, err := s.routeCache.Get(key); err == nil {
		return cached.(router.RouteResponse)
	}
	resp := s.handler.FindRoute(from, to)
	_ = s.routeCache.Set(key, resp)
	return resp
}

func (s *Server) handleMap(c *gin.Context) {
	svg, err := s.handler.Map()
	if err != nil {
		notFound(c, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}
