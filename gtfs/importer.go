package gtfs

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

// ImportStats counts what Populate added.
type ImportStats struct {
	Stops     int
	Buses     int
	Distances int
}

// Populate adds the feed's stops, buses and road distances to b.
func (g *Feed) Populate(b *catalogue.Builder, warnings *internal.WarningAggregator) (ImportStats, error) {
	var stats ImportStats
	names := g.catalogueNames()

	for _, id := range g.StopOrder {
		s := g.Stops[id]
		if err := b.AddStop(names[id], s.Coordinates); err != nil {
			return stats, fmt.Errorf("stop %s: %w", id, err)
		}
		stats.Stops++
	}

	trips := g.representativeTrips()
	busNames := map[string]bool{}
	routeIDs := make([]string, 0, len(g.Routes))
	for id := range g.Routes {
		routeIDs = append(routeIDs, id)
	}
	sort.Strings(routeIDs)

	for _, routeID := range routeIDs {
		route := g.Routes[routeID]
		tripID, ok := trips[routeID]
		if !ok {
			warnings.Add(internal.WarningRouteWithoutTrip, routeID)
			continue
		}

		rows := make([]StopTime, 0, len(g.StopTimes[tripID]))
		for _, st := range g.StopTimes[tripID] {
			if _, ok := g.Stops[st.StopID]; !ok {
				warnings.Add(internal.WarningStopNotFound, st.StopID)
				continue
			}
			rows = append(rows, st)
		}
		if len(rows) == 0 {
			warnings.Add(internal.WarningRouteWithoutTrip, routeID)
			continue
		}

		name := route.ShortName
		if name == "" {
			warnings.Add(internal.WarningNoRouteShortName, routeID)
			name = routeID
		}
		if busNames[name] {
			name = fmt.Sprintf("%s [%s]", name, routeID)
		}
		busNames[name] = true

		n, err := g.setTripDistances(b, g.Trips[tripID], rows, names, warnings)
		if err != nil {
			return stats, err
		}
		stats.Distances += n

		stopNames := make([]string, len(rows))
		for i, st := range rows {
			stopNames[i] = names[st.StopID]
		}
		isRoundtrip := len(rows) > 1 && rows[0].StopID == rows[len(rows)-1].StopID
		if err := b.AddBus(name, stopNames, isRoundtrip); err != nil {
			return stats, fmt.Errorf("route %s: %w", routeID, err)
		}
		stats.Buses++
	}

	log.Printf("GTFS import: %d stops, %d buses, %d distances", stats.Stops, stats.Buses, stats.Distances)
	return stats, nil
}

// catalogueNames maps stop_id to a unique catalogue name.
func (g *Feed) catalogueNames() map[string]string {
	names := make(map[string]string, len(g.Stops))
	taken := make(map[string]bool, len(g.Stops))
	for _, id := range g.StopOrder {
		name := g.Stops[id].Name
		if name == "" {
			name = id
		}
		if taken[name] {
			name = fmt.Sprintf("%s [%s]", name, id)
		}
		taken[name] = true
		names[id] = name
	}
	return names
}

// representativeTrips picks, per route, the trip with the most stop_times.
// Ties go to the lowest trip_id.
func (g *Feed) representativeTrips() map[string]string {
	tripIDs := make([]string, 0, len(g.Trips))
	for id := range g.Trips {
		tripIDs = append(tripIDs, id)
	}
	sort.Strings(tripIDs)

	best := map[string]string{}
	for _, id := range tripIDs {
		n := len(g.StopTimes[id])
		if n == 0 {
			continue
		}
		routeID := g.Trips[id].RouteID
		if cur, ok := best[routeID]; !ok || n > len(g.StopTimes[cur]) {
			best[routeID] = id
		}
	}
	return best
}

// setTripDistances records the road distance between each pair of
// consecutive stops of a trip.
func (g *Feed) setTripDistances(b *catalogue.Builder, trip TripRecord, rows []StopTime, names map[string]string, warnings *internal.WarningAggregator) (int, error) {
	var shapePos []float64
	if shape := g.Shapes[trip.ShapeID]; len(shape) > 1 {
		coords := make([]geo.Coordinates, len(rows))
		for i, st := range rows {
			coords[i] = g.Stops[st.StopID].Coordinates
		}
		shapePos = positionsAlongShape(shape, coords)
	}

	count, straight := 0, false
	for i := 0; i+1 < len(rows); i++ {
		from, to := rows[i], rows[i+1]
		if from.StopID == to.StopID {
			continue
		}
		var d float64
		switch {
		case from.ShapeDist >= 0 && to.ShapeDist > from.ShapeDist:
			d = to.ShapeDist - from.ShapeDist
		case shapePos != nil && shapePos[i+1] > shapePos[i]:
			d = shapePos[i+1] - shapePos[i]
		default:
			d = geo.ComputeDistance(g.Stops[from.StopID].Coordinates, g.Stops[to.StopID].Coordinates)
			straight = true
		}
		if err := b.SetStopDistance(names[from.StopID], names[to.StopID], int(math.Round(d))); err != nil {
			return count, err
		}
		count++
	}
	if straight {
		warnings.Add(internal.WarningNoShapeDistance, trip.ID)
	}
	return count, nil
}
