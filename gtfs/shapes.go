package gtfs

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// cumulativeMeters returns the distance travelled at each point of a shape.
func cumulativeMeters(pts []geo.Coordinates) []float64 {
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + geo.ComputeDistance(pts[i-1], pts[i])
	}
	return cum
}

// nearestPoint returns the index of the shape point closest to c, searching
// from index start onwards.
func nearestPoint(pts []geo.Coordinates, c geo.Coordinates, start int) int {
	best, bestDist := start, math.Inf(1)
	for i := start; i < len(pts); i++ {
		if d := geo.ComputeDistance(pts[i], c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// positionsAlongShape snaps each stop onto the shape and returns how far
// along the shape it lies. Snapping never moves backwards, so a shape that
// revisits a place keeps stop order. It returns nil when the shape has fewer
// than two points.
func positionsAlongShape(shape []geo.Coordinates, stops []geo.Coordinates) []float64 {
	if len(shape) < 2 {
		return nil
	}
	cum := cumulativeMeters(shape)
	out := make([]float64, len(stops))
	at := 0
	for i, c := range stops {
		at = nearestPoint(shape, c, at)
		out[i] = cum[at]
	}
	return out
}
