package renderer

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// SphereProjector maps coordinates onto a width x height canvas with padding,
// preserving aspect ratio.
type SphereProjector struct {
	padding  float64
	minLng   float64
	maxLat   float64
	zoomCoef float64
}

// NewSphereProjector fits the given points into the canvas.
func NewSphereProjector(points []geo.Coordinates, width, height, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		minLng = math.Min(minLng, pt.Lng)
		maxLng = math.Max(maxLng, pt.Lng)
		minLat = math.Min(minLat, pt.Lat)
		maxLat = math.Max(maxLat, pt.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidth, hasHeight := !isZero(maxLng-minLng), !isZero(maxLat-minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoomCoef = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoomCoef = widthZoom
	case hasHeight:
		p.zoomCoef = heightZoom
	}
	return p
}

// Project returns the canvas position of c.
func (p SphereProjector) Project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoomCoef + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoomCoef + p.padding,
	}
}
