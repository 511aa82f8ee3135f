// Package renderer draws the transit network as an SVG map.
//
// This package is organized into:
//   - svg.go: minimal SVG document model (circle, polyline, text) and colours
//   - projector.go: projection of geographic coordinates onto the canvas
//   - renderer.go: MapRenderer, which lays out bus lines, labels and stops
//
// Serialization is done by hand with strings.Builder, matching the precise
// attribute order the map consumers expect.
package renderer
