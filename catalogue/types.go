package catalogue

import "github.com/theoremus-urban-solutions/transport-catalogue/geo"

// StopID indexes a stop inside its catalogue.
type StopID int

// BusID indexes a bus inside its catalogue.
type BusID int

// Stop is a named geographic point.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route. Stops holds the full traversal path: the input
// sequence for a roundtrip bus, the input followed by its reverse for a
// linear one.
type Bus struct {
	ID          BusID
	Name        string
	Stops       []StopID
	IsRoundtrip bool
	GeoLength   float64 // metres, doubled for linear buses
}

// ForwardLeg returns the outbound half of the path. For a roundtrip bus this
// is the whole path.
func (b Bus) ForwardLeg() []StopID {
	if b.IsRoundtrip {
		return b.Stops
	}
	return b.Stops[:len(b.Stops)/2+1]
}

// LastForwardStop returns the turn-around stop of a linear bus, or the last
// stop of a roundtrip one.
func (b Bus) LastForwardStop() StopID {
	leg := b.ForwardLeg()
	return leg[len(leg)-1]
}

// RouteStats is the answer to a bus statistics query.
type RouteStats struct {
	Name            string
	Found           bool
	StopCount       int
	UniqueStopCount int
	RouteLength     float64 // metres, road distance
	Curvature       float64
}

type stopPair struct {
	from, to StopID
}
