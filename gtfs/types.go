package gtfs

import "github.com/theoremus-urban-solutions/transport-catalogue/geo"

// StopRecord is a row of stops.txt.
type StopRecord struct {
	ID          string
	Name        string
	Coordinates geo.Coordinates
}

// RouteRecord is a row of routes.txt.
type RouteRecord struct {
	ID        string
	ShortName string
	LongName  string
	Type      int
}

// TripRecord is a row of trips.txt.
type TripRecord struct {
	ID      string
	RouteID string
	ShapeID string
}

// StopTime is a row of stop_times.txt. ShapeDist is negative when the
// column is absent or empty.
type StopTime struct {
	StopID    string
	Sequence  int
	ShapeDist float64
}

// Feed holds the tables needed to build a catalogue. Maps are keyed by the
// GTFS id; StopOrder keeps stops.txt order.
type Feed struct {
	Stops     map[string]StopRecord
	StopOrder []string
	Routes    map[string]RouteRecord
	Trips     map[string]TripRecord
	StopTimes map[string][]StopTime        // trip_id -> rows sorted by stop_sequence
	Shapes    map[string][]geo.Coordinates // shape_id -> points sorted by sequence
}

func newFeed() *Feed {
	return &Feed{
		Stops:     map[string]StopRecord{},
		Routes:    map[string]RouteRecord{},
		Trips:     map[string]TripRecord{},
		StopTimes: map[string][]StopTime{},
		Shapes:    map[string][]geo.Coordinates{},
	}
}
