package catalogue

import (
	"fmt"
	"log"
	"sort"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Builder collects stops, buses and distances during the load phase.
// It is not safe for concurrent use.
type Builder struct {
	stops     []Stop
	buses     []Bus
	stopIndex map[string]StopID
	busIndex  map[string]BusID
	stopBuses [][]BusID // StopID -> buses serving it, in insertion order
	distances map[stopPair]int

	built *Catalogue
}

// NewBuilder creates an empty catalogue builder.
func NewBuilder() *Builder {
	return &Builder{
		stopIndex: map[string]StopID{},
		busIndex:  map[string]BusID{},
		distances: map[stopPair]int{},
	}
}

// AddStop inserts a stop. Re-adding a stop with the same coordinates is a
// no-op; re-adding it with different coordinates moves the stop, unless a bus
// already serves it, in which case ErrStopInUse is returned.
func (b *Builder) AddStop(name string, coords geo.Coordinates) error {
	if b.built != nil {
		return ErrFrozen
	}
	if name == "" {
		return fmt.Errorf("add stop: %w", ErrEmptyName)
	}
	if id, ok := b.stopIndex[name]; ok {
		if !b.stops[id].Coordinates.Equal(coords) {
			if len(b.stopBuses[id]) > 0 {
				return fmt.Errorf("add stop %q: %w", name, ErrStopInUse)
			}
			log.Printf("stop %q redefined: coordinates %v -> %v", name, b.stops[id].Coordinates, coords)
			b.stops[id].Coordinates = coords
		}
		return nil
	}
	id := StopID(len(b.stops))
	b.stops = append(b.stops, Stop{ID: id, Name: name, Coordinates: coords})
	b.stopBuses = append(b.stopBuses, nil)
	b.stopIndex[name] = id
	return nil
}

// AddBus inserts a bus over already added stops. A bus whose name is taken
// is ignored.
func (b *Builder) AddBus(name string, stopNames []string, isRoundtrip bool) error {
	if b.built != nil {
		return ErrFrozen
	}
	if name == "" {
		return fmt.Errorf("add bus: %w", ErrEmptyName)
	}
	if len(stopNames) == 0 {
		return fmt.Errorf("add bus %q: %w", name, ErrNoStops)
	}
	if _, ok := b.busIndex[name]; ok {
		return nil
	}

	input := make([]StopID, 0, len(stopNames))
	for _, sn := range stopNames {
		id, ok := b.stopIndex[sn]
		if !ok {
			return fmt.Errorf("add bus %q: %w %q", name, ErrUnknownStop, sn)
		}
		input = append(input, id)
	}

	path := expandPath(input, isRoundtrip)
	if len(path) == 0 {
		return nil
	}

	id := BusID(len(b.buses))
	b.buses = append(b.buses, Bus{
		ID:          id,
		Name:        name,
		Stops:       path,
		IsRoundtrip: isRoundtrip,
		GeoLength:   b.geoLength(input, isRoundtrip),
	})
	b.busIndex[name] = id

	seen := make(map[StopID]struct{}, len(input))
	for _, sid := range input {
		if _, ok := seen[sid]; ok {
			continue
		}
		seen[sid] = struct{}{}
		b.stopBuses[sid] = append(b.stopBuses[sid], id)
	}
	return nil
}

// SetStopDistance records the road distance in metres from one stop to
// another. Calls naming an unknown stop are ignored.
func (b *Builder) SetStopDistance(from, to string, meters int) error {
	if b.built != nil {
		return ErrFrozen
	}
	fromID, ok1 := b.stopIndex[from]
	toID, ok2 := b.stopIndex[to]
	if !ok1 || !ok2 {
		return nil
	}
	b.distances[stopPair{fromID, toID}] = meters
	return nil
}

// FindStop looks up a stop added so far.
func (b *Builder) FindStop(name string) (Stop, bool) {
	id, ok := b.stopIndex[name]
	if !ok {
		return Stop{}, false
	}
	return b.stops[id], true
}

// StopCount returns the number of stops added so far.
func (b *Builder) StopCount() int { return len(b.stops) }

// Build freezes the builder. Repeated calls return the same catalogue.
func (b *Builder) Build() *Catalogue {
	if b.built != nil {
		return b.built
	}
	c := &Catalogue{
		stops:     b.stops,
		buses:     b.buses,
		stopIndex: b.stopIndex,
		busIndex:  b.busIndex,
		stopBuses: b.stopBuses,
		distances: b.distances,
	}
	for _, list := range c.stopBuses {
		sort.Slice(list, func(i, j int) bool { return c.buses[list[i]].Name < c.buses[list[j]].Name })
	}
	c.stopOrder = make([]StopID, len(c.stops))
	for i := range c.stops {
		c.stopOrder[i] = StopID(i)
	}
	sort.Slice(c.stopOrder, func(i, j int) bool {
		return c.stops[c.stopOrder[i]].Name < c.stops[c.stopOrder[j]].Name
	})
	c.busOrder = make([]BusID, len(c.buses))
	for i := range c.buses {
		c.busOrder[i] = BusID(i)
	}
	sort.Slice(c.busOrder, func(i, j int) bool {
		return c.buses[c.busOrder[i]].Name < c.buses[c.busOrder[j]].Name
	})

	b.built = c
	log.Printf("catalogue built: %d stops, %d buses, %d distances", len(c.stops), len(c.buses), len(c.distances))
	return c
}

func (b *Builder) geoLength(input []StopID, isRoundtrip bool) float64 {
	total := 0.0
	for i := 0; i+1 < len(input); i++ {
		total += geo.ComputeDistance(b.stops[input[i]].Coordinates, b.stops[input[i+1]].Coordinates)
	}
	if !isRoundtrip {
		return total * 2
	}
	return total
}

// expandPath turns an input stop sequence into the full traversal path.
func expandPath(input []StopID, isRoundtrip bool) []StopID {
	if isRoundtrip {
		return append([]StopID(nil), input...)
	}
	path := make([]StopID, 0, 2*len(input)-1)
	path = append(path, input[:len(input)-1]...)
	for i := len(input) - 1; i >= 0; i-- {
		path = append(path, input[i])
	}
	return path
}
