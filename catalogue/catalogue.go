package catalogue

// Catalogue is the frozen, read-only transit network produced by
// Builder.Build. It is safe for concurrent use.
type Catalogue struct {
	stops     []Stop
	buses     []Bus
	stopIndex map[string]StopID
	busIndex  map[string]BusID
	stopBuses [][]BusID // sorted by bus name
	distances map[stopPair]int

	stopOrder []StopID // stops sorted by name
	busOrder  []BusID  // buses sorted by name
}

// GetStopDistance returns the road distance from one stop to another,
// falling back to the reverse direction, else 0.
func (c *Catalogue) GetStopDistance(from, to StopID) int {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d
	}
	return 0
}

// StopDistance is GetStopDistance addressed by stop names. Unknown stops yield 0.
func (c *Catalogue) StopDistance(from, to string) int {
	fromID, ok1 := c.stopIndex[from]
	toID, ok2 := c.stopIndex[to]
	if !ok1 || !ok2 {
		return 0
	}
	return c.GetStopDistance(fromID, toID)
}

// GetRoute computes statistics for a bus. Unknown names yield Found=false.
func (c *Catalogue) GetRoute(name string) RouteStats {
	id, ok := c.busIndex[name]
	if !ok {
		return RouteStats{Name: name}
	}
	bus := c.buses[id]

	roadLength := 0.0
	for i := 0; i+1 < len(bus.Stops); i++ {
		roadLength += float64(c.GetStopDistance(bus.Stops[i], bus.Stops[i+1]))
	}
	unique := make(map[StopID]struct{}, len(bus.Stops))
	for _, sid := range bus.Stops {
		unique[sid] = struct{}{}
	}
	curvature := 0.0
	if bus.GeoLength > 0 {
		curvature = roadLength / bus.GeoLength
	}

	return RouteStats{
		Name:            bus.Name,
		Found:           true,
		StopCount:       len(bus.Stops),
		UniqueStopCount: len(unique),
		RouteLength:     roadLength,
		Curvature:       curvature,
	}
}

func (c *Catalogue) FindStop(name string) (Stop, bool) {
	id, ok := c.stopIndex[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[id], true
}

func (c *Catalogue) FindBus(name string) (Bus, bool) {
	id, ok := c.busIndex[name]
	if !ok {
		return Bus{}, false
	}
	return c.buses[id], true
}

// Stop returns the stop with the given id. The id must come from this catalogue.
func (c *Catalogue) Stop(id StopID) Stop { return c.stops[id] }

// Bus returns the bus with the given id. The id must come from this catalogue.
func (c *Catalogue) Bus(id BusID) Bus { return c.buses[id] }

// GetStopCount returns the number of stops.
func (c *Catalogue) GetStopCount() int { return len(c.stops) }

// GetBusCount returns the number of buses.
func (c *Catalogue) GetBusCount() int { return len(c.buses) }

// GetStopBuses returns the buses serving a stop, sorted by name. The
// boolean is false when the stop does not exist.
func (c *Catalogue) GetStopBuses(name string) ([]Bus, bool) {
	id, ok := c.stopIndex[name]
	if !ok {
		return nil, false
	}
	list := c.stopBuses[id]
	out := make([]Bus, 0, len(list))
	for _, bid := range list {
		out = append(out, c.buses[bid])
	}
	return out, true
}

// GetAllBuses returns every bus sorted by name.
func (c *Catalogue) GetAllBuses() []Bus {
	out := make([]Bus, 0, len(c.busOrder))
	for _, id := range c.busOrder {
		out = append(out, c.buses[id])
	}
	return out
}

// GetAllStops returns every stop sorted by name.
func (c *Catalogue) GetAllStops() []Stop {
	out := make([]Stop, 0, len(c.stopOrder))
	for _, id := range c.stopOrder {
		out = append(out, c.stops[id])
	}
	return out
}

// GetUsedStops returns the stops served by at least one bus, sorted by name.
func (c *Catalogue) GetUsedStops() []Stop {
	out := make([]Stop, 0, len(c.stopOrder))
	for _, id := range c.stopOrder {
		if c.StopIsUsed(id) {
			out = append(out, c.stops[id])
		}
	}
	return out
}

// StopIsUsed reports whether at least one bus serves the stop.
func (c *Catalogue) StopIsUsed(id StopID) bool {
	return int(id) < len(c.stopBuses) && len(c.stopBuses[id]) > 0
}
