package request

import (
	"fmt"
	"log"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

type pendingDistance struct {
	from, to string
	meters   int
}

// LoadCatalogue applies base requests to a fresh builder and freezes it.
// Stops and their distances go first, then buses, regardless of input
// order. Distances naming a stop that is defined later are retried once all
// stops exist. Any rejected stop or bus aborts the load.
func LoadCatalogue(reqs []BaseRequest, warnings *internal.WarningAggregator) (*catalogue.Catalogue, error) {
	b := catalogue.NewBuilder()
	var (
		buses   []BaseRequest
		pending []pendingDistance
	)

	for _, req := range reqs {
		switch req.Type {
		case TypeStop:
			coords := geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}
			if prev, ok := b.FindStop(req.Name); ok && !prev.Coordinates.Equal(coords) {
				warnings.Add(internal.WarningStopRedefined, req.Name)
			}
			if err := b.AddStop(req.Name, coords); err != nil {
				return nil, err
			}
			for to, meters := range req.RoadDistances {
				if _, ok := b.FindStop(to); !ok {
					pending = append(pending, pendingDistance{from: req.Name, to: to, meters: meters})
					continue
				}
				if err := b.SetStopDistance(req.Name, to, meters); err != nil {
					return nil, err
				}
			}
		case TypeBus:
			buses = append(buses, req)
		default:
			warnings.Add(internal.WarningUnknownRequestType, fmt.Sprintf("%q", req.Type))
		}
	}

	for _, d := range pending {
		if _, ok := b.FindStop(d.to); !ok {
			warnings.Add(internal.WarningUnresolvedDistance, d.from+"->"+d.to)
			continue
		}
		if err := b.SetStopDistance(d.from, d.to, d.meters); err != nil {
			return nil, err
		}
	}

	for _, req := range buses {
		if err := b.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return nil, err
		}
	}

	cat := b.Build()
	log.Printf("loaded %d stops and %d buses", cat.GetStopCount(), cat.GetBusCount())
	return cat, nil
}
