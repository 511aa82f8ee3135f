// Package catalogue stores the transit network: stops, buses and the
// directed road-distance table, and answers route statistics queries.
//
// # Lifecycle
//
// The catalogue has two phases, expressed as two types:
//
//  1. A Builder accepts AddStop, AddBus and SetStopDistance calls.
//  2. Builder.Build freezes the data into a *Catalogue. The Builder rejects
//     every later mutation with ErrFrozen.
//
// A *Catalogue has no mutating methods and is safe for concurrent readers.
//
//	b := catalogue.NewBuilder()
//	_ = b.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
//	_ = b.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
//	_ = b.SetStopDistance("A", "B", 1000)
//	_ = b.AddBus("1", []string{"A", "B"}, true)
//	cat := b.Build()
//	stats := cat.GetRoute("1")
//
// # Identity
//
// Stops and buses live in slices owned by the catalogue and are referenced
// by their index (StopID, BusID). Bus stop sequences and the distance table
// are keyed by these indices, never by pointers.
//
// Slices returned by query methods (Bus.Stops, Bus.ForwardLeg) share memory
// with the catalogue and MUST NOT be modified by callers.
package catalogue
