// Package router answers minimum-time itinerary queries over a frozen
// catalogue.
//
// # Graph model
//
// Every stop contributes two vertices: an arrival vertex and a boarding
// vertex (arrival+1), joined by a wait edge weighted with the configured
// wait time. For every bus and every ordered pair of stops i<j on its
// forward leg a ride edge runs from boarding(i) to arrival(j), weighted with
// the ride time over the hops between them. Linear buses also get the
// reverse edge boarding(j) -> arrival(i), timed with the reverse directional
// distances. Stops and buses are visited in name order, so vertex and edge
// ids are reproducible for a given catalogue.
//
// An itinerary therefore starts at the origin's arrival vertex, alternates
// wait and ride edges, and ends at the destination's arrival vertex.
//
// # Thread Safety
//
// A Router is immutable after New returns. FindRoute keeps all search state
// on the stack and may be called from multiple goroutines.
package router
