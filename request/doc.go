// Package request reads a JSON request document, loads its base requests
// into a catalogue, and answers its stat requests.
//
// A document has four sections:
//
//	{
//	  "base_requests":    [ Stop | Bus ... ],
//	  "render_settings":  { ... },
//	  "routing_settings": { "bus_velocity": 40, "bus_wait_time": 6 },
//	  "stat_requests":    [ Stop | Bus | Route | Map ... ]
//	}
//
// Answers are written as a JSON array, one element per stat request, in
// request order. A query that cannot be answered yields
// {"error_message": "not found", "request_id": id}.
package request
