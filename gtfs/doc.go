/*
Package gtfs reads a GTFS static feed and imports it into a transport
catalogue.

This package is data-source agnostic: it accepts raw zip bytes, an
io.ReaderAt or a local path. Downloading is left to the caller.

# Basic Usage

	feed, err := gtfs.LoadFromFile("google_transit.zip")
	if err != nil {
	    log.Fatal(err)
	}
	b := catalogue.NewBuilder()
	stats, err := feed.Populate(b, internal.NewWarningAggregator())
	cat := b.Build()

# Import Rules

  - Stops are keyed by stop_id. The catalogue name is stop_name; a name
    already claimed by another stop_id gets the id appended in brackets.
  - Each route becomes one bus, drawn from the trip with the most
    stop_times. Ties go to the lowest trip_id.
  - The bus name is route_short_name, falling back to route_id.
  - A trip whose first and last stop coincide is a roundtrip bus.
  - The road distance between consecutive stops comes from the
    shape_dist_traveled delta when both stop_times carry it, else from the
    trip's shape, else from the great-circle distance. Distances are
    rounded to whole metres.

# Caching

Parsing a large feed takes seconds. SerializeFeed and DeserializeFeed store
the parsed tables with encoding/gob so a restart can skip the zip. The file
variants also record the feed's source; reading a cache written for another
source returns ErrStaleCache.
*/
package gtfs
