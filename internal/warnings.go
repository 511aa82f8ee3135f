package internal

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning kinds raised while loading a catalogue.
const (
	// JSON document
	WarningUnresolvedDistance = "unresolved_distance"
	WarningUnknownRequestType = "unknown_request_type"
	WarningStopRedefined      = "stop_redefined"

	// GTFS import
	WarningNoRouteShortName = "no_route_short_name"
	WarningRouteWithoutTrip = "route_without_trip"
	WarningStopNotFound     = "stop_not_found"
	WarningBadCoordinates   = "bad_coordinates"
	WarningNoShapeDistance  = "no_shape_distance"
)

const maxExamples = 3

type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects load warnings and logs one line per kind.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{warnings: make(map[string]*warningInfo)}
}

// Add records one occurrence of warningType with an example id.
func (w *WarningAggregator) Add(warningType, exampleID string) {
	info := w.warnings[warningType]
	if info == nil {
		info = &warningInfo{examples: make([]string, 0, maxExamples)}
		w.warnings[warningType] = info
	}
	info.count++
	if len(info.examples) < maxExamples {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the occurrences of warningType.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Len returns the number of distinct warning kinds seen.
func (w *WarningAggregator) Len() int { return len(w.warnings) }

// Messages returns the consolidated lines, sorted by kind.
func (w *WarningAggregator) Messages(source string) []string {
	kinds := make([]string, 0, len(w.warnings))
	for k := range w.warnings {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, formatWarningMessage(k, source, w.warnings[k]))
	}
	return out
}

// LogAll writes every consolidated warning to the standard logger.
func (w *WarningAggregator) LogAll(source string) {
	for _, m := range w.Messages(source) {
		log.Printf("%s", m)
	}
}

func formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnresolvedDistance:
		description = "road distances naming unknown stops"
		action = "Ignoring the distance"
	case WarningUnknownRequestType:
		description = "requests of unknown type"
		action = "Skipping the request"
	case WarningStopRedefined:
		description = "stops defined more than once"
		action = "Keeping the last coordinates"
	case WarningNoRouteShortName:
		description = "routes with no route_short_name"
		action = "Using route_id as the bus name"
	case WarningRouteWithoutTrip:
		description = "routes with no trip carrying stop_times"
		action = "Skipping the route"
	case WarningStopNotFound:
		description = "stop_times referencing stops not in stops.txt"
		action = "Dropping the stop from the trip"
	case WarningBadCoordinates:
		description = "stops with unparsable stop_lat/stop_lon"
		action = "Skipping the stop"
	case WarningNoShapeDistance:
		description = "trips with no shape_dist_traveled"
		action = "Using great-circle distances between stops"
	default:
		description = "unknown issue"
		action = "Continuing"
	}

	return fmt.Sprintf("%s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, strings.Join(info.examples, ", "))
}
