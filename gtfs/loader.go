package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

// ErrMissingTable is returned when a required file is absent from the zip.
var ErrMissingTable = errors.New("gtfs: required table missing")

var (
	requiredTables = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}
	tableOrder     = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt", "shapes.txt"}
)

// LoadFromBytes parses a GTFS zip held in memory.
func LoadFromBytes(data []byte) (*Feed, error) {
	return LoadFromReader(bytes.NewReader(data), int64(len(data)))
}

// LoadFromReader parses a GTFS zip from r.
func LoadFromReader(r io.ReaderAt, size int64) (*Feed, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	return load(zr.File)
}

// LoadFromFile parses a GTFS zip on disk.
func LoadFromFile(p string) (*Feed, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	defer zr.Close()
	return load(zr.File)
}

func load(files []*zip.File) (*Feed, error) {
	feed := newFeed()
	seen := map[string]bool{}
	warnings := internal.NewWarningAggregator()

	// Read tables in a fixed order whatever their order in the zip.
	byName := map[string]*zip.File{}
	for _, f := range files {
		byName[strings.ToLower(path.Base(f.Name))] = f
	}
	for _, name := range tableOrder {
		f, ok := byName[name]
		if !ok {
			continue
		}
		if err := feed.consumeCSV(name, f, warnings); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		seen[name] = true
	}
	for _, name := range requiredTables {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, name)
		}
	}

	warnings.LogAll("GTFS feed")
	log.Printf("GTFS feed parsed: %d stops, %d routes, %d trips, %d shapes",
		len(feed.Stops), len(feed.Routes), len(feed.Trips), len(feed.Shapes))
	return feed, nil
}

func (g *Feed) consumeCSV(name string, f *zip.File, warnings *internal.WarningAggregator) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch name {
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		if sID < 0 {
			return fmt.Errorf("no stop_id column")
		}
		for _, row := range rec[1:] {
			id := field(row, sID)
			if id == "" {
				continue
			}
			lat, errLat := strconv.ParseFloat(field(row, sLat), 64)
			lon, errLon := strconv.ParseFloat(field(row, sLon), 64)
			if errLat != nil || errLon != nil {
				warnings.Add(internal.WarningBadCoordinates, id)
				continue
			}
			if _, dup := g.Stops[id]; !dup {
				g.StopOrder = append(g.StopOrder, id)
			}
			g.Stops[id] = StopRecord{ID: id, Name: field(row, sN), Coordinates: geo.Coordinates{Lat: lat, Lng: lon}}
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		rLN := idx("route_long_name")
		rType := idx("route_type")
		if rID < 0 {
			return fmt.Errorf("no route_id column")
		}
		for _, row := range rec[1:] {
			id := field(row, rID)
			if id == "" {
				continue
			}
			typ, _ := strconv.Atoi(field(row, rType))
			g.Routes[id] = RouteRecord{ID: id, ShortName: field(row, rSN), LongName: field(row, rLN), Type: typ}
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		sh := idx("shape_id")
		if rID < 0 || tID < 0 {
			return fmt.Errorf("no route_id or trip_id column")
		}
		for _, row := range rec[1:] {
			id := field(row, tID)
			if id == "" {
				continue
			}
			g.Trips[id] = TripRecord{ID: id, RouteID: field(row, rID), ShapeID: field(row, sh)}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		dist := idx("shape_dist_traveled")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("no trip_id, stop_id or stop_sequence column")
		}
		for _, row := range rec[1:] {
			trip := field(row, tID)
			seq, err := strconv.Atoi(field(row, sq))
			if trip == "" || err != nil {
				continue
			}
			st := StopTime{StopID: field(row, sID), Sequence: seq, ShapeDist: -1}
			if d, err := strconv.ParseFloat(field(row, dist), 64); err == nil {
				st.ShapeDist = d
			}
			g.StopTimes[trip] = append(g.StopTimes[trip], st)
		}
		for _, arr := range g.StopTimes {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].Sequence < arr[j].Sequence })
		}
	case "shapes.txt":
		sh := idx("shape_id")
		latIdx := idx("shape_pt_lat")
		lonIdx := idx("shape_pt_lon")
		seqIdx := idx("shape_pt_sequence")
		if sh < 0 || latIdx < 0 || lonIdx < 0 || seqIdx < 0 {
			return nil
		}
		type shapePoint struct {
			c   geo.Coordinates
			seq int
		}
		tmp := map[string][]shapePoint{}
		for _, row := range rec[1:] {
			lat, err1 := strconv.ParseFloat(field(row, latIdx), 64)
			lon, err2 := strconv.ParseFloat(field(row, lonIdx), 64)
			seq, err3 := strconv.Atoi(field(row, seqIdx))
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}
			id := field(row, sh)
			tmp[id] = append(tmp[id], shapePoint{geo.Coordinates{Lat: lat, Lng: lon}, seq})
		}
		for id, arr := range tmp {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			pts := make([]geo.Coordinates, len(arr))
			for i, p := range arr {
				pts[i] = p.c
			}
			g.Shapes[id] = pts
		}
	}
	return nil
}
