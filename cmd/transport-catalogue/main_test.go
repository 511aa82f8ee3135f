package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
)

func writeFeedZip(t *testing.T, dir, name, firstStop string) string {
	t.Helper()
	files := map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1," + firstStop + ",55.0,37.0\n" +
			"S2,Terminal,55.0,37.01\n",
		"routes.txt": "route_id,route_short_name,route_long_name,route_type\n" +
			"R1,10,Ten,3\n",
		"trips.txt": "route_id,service_id,trip_id,shape_id\n" +
			"R1,WK,T1,\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence,shape_dist_traveled\n" +
			"T1,08:00:00,08:00:00,S1,1,0\n" +
			"T1,08:05:00,08:05:00,S2,2,700\n",
	}
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for fname, body := range files {
		w, err := zw.Create(fname)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return p
}

func TestLoadFeed_CacheFollowsSource(t *testing.T) {
	dir := t.TempDir()
	a := writeFeedZip(t, dir, "a.zip", "FromA")
	b := writeFeedZip(t, dir, "b.zip", "FromB")
	cfg := config.GTFSConfig{CachePath: filepath.Join(dir, "feed.gob")}

	feed, err := loadFeed(cfg, a)
	require.NoError(t, err)
	assert.Equal(t, "FromA", feed.Stops["S1"].Name)
	assert.FileExists(t, cfg.CachePath)

	feed, err = loadFeed(cfg, b)
	require.NoError(t, err)
	assert.Equal(t, "FromB", feed.Stops["S1"].Name)

	// b is gone from disk, so only a cache hit can serve it.
	require.NoError(t, os.Remove(b))
	feed, err = loadFeed(cfg, b)
	require.NoError(t, err)
	assert.Equal(t, "FromB", feed.Stops["S1"].Name)

	require.NoError(t, os.Remove(a))
	_, err = loadFeed(cfg, a)
	assert.Error(t, err)
}

func TestLoadHandler_FromGTFS(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.GTFS.StaticPath = writeFeedZip(t, dir, "feed.zip", "Origin")

	h, err := loadHandler(cfg)
	require.NoError(t, err)
	cat := h.Catalogue()
	assert.Equal(t, 2, cat.GetStopCount())
	_, ok := cat.FindBus("10")
	assert.True(t, ok)

	resp := h.FindRoute("Origin", "Terminal")
	assert.True(t, resp.Success)
}

func TestLoadHandler_FromDocument(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.json")
	doc := `{"base_requests": [
		{"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0, "road_distances": {"B": 1000}},
		{"type": "Stop", "name": "B", "latitude": 55.0, "longitude": 37.01, "road_distances": {}},
		{"type": "Bus", "name": "7", "stops": ["A", "B"], "is_roundtrip": false}
	]}`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	cfg := config.Default()
	cfg.Input.Path = p
	h, err := loadHandler(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1000, h.Catalogue().StopDistance("A", "B"))
}

func TestLoadHandler_NoInput(t *testing.T) {
	_, err := loadHandler(config.Default())
	assert.ErrorContains(t, err, "no input")
}
