package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/feed.zip" {
			_, _ = w.Write([]byte("zip-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer ts.Close()

	f := newFetcher(5 * time.Second)
	ctx := context.Background()

	data, err := f.fetch(ctx, ts.URL+"/feed.zip")
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(data))

	_, err = f.fetch(ctx, ts.URL+"/missing.zip")
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("https://example.com/gtfs.zip"))
	assert.True(t, isURL("http://example.com/gtfs.zip"))
	assert.False(t, isURL("/data/gtfs.zip"))
}
