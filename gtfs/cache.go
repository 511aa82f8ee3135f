package gtfs

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrStaleCache is returned when a cache file was written for another source.
var ErrStaleCache = errors.New("GTFS cache was written for a different source")

// cacheFile is the on-disk envelope; Source is the path or URL the feed was
// parsed from.
type cacheFile struct {
	Source string
	Feed   *Feed
}

// SerializeFeed encodes a parsed feed with gob so it can be cached on disk.
func SerializeFeed(feed *Feed) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeFeedToWriter(feed, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeFeed decodes a feed produced by SerializeFeed.
func DeserializeFeed(data []byte) (*Feed, error) {
	return DeserializeFeedFromReader(bytes.NewReader(data))
}

// SerializeFeedToFile writes feed to path together with the source it was
// parsed from.
func SerializeFeedToFile(feed *Feed, source, path string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cacheFile{Source: source, Feed: feed}); err != nil {
		return fmt.Errorf("failed to encode GTFS cache: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// DeserializeFeedFromFile reads a feed cached with SerializeFeedToFile. A
// cache written for another source yields ErrStaleCache.
//
//	feed, err := gtfs.DeserializeFeedFromFile("/cache/feed.gob", src)
//	if err != nil {
//	    // Cache miss, stale or corrupted, parse the zip again
//	    feed, err = gtfs.LoadFromFile(src)
//	}
func DeserializeFeedFromFile(path, source string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	var cf cacheFile
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&cf); err != nil {
		return nil, fmt.Errorf("failed to decode GTFS cache: %w", err)
	}
	if cf.Source != source {
		return nil, fmt.Errorf("%w: cached %q, want %q", ErrStaleCache, cf.Source, source)
	}
	if cf.Feed == nil {
		return nil, fmt.Errorf("failed to decode GTFS cache: empty feed")
	}
	return cf.Feed, nil
}

func SerializeFeedToWriter(feed *Feed, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(feed); err != nil {
		return fmt.Errorf("failed to encode GTFS feed: %w", err)
	}
	return nil
}

func DeserializeFeedFromReader(r io.Reader) (*Feed, error) {
	var feed Feed
	if err := gob.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode GTFS feed: %w", err)
	}
	return &feed, nil
}
