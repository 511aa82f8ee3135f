package config

import "github.com/theoremus-urban-solutions/transport-catalogue/router"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port              int `yaml:"port" validate:"gt=0"`
	ShutdownTimeoutMS int `yaml:"shutdownTimeoutMS" validate:"gte=0"`
}

// InputConfig points at a JSON request document
type InputConfig struct {
	Path string `yaml:"path"`
}

// GTFSConfig contains GTFS static feed configuration
type GTFSConfig struct {
	StaticPath string `yaml:"staticPath"`
	StaticURL  string `yaml:"staticURL" validate:"omitempty,url"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	CachePath  string `yaml:"cachePath"` // gob cache of the parsed feed
}

// Source returns the configured feed location, preferring the local path.
func (g GTFSConfig) Source() string {
	if g.StaticPath != "" {
		return g.StaticPath
	}
	return g.StaticURL
}

// CacheConfig sizes the route response cache
type CacheConfig struct {
	RouteEntries    int `yaml:"routeEntries" validate:"gte=0"`
	RouteTTLSeconds int `yaml:"routeTTLSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig    `yaml:"server" validate:"required"`
	Routing router.Settings `yaml:"routing"`
	Input   InputConfig     `yaml:"input"`
	GTFS    GTFSConfig      `yaml:"gtfs"`
	Cache   CacheConfig     `yaml:"cache"`
}

// Default returns the configuration used when no file is found.
func Default() AppConfig {
	return AppConfig{
		Server:  ServerConfig{Port: 16181, ShutdownTimeoutMS: 10000},
		Routing: router.Settings{BusVelocity: 40, BusWaitTime: 6},
		GTFS:    GTFSConfig{TimeoutMS: 30000},
		Cache:   CacheConfig{RouteEntries: 1024, RouteTTLSeconds: 3600},
	}
}
