// Package server exposes a loaded catalogue over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluele/gcache"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

// Server serves catalogue queries. The catalogue, router and map are
// read-only, so handlers share them without locking.
type Server struct {
	handler    *request.Handler
	routeCache gcache.Cache // nil when caching is disabled
	engine     *gin.Engine
	httpServer *http.Server
	cfg        config.AppConfig
}

// New wires the routes for h.
func New(h *request.Handler, cfg config.AppConfig) *Server {
	s := &Server{handler: h, cfg: cfg}
	if n := cfg.Cache.RouteEntries; n > 0 {
		builder := gcache.New(n).LRU()
		if ttl := cfg.Cache.RouteTTLSeconds; ttl > 0 {
			builder = builder.Expiration(time.Duration(ttl) * time.Second)
		}
		s.routeCache = builder.Build()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), gin.LoggerWithWriter(log.Writer()))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/stops", s.handleStops)
	api.GET("/stops/:name", s.handleStop)
	api.GET("/buses", s.handleBuses)
	api.GET("/buses/:name", s.handleBus)
	api.GET("/route", s.handleRoute)
	api.GET("/map.svg", s.handleMap)

	s.engine = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Start listens in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")

	timeout := time.Duration(s.cfg.Server.ShutdownTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
