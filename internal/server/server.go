package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Dir      string // generated site to serve
	BasePath string // URL prefix the site is built for, e.g. "/tutorial"
	AllowAll bool   // allow all CORS origins
}

// Server is the local preview server for a generated site.
type Server struct {
	cfg        Config
	reload     *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server for cfg.Dir.
func New(cfg Config) *Server {
	s := &Server{
		cfg:    cfg,
		reload: NewHub(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/_livereload", s.reload.ServeHTTP)

	// Static files, compressed. A site built for a sub-path is served under
	// that prefix so its absolute links resolve.
	files := gziphandler.GzipHandler(http.FileServer(http.Dir(s.cfg.Dir)))
	base := strings.TrimRight(s.cfg.BasePath, "/")
	if base == "" {
		r.Handle("/*", files)
	} else {
		r.Handle(base+"/*", http.StripPrefix(base, files))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base+"/", http.StatusFound)
		})
	}

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Reload tells every connected browser to reload and returns how many were
// notified.
func (s *Server) Reload() int { return s.reload.Broadcast() }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: serving %s on %s", s.cfg.Dir, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown closes live-reload connections and gracefully shuts down the
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.reload.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
