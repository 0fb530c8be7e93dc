// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-optimizer/internal/rewriting"
)

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	generator  rewriting.Generator
	validate   *validator.Validate
}

// New creates a new server instance backed by the Gemini generator.
func New(ctx context.Context, cfg Config) (*Server, error) {
	gen, err := rewriting.NewGeminiGenerator(ctx, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return NewWithGenerator(cfg, gen), nil
}

// NewWithGenerator creates a server with an injected generator.
func NewWithGenerator(cfg Config, gen rewriting.Generator) *Server {
	s := &Server{
		generator: gen,
		validate:  validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/optimize", requireMethod(http.MethodPost, s.handleOptimize))
	mux.HandleFunc("/healthz", requireMethod(http.MethodGet, s.handleHealth))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // optimization runs call out to the LLM
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// requireMethod rejects requests whose method does not match, mirroring the
// method-specific mux patterns of Go 1.22+ on older toolchains.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// withCORS sets permissive CORS headers and answers preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
