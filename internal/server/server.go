// Package server exposes the game engine over an HTTP JSON API.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"polis/internal/engine"
	"polis/internal/lobby"
	"polis/internal/rules"
	"polis/internal/store"
)

// Server ties together the game registry, the catalog, and snapshot storage.
type Server struct {
	registry *lobby.Registry
	catalog  *rules.Catalog
	config   engine.Config
	db       *store.DB
	log      *slog.Logger
	port     int
}

func New(port int, catalog *rules.Catalog, config engine.Config, db *store.DB, log *slog.Logger) *Server {
	return &Server{
		registry: lobby.NewRegistry(),
		catalog:  catalog,
		config:   config,
		db:       db,
		log:      log,
		port:     port,
	}
}

// Restore loads every stored game into the registry.
func (s *Server) Restore() error {
	if s.db == nil {
		return nil
	}
	snaps, err := s.db.LoadAll()
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		g, err := engine.RestoreGame(snap, s.catalog, s.config)
		if err != nil {
			return fmt.Errorf("restore game %s: %w", snap.ID, err)
		}
		s.registry.Put(g)
	}
	if len(snaps) > 0 {
		s.log.Info("restored saved games", "count", len(snaps))
	}
	return nil
}

// Handler builds the API routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	mux.HandleFunc("POST /api/games/{id}/join", s.handleJoin)
	mux.HandleFunc("POST /api/games/{id}/start", s.handleStart)
	mux.HandleFunc("POST /api/games/{id}/play", s.handlePlay)
	mux.HandleFunc("GET /api/games/{id}/player", s.handlePlayerView)
	mux.HandleFunc("GET /api/games/{id}/scores", s.handleScores)

	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path)
	})
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}
