package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"polis/internal/engine"
)

type createGameResponse struct {
	ID string `json:"id"`
}

type joinRequest struct {
	Name string `json:"name"`
}

type joinResponse struct {
	PlayerID string `json:"player_id"`
	City     string `json:"city"`
	Variant  string `json:"variant"`
}

type playRequest struct {
	PlayerID   string `json:"player_id"`
	Action     string `json:"action"`
	Building   string `json:"building"`
	TradeLeft  int    `json:"trade_left"`
	TradeRight int    `json:"trade_right"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	g := s.registry.Create(s.catalog, s.config)
	s.persist(g)
	s.log.Info("game created", "game", g.ID)
	s.writeJSON(w, http.StatusCreated, createGameResponse{ID: g.ID})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.registry.IDs())
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g := s.game(w, r)
	if g == nil {
		return
	}
	s.writeJSON(w, http.StatusOK, g.View())
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	g := s.game(w, r)
	if g == nil {
		return
	}
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	p, err := g.Join(uuid.NewString(), req.Name)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.persist(g)
	s.log.Info("player joined", "game", g.ID, "player", p.ID, "city", p.City)
	s.writeJSON(w, http.StatusCreated, joinResponse{PlayerID: p.ID, City: p.City, Variant: p.Variant})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	g := s.game(w, r)
	if g == nil {
		return
	}
	if err := g.Start(); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.persist(g)
	s.log.Info("game started", "game", g.ID)
	s.writeJSON(w, http.StatusOK, g.View())
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	g := s.game(w, r)
	if g == nil {
		return
	}
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	err := g.Play(req.PlayerID, engine.ActionKind(req.Action), req.Building, req.TradeLeft, req.TradeRight)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.persist(g)
	view, err := g.ViewFor(req.PlayerID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handlePlayerView(w http.ResponseWriter, r *http.Request) {
	g := s.game(w, r)
	if g == nil {
		return
	}
	playerID := r.URL.Query().Get("player")
	if playerID == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("player parameter is required"))
		return
	}
	view, err := g.ViewFor(playerID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	g := s.game(w, r)
	if g == nil {
		return
	}
	s.writeJSON(w, http.StatusOK, g.Scores())
}

// game resolves the {id} path value, writing a 404 and returning nil when
// the game does not exist.
func (s *Server) game(w http.ResponseWriter, r *http.Request) *engine.Game {
	g := s.registry.Get(r.PathValue("id"))
	if g == nil {
		s.writeError(w, http.StatusNotFound, errors.New("game not found"))
		return nil
	}
	return g
}

func (s *Server) persist(g *engine.Game) {
	if s.db == nil {
		return
	}
	if err := s.db.Save(g.Snapshot()); err != nil {
		s.log.Error("persist game", "game", g.ID, "error", err)
	}
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	s.writeError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrGameStarted),
		errors.Is(err, engine.ErrGameNotStarted),
		errors.Is(err, engine.ErrGameFinished),
		errors.Is(err, engine.ErrNotEnoughPlayers),
		errors.Is(err, engine.ErrNoCityAvailable),
		errors.Is(err, engine.ErrNotEnoughOptions):
		return http.StatusConflict
	case errors.Is(err, engine.ErrAlreadyDecided),
		errors.Is(err, engine.ErrInvalidAction),
		errors.Is(err, engine.ErrOptionNotInHand),
		errors.Is(err, engine.ErrFreeBuildUnused),
		errors.Is(err, engine.ErrAlreadyBuilt),
		errors.Is(err, engine.ErrNoSpecialLeft),
		errors.Is(err, engine.ErrCannotPay):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
