package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"polis/internal/engine"
	"polis/internal/rules"
	"polis/internal/server"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := server.New(0, rules.BaseCatalog(), engine.DefaultConfig(), nil, log)
	return s.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

type createResp struct {
	ID string `json:"id"`
}

type joinResp struct {
	PlayerID string `json:"player_id"`
	City     string `json:"city"`
}

func createGame(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/games", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create game: status %d, body %s", rec.Code, rec.Body)
	}
	id := decode[createResp](t, rec).ID
	if id == "" {
		t.Fatal("create game: empty ID")
	}
	return id
}

func joinGame(t *testing.T, h http.Handler, gameID, name string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/games/"+gameID+"/join", `{"name":"`+name+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("join: status %d, body %s", rec.Code, rec.Body)
	}
	resp := decode[joinResp](t, rec)
	if resp.PlayerID == "" || resp.City == "" {
		t.Fatalf("join: incomplete response %+v", resp)
	}
	return resp.PlayerID
}

func TestGameLifecycle(t *testing.T) {
	h := newTestServer(t)

	gameID := createGame(t, h)

	rec := do(t, h, http.MethodGet, "/api/games", "")
	if ids := decode[[]string](t, rec); len(ids) != 1 || ids[0] != gameID {
		t.Fatalf("list games = %v, want [%s]", ids, gameID)
	}

	players := make([]string, 3)
	for i, name := range []string{"Ada", "Bo", "Cy"} {
		players[i] = joinGame(t, h, gameID, name)
	}

	rec = do(t, h, http.MethodPost, "/api/games/"+gameID+"/start", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("start: status %d, body %s", rec.Code, rec.Body)
	}
	view := decode[engine.PublicView](t, rec)
	if !view.Started || view.Turn != 1 {
		t.Fatalf("start view = %+v", view)
	}
	for _, p := range view.Players {
		if p.HandSize != 7 {
			t.Fatalf("player %s hand size = %d, want 7", p.Name, p.HandSize)
		}
	}

	rec = do(t, h, http.MethodGet, "/api/games/"+gameID+"/player?player="+players[0], "")
	if rec.Code != http.StatusOK {
		t.Fatalf("player view: status %d, body %s", rec.Code, rec.Body)
	}
	pv := decode[engine.PlayerView](t, rec)
	if len(pv.Hand) != 7 {
		t.Fatalf("player view hand = %d options, want 7", len(pv.Hand))
	}

	body := `{"player_id":"` + players[0] + `","action":"sell","building":"` + pv.Hand[0].Building + `"}`
	rec = do(t, h, http.MethodPost, "/api/games/"+gameID+"/play", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("play: status %d, body %s", rec.Code, rec.Body)
	}
	played := decode[engine.PlayerView](t, rec)
	if !played.Decided {
		t.Fatalf("play response not marked decided: %+v", played)
	}

	rec = do(t, h, http.MethodGet, "/api/games/"+gameID+"/scores", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("scores: status %d, body %s", rec.Code, rec.Body)
	}
	if entries := decode[[]engine.ScoreEntry](t, rec); len(entries) != 3 {
		t.Fatalf("scores = %d entries, want 3", len(entries))
	}
}

func TestErrorStatuses(t *testing.T) {
	h := newTestServer(t)
	gameID := createGame(t, h)
	joinGame(t, h, gameID, "Ada")
	joinGame(t, h, gameID, "Bo")

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown game", http.MethodGet, "/api/games/nope", "", http.StatusNotFound},
		{"join bad body", http.MethodPost, "/api/games/" + gameID + "/join", "{", http.StatusBadRequest},
		{"join without name", http.MethodPost, "/api/games/" + gameID + "/join", "{}", http.StatusBadRequest},
		{"start short-handed", http.MethodPost, "/api/games/" + gameID + "/start", "", http.StatusConflict},
		{"play before start", http.MethodPost, "/api/games/" + gameID + "/play",
			`{"player_id":"x","action":"sell","building":"Baths"}`, http.StatusConflict},
		{"player view without player", http.MethodGet, "/api/games/" + gameID + "/player", "", http.StatusBadRequest},
		{"player view unknown player", http.MethodGet, "/api/games/" + gameID + "/player?player=ghost", "",
			http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestJoinAfterStartConflicts(t *testing.T) {
	h := newTestServer(t)
	gameID := createGame(t, h)
	for _, name := range []string{"Ada", "Bo", "Cy"} {
		joinGame(t, h, gameID, name)
	}
	if rec := do(t, h, http.MethodPost, "/api/games/"+gameID+"/start", ""); rec.Code != http.StatusOK {
		t.Fatalf("start: status %d", rec.Code)
	}

	rec := do(t, h, http.MethodPost, "/api/games/"+gameID+"/join", `{"name":"Di"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("join after start: status %d, want 409", rec.Code)
	}
}
