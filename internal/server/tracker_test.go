package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lol-tracker/internal/config"
	"lol-tracker/internal/database"
	"lol-tracker/internal/db"
	"lol-tracker/internal/repository"
	"lol-tracker/internal/riot"
	"lol-tracker/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

var testDBCounter int

// newTestServer stands up the whole stack: in-memory database, real
// repositories and services, a riot client pointed at the given fake
// upstream, and the mux-routed HTTP surface.
func newTestServer(t *testing.T, upstream http.Handler, tweaks ...func(*config.Config)) *httptest.Server {
	t.Helper()

	upstreamSrv := httptest.NewServer(upstream)
	t.Cleanup(upstreamSrv.Close)

	testDBCounter++
	cfg := &config.Config{
		RiotAPIKey:      "test-key",
		RiotPlatformURL: upstreamSrv.URL,
		RiotRegionalURL: upstreamSrv.URL,
		DBPath:          fmt.Sprintf("file:srvtest%d?mode=memory&cache=shared", testDBCounter),
	}
	for _, tweak := range tweaks {
		tweak(cfg)
	}

	sqlDB, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	userRepo := repository.NewUserRepository(sqlDB, queries, zerolog.Nop())
	matchRepo := repository.NewMatchRepository(sqlDB, queries, zerolog.Nop())
	client := riot.NewClient(cfg)

	tracker := NewTrackerServer(
		service.NewUserService(userRepo, zerolog.Nop()),
		service.NewMatchHistoryService(client, userRepo, matchRepo, zerolog.Nop()),
		zerolog.Nop(),
	)

	router := mux.NewRouter()
	tracker.Routes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func fakeUpstream(matches map[int64][]string) http.Handler {
	h := http.NewServeMux()
	h.HandleFunc("/lol/summoner/v4/summoners/by-name/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "summoner-1", "puuid": "puuid-1"}`)
	})
	h.HandleFunc("/lol/match/v5/matches/by-puuid/", func(w http.ResponseWriter, r *http.Request) {
		ids := make([]string, 0, len(matches))
		for gameID := range matches {
			ids = append(ids, fmt.Sprintf("NA1_%d", gameID))
		}
		json.NewEncoder(w).Encode(ids)
	})
	h.HandleFunc("/lol/match/v5/matches/", func(w http.ResponseWriter, r *http.Request) {
		for gameID, names := range matches {
			if r.URL.Path != fmt.Sprintf("/lol/match/v5/matches/NA1_%d", gameID) {
				continue
			}
			participants := make([]map[string]any, 0, len(names))
			for _, name := range names {
				participants = append(participants, map[string]any{"summonerName": name, "kills": 4})
			}
			json.NewEncoder(w).Encode(map[string]any{
				"metadata": map[string]any{"matchId": fmt.Sprintf("NA1_%d", gameID), "participants": []string{}},
				"info": map[string]any{
					"gameId":       gameID,
					"gameCreation": 1700000000000 + gameID,
					"gameDuration": 1800,
					"gameMode":     "CLASSIC",
					"participants": participants,
				},
			})
			return
		}
		http.NotFound(w, r)
	})
	return h
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func createUser(t *testing.T, base, email string) int64 {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, base+"/user", map[string]string{
		"email": email, "password": "secret", "first_name": "Test",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /user = %d, want 201 (body %v)", resp.StatusCode, body)
	}
	id, ok := body["user_id"].(float64)
	if !ok {
		t.Fatalf("response missing user_id: %v", body)
	}
	return int64(id)
}

func TestCreateUser(t *testing.T) {
	srv := newTestServer(t, fakeUpstream(nil))

	id := createUser(t, srv.URL, "a@b.com")
	if id == 0 {
		t.Fatal("expected a non-zero user id")
	}

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/user", map[string]string{
		"email": "a@b.com", "password": "other", "first_name": "Other",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("duplicate email: status = %d, want 400", resp.StatusCode)
	}
}

func TestLolUsernameRoutes(t *testing.T) {
	srv := newTestServer(t, fakeUpstream(nil))
	id := createUser(t, srv.URL, "a@b.com")

	resp, _ := doJSON(t, http.MethodPost, fmt.Sprintf("%s/user/%d/lol-username", srv.URL, id),
		map[string]string{"lol_username": "Foo"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("POST lol-username: status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPut, fmt.Sprintf("%s/user/%d/lol-username", srv.URL, id),
		map[string]string{"lol_username": "NewFoo"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("PUT lol-username: status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, fmt.Sprintf("%s/user/%d/lol-username", srv.URL, id),
		map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing field: status = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/user/9999/lol-username",
		map[string]string{"lol_username": "Foo"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown user: status = %d, want 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/user/9999/lol-username",
		map[string]string{})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown user, missing field: status = %d, want 404", resp.StatusCode)
	}
}

func TestMatchHistoryEndToEnd(t *testing.T) {
	srv := newTestServer(t, fakeUpstream(map[int64][]string{
		1000: {"Foo", "Bar"},
		2000: {"Foo", "Baz"},
	}))

	id := createUser(t, srv.URL, "a@b.com")
	resp, _ := doJSON(t, http.MethodPost, fmt.Sprintf("%s/user/%d/lol-username", srv.URL, id),
		map[string]string{"lol_username": "Foo"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("link summoner: status = %d", resp.StatusCode)
	}

	histResp, err := http.Get(fmt.Sprintf("%s/user/%d/match-history", srv.URL, id))
	if err != nil {
		t.Fatalf("GET match-history: %v", err)
	}
	defer histResp.Body.Close()
	if histResp.StatusCode != http.StatusOK {
		t.Fatalf("GET match-history: status = %d, want 200", histResp.StatusCode)
	}

	var history []struct {
		ID           int64  `json:"id"`
		GameCreation int64  `json:"gameCreation"`
		GameDuration int64  `json:"gameDuration"`
		GameMode     string `json:"gameMode"`
		Players      []map[string]any
	}
	if err := json.NewDecoder(histResp.Body).Decode(&history); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d matches, want 2", len(history))
	}
	if history[0].ID != 2000 || history[1].ID != 1000 {
		t.Errorf("expected most-recent-first, got %d then %d", history[0].ID, history[1].ID)
	}
	for _, m := range history {
		if m.GameMode != "CLASSIC" || m.GameDuration != 1800 {
			t.Errorf("match header fields missing: %+v", m)
		}
		if len(m.Players) != 2 {
			t.Fatalf("match %d: got %d players, want 2", m.ID, len(m.Players))
		}
		for _, p := range m.Players {
			if _, ok := p["summonerName"]; !ok || len(p) != 1 {
				t.Errorf("player entry should carry summonerName only, got %v", p)
			}
		}
	}
}

func TestMatchHistoryUpstreamFailure(t *testing.T) {
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	srv := newTestServer(t, failing)

	id := createUser(t, srv.URL, "a@b.com")
	doJSON(t, http.MethodPost, fmt.Sprintf("%s/user/%d/lol-username", srv.URL, id),
		map[string]string{"lol_username": "Foo"})

	resp, err := http.Get(fmt.Sprintf("%s/user/%d/match-history", srv.URL, id))
	if err != nil {
		t.Fatalf("GET match-history: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestMatchHistoryUpstreamTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		fmt.Fprint(w, `{"id": "summoner-1", "puuid": "puuid-1"}`)
	})
	srv := newTestServer(t, slow, func(cfg *config.Config) {
		cfg.RiotTimeout = 100 * time.Millisecond
	})

	id := createUser(t, srv.URL, "a@b.com")
	doJSON(t, http.MethodPost, fmt.Sprintf("%s/user/%d/lol-username", srv.URL, id),
		map[string]string{"lol_username": "Foo"})

	resp, err := http.Get(fmt.Sprintf("%s/user/%d/match-history", srv.URL, id))
	if err != nil {
		t.Fatalf("GET match-history: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", resp.StatusCode)
	}
}

func TestMatchHistoryWithoutSummoner(t *testing.T) {
	srv := newTestServer(t, fakeUpstream(nil))
	id := createUser(t, srv.URL, "a@b.com")

	resp, err := http.Get(fmt.Sprintf("%s/user/%d/match-history", srv.URL, id))
	if err != nil {
		t.Fatalf("GET match-history: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteUser(t *testing.T) {
	srv := newTestServer(t, fakeUpstream(nil))
	id := createUser(t, srv.URL, "a@b.com")

	resp, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/user/%d", srv.URL, id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("DELETE user: status = %d, want 200", resp.StatusCode)
	}

	histResp, err := http.Get(fmt.Sprintf("%s/user/%d/match-history", srv.URL, id))
	if err != nil {
		t.Fatalf("GET match-history: %v", err)
	}
	defer histResp.Body.Close()
	if histResp.StatusCode != http.StatusNotFound {
		t.Errorf("history after delete: status = %d, want 404", histResp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/user/%d", srv.URL, id), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", resp.StatusCode)
	}
}

func TestUnknownUserRoutes(t *testing.T) {
	srv := newTestServer(t, fakeUpstream(nil))

	resp, err := http.Get(srv.URL + "/user/9999/match-history")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("match-history: status = %d, want 404", resp.StatusCode)
	}

	// non-numeric id never reaches a handler
	resp2, err := http.Get(srv.URL + "/user/abc/match-history")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("non-numeric id: status = %d, want 404", resp2.StatusCode)
	}
}
