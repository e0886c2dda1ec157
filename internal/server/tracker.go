package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"lol-tracker/internal/domain"
	"lol-tracker/internal/riot"
	"lol-tracker/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type TrackerServer struct {
	userSvc    *service.UserService
	historySvc *service.MatchHistoryService
	logger     zerolog.Logger
}

func NewTrackerServer(userSvc *service.UserService, historySvc *service.MatchHistoryService, logger zerolog.Logger) *TrackerServer {
	return &TrackerServer{userSvc: userSvc, historySvc: historySvc, logger: logger}
}

func (s *TrackerServer) Routes(r *mux.Router) {
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/user", s.handleCreateUser).Methods(http.MethodPost)
	r.HandleFunc("/user/{id:[0-9]+}", s.handleDeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/user/{id:[0-9]+}/lol-username", s.handleAddLolUsername).Methods(http.MethodPost)
	r.HandleFunc("/user/{id:[0-9]+}/lol-username", s.handleUpdateLolUsername).Methods(http.MethodPut)
	r.HandleFunc("/user/{id:[0-9]+}/match-history", s.handleMatchHistory).Methods(http.MethodGet)
}

type createUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
}

type lolUsernameRequest struct {
	LolUsername string `json:"lol_username"`
}

type playerEntry struct {
	SummonerName string `json:"summonerName"`
}

type matchEntry struct {
	ID           int64         `json:"id"`
	GameCreation int64         `json:"gameCreation"`
	GameDuration int64         `json:"gameDuration"`
	GameMode     string        `json:"gameMode"`
	Players      []playerEntry `json:"players"`
}

func (s *TrackerServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *TrackerServer) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.userSvc.Register(r.Context(), req.Email, req.Password, req.FirstName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully!",
		"user_id": user.ID,
	})
}

func (s *TrackerServer) handleAddLolUsername(w http.ResponseWriter, r *http.Request) {
	s.setLolUsername(w, r, "LoL username added successfully")
}

func (s *TrackerServer) handleUpdateLolUsername(w http.ResponseWriter, r *http.Request) {
	s.setLolUsername(w, r, "LoL username updated successfully")
}

func (s *TrackerServer) setLolUsername(w http.ResponseWriter, r *http.Request, message string) {
	userID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req lolUsernameRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.userSvc.LinkSummoner(r.Context(), userID, req.LolUsername); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (s *TrackerServer) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.userSvc.Delete(r.Context(), userID); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (s *TrackerServer) handleMatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	history, err := s.historySvc.GetHistory(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]matchEntry, 0, len(history))
	for _, m := range history {
		players := make([]playerEntry, 0, len(m.Players))
		for _, name := range m.Players {
			players = append(players, playerEntry{SummonerName: name})
		}
		resp = append(resp, matchEntry{
			ID:           m.MatchID,
			GameCreation: m.GameCreation,
			GameDuration: m.GameDuration,
			GameMode:     m.GameMode,
			Players:      players,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var upstreamErr *riot.UpstreamError

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoSummoner):
		status = http.StatusBadRequest
	case errors.As(err, &upstreamErr),
		errors.Is(err, riot.ErrMalformedResponse):
		status = http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, fasthttp.ErrTimeout):
		status = http.StatusGatewayTimeout
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	} else {
		s.logger.Debug().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request rejected")
	}

	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
