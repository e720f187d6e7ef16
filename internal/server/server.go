package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	"github.com/celebi-bot/celebi/internal/entities"
	"github.com/celebi-bot/celebi/internal/repositories/characters"
)

// Server exposes the bot's view of the forum over HTTP for health checks and
// forum-side scripts. It never scrapes on behalf of a caller: characters are
// served from the cache only.
type Server struct {
	client astonish.Client
	cache  characters.Cache
	router chi.Router
}

type Config struct {
	Client astonish.Client
	Cache  characters.Cache
}

// New creates a new status server
func New(cfg *Config) *Server {
	s := &Server{
		client: cfg.Client,
		cache:  cfg.Cache,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		// forum skins fetch character data from the browser
		AllowedOrigins: []string{s.client.ForumURL()},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	s.router.Get("/session", s.handleGetSession)
	s.router.Get("/characters/{memberID}", s.handleGetCharacter)
}

type sessionResponse struct {
	Forum string `json:"forum"`
	State string `json:"state"`
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionResponse{
		Forum: s.client.ForumURL(),
		State: s.client.SessionState().String(),
	})
}

// characterView is the public part of a character. Moderator-only fields
// and the Discord link stay private.
type characterView struct {
	ID               int                       `json:"id"`
	Username         string                    `json:"username"`
	Group            string                    `json:"group"`
	PersonalComputer entities.PersonalComputer `json:"personal_computer"`
}

func (s *Server) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberID"))
	if err != nil || memberID <= 0 {
		respondError(w, http.StatusBadRequest, "member id must be a positive integer")
		return
	}

	char, ok := s.cache.Get(r.Context(), memberID)
	if !ok {
		respondError(w, http.StatusNotFound, "character not cached")
		return
	}
	if char.Restricted() {
		respondError(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
		return
	}

	pc := char.PersonalComputer
	if pc == nil {
		pc = entities.PersonalComputer{}
	}
	respondJSON(w, http.StatusOK, characterView{
		ID:               char.ID,
		Username:         char.Username,
		Group:            char.Group,
		PersonalComputer: pc,
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
