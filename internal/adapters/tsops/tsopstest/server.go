// Package tsopstest serves canned TSOps payloads for tests.
package tsopstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

type Agent struct {
	Username                   string   `json:"username,omitempty"`
	State                      string   `json:"state,omitempty"`
	Skills                     []string `json:"skills,omitempty"`
	AdjustedLastContactEndTime string   `json:"adjustedLastContactEndTime"`
}

type Case struct {
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp"`
	Category  int    `json:"category"`
	Origin    string `json:"origin"`
	Language  string `json:"language"`
}

type Fixture struct {
	Agents []Agent
	Cases  []Case
	// Token, when set, is required as a bearer token on every request.
	Token string
}

// Server is a fake TSOps backend backed by a Fixture.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	fixture  Fixture
	requests []*http.Request
}

func NewServer(fixture Fixture) *Server {
	s := &Server{fixture: fixture}

	r := chi.NewRouter()
	r.Use(s.record, s.authenticate)
	r.Get("/api/agents/simple", s.listAgents)
	r.Get("/api/agents/{username}", s.getAgent)
	r.Get("/api/cases/current", s.listCases)

	s.Server = httptest.NewServer(r)
	return s
}

// Requests returns the requests served so far.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*http.Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.fixture.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.fixture.Token {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listAgents(w http.ResponseWriter, _ *http.Request) {
	agents := s.fixture.Agents
	if agents == nil {
		agents = []Agent{}
	}
	writeJSON(w, agents)
}

func (s *Server) getAgent(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	for _, agent := range s.fixture.Agents {
		if strings.EqualFold(agent.Username, username) {
			writeJSON(w, agent)
			return
		}
	}

	http.Error(w, `{"error":"agent not found"}`, http.StatusNotFound)
}

func (s *Server) listCases(w http.ResponseWriter, _ *http.Request) {
	cases := s.fixture.Cases
	if cases == nil {
		cases = []Case{}
	}
	writeJSON(w, cases)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
