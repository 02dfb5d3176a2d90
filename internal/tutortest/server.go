// Package tutortest provides an in-process tutor server for tests.
//
// It speaks the same wire contract as the real inference backend: GET /
// reports liveness, POST /chat takes {"question": ...} and answers with
// {"response": ...} or {"error": ...}.
package tutortest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
)

// TB is the part of testing.TB the server needs. Ginkgo's GinkgoT()
// satisfies it as well.
type TB interface {
	Helper()
	Cleanup(func())
}

// Responder produces the status code and JSON body for one question.
type Responder func(question string) (status int, body any)

// Answer replies 200 with text as the response field.
func Answer(text string) Responder {
	return func(string) (int, any) {
		return http.StatusOK, map[string]string{"response": text}
	}
}

// Fail replies with status and detail as the error field.
func Fail(status int, detail string) Responder {
	return func(string) (int, any) {
		return status, map[string]string{"error": detail}
	}
}

// Server is a running fake backend.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	respond   Responder
	health    int
	probes    int
	questions []string
}

// New starts a server answering every question with respond and registers
// its shutdown with t.Cleanup. A nil respond answers "4".
func New(t TB, respond Responder) *Server {
	t.Helper()
	if respond == nil {
		respond = Answer("4")
	}
	s := &Server{respond: respond, health: http.StatusOK}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	return r
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.probes++
	status := s.health
	s.mu.Unlock()

	writeJSON(w, status, map[string]string{"status": "AI Tutor Backend is running"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid JSON or Content-Type not set to application/json",
		})
		return
	}
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Question is required."})
		return
	}

	s.mu.Lock()
	s.questions = append(s.questions, req.Question)
	respond := s.respond
	s.mu.Unlock()

	status, body := respond(req.Question)
	writeJSON(w, status, body)
}

// SetHealth changes the status code returned by GET /.
func (s *Server) SetHealth(status int) {
	s.mu.Lock()
	s.health = status
	s.mu.Unlock()
}

// Probes returns the number of GET / requests served.
func (s *Server) Probes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probes
}

// Questions returns the questions received so far, in order.
func (s *Server) Questions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.questions...)
}

// DeadURL returns the address of a server that has already shut down, so
// connections to it are refused.
func DeadURL(t TB) string {
	t.Helper()
	dead := httptest.NewServer(http.NotFoundHandler())
	addr := dead.URL
	dead.Close()
	return addr
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
