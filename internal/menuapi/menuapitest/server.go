// Package menuapitest is an in-memory stand-in for the menu API. It serves the
// same routes and response shapes, records every request, and can be told to
// fail the next call. Tests use it through httptest; cmd/menustub serves it locally.
package menuapitest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"menuview/internal/menu"
)

// Request is one recorded call.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
}

type failure struct {
	status int
	body   string
}

// Server holds the menu in insertion order.
type Server struct {
	mu       sync.Mutex
	token    string
	items    []menu.Item
	requests []Request
	failNext *failure
	router   *mux.Router
}

// NewServer creates a server that accepts bearer token, or any non-empty
// bearer token when token is "".
func NewServer(token string) *Server {
	s := &Server{token: token}
	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/menus", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/menu", s.requireAuth(s.handleCreate)).Methods(http.MethodPost)
	r.HandleFunc("/menu/{id}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/menu/{id}", s.requireAuth(s.handleUpdate)).Methods(http.MethodPut)
	r.HandleFunc("/menu/{id}", s.requireAuth(s.handleDelete)).Methods(http.MethodDelete)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Route not found"})
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Seed appends items. Items without an id get a uuid.
func (s *Server) Seed(items ...menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if it.ID == "" {
			it.ID = menu.ID(uuid.NewString())
		}
		s.items = append(s.items, it)
	}
}

// Items returns a copy of the current menu.
func (s *Server) Items() []menu.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]menu.Item(nil), s.items...)
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// FailNext makes the next request answer with status and a raw body.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = &failure{status: status, body: body}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		f := s.failNext
		s.failNext = nil
		s.mu.Unlock()

		if f != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || tok == "" || (s.token != "" && tok != s.token) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		h(w, r)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "perPage", 10)

	s.mu.Lock()
	total := len(s.items)
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := append([]menu.Item{}, s.items[start:end]...)
	s.mu.Unlock()

	var prev, next *int
	if page > 1 {
		p := page - 1
		prev = &p
	}
	if end < total {
		n := page + 1
		next = &n
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Success",
		"data": map[string]interface{}{
			"Data":         items,
			"currentPage":  page,
			"perPage":      perPage,
			"total":        total,
			"previousPage": prev,
			"nextPage":     next,
		},
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := menu.ID(mux.Vars(r)["id"])
	s.mu.Lock()
	idx := s.indexOf(id)
	var it menu.Item
	if idx >= 0 {
		it = s.items[idx]
	}
	s.mu.Unlock()
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Menu not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Success", "data": it})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}
	it := menu.Item{ID: menu.ID(uuid.NewString()), Name: p.Name, Description: p.Description, ImageURL: p.ImageURL, Price: p.Price}
	s.mu.Lock()
	s.items = append(s.items, it)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Menu created", "data": it})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := menu.ID(mux.Vars(r)["id"])
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	idx := s.indexOf(id)
	var it menu.Item
	if idx >= 0 {
		it = menu.Item{ID: id, Name: p.Name, Description: p.Description, ImageURL: p.ImageURL, Price: p.Price}
		s.items[idx] = it
	}
	s.mu.Unlock()
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Menu not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Menu updated", "data": it})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := menu.ID(mux.Vars(r)["id"])
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	s.mu.Unlock()
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Menu not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu deleted"})
}

// indexOf must be called with mu held.
func (s *Server) indexOf(id menu.ID) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func decodePayload(w http.ResponseWriter, r *http.Request) (menu.Payload, bool) {
	var p menu.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return p, false
	}
	if strings.TrimSpace(p.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "name is required"})
		return p, false
	}
	if !menu.IsValidPrice(p.Price) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "price must be greater than 0"})
		return p, false
	}
	return p, true
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
