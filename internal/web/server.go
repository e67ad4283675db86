package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nullstride/cube3/internal/search"
)

// Server exposes the cube solver over HTTP.
type Server struct {
	router *mux.Router
	table  *search.PruneTable
}

// NewServer builds a Server that solves requests with table.
func NewServer(table *search.PruneTable) *Server {
	s := &Server{
		router: mux.NewRouter(),
		table:  table,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
