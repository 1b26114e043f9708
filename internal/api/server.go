package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ironplane/ironplane/pkg/boardstore"
	"github.com/ironplane/ironplane/pkg/modelcache"
	"github.com/ironplane/ironplane/pkg/observability"
)

// Server holds the dependencies every handler needs.
type Server struct {
	Store  boardstore.Store
	Cache  modelcache.Cache
	Logger *log.Logger
}

// New returns a Server over store and cache, logging through logger (or
// log.Default() if nil).
func New(store boardstore.Store, cache modelcache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Store: store, Cache: cache, Logger: logger}
}

// Router builds the chi.Mux serving the board API.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/boards", func(r chi.Router) {
		r.Post("/", s.createBoard)
		r.Get("/", s.listBoards)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getBoard)
			r.Delete("/", s.deleteBoard)
			r.Get("/iges", s.getBoardIGES)
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		duration := time.Since(start)

		observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, ww.Status(), duration)
		s.Logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", duration)
	})
}
