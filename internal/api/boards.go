package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ironplane/ironplane/pkg/boardbuild"
	"github.com/ironplane/ironplane/pkg/boardspec"
	"github.com/ironplane/ironplane/pkg/boardstore"
	"github.com/ironplane/ironplane/pkg/modelcache"
)

// createBoardRequest is the POST /boards body: a board name plus the
// boardspec document describing its outline.
type createBoardRequest struct {
	Name string          `json:"name"`
	Spec json.RawMessage `json:"spec"`
}

// createBoard validates req.Spec by parsing it, then stores the raw spec
// bytes under a new board record. The IGES export is built lazily on the
// first GET .../iges request.
func (s *Server) createBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := boardspec.ReadBoardSpec(bytes.NewReader(req.Spec)); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid board spec: "+err.Error())
		return
	}

	rec := &boardstore.Record{Name: req.Name, Spec: req.Spec}
	if err := s.Store.Create(r.Context(), rec); err != nil {
		s.Logger.Error("create board", "err", err)
		writeError(w, http.StatusInternalServerError, "could not store board")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) listBoards(w http.ResponseWriter, r *http.Request) {
	records, err := s.Store.List(r.Context())
	if err != nil {
		s.Logger.Error("list boards", "err", err)
		writeError(w, http.StatusInternalServerError, "could not list boards")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, boardstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "board not found")
		return
	}
	if err != nil {
		s.Logger.Error("get board", "err", err)
		writeError(w, http.StatusInternalServerError, "could not fetch board")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.Logger.Error("delete board", "err", err)
		writeError(w, http.StatusInternalServerError, "could not delete board")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getBoardIGES builds (and caches, keyed by the spec's content hash) the
// board's IGES export on first request, then serves it with the
// model/iges content type.
func (s *Server) getBoardIGES(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, boardstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "board not found")
		return
	}
	if err != nil {
		s.Logger.Error("get board", "err", err)
		writeError(w, http.StatusInternalServerError, "could not fetch board")
		return
	}

	keyer := modelcache.NewKeyer("")
	sourceHash := modelcache.Hash(rec.Spec)

	if cached, hit, err := s.Cache.Get(r.Context(), keyer.IGESKey(sourceHash)); err == nil && hit {
		w.Header().Set("Content-Type", "model/iges")
		w.Write(cached)
		return
	}

	spec, err := boardspec.ReadBoardSpec(bytes.NewReader(rec.Spec))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid board spec: "+err.Error())
		return
	}

	rendered, err := boardbuild.Build(r.Context(), spec, boardbuild.Options{FileName: rec.Name + ".igs"})
	if err != nil {
		s.Logger.Error("build board", "err", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec.IGES = rendered
	if err := s.Store.Update(r.Context(), rec); err != nil {
		s.Logger.Error("persist build", "err", err)
	}
	_ = s.Cache.Set(r.Context(), keyer.IGESKey(sourceHash), rendered, 0)

	w.Header().Set("Content-Type", "model/iges")
	w.Write(rendered)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
