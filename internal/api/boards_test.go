package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ironplane/ironplane/internal/api"
	"github.com/ironplane/ironplane/pkg/boardstore"
	"github.com/ironplane/ironplane/pkg/modelcache"
)

const rectangleSpec = `{
  "outline": {"segments": [
    {"kind": "line", "start": {"x": 0, "y": 0}, "end": {"x": 10, "y": 0}},
    {"kind": "line", "start": {"x": 10, "y": 0}, "end": {"x": 10, "y": 10}},
    {"kind": "line", "start": {"x": 10, "y": 10}, "end": {"x": 0, "y": 10}},
    {"kind": "line", "start": {"x": 0, "y": 10}, "end": {"x": 0, "y": 0}}
  ]},
  "holes": [],
  "bottom_z": 0,
  "top_z": 1.6
}`

func testServer(t *testing.T) *api.Server {
	t.Helper()
	return api.New(boardstore.NewMemoryStore(), modelcache.NewNullCache(), nil)
}

func TestCreateAndGetBoard(t *testing.T) {
	s := testServer(t)
	router := s.Router()

	body, _ := json.Marshal(map[string]any{"name": "rev-a", "spec": json.RawMessage(rectangleSpec)})
	req := httptest.NewRequest(http.MethodPost, "/boards/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /boards = %d, body %s", rec.Code, rec.Body.String())
	}

	var created boardstore.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created board has no ID")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/boards/"+created.ID+"/", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	if getRec.Code != http.StatusOK {
		t.Fatalf("GET /boards/{id} = %d", getRec.Code)
	}
}

func TestCreateBoardRejectsInvalidSpec(t *testing.T) {
	s := testServer(t)
	router := s.Router()

	body, _ := json.Marshal(map[string]any{"name": "bad", "spec": json.RawMessage(`{"outline":{"segments":[]}}`)})
	req := httptest.NewRequest(http.MethodPost, "/boards/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("POST /boards with invalid spec = %d, want 422", rec.Code)
	}
}

func TestGetBoardIGESBuildsAndCaches(t *testing.T) {
	s := testServer(t)
	router := s.Router()

	body, _ := json.Marshal(map[string]any{"name": "rev-a", "spec": json.RawMessage(rectangleSpec)})
	req := httptest.NewRequest(http.MethodPost, "/boards/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var created boardstore.Record
	json.Unmarshal(rec.Body.Bytes(), &created)

	igesReq := httptest.NewRequest(http.MethodGet, "/boards/"+created.ID+"/iges", nil)
	igesRec := httptest.NewRecorder()
	router.ServeHTTP(igesRec, igesReq)

	if igesRec.Code != http.StatusOK {
		t.Fatalf("GET .../iges = %d, body %s", igesRec.Code, igesRec.Body.String())
	}
	if igesRec.Body.Len() == 0 {
		t.Fatalf("GET .../iges returned empty body")
	}
}

func TestGetBoardNotFound(t *testing.T) {
	s := testServer(t)
	router := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/boards/nonexistent/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /boards/nonexistent = %d, want 404", rec.Code)
	}
}
