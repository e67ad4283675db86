package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nullstride/cube3/internal/search"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(search.Generate())
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandleSolve(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(SolveRequest{Scramble: "R U R' U'"})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp SolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Solution == "" && resp.Moves != 0 {
		t.Fatalf("empty solution but non-zero move count %d", resp.Moves)
	}
}

func TestHandleSolveInvalidScramble(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(SolveRequest{Scramble: "Q9"})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
