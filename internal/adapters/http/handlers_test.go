package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clarahjk00/Final-Proejct-G2/internal/infrastructure/storage"
	"github.com/clarahjk00/Final-Proejct-G2/internal/solver"
	"github.com/clarahjk00/Final-Proejct-G2/internal/usecase"
	"github.com/clarahjk00/Final-Proejct-G2/internal/validator"
)

var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(),
		validator.New(),
		nil,
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/solve", solveReq{Board: sample})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Solved {
		t.Fatalf("not solved: %s", rec.Body.String())
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.Board[r][c] == 0 {
				t.Fatalf("unsolved cell at (%d,%d)", r, c)
			}
		}
	}
	if resp.Board[0][0] != 5 {
		t.Fatal("given cell changed in solution")
	}
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	grid := sample
	grid[0][2] = 5 // duplicate in row 0
	rec := postJSON(t, newTestMux(t), "/api/solve", solveReq{Board: grid})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unsolvable is a clean result)", rec.Code)
	}
	var resp solveResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Solved || resp.Error == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSolveEndpointMethodGuard(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestSolveEndpointRejectsBadValues(t *testing.T) {
	grid := sample
	grid[0][2] = 12
	rec := postJSON(t, newTestMux(t), "/api/solve", solveReq{Board: grid})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/validate", validateReq{Board: sample})
	var resp validateResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK {
		t.Fatalf("clean board flagged: %+v", resp)
	}

	grid := sample
	grid[0][2] = 5
	rec = postJSON(t, mux, "/api/validate", validateReq{Board: grid})
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || len(resp.Conflicts) == 0 {
		t.Fatalf("duplicate not reported: %+v", resp)
	}
}

func TestSaveLoadListEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/api/save", map[string]any{
		"id":    "web-1",
		"name":  "from the browser",
		"board": map[string]any{"board": sample},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, mux, "/api/load", loadReq{ID: "web-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("load status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var lr loadResp
	if err := json.Unmarshal(rec.Body.Bytes(), &lr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lr.Puzzle == nil || lr.Puzzle.Board.Values != sample {
		t.Fatalf("loaded puzzle mismatch: %+v", lr.Puzzle)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	listRec := httptest.NewRecorder()
	mux.ServeHTTP(listRec, req)
	var list listResp
	if err := json.Unmarshal(listRec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Puzzles) != 1 || list.Puzzles[0].ID != "web-1" {
		t.Fatalf("unexpected listing: %+v", list.Puzzles)
	}
}

func TestLoadEndpointMissing(t *testing.T) {
	rec := postJSON(t, newTestMux(t), "/api/load", loadReq{ID: "ghost"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
