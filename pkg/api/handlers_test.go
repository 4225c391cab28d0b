package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comespath/pkg/bench"
	"comespath/pkg/csr"
	"comespath/pkg/sssp"
)

func newDiamondHandlers(t *testing.T) *Handlers {
	t.Helper()
	g, err := bench.Diamond()
	if err != nil {
		t.Fatal(err)
	}
	s := sssp.New()
	s.SetGraph(g)
	return NewHandlers(s, g)
}

// newDisconnectedHandlers builds a 4-node graph with two components
// ({0,1} and {2,3}) — spec.md scenario 2 — so node 2 is unreachable from
// source 0.
func newDisconnectedHandlers(t *testing.T) *Handlers {
	t.Helper()
	g, err := csr.New(4,
		[]uint32{0, 1, 1, 2, 2},
		[]uint32{1, 3},
		[]float64{1, 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	s := sssp.New()
	s.SetGraph(g)
	return NewHandlers(s, g)
}

func TestHandleShortestPath_WithTarget(t *testing.T) {
	h := newDiamondHandlers(t)

	body := `{"source":0,"target":4}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}
	var resp ShortestPathResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Distance != 4.0 {
		t.Errorf("Distance = %v, want 4.0", resp.Distance)
	}
	if resp.Vector != nil {
		t.Errorf("Vector = %v, want nil", resp.Vector)
	}
}

func TestHandleShortestPath_WithoutTarget(t *testing.T) {
	h := newDiamondHandlers(t)

	body := `{"source":0}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}
	var resp ShortestPathResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Vector) != 5 {
		t.Fatalf("Vector length = %d, want 5", len(resp.Vector))
	}
	if resp.Vector[4] != 4.0 {
		t.Errorf("Vector[4] = %v, want 4.0", resp.Vector[4])
	}
}

func TestHandleShortestPath_InvalidJSON(t *testing.T) {
	h := newDiamondHandlers(t)

	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleShortestPath_MissingContentType(t *testing.T) {
	h := newDiamondHandlers(t)

	body := `{"source":0}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleShortestPath_InvalidSource(t *testing.T) {
	h := newDiamondHandlers(t)

	body := `{"source":99}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid_source" {
		t.Errorf("Error = %q, want invalid_source", resp.Error)
	}
}

func TestHandleShortestPath_InvalidTarget(t *testing.T) {
	h := newDiamondHandlers(t)

	body := `{"source":0,"target":99}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleShortestPath_NoGraphInstalled(t *testing.T) {
	h := NewHandlers(sssp.New(), nil)

	body := `{"source":0}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestHandleShortestPath_VectorWithUnreachableNodeEncodesAsNull(t *testing.T) {
	h := newDisconnectedHandlers(t)

	body := `{"source":0}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "Inf") {
		t.Fatalf("response body contains raw Inf, want JSON null: %s", w.Body.String())
	}
	var resp ShortestPathResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Vector) != 4 {
		t.Fatalf("Vector length = %d, want 4", len(resp.Vector))
	}
	if !math.IsInf(float64(resp.Vector[2]), 1) {
		t.Errorf("Vector[2] = %v, want +Inf", resp.Vector[2])
	}
	if !math.IsInf(float64(resp.Vector[3]), 1) {
		t.Errorf("Vector[3] = %v, want +Inf", resp.Vector[3])
	}
	if resp.Vector[1] != 1.0 {
		t.Errorf("Vector[1] = %v, want 1.0", resp.Vector[1])
	}
}

func TestHandleShortestPath_UnreachableTargetEncodesAsNull(t *testing.T) {
	h := newDisconnectedHandlers(t)

	body := `{"source":0,"target":2}`
	req := httptest.NewRequest("POST", "/v1/shortest-path", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleShortestPath(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "Inf") {
		t.Fatalf("response body contains raw Inf, want JSON null: %s", w.Body.String())
	}
	var resp ShortestPathResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !math.IsInf(float64(resp.Distance), 1) {
		t.Errorf("Distance = %v, want +Inf", resp.Distance)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newDiamondHandlers(t)

	req := httptest.NewRequest("GET", "/v1/health", nil)
	w := httptest.NewRecorder()

	h.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
	if resp.NumNodes != 5 {
		t.Errorf("NumNodes = %d, want 5", resp.NumNodes)
	}
}

func TestHandleHealth_NoGraphInstalled(t *testing.T) {
	h := NewHandlers(sssp.New(), nil)

	req := httptest.NewRequest("GET", "/v1/health", nil)
	w := httptest.NewRecorder()

	h.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
