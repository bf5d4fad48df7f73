package ratelim

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
)

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000" + string(rune('0'+i))
		rec := httptest.NewRecorder()
		h(rec, req, nil)
		codes = append(codes, rec.Code)
		last = rec
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
	if ct := last.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("limited response Content-Type = %q", ct)
	}
	if !strings.Contains(last.Body.String(), `"error":"Too many requests"`) {
		t.Fatalf("limited response body = %q", last.Body.String())
	}

	other := httptest.NewRequest(http.MethodPost, "/login", nil)
	other.RemoteAddr = "10.0.0.2:6000"
	rec := httptest.NewRecorder()
	h(rec, other, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("a different IP has its own bucket, got %d", rec.Code)
	}
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = now.Add(2 * idleTTL)
	rl.Allow("10.0.0.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["10.0.0.1"]; ok {
		t.Fatal("idle visitor was not swept")
	}
	if _, ok := rl.visitors["10.0.0.2"]; !ok {
		t.Fatal("active visitor missing")
	}
}
