package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/careline/medichat/internal/model/chat"
	"github.com/careline/medichat/internal/service/dialog"
	"github.com/careline/medichat/internal/service/session"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, _ []chatmodel.Message, _ string) (string, error) {
	return g.reply, g.err
}

func setupRouter(gen dialog.Generator) *chi.Mux {
	engine := dialog.NewEngine(session.NewMemoryStore(), gen, nil)
	handler := New(engine)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestChatGreeting(t *testing.T) {
	r := setupRouter(nil)

	resp := postJSON(t, r, "/chat", map[string]any{"message": "hello"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["response"] != "Hello! How can I assist you with your medical concern today?" {
		t.Fatalf("unexpected reply: %q", body["response"])
	}
}

func TestChatEmptyMessage(t *testing.T) {
	r := setupRouter(nil)

	resp := postJSON(t, r, "/chat", map[string]any{"message": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["error"] != "message cannot be empty" {
		t.Fatalf("unexpected error text: %q", body["error"])
	}
}

func TestChatInvalidBody(t *testing.T) {
	r := setupRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatGenerationFailureSurfacesError(t *testing.T) {
	r := setupRouter(&stubGenerator{err: errors.New("model overloaded")})

	resp := postJSON(t, r, "/chat", map[string]any{"message": "tell me about flu"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["error"] != "model overloaded" {
		t.Fatalf("expected raw collaborator error, got %q", body["error"])
	}
}

func TestResetAlwaysSucceeds(t *testing.T) {
	r := setupRouter(nil)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, r, "/reset", map[string]any{"session_id": "s1"})
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["response"] != "Session reset successfully." {
			t.Fatalf("unexpected reset reply: %q", body["response"])
		}
	}
}
