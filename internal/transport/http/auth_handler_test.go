package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizboard-service/internal/auth"
	"quizboard-service/internal/infra/memory"
)

func TestRegisterAndLogin(t *testing.T) {
	handler := NewAuthHandler(auth.NewService(memory.NewUserStore()))

	rec := postJSON(t, handler.Register, map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "Sup3r$ecret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, handler.Login, map[string]string{
		"email":    "alice@example.com",
		"password": "Sup3r$ecret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var user userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected alice, got %q", user.Username)
	}

	rec = postJSON(t, handler.Login, map[string]string{
		"email":    "alice@example.com",
		"password": "WrongPass1$",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", rec.Code)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	handler := NewAuthHandler(auth.NewService(memory.NewUserStore()))

	first := postJSON(t, handler.Register, map[string]string{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "Sup3r$ecret",
	})
	if first.Code != http.StatusCreated {
		t.Fatalf("register status = %d", first.Code)
	}

	second := postJSON(t, handler.Register, map[string]string{
		"username": "bob",
		"email":    "other@example.com",
		"password": "Sup3r$ecret",
	})
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", second.Code)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	handler := NewAuthHandler(auth.NewService(memory.NewUserStore()))

	rec := postJSON(t, handler.Register, map[string]string{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "short",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", rec.Code)
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}
