package login_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	adminstore "github.com/dalemusser/scholarhub/internal/app/store/admins"
	"github.com/dalemusser/scholarhub/internal/app/features/login"
	"github.com/dalemusser/scholarhub/internal/app/system/auth"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/testutil"
)

func newHandler(admins *adminstore.Store) *login.Handler {
	logger := zap.NewNop()
	tokens := auth.NewTokenManager("test-secret-0123456789", 0)
	return login.NewHandler(admins, tokens, respond.NewErrorLogger(logger), logger)
}

func postLogin(t *testing.T, h *login.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body.Message
}

func TestHandleLogin_MissingFields(t *testing.T) {
	h := newHandler(nil) // rejected before any store access

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing password", `{"email":"admin@example.com"}`},
		{"missing email", `{"password":"secret"}`},
		{"blank email", `{"email":"   ","password":"secret"}`},
		{"malformed json", `{"email":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := messageOf(t, rec); got != "Email and password are required" {
				t.Errorf("message = %q", got)
			}
		})
	}
}

func TestHandleLogin_Flow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	admin := testutil.CreateAdmin(t, db, "admin@example.com", "s3cret-pass")
	h := newHandler(adminstore.New(db))

	t.Run("unknown email", func(t *testing.T) {
		rec := postLogin(t, h, `{"email":"nobody@example.com","password":"s3cret-pass"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := messageOf(t, rec); got != "Invalid email or password" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postLogin(t, h, `{"email":"admin@example.com","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if got := messageOf(t, rec); got != "Invalid email or password" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		rec := postLogin(t, h, `{"email":"Admin@Example.COM","password":"s3cret-pass"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		var body struct {
			Message string `json:"message"`
			Token   string `json:"token"`
			Admin   struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"admin"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Message != "Login successful" {
			t.Errorf("message = %q", body.Message)
		}
		if body.Token == "" {
			t.Error("token missing from response")
		}
		if body.Admin.ID != admin.ID.Hex() || body.Admin.Email != "admin@example.com" {
			t.Errorf("admin = %+v", body.Admin)
		}
	})
}

func TestHandleLogout(t *testing.T) {
	h := newHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := messageOf(t, rec); got != "Logout successful" {
		t.Errorf("message = %q", got)
	}
}
