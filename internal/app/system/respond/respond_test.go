package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"go.uber.org/zap"
)

func TestMessage_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Message(rec, http.StatusNotFound, "Sponsor not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Sponsor not found" {
		t.Errorf("message: got %q", body["message"])
	}
	if len(body) != 1 {
		t.Errorf("expected only a message field, got %v", body)
	}
}

func TestJSON_EncodesValue(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, http.StatusOK, map[string]int{"currentPage": 2})

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["currentPage"] != 2 {
		t.Errorf("currentPage: got %d", body["currentPage"])
	}
}

func TestServerError_Returns500WithUserMessage(t *testing.T) {
	errLog := respond.NewErrorLogger(zap.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/sponsors", nil)

	errLog.ServerError(rec, req, "find sponsors failed", errors.New("boom"), "Server error while fetching sponsors")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Server error while fetching sponsors" {
		t.Errorf("message: got %q", body["message"])
	}
}
