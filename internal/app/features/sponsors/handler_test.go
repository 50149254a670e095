package sponsors_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/scholarhub/internal/app/features/sponsors"
	sponsorstore "github.com/dalemusser/scholarhub/internal/app/store/sponsors"
	"github.com/dalemusser/scholarhub/internal/app/system/indexes"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/testutil"
)

func newHandler(store *sponsorstore.Store) *sponsors.Handler {
	logger := zap.NewNop()
	return sponsors.NewHandler(store, respond.NewErrorLogger(logger), logger)
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

func TestHandleCreate_Validation(t *testing.T) {
	h := newHandler(nil) // rejected before any store access

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing description", `{"title":"Acme"}`},
		{"blank title", `{"title":"  ","description":"x"}`},
		{"malformed json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/create-sponsors", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleCreate(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := messageOf(t, rec); got != "Title and description are required" {
				t.Errorf("message = %q", got)
			}
		})
	}
}

func TestHandleUpdate_MalformedID(t *testing.T) {
	h := newHandler(nil)

	req := httptest.NewRequest(http.MethodPut, "/admin/sponsors/not-a-hex-id", strings.NewReader(`{"title":"Acme","description":"x"}`))
	req = testutil.WithChiURLParam(req, "id", "not-a-hex-id")
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if got := messageOf(t, rec); got != "Sponsor not found" {
		t.Errorf("message = %q", got)
	}
}

func TestSponsorLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	if err := indexes.EnsureAll(testutil.TestContext(t), db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	h := newHandler(sponsorstore.New(db))

	create := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/admin/create-sponsors", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, req)
		return rec
	}

	rec := create(t, `{"title":"Tata Trust","description":"Education grants"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d; body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Message string `json:"message"`
		Data    struct {
			ID       string `json:"_id"`
			Title    string `json:"title"`
			IsActive bool   `json:"isActive"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create body: %v", err)
	}
	if created.Message != "Scholarship sponsor created successfully" {
		t.Errorf("message = %q", created.Message)
	}
	if !created.Data.IsActive {
		t.Error("new sponsor should be active")
	}

	t.Run("duplicate title rejected", func(t *testing.T) {
		rec := create(t, `{"title":"tata trust","description":"dupe"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if got := messageOf(t, rec); got != "Sponsor type already exists" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("update rejects another sponsor's title but keeps its own", func(t *testing.T) {
		rec := create(t, `{"title":"Birla Foundation","description":"STEM grants"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d; body %s", rec.Code, rec.Body.String())
		}
		var second struct {
			Data struct {
				ID string `json:"_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
			t.Fatalf("decode create body: %v", err)
		}

		update := func(t *testing.T, body string) *httptest.ResponseRecorder {
			t.Helper()
			req := httptest.NewRequest(http.MethodPut, "/admin/sponsors/"+second.Data.ID, strings.NewReader(body))
			req = testutil.WithChiURLParam(req, "id", second.Data.ID)
			rec := httptest.NewRecorder()
			h.HandleUpdate(rec, req)
			return rec
		}

		rec = update(t, `{"title":"TATA TRUST","description":"collides"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if got := messageOf(t, rec); got != "Sponsor type already exists" {
			t.Errorf("message = %q", got)
		}

		rec = update(t, `{"title":"Birla Foundation","description":"refreshed"}`)
		if rec.Code != http.StatusOK {
			t.Errorf("re-save own title status = %d; body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("toggle flips and reports status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/admin/sponsors/status/"+created.Data.ID, nil)
		req = testutil.WithChiURLParam(req, "id", created.Data.ID)
		rec := httptest.NewRecorder()
		h.HandleToggleStatus(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
		}
		if got := messageOf(t, rec); got != "Sponsor is now Inactive" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("delete then 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/sponsors/"+created.Data.ID, nil)
		req = testutil.WithChiURLParam(req, "id", created.Data.ID)
		rec := httptest.NewRecorder()
		h.HandleDelete(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete status = %d", rec.Code)
		}
		if got := messageOf(t, rec); got != "Sponsor deleted successfully" {
			t.Errorf("message = %q", got)
		}

		rec = httptest.NewRecorder()
		h.HandleDelete(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", rec.Code)
		}
	})
}
