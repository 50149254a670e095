// internal/app/features/sponsors/handler.go
package sponsors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sponsorstore "github.com/dalemusser/scholarhub/internal/app/store/sponsors"
	"github.com/dalemusser/scholarhub/internal/app/system/normalize"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/app/system/timeouts"
	"github.com/dalemusser/scholarhub/internal/domain/models"
)

// Handler owns the admin sponsor endpoints.
type Handler struct {
	Store  *sponsorstore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a sponsor Handler bound to the sponsor store.
func NewHandler(store *sponsorstore.Store, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger, ErrLog: errLog}
}

type sponsorRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type payload struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// idParam parses the {id} route parameter. A malformed ID behaves like a
// missing document.
func idParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

// HandleCreate handles POST /admin/create-sponsors.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		respond.Message(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// Preflight duplicate by folded title; the unique index still backs
	// this up against racing inserts.
	exists, err := h.Store.ExistsByTitleCI(ctx, normalize.TitleCI(req.Title))
	if err != nil {
		h.ErrLog.ServerError(w, r, "sponsor duplicate check failed", err, "Server error while creating sponsor")
		return
	}
	if exists {
		respond.Message(w, http.StatusBadRequest, "Sponsor type already exists")
		return
	}

	sp, err := h.Store.Create(ctx, models.Sponsor{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, sponsorstore.ErrDuplicateSponsor) {
			respond.Message(w, http.StatusBadRequest, "Sponsor type already exists")
			return
		}
		h.ErrLog.ServerError(w, r, "sponsor create failed", err, "Server error while creating sponsor")
		return
	}

	h.Log.Info("sponsor created", zap.String("title", sp.Title))
	respond.JSON(w, http.StatusCreated, payload{
		Message: "Scholarship sponsor created successfully",
		Data:    sp,
	})
}

// HandleList handles GET /admin/sponsors, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "sponsor list failed", err, "Server error while fetching sponsors")
		return
	}
	if list == nil {
		list = []models.Sponsor{}
	}
	respond.JSON(w, http.StatusOK, payload{
		Message: "Sponsors fetched successfully",
		Data:    list,
	})
}

// HandleUpdate handles PUT /admin/sponsors/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Sponsor not found")
		return
	}

	var req sponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		respond.Message(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// Preflight duplicate excluding self, so a sponsor can keep its own
	// title.
	exists, err := h.Store.TitleExistsForOther(ctx, normalize.TitleCI(req.Title), id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "sponsor duplicate check failed", err, "Server error while updating sponsor")
		return
	}
	if exists {
		respond.Message(w, http.StatusBadRequest, "Sponsor type already exists")
		return
	}

	sp, err := h.Store.Update(ctx, id, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			respond.Message(w, http.StatusNotFound, "Sponsor not found")
		case errors.Is(err, sponsorstore.ErrDuplicateSponsor):
			respond.Message(w, http.StatusBadRequest, "Sponsor type already exists")
		default:
			h.ErrLog.ServerError(w, r, "sponsor update failed", err, "Server error while updating sponsor")
		}
		return
	}

	respond.JSON(w, http.StatusOK, payload{
		Message: "Sponsor updated successfully",
		Data:    sp,
	})
}

// HandleDelete handles DELETE /admin/sponsors/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Sponsor not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "sponsor delete failed", err, "Server error while deleting sponsor")
		return
	}
	if n == 0 {
		respond.Message(w, http.StatusNotFound, "Sponsor not found")
		return
	}

	h.Log.Info("sponsor deleted", zap.String("id", id.Hex()))
	respond.Message(w, http.StatusOK, "Sponsor deleted successfully")
}

// HandleToggleStatus handles PATCH /admin/sponsors/status/{id}.
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Sponsor not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sp, err := h.Store.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Message(w, http.StatusNotFound, "Sponsor not found")
			return
		}
		h.ErrLog.ServerError(w, r, "sponsor status toggle failed", err, "Server error while updating status")
		return
	}

	respond.JSON(w, http.StatusOK, payload{
		Message: fmt.Sprintf("Sponsor is now %s", statusWord(sp.IsActive)),
		Data:    sp,
	})
}

func statusWord(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
