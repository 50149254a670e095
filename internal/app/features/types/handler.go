// internal/app/features/types/handler.go
package types

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

	typestore "github.com/dalemusser/scholarhub/internal/app/store/types"
	"github.com/dalemusser/scholarhub/internal/app/system/normalize"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/app/system/timeouts"
	"github.com/dalemusser/scholarhub/internal/domain/models"
)

// Handler owns the admin scholarship-type endpoints.
type Handler struct {
	Store  *typestore.Store
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a type Handler bound to the type store.
func NewHandler(store *typestore.Store, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger, ErrLog: errLog}
}

type typeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type payload struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func idParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

// HandleCreate handles POST /admin/create-scholarshiptype.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
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
		h.ErrLog.ServerError(w, r, "type duplicate check failed", err, "Server error while creating scholarship type")
		return
	}
	if exists {
		respond.Message(w, http.StatusBadRequest, "Scholarship type already exists")
		return
	}

	st, err := h.Store.Create(ctx, models.ScholarshipType{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, typestore.ErrDuplicateType) {
			respond.Message(w, http.StatusBadRequest, "Scholarship type already exists")
			return
		}
		h.ErrLog.ServerError(w, r, "type create failed", err, "Server error while creating scholarship type")
		return
	}

	h.Log.Info("scholarship type created", zap.String("title", st.Title))
	respond.JSON(w, http.StatusCreated, payload{
		Message: "Scholarship type created successfully",
		Data:    st,
	})
}

// HandleList handles GET /admin/scholarship-types, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "type list failed", err, "Server error while fetching scholarship types")
		return
	}
	if list == nil {
		list = []models.ScholarshipType{}
	}
	respond.JSON(w, http.StatusOK, payload{
		Message: "Scholarship types fetched successfully",
		Data:    list,
	})
}

// HandleUpdate handles PUT /admin/scholarship-type/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Scholarship type not found")
		return
	}

	var req typeRequest
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

	// Preflight duplicate excluding self, so a type can keep its own
	// title.
	exists, err := h.Store.TitleExistsForOther(ctx, normalize.TitleCI(req.Title), id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "type duplicate check failed", err, "Server error while updating scholarship type")
		return
	}
	if exists {
		respond.Message(w, http.StatusBadRequest, "Scholarship type already exists")
		return
	}

	st, err := h.Store.Update(ctx, id, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			respond.Message(w, http.StatusNotFound, "Scholarship type not found")
		case errors.Is(err, typestore.ErrDuplicateType):
			respond.Message(w, http.StatusBadRequest, "Scholarship type already exists")
		default:
			h.ErrLog.ServerError(w, r, "type update failed", err, "Server error while updating scholarship type")
		}
		return
	}

	respond.JSON(w, http.StatusOK, payload{
		Message: "Scholarship type updated successfully",
		Data:    st,
	})
}

// HandleDelete handles DELETE /admin/scholarship-type/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Scholarship type not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "type delete failed", err, "Server error while deleting scholarship type")
		return
	}
	if n == 0 {
		respond.Message(w, http.StatusNotFound, "Scholarship type not found")
		return
	}

	h.Log.Info("scholarship type deleted", zap.String("id", id.Hex()))
	respond.Message(w, http.StatusOK, "Scholarship type deleted successfully")
}

// HandleToggleStatus handles PATCH /admin/scholarship-type/status/{id}.
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Scholarship type not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := h.Store.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Message(w, http.StatusNotFound, "Scholarship type not found")
			return
		}
		h.ErrLog.ServerError(w, r, "type status toggle failed", err, "Server error while updating status")
		return
	}

	respond.JSON(w, http.StatusOK, payload{
		Message: fmt.Sprintf("Scholarship type is now %s", statusWord(st.IsActive)),
		Data:    st,
	})
}

func statusWord(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
