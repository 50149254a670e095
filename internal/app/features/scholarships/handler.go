// internal/app/features/scholarships/handler.go
package scholarships

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/scholarhub/internal/app/store/queries/scholarshiplist"
	scholarshipstore "github.com/dalemusser/scholarhub/internal/app/store/scholarships"
	sponsorstore "github.com/dalemusser/scholarhub/internal/app/store/sponsors"
	typestore "github.com/dalemusser/scholarhub/internal/app/store/types"
	"github.com/dalemusser/scholarhub/internal/app/system/paging"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/app/system/timeouts"
	"github.com/dalemusser/scholarhub/internal/domain/models"
)

// Handler owns the admin scholarship endpoints, including the paginated
// listing and the sponsor/type dropdowns used by the entry form.
type Handler struct {
	DB       *mongo.Database
	Store    *scholarshipstore.Store
	Sponsors *sponsorstore.Store
	Types    *typestore.Store
	Log      *zap.Logger
	ErrLog   *respond.ErrorLogger
}

// NewHandler constructs a scholarship Handler. The database handle is
// kept alongside the stores because the listing aggregation spans
// collections.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Store:    scholarshipstore.New(db),
		Sponsors: sponsorstore.New(db),
		Types:    typestore.New(db),
		Log:      logger,
		ErrLog:   errLog,
	}
}

type payload struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type createRequest struct {
	Name                 string    `json:"name"`
	CatchyPhrase         string    `json:"catchyPhrase"`
	Description          string    `json:"description"`
	Sponsor              string    `json:"sponsor"`
	Type                 string    `json:"type"`
	CoverageArea         string    `json:"coverageArea"`
	EligibilityCriteria  []string  `json:"eligibilityCriteria"`
	DocumentsRequired    []string  `json:"documentsRequired"`
	Benefits             []string  `json:"benefits"`
	ApplicationStartDate time.Time `json:"applicationStartDate"`
	ApplicationDeadline  time.Time `json:"applicationDeadline"`
	IsFeatured           bool      `json:"isFeatured"`
}

func idParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

// checkSponsor resolves a sponsor reference, distinguishing "not there"
// from database failure.
func (h *Handler) checkSponsor(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, err := h.Sponsors.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h *Handler) checkType(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, err := h.Types.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HandleCreate handles POST /admin/create-scholarship-details.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "All required fields must be provided")
		return
	}
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		req.Sponsor == "" || req.Type == "" ||
		req.CoverageArea == "" ||
		req.ApplicationStartDate.IsZero() || req.ApplicationDeadline.IsZero() {
		respond.Message(w, http.StatusBadRequest, "All required fields must be provided")
		return
	}
	if !models.ValidCoverageArea(req.CoverageArea) {
		respond.Message(w, http.StatusBadRequest, "Coverage area must be India or Abroad")
		return
	}

	sponsorID, err := primitive.ObjectIDFromHex(req.Sponsor)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Sponsor not found")
		return
	}
	typeID, err := primitive.ObjectIDFromHex(req.Type)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Scholarship type not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if ok, err := h.checkSponsor(ctx, sponsorID); err != nil {
		h.ErrLog.ServerError(w, r, "sponsor reference check failed", err, "Server error while creating scholarship")
		return
	} else if !ok {
		respond.Message(w, http.StatusBadRequest, "Sponsor not found")
		return
	}
	if ok, err := h.checkType(ctx, typeID); err != nil {
		h.ErrLog.ServerError(w, r, "type reference check failed", err, "Server error while creating scholarship")
		return
	} else if !ok {
		respond.Message(w, http.StatusBadRequest, "Scholarship type not found")
		return
	}

	sch, err := h.Store.Create(ctx, models.Scholarship{
		Name:                 req.Name,
		CatchyPhrase:         req.CatchyPhrase,
		Description:          req.Description,
		SponsorID:            sponsorID,
		TypeID:               typeID,
		CoverageArea:         req.CoverageArea,
		EligibilityCriteria:  req.EligibilityCriteria,
		DocumentsRequired:    req.DocumentsRequired,
		Benefits:             req.Benefits,
		ApplicationStartDate: req.ApplicationStartDate,
		ApplicationDeadline:  req.ApplicationDeadline,
		IsFeatured:           req.IsFeatured,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "scholarship create failed", err, "Server error while creating scholarship")
		return
	}

	h.Log.Info("scholarship created",
		zap.String("name", sch.Name),
		zap.String("id", sch.ID.Hex()))
	respond.JSON(w, http.StatusCreated, payload{
		Message: "Scholarship created successfully",
		Data:    sch,
	})
}

// HandleList handles GET /admin/view-all-scholarships with ?page,
// ?search and ?status.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	params := scholarshiplist.Params{
		Page:   paging.ParsePage(r),
		Search: query.Search(r, "search"),
		Status: query.Get(r, "status"),
	}
	if params.Status == "" {
		params.Status = scholarshiplist.StatusAll
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := scholarshiplist.List(ctx, h.DB, params)
	if err != nil {
		h.ErrLog.ServerError(w, r, "scholarship listing failed", err, "Server error while fetching scholarships")
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

// HandleUpdate handles PUT /admin/scholarship-update/{id}. The body is a
// partial patch; unknown fields are rejected rather than merged blindly.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Scholarship not found")
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var patch scholarshipstore.Patch
	if err := dec.Decode(&patch); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid update payload")
		return
	}
	if patch.CoverageArea != nil && !models.ValidCoverageArea(*patch.CoverageArea) {
		respond.Message(w, http.StatusBadRequest, "Coverage area must be India or Abroad")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if patch.SponsorID != nil {
		if ok, err := h.checkSponsor(ctx, *patch.SponsorID); err != nil {
			h.ErrLog.ServerError(w, r, "sponsor reference check failed", err, "Server error while updating scholarship")
			return
		} else if !ok {
			respond.Message(w, http.StatusBadRequest, "Sponsor not found")
			return
		}
	}
	if patch.TypeID != nil {
		if ok, err := h.checkType(ctx, *patch.TypeID); err != nil {
			h.ErrLog.ServerError(w, r, "type reference check failed", err, "Server error while updating scholarship")
			return
		} else if !ok {
			respond.Message(w, http.StatusBadRequest, "Scholarship type not found")
			return
		}
	}

	sch, err := h.Store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Message(w, http.StatusNotFound, "Scholarship not found")
			return
		}
		h.ErrLog.ServerError(w, r, "scholarship update failed", err, "Server error while updating scholarship")
		return
	}

	respond.JSON(w, http.StatusOK, payload{
		Message: "Scholarship updated successfully",
		Data:    sch,
	})
}

// HandleDelete handles DELETE /admin/scholarship-delete/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Scholarship not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "scholarship delete failed", err, "Server error while deleting scholarship")
		return
	}
	if n == 0 {
		respond.Message(w, http.StatusNotFound, "Scholarship not found")
		return
	}

	h.Log.Info("scholarship deleted", zap.String("id", id.Hex()))
	respond.Message(w, http.StatusOK, "Scholarship deleted successfully")
}

// HandleToggleStatus handles PATCH /admin/scholarship/status/{id}.
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respond.Message(w, http.StatusNotFound, "Scholarship not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sch, err := h.Store.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Message(w, http.StatusNotFound, "Scholarship not found")
			return
		}
		h.ErrLog.ServerError(w, r, "scholarship status toggle failed", err, "Server error while updating status")
		return
	}

	respond.JSON(w, http.StatusOK, payload{
		Message: fmt.Sprintf("Scholarship is now %s", statusWord(sch.IsActive)),
		Data:    sch,
	})
}

// HandleSponsorsDropdown handles GET /admin/dropdown/sponsors: active
// sponsors as {_id,title}, sorted by title.
func (h *Handler) HandleSponsorsDropdown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	items, err := h.Sponsors.ActiveDropdown(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "sponsor dropdown failed", err, "Error fetching sponsors")
		return
	}
	if items == nil {
		items = []sponsorstore.DropdownItem{}
	}
	respond.JSON(w, http.StatusOK, map[string]any{"data": items})
}

// HandleTypesDropdown handles GET /admin/dropdown/types.
func (h *Handler) HandleTypesDropdown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	items, err := h.Types.ActiveDropdown(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "type dropdown failed", err, "Error fetching scholarship types")
		return
	}
	if items == nil {
		items = []typestore.DropdownItem{}
	}
	respond.JSON(w, http.StatusOK, map[string]any{"data": items})
}

func statusWord(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
