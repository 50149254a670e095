// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	adminstore "github.com/dalemusser/scholarhub/internal/app/store/admins"
	"github.com/dalemusser/scholarhub/internal/app/system/auth"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler owns the admin login and logout endpoints.
type Handler struct {
	Admins *adminstore.Store
	Tokens *auth.TokenManager
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a login Handler bound to the admin store and
// token manager.
func NewHandler(admins *adminstore.Store, tokens *auth.TokenManager, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Admins: admins,
		Tokens: tokens,
		Log:    logger,
		ErrLog: errLog,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	Admin   adminBrief `json:"admin"`
}

type adminBrief struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// HandleLogin handles POST /admin/login.
//
// Failed lookups and bad passwords share one message so the response does
// not reveal which admin emails exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Message(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.ErrLog.ServerError(w, r, "admin lookup failed", err, "Server error during login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		respond.Message(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.Tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		h.ErrLog.ServerError(w, r, "token issue failed", err, "Server error during login")
		return
	}

	h.Log.Info("admin login", zap.String("email", admin.Email))
	respond.JSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		Admin: adminBrief{
			ID:    admin.ID.Hex(),
			Email: admin.Email,
		},
	})
}

// HandleLogout handles POST /admin/logout. Tokens are stateless, so
// logout is a client-side discard and this endpoint just acknowledges.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	respond.Message(w, http.StatusOK, "Logout successful")
}
