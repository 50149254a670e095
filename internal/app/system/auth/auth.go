// Package auth implements the bearer-token gate for the admin API.
//
// Tokens are stateless HS256 JWTs with a fixed validity window (1 day by
// default). There is no server-side revocation list, so logout is purely a
// client-side discard. The middleware resolves the token's subject against
// the admins collection on every request, so a deleted admin loses access
// immediately even while the token is otherwise valid.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	adminstore "github.com/dalemusser/scholarhub/internal/app/store/admins"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
	"github.com/dalemusser/scholarhub/internal/app/system/timeouts"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultTokenTTL is the validity window for issued tokens.
const DefaultTokenTTL = 24 * time.Hour

// Token errors. Verify returns exactly one of these for a bad token so
// the middleware can give the expired case its own message.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the token claims: subject is the admin's ObjectID hex, plus
// the email for convenience in clients.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies admin bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured validity window.
func (tm *TokenManager) TTL() time.Duration { return tm.ttl }

// Issue signs a token for the given admin, valid for the configured TTL.
func (tm *TokenManager) Issue(adminID primitive.ObjectID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   adminID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify checks signature and expiry and returns the claims.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Identity is the resolved administrator attached to the request context.
// It deliberately omits the password hash.
type Identity struct {
	ID    primitive.ObjectID
	Email string
}

type ctxKey struct{}

// CurrentAdmin returns the identity placed in context by RequireAdmin.
func CurrentAdmin(r *http.Request) (Identity, bool) {
	id, ok := r.Context().Value(ctxKey{}).(Identity)
	return id, ok
}

// withAdmin returns a request whose context carries the identity.
func withAdmin(r *http.Request, id Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAdmin is the middleware guarding all protected routes. It maps
// failures to 401 with the distinct messages the clients rely on, and on
// success injects the resolved Identity into the request context.
func RequireAdmin(tm *TokenManager, admins *adminstore.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r)
			if tok == "" {
				respond.Message(w, http.StatusUnauthorized, "Not authorized, token missing")
				return
			}

			claims, err := tm.Verify(tok)
			if err != nil {
				if errors.Is(err, ErrExpiredToken) {
					respond.Message(w, http.StatusUnauthorized, "Token expired")
					return
				}
				respond.Message(w, http.StatusUnauthorized, "Not authorized, invalid token")
				return
			}

			adminID, err := primitive.ObjectIDFromHex(claims.Subject)
			if err != nil {
				respond.Message(w, http.StatusUnauthorized, "Not authorized, invalid token")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()
			admin, err := admins.GetByID(ctx, adminID)
			if err != nil {
				logger.Debug("token subject not resolvable",
					zap.String("admin_id", claims.Subject), zap.Error(err))
				respond.Message(w, http.StatusUnauthorized, "Not authorized, admin not found")
				return
			}

			next.ServeHTTP(w, withAdmin(r, Identity{ID: admin.ID, Email: admin.Email}))
		})
	}
}
