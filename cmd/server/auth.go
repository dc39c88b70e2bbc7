package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const rigContextKey contextKey = "rig"

const tokenTTL = 24 * time.Hour

// TokenRequest is the request body for exchanging the rig key for a token
type TokenRequest struct {
	Key  string `json:"key" example:"hunter2" description:"Shared rig key"`
	Name string `json:"name" example:"kitchen-table" description:"Name of the camera rig"`
}

// TokenResponse carries a signed JWT
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RigClaims are the JWT claims handed to a camera rig. The subject is the
// rig name.
type RigClaims struct {
	jwt.RegisteredClaims
}

func generateJWT(secret []byte, rig string, now time.Time) (string, time.Time, error) {
	expires := now.Add(tokenTTL)
	claims := RigClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   rig,
			Issuer:    "camfour",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return signed, expires, nil
}

func parseJWT(secret []byte, tokenString string) (*RigClaims, error) {
	claims := &RigClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer("camfour"))
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// @Summary Get a rig token
// @Description Exchanges the shared rig key for a JWT used on the protected match routes
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Rig key"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/token [post]
func (s *server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if len(s.cfg.RigKeyHash) == 0 || len(s.cfg.JWTSecret) == 0 {
		renderError(w, http.StatusServiceUnavailable, "rig authentication is not configured")
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		renderError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := bcrypt.CompareHashAndPassword(s.cfg.RigKeyHash, []byte(req.Key)); err != nil {
		log.Warnw("bad rig key", "remote", r.RemoteAddr)
		renderError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	name := ugcPolicy.Sanitize(strings.TrimSpace(req.Name))
	if name == "" {
		name = "rig"
	}

	token, expires, err := generateJWT(s.cfg.JWTSecret, name, time.Now())
	if err != nil {
		log.Errorw("could not sign token", zap.Error(err))
		renderError(w, http.StatusInternalServerError, "could not sign token")
		return
	}

	log.Infow("issued rig token", "rig", name, "expires", expires)
	render200(w, TokenResponse{Token: token, ExpiresAt: expires})
}

// authMiddleware lets through requests carrying a valid rig token.
func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			renderError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		claims, err := parseJWT(s.cfg.JWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Errorw("authentication failed", zap.Error(err))
			renderError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), rigContextKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rigFromContext returns the rig name set by authMiddleware.
func rigFromContext(ctx context.Context) string {
	if rig, ok := ctx.Value(rigContextKey).(string); ok {
		return rig
	}
	return ""
}

var errNoSecret = errors.New("AUTH_JWT_SECRET is empty")
