package api

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/logging"
)

// TokenTTL is how long an issued bearer token stays valid
const TokenTTL = 24 * time.Hour

// Guard authenticates requests with basic credentials or a bearer token
// issued by CreateToken.
type Guard struct {
	DB            databases.UserDatabase
	authenticator auth.Authenticator
	cache         store.Cache
}

// NewGuard sets up the go-guardian strategies backed by the user database
func NewGuard(db databases.UserDatabase) *Guard {
	g := &Guard{DB: db}
	g.authenticator = auth.New()
	g.cache = store.NewFIFO(context.Background(), TokenTTL)
	basicStrategy := basic.New(g.ValidateUser, g.cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, g.cache)

	g.authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	g.authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
	return g
}

// Middleware adds some basic header authentication around accessing the routes
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := g.authenticator.Authenticate(r)
		if err != nil {
			logging.FromContext(r.Context()).Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		logging.FromContext(r.Context()).Debugw("user authenticated", "user", user.UserName())
		next.ServeHTTP(w, auth.RequestWithUser(user, r))
	})
}

// RequireRole only lets through authenticated users holding one of the roles
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HasRole(r, roles...) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error": "forbidden"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasRole reports whether the authenticated user holds any of the roles
func HasRole(r *http.Request, roles ...string) bool {
	info := auth.User(r)
	if info == nil {
		return false
	}
	for _, group := range info.Groups() {
		for _, role := range roles {
			if group == role {
				return true
			}
		}
	}
	return false
}

// UserID returns the id of the authenticated user, or "" when there is none
func UserID(r *http.Request) string {
	info := auth.User(r)
	if info == nil {
		return ""
	}
	return info.ID()
}

// CreateToken returns a token
func (g *Guard) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	info := auth.User(r)
	if info == nil {
		http.Error(w, "basic auth failed", http.StatusUnauthorized)
		return
	}

	token := uuid.New().String()
	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Append(tokenStrategy, token, info, r); err != nil {
		http.Error(w, "failed to store token", http.StatusInternalServerError)
		return
	}

	response := map[string]string{
		"token": token,
		"_id":   info.ID(),
	}

	responseBody, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Write(responseBody)
}

// ValidateUser checks an email and password pair against the users collection
func (g *Guard) ValidateUser(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	usernameHash := sha256.Sum256([]byte(strings.ToLower(email)))

	user, err := g.DB.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("no matching email found")
	}

	expectedUsernameHash := sha256.Sum256([]byte(user.Email))
	usernameMatch := subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("failed to compare password")
	}

	if usernameMatch {
		return auth.NewDefaultUser(user.Email, user.ID.Hex(), []string{user.Role}, nil), nil
	}
	return nil, fmt.Errorf("invalid credentials")
}

// RevokeToken revokes a token
func (g *Guard) RevokeToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reqToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if reqToken == "" || reqToken == r.Header.Get("Authorization") {
		http.Error(w, "bearer token required", http.StatusBadRequest)
		return
	}

	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Revoke(tokenStrategy, reqToken, r); err != nil {
		zap.S().Warnw("failed to revoke token", "error", err)
	}
	body, _ := json.Marshal(map[string]string{"revoked token": reqToken})
	w.Write(body)
}

// Forget drops every cached basic login and bearer token belonging to userID
// and reports how many entries went.
func (g *Guard) Forget(userID string) int {
	removed := 0
	for _, key := range g.cache.Keys() {
		v, ok, err := g.cache.Load(key, nil)
		if err != nil || !ok {
			continue
		}
		if info, ok := v.(auth.Info); ok && info.ID() == userID {
			if err := g.cache.Delete(key, nil); err != nil {
				zap.S().Warnw("failed to drop cached credentials", "error", err)
				continue
			}
			removed++
		}
	}
	return removed
}
