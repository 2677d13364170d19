package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/showcaseapp/showcase-server/internal/domain"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

const (
	visitorIDKey ctxKey = "visitorID"
	authStateKey ctxKey = "authState"
)

// visitorCookieName identifies an anonymous visitor across requests.
// Favorites and engagement rate limits key off it.
const visitorCookieName = "sc_visitor"

// GetVisitorID returns the anonymous visitor ID from context, or ""
// when the request carried no visitor identity.
func GetVisitorID(ctx context.Context) string {
	visitorID, _ := ctx.Value(visitorIDKey).(string)
	return visitorID
}

// GetAuthState returns the request's auth state. Anonymous when no
// owner identity was presented.
func GetAuthState(ctx context.Context) domain.AuthState {
	state, ok := ctx.Value(authStateKey).(domain.AuthState)
	if !ok {
		return domain.Anonymous
	}
	return state
}

// GetOwnerID returns the authenticated owner ID from context.
// Returns a 401 error when the request is anonymous.
func GetOwnerID(ctx context.Context) (string, error) {
	state := GetAuthState(ctx)
	if !state.IsAuthenticated() {
		return "", huma.Error401Unauthorized("Owner identity required")
	}
	return state.OwnerID(), nil
}

// visitorCookie assigns each visitor a stable anonymous ID. A missing
// or malformed cookie gets replaced with a fresh UUID on the response.
func (s *Server) visitorCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var visitorID string

		if cookie, err := r.Cookie(visitorCookieName); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				visitorID = cookie.Value
			}
		}

		if visitorID == "" {
			visitorID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookieName,
				Value:    visitorID,
				Path:     "/",
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), visitorIDKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ownerHeader derives the request's auth state from the X-Owner-ID
// header. Requests without it stay anonymous; handlers that need an
// owner reject via GetOwnerID.
func ownerHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := domain.Anonymous
		if ownerID := r.Header.Get("X-Owner-ID"); ownerID != "" {
			state = domain.Authenticated(ownerID)
		}

		ctx := context.WithValue(r.Context(), authStateKey, state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
