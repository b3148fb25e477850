package httpapi

import (
	"context"
	"net/http"
	"strings"

	"restaurant-pos/pos-svc/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionToken pulls the token from the Authorization header or the
// X-Session-Token header the dashboard sends.
func SessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.Header.Get("X-Session-Token")
}

func SessionFrom(r *http.Request) *domain.Session {
	session, _ := r.Context().Value(sessionKey).(*domain.Session)
	return session
}

func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := h.Auth.Authenticate(r.Context(), SessionToken(r))
		if err != nil {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), sessionKey, session)))
	}
}

func (h *Handler) requirePermission(permission string, next http.HandlerFunc) http.HandlerFunc {
	return h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFrom(r)
		if session == nil || !session.Permissions[permission] {
			http.Error(w, "Permission denied", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}
