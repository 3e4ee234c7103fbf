package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"server/internal/domain"
)

// SignInPath is advertised to unauthenticated callers so the frontend
// router knows where to send them.
const SignInPath = "/login"

// RoleLookup resolves the current role for a user id. Guards read the
// role from the live profile rather than trusting a claim minted at
// sign-in, so demotions take effect without waiting for token expiry.
type RoleLookup func(ctx context.Context, userID string) (domain.UserRole, error)

// RequireAuth gates a route group on a valid bearer token. Anonymous
// callers get 401 with a redirect hint; there is no denial page for this
// variant.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				redirectToSignIn(w, "missing authorization")
				return
			}
			claims, err := VerifyJWT(secret, token)
			if err != nil {
				redirectToSignIn(w, "invalid token")
				return
			}
			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route group on an admin profile. It assumes
// RequireAuth already ran: no user in context means 401, a non-admin
// role renders a 403 denial body in place (no redirect).
func RequireAdmin(roles RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserIDFromContext(r.Context())
			if userID == "" {
				redirectToSignIn(w, "missing authorization")
				return
			}
			role, err := roles(r.Context(), userID)
			if err != nil {
				redirectToSignIn(w, "unknown user")
				return
			}
			if role != domain.UserRoleAdmin {
				writeGuardJSON(w, http.StatusForbidden, map[string]any{
					"error": map[string]any{
						"code":    "forbidden",
						"message": "Access denied. This area is for administrators only.",
					},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToSignIn(w http.ResponseWriter, message string) {
	writeGuardJSON(w, http.StatusUnauthorized, map[string]any{
		"error": map[string]any{
			"code":    "unauthorized",
			"message": message,
		},
		"redirect": SignInPath,
	})
}

func writeGuardJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
