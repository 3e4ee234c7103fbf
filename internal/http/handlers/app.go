package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/middleware"
	"server/internal/storage"
)

// App is the dependency container handler methods hang off.
type App struct {
	SQL            infra.SQLExecutor
	Logger         infra.Logger
	JWTSecret      string
	Auth           auth.Authenticator
	Dogs           domain.DogRepository
	DogUpdates     domain.DogUpdateRepository
	Donations      domain.DonationRepository
	Profiles       domain.ProfileRepository
	Store          *storage.FileStore
	StorageBaseURL string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]any{"code": errCode, "message": message},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
