package httpapi

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// RouterOptions carries the request-scoped policy knobs the router wires
// into its middleware chain.
type RouterOptions struct {
	Config        *infra.Config
	Logger        infra.Logger
	CountryLookup middleware.CountryLookup
}

// NewRouter assembles the full route table. Admin routes sit behind both
// guards; the role is read from the live profile so a demotion takes
// effect on the next request, not at token expiry.
func NewRouter(app *handlers.App, opts RouterOptions) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.Config.CORSAllowedOrigins),
		middleware.RateLimit(opts.Config.RateLimitPerMin, time.Minute),
		middleware.I18N("en", opts.CountryLookup),
	)

	roleLookup := func(ctx context.Context, userID string) (domain.UserRole, error) {
		profile, err := app.Profiles.GetByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return profile.Role, nil
	}

	// Health
	r.Get("/v1/healthz", app.Health)

	// Public catalogue and fundraising stats
	r.Get("/v1/dogs", app.DogsList)
	r.Get("/v1/dogs/{id}", app.DogsGet)
	r.Get("/v1/dogs/{id}/updates", app.DogUpdatesList)
	r.Get("/v1/stats", app.StatsSummary)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", app.AuthSignUp)
		r.Post("/signin", app.AuthSignIn)
		r.With(middleware.RequireAuth(app.JWTSecret)).Post("/signout", app.AuthSignOut)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(app.JWTSecret))
		r.Get("/v1/me", app.Me)
		r.Get("/v1/me/donations", app.DonationsMine)
		r.Get("/v1/me/sponsorships", app.SponsorshipsMine)
	})

	r.Route("/v1/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth(app.JWTSecret))
		r.Use(middleware.RequireAdmin(roleLookup))
		r.Post("/dogs", app.DogsCreate)
		r.Patch("/dogs/{id}", app.DogsUpdate)
		r.Delete("/dogs/{id}", app.DogsDelete)
		r.Post("/dogs/{id}/updates", app.DogUpdatesCreate)
		r.Post("/uploads", app.UploadPhoto)
		r.Get("/export", app.ExportArchive)
	})

	if app.Store != nil {
		fs := stdhttp.StripPrefix("/static/", stdhttp.FileServer(stdhttp.Dir(app.Store.BasePath())))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
