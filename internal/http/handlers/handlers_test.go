package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"server/internal/auth"
	"server/internal/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type fakeDogRepo struct {
	dogs        []domain.Dog
	created     []domain.DogInput
	listErr     error
	createErr   error
	countErr    error
	sponsorsErr error
	sponsored   int64
}

func (f *fakeDogRepo) List(context.Context) ([]domain.Dog, error) {
	return f.dogs, f.listErr
}

func (f *fakeDogRepo) GetByID(_ context.Context, id string) (*domain.Dog, error) {
	for i := range f.dogs {
		if f.dogs[i].ID == id {
			return &f.dogs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDogRepo) ListBySponsor(_ context.Context, userID string) ([]domain.Dog, error) {
	var out []domain.Dog
	for _, d := range f.dogs {
		if d.SponsorID != nil && *d.SponsorID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDogRepo) Create(_ context.Context, in domain.DogInput) (*domain.Dog, error) {
	f.created = append(f.created, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	d := domain.Dog{
		ID:               "dog-new",
		Name:             in.Name,
		MonthlyAmountUSD: in.MonthlyAmountUSD,
		MonthlyAmountIDR: in.MonthlyAmountIDR,
	}
	f.dogs = append(f.dogs, d)
	return &d, nil
}

// Update mirrors the SQL's optional-field handling: a nil pointer keeps
// the column, a pointer to "" clears photo/story to absent.
func (f *fakeDogRepo) Update(_ context.Context, id string, patch domain.DogPatch) (*domain.Dog, error) {
	for i := range f.dogs {
		if f.dogs[i].ID == id {
			if patch.Name != nil {
				f.dogs[i].Name = *patch.Name
			}
			if patch.PhotoURL != nil {
				f.dogs[i].PhotoURL = optionalText(*patch.PhotoURL)
			}
			if patch.Story != nil {
				f.dogs[i].Story = optionalText(*patch.Story)
			}
			if patch.MonthlyAmountUSD != nil {
				f.dogs[i].MonthlyAmountUSD = *patch.MonthlyAmountUSD
			}
			if patch.MonthlyAmountIDR != nil {
				f.dogs[i].MonthlyAmountIDR = *patch.MonthlyAmountIDR
			}
			if patch.ClearSponsor {
				f.dogs[i].SponsorID = nil
				f.dogs[i].IsSponsored = false
			} else if patch.SponsorID != nil {
				f.dogs[i].SponsorID = patch.SponsorID
				f.dogs[i].IsSponsored = true
			}
			return &f.dogs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDogRepo) Delete(_ context.Context, id string) error {
	for i := range f.dogs {
		if f.dogs[i].ID == id {
			f.dogs = append(f.dogs[:i], f.dogs[i+1:]...)
			return nil
		}
	}
	return nil
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (f *fakeDogRepo) Count(context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.dogs)), nil
}

func (f *fakeDogRepo) CountSponsored(context.Context) (int64, error) {
	if f.sponsorsErr != nil {
		return 0, f.sponsorsErr
	}
	return f.sponsored, nil
}

type fakeDonationRepo struct {
	byDonor      map[string][]domain.Donation
	completed    []domain.Donation
	completedErr error
}

func (f *fakeDonationRepo) ListByDonor(_ context.Context, userID string) ([]domain.Donation, error) {
	return f.byDonor[userID], nil
}

func (f *fakeDonationRepo) ListCompleted(context.Context) ([]domain.Donation, error) {
	return f.completed, f.completedErr
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) SetRole(_ context.Context, id string, role domain.UserRole) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Role = role
	return p, nil
}

type fakeDogUpdateRepo struct {
	updates map[string][]domain.DogUpdate
}

func (f *fakeDogUpdateRepo) ListByDog(_ context.Context, dogID string) ([]domain.DogUpdate, error) {
	return f.updates[dogID], nil
}

func (f *fakeDogUpdateRepo) Create(_ context.Context, in domain.DogUpdateInput) (*domain.DogUpdate, error) {
	u := domain.DogUpdate{ID: "update-new", DogID: in.DogID, Caption: in.Caption, PostedBy: in.PostedBy}
	if f.updates == nil {
		f.updates = map[string][]domain.DogUpdate{}
	}
	f.updates[in.DogID] = append([]domain.DogUpdate{u}, f.updates[in.DogID]...)
	return &u, nil
}

type fakeAuthenticator struct {
	signInSession *auth.Session
	signInErr     error
	signUpSession *auth.Session
	signUpErr     error
	signUpParams  []auth.SignUpParams
	signedOut     []string
}

func (f *fakeAuthenticator) SignInWithPassword(context.Context, string, string) (*auth.Session, error) {
	return f.signInSession, f.signInErr
}

func (f *fakeAuthenticator) SignUp(_ context.Context, params auth.SignUpParams) (*auth.Session, error) {
	f.signUpParams = append(f.signUpParams, params)
	return f.signUpSession, f.signUpErr
}

func (f *fakeAuthenticator) SignOut(_ context.Context, token string) error {
	f.signedOut = append(f.signedOut, token)
	return nil
}

func (f *fakeAuthenticator) OnSessionChange(func(*auth.Session)) func() {
	return func() {}
}

func newTestApp() *App {
	return &App{
		Logger:     testLogger(),
		JWTSecret:  "test-secret",
		Auth:       &fakeAuthenticator{},
		Dogs:       &fakeDogRepo{},
		DogUpdates: &fakeDogUpdateRepo{},
		Donations:  &fakeDonationRepo{},
		Profiles:   &fakeProfileRepo{profiles: map[string]*domain.Profile{}},
	}
}

// withURLParam attaches a chi route parameter so handlers that read
// chi.URLParam see the value without a full router in the test.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
