package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// GetByID fetches a profile by its id (the authentication subject id).
func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProfileByID, id)
	return scanProfile(row)
}

// GetByEmail fetches a profile by email, case-insensitively.
func (r *ProfileRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProfileByEmail, email)
	return scanProfile(row)
}

// SetRole assigns a role and returns the updated profile.
func (r *ProfileRepositoryPG) SetRole(ctx context.Context, id string, role domain.UserRole) (*domain.Profile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateProfileRole, id, string(role))
	return scanProfile(row)
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Country, &p.CurrencyPreference,
		&p.IsMonthlySponsor, &p.TotalDonated, &p.StripeCustomerID, &p.Role, &p.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ domain.ProfileRepository = (*ProfileRepositoryPG)(nil)
