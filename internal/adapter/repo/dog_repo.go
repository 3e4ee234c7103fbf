package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// DogRepositoryPG implements domain.DogRepository backed by PostgreSQL.
type DogRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDogRepository creates a new DogRepositoryPG.
func NewDogRepository(sql infra.SQLExecutor) *DogRepositoryPG {
	return &DogRepositoryPG{sql: sql}
}

// List returns every dog in creation order, oldest first.
func (r *DogRepositoryPG) List(ctx context.Context) ([]domain.Dog, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDogs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDogs(rows)
}

// GetByID fetches a dog by id. Absence is signalled with
// domain.ErrNotFound; every other failure propagates unchanged.
func (r *DogRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Dog, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectDogByID, id)
	return scanDog(row)
}

// ListBySponsor returns the dogs sponsored by the given user.
func (r *DogRepositoryPG) ListBySponsor(ctx context.Context, userID string) ([]domain.Dog, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDogsBySponsor, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDogs(rows)
}

// Create inserts a dog and returns the server-assigned row. The caller is
// expected to have validated the input already.
func (r *DogRepositoryPG) Create(ctx context.Context, in domain.DogInput) (*domain.Dog, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDog,
		in.Name, in.PhotoURL, in.Story, in.MonthlyAmountUSD, in.MonthlyAmountIDR)
	return scanDog(row)
}

// Update applies a partial field set and returns the updated row as read
// back from the database. A nil photo or story pointer leaves the column
// untouched; a pointer to "" clears it to NULL.
func (r *DogRepositoryPG) Update(ctx context.Context, id string, patch domain.DogPatch) (*domain.Dog, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateDog,
		id, patch.Name, patch.PhotoURL, patch.Story,
		patch.MonthlyAmountUSD, patch.MonthlyAmountIDR,
		patch.SponsorID, patch.ClearSponsor)
	return scanDog(row)
}

// Delete removes a dog.
func (r *DogRepositoryPG) Delete(ctx context.Context, id string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QDeleteDog, id)
	return err
}

// Count returns the number of dogs ever rescued.
func (r *DogRepositoryPG) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountDogs).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountSponsored returns the number of dogs with an active sponsor.
func (r *DogRepositoryPG) CountSponsored(ctx context.Context) (int64, error) {
	var n int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountSponsoredDogs).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func collectDogs(rows pgx.Rows) ([]domain.Dog, error) {
	var items []domain.Dog
	for rows.Next() {
		var d domain.Dog
		if err := rows.Scan(&d.ID, &d.Name, &d.PhotoURL, &d.Story,
			&d.MonthlyAmountUSD, &d.MonthlyAmountIDR, &d.IsSponsored, &d.SponsorID, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDog(row pgx.Row) (*domain.Dog, error) {
	var d domain.Dog
	if err := row.Scan(&d.ID, &d.Name, &d.PhotoURL, &d.Story,
		&d.MonthlyAmountUSD, &d.MonthlyAmountIDR, &d.IsSponsored, &d.SponsorID, &d.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

var _ domain.DogRepository = (*DogRepositoryPG)(nil)
