package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// DogUpdateRepositoryPG implements domain.DogUpdateRepository.
type DogUpdateRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewDogUpdateRepository(sql infra.SQLExecutor) *DogUpdateRepositoryPG {
	return &DogUpdateRepositoryPG{sql: sql}
}

// ListByDog returns a dog's progress updates, newest first.
func (r *DogUpdateRepositoryPG) ListByDog(ctx context.Context, dogID string) ([]domain.DogUpdate, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDogUpdates, dogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.DogUpdate
	for rows.Next() {
		var u domain.DogUpdate
		if err := rows.Scan(&u.ID, &u.DogID, &u.PhotoURL, &u.Caption, &u.PostedBy, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts an update and returns the stored row. Updates are
// immutable after this point; there is no edit or delete path.
func (r *DogUpdateRepositoryPG) Create(ctx context.Context, in domain.DogUpdateInput) (*domain.DogUpdate, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDogUpdate, in.DogID, in.PhotoURL, in.Caption, in.PostedBy)
	return scanDogUpdate(row)
}

func scanDogUpdate(row pgx.Row) (*domain.DogUpdate, error) {
	var u domain.DogUpdate
	if err := row.Scan(&u.ID, &u.DogID, &u.PhotoURL, &u.Caption, &u.PostedBy, &u.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ domain.DogUpdateRepository = (*DogUpdateRepositoryPG)(nil)
