package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// DonationRepositoryPG reads donation rows written by the payment
// collaborator. This application never inserts or mutates donations.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// ListByDonor returns a user's donations newest first, each carrying the
// sponsored dog's name when the donation targets a dog.
func (r *DonationRepositoryPG) ListByDonor(ctx context.Context, userID string) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByDonor, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.Amount, &d.Currency, &d.Type, &d.DonorID, &d.DogID, &d.DogName,
			&d.PaymentStatus, &d.StripePaymentID, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCompleted returns the amount/currency pairs of completed donations
// for USD-equivalent aggregation.
func (r *DonationRepositoryPG) ListCompleted(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCompletedDonations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.Amount, &d.Currency); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
