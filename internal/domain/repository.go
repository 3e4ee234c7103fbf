package domain

import "context"

// DogRepository defines access methods for dogs. Single-entity lookups
// signal absence with ErrNotFound; every other failure propagates
// unchanged, with no retry at this layer.
type DogRepository interface {
	List(ctx context.Context) ([]Dog, error)
	GetByID(ctx context.Context, id string) (*Dog, error)
	ListBySponsor(ctx context.Context, userID string) ([]Dog, error)
	Create(ctx context.Context, in DogInput) (*Dog, error)
	Update(ctx context.Context, id string, patch DogPatch) (*Dog, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountSponsored(ctx context.Context) (int64, error)
}

// DogUpdateRepository handles persistence for dog progress updates.
type DogUpdateRepository interface {
	ListByDog(ctx context.Context, dogID string) ([]DogUpdate, error)
	Create(ctx context.Context, in DogUpdateInput) (*DogUpdate, error)
}

// DonationRepository reads donation records written by the payment
// collaborator.
type DonationRepository interface {
	ListByDonor(ctx context.Context, userID string) ([]Donation, error)
	ListCompleted(ctx context.Context) ([]Donation, error)
}

// ProfileRepository defines access methods for supporter profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	SetRole(ctx context.Context, id string, role UserRole) (*Profile, error)
}
