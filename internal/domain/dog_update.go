package domain

import (
	"strings"
	"time"
)

// DogUpdate is a photo/caption progress post for a dog. Updates are
// created by admins and immutable afterwards; listings are newest first.
type DogUpdate struct {
	ID        string
	DogID     string
	PhotoURL  *string
	Caption   string
	PostedBy  string
	CreatedAt time.Time
}

// DogUpdateInput carries the fields for posting an update.
type DogUpdateInput struct {
	DogID    string
	Caption  string
	PhotoURL string
	PostedBy string
}

func (in DogUpdateInput) Validate() error {
	if strings.TrimSpace(in.DogID) == "" {
		return ValidationError("Dog is required")
	}
	if strings.TrimSpace(in.Caption) == "" {
		return ValidationError("Caption is required")
	}
	return nil
}
