// Package repository is the storage port for the kuesioner service, with a
// MongoDB adapter and a DataStax Astra Data API adapter behind the same
// interfaces.
package repository

import (
	"context"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

// findBatchSize mirrors the Astra default page cap. Both adapters walk the
// collection in batches of this size so a listing is never truncated by a
// server-side page limit.
const findBatchSize = 20

// KuesionerRepository stores questionnaire submissions. Append/list only:
// the application never updates or deletes a response.
type KuesionerRepository interface {
	// Insert persists the document and returns its identifier.
	Insert(ctx context.Context, k *model.Kuesioner) (string, error)
	// FindAll returns every stored response, newest first.
	FindAll(ctx context.Context) ([]model.Kuesioner, error)
	// Count returns the number of stored responses.
	Count(ctx context.Context) (int64, error)
}

// UserRepository stores admin dashboard accounts.
type UserRepository interface {
	// FindByEmail returns (nil, nil) when no account matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) (string, error)
}
