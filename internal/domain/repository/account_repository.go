// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bloom/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account
// lookup misses by id or email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type AccountRepository interface {
	// List retrieves accounts ordered by id, skipping offset rows and
	// returning at most limit of them.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, error)

	// FindByID retrieves a single account by its unique id.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves a single account by exact email match against
	// the unique index.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account, assigning its id. A uniqueness
	// violation on the email column surfaces as a domain error.
	Create(ctx context.Context, account *entity.Account) error

	// Update applies the non-nil fields of the patch to the stored account
	// and returns the updated entity.
	Update(ctx context.Context, id int64, patch *entity.AccountPatch) (*entity.Account, error)

	// Delete removes the account and returns the deleted entity.
	Delete(ctx context.Context, id int64) (*entity.Account, error)
}
