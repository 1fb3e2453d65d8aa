// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their canonical identity.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// EmailAvailable reports whether no account uses the given email yet.
	// It is a fast-path check only; the unique constraint on the user table
	// remains the authoritative guard against duplicate registration.
	EmailAvailable(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity to the storage. A unique-constraint
	// violation on email surfaces as a conflict error.
	Create(ctx context.Context, user *entity.User) error

	// List retrieves users ordered by creation, paginated by offset/limit.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
}
