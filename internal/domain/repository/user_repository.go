// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The match is exact against the stored email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Count returns the total number of user accounts.
	// Used by registration to decide whether this is the bootstrap admin.
	Count(ctx context.Context) (int64, error)

	// UpdateRole sets the role of an existing user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// Delete removes a user account. No last-admin protection is applied here.
	Delete(ctx context.Context, id uuid.UUID) error
}
