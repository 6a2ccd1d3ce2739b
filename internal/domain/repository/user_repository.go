// Package repository defines the persistence contracts the domain depends on,
// keeping storage details out of the business logic.
package repository

import (
	"context"

	"hubmark/internal/errors"

	"hubmark/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the given lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the contract for accessing and manipulating User
// records. The implementation must enforce username uniqueness at the storage
// layer; callers treat a uniqueness violation on Create as the authoritative
// "already exists" signal, not any prior existence check.
type UserRepository interface {
	// FindByUsername retrieves a user by their unique username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by their primary key.
	// Returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and
	// timestamps on success.
	Create(ctx context.Context, user *entity.User) error

	// Update rewrites a user's mutable fields (the password hash).
	// The username is immutable once created.
	Update(ctx context.Context, user *entity.User) error
}
