// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
	"herenow/internal/errors"
)

// ErrUserNotFound is returned when the requested user row does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles persistence of user accounts.
type UserRepository interface {
	// Create persists a new user and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error
	// FindByID looks a user up by primary key; ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail looks a user up by email; ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update persists mutable profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
