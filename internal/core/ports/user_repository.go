package ports

import (
	"context"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Uniqueness of email
// and username is enforced at the service layer via pre-insert lookups, not
// by a storage constraint.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)

	// UpdateFields applies a partial $set-style update to the user with the
	// given id. Only the listed fields change. Returns ErrUserNotFound when
	// no document matches.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error

	// Delete removes the user with the given id. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id string) error
}
