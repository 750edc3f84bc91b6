package ports

import (
	"context"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// RegisterUserInput carries all data needed to create an account. Password
// is the raw secret; it is hashed before persistence and discarded.
type RegisterUserInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
	IsActive  bool
	Role      string
}

// UpdateUserInput is a partial update: nil pointers mean "leave unchanged".
type UpdateUserInput struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Password  *string
	IsActive  *bool
	Role      *string
}

type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) error
	Delete(ctx context.Context, id string) error

	// Login authenticates username/password and returns a signed bearer
	// token. Unknown usernames and wrong passwords both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
