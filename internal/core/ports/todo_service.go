package ports

import (
	"context"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// TodoInput is the DTO passed from the transport layer for create and
// update. The owner never appears here: it is taken from the authenticated
// caller, not from the request body.
type TodoInput struct {
	Name        string
	Description string
	Complete    bool
}

// TodoService exposes owner-scoped CRUD over to-do items. Update and Delete
// against an item the caller does not own are silent no-ops: the store is
// left unchanged and no error is reported.
type TodoService interface {
	List(ctx context.Context, username string) ([]domain.ToDo, error)
	Create(ctx context.Context, username string, in TodoInput) (*domain.ToDo, error)
	Update(ctx context.Context, id, username string, in TodoInput) error
	Delete(ctx context.Context, id, username string) error
}
