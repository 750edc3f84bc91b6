package ports

import (
	"context"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// TodoRepository defines persistence for to-do items. Every operation that
// targets an existing item filters on id AND owner together, so a caller can
// never touch another user's document.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.ToDo) (*domain.ToDo, error)
	FindByOwner(ctx context.Context, username string) ([]domain.ToDo, error)

	// Update applies a $set-style update to the item matching both id and
	// owner. Returns ErrTodoNotFound when nothing matches — including when
	// the item exists but belongs to someone else.
	Update(ctx context.Context, id, username string, fields map[string]any) error

	// Delete removes the item matching both id and owner, with the same
	// not-found semantics as Update.
	Delete(ctx context.Context, id, username string) error
}
