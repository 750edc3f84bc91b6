package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

// TodoService implements owner-scoped CRUD over to-do items. Ownership
// isolation works by construction: every read filters on the caller's
// username, every mutation filters on id AND username, and a mutation that
// matches nothing is swallowed as a success-shaped no-op. A caller probing
// someone else's item ids gets the same response as for ids that never
// existed.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

func (s *TodoService) List(ctx context.Context, username string) ([]domain.ToDo, error) {
	return s.repo.FindByOwner(ctx, username)
}

// Create stores a new item owned by username. The owner always comes from
// the authenticated caller; any owner field in the request body was dropped
// before it reached the service.
func (s *TodoService) Create(ctx context.Context, username string, in ports.TodoInput) (*domain.ToDo, error) {
	todo := &domain.ToDo{
		Name:        in.Name,
		Description: in.Description,
		Complete:    in.Complete,
		Username:    username,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("username", username).Msg("todo created")
	return created, nil
}

func (s *TodoService) Update(ctx context.Context, id, username string, in ports.TodoInput) error {
	fields := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"complete":    in.Complete,
	}

	err := s.repo.Update(ctx, id, username, fields)
	if errors.Is(err, domain.ErrTodoNotFound) {
		// Missing or foreign item: silent no-op.
		s.logger.Debug().Str("id", id).Str("username", username).Msg("todo update matched nothing")
		return nil
	}
	return err
}

func (s *TodoService) Delete(ctx context.Context, id, username string) error {
	err := s.repo.Delete(ctx, id, username)
	if errors.Is(err, domain.ErrTodoNotFound) {
		s.logger.Debug().Str("id", id).Str("username", username).Msg("todo delete matched nothing")
		return nil
	}
	return err
}
