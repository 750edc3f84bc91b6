package handler

import "github.com/taskhub/todo-service/internal/core/domain"

// todoRequest is used for both create and update. It deliberately has no
// username field: the owner is always the authenticated caller.
type todoRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

type todoResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
	Username    string `json:"username"`
}

func toTodoResponse(t *domain.ToDo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Complete:    t.Complete,
		Username:    t.Username,
	}
}
