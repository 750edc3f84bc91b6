package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-service/internal/api/metrics"
	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

// TodoHandler handles HTTP requests for to-do items. All routes sit behind
// the Auth middleware; the owner username is always read from the context.
type TodoHandler struct {
	service ports.TodoService
	audit   AuditDispatcher
}

func NewTodoHandler(service ports.TodoService, audit AuditDispatcher) *TodoHandler {
	return &TodoHandler{service: service, audit: audit}
}

// List returns the caller's to-do items.
//
// @Summary      List my to-do items
// @Tags         todo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  map[string]string
// @Router       /todo/ [get]
func (h *TodoHandler) List(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), username)
	if err != nil {
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("list").Inc()
	resp := make([]todoResponse, 0, len(todos))
	for i := range todos {
		resp = append(resp, toTodoResponse(&todos[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create stores a new to-do item owned by the caller.
//
// @Summary      Create a to-do item
// @Tags         todo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      todoRequest  true  "To-do item"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /todo/ [post]
func (h *TodoHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	todo, err := h.service.Create(c.Request().Context(), username, ports.TodoInput{
		Name:        req.Name,
		Description: req.Description,
		Complete:    req.Complete,
	})
	if err != nil {
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("create").Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Actor:     username,
		Action:    domain.AuditTodoCreated,
		Subject:   todo.ID,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Update replaces the fields of one of the caller's items. Targeting an
// item owned by someone else matches nothing and succeeds without mutating
// anything.
//
// @Summary      Update a to-do item
// @Tags         todo
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string       true  "Item id"
// @Param        body  body  todoRequest  true  "New field values"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /todo/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), username, ports.TodoInput{
		Name:        req.Name,
		Description: req.Description,
		Complete:    req.Complete,
	}); err != nil {
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("update").Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Actor:     username,
		Action:    domain.AuditTodoUpdated,
		Subject:   c.Param("id"),
		Timestamp: time.Now().UTC(),
	})

	return c.NoContent(http.StatusNoContent)
}

// Delete removes one of the caller's items, with the same silent no-op
// semantics as Update for foreign or missing ids.
//
// @Summary      Delete a to-do item
// @Tags         todo
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), username); err != nil {
		return err
	}

	metrics.TodoOperationsTotal.WithLabelValues("delete").Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Actor:     username,
		Action:    domain.AuditTodoDeleted,
		Subject:   c.Param("id"),
		Timestamp: time.Now().UTC(),
	})

	return c.NoContent(http.StatusNoContent)
}
