package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-service/internal/api/metrics"
	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

// AuditDispatcher is the interface handlers use to enqueue audit events.
// Enqueueing is fire-and-forget: a full queue or failed write never affects
// the response.
type AuditDispatcher interface {
	Enqueue(event ports.AuditEventInput)
}

// UserHandler handles HTTP requests for account management and login.
type UserHandler struct {
	service ports.UserService
	audit   AuditDispatcher
}

func NewUserHandler(service ports.UserService, audit AuditDispatcher) *UserHandler {
	return &UserHandler{service: service, audit: audit}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/ [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		IsActive:  req.IsActive,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrUsernameTaken):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Actor:     user.Username,
		Action:    domain.AuditUserRegistered,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// List returns all user accounts, sanitized.
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Success      200  {array}  userResponse
// @Router       /auth/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update applies a partial update to a user by id.
//
// @Summary      Update a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		IsActive:  req.IsActive,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user by id. Requires a valid bearer token — any valid
// token, not necessarily the target user's own. Idempotent.
//
// @Summary      Delete a user
// @Tags         auth
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxUsername(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	h.audit.Enqueue(ports.AuditEventInput{
		Actor:     caller,
		Action:    domain.AuditUserDeleted,
		Subject:   c.Param("id"),
		Timestamp: time.Now().UTC(),
	})

	return c.NoContent(http.StatusNoContent)
}

// Login exchanges form-encoded credentials for a bearer token.
//
// @Summary      Login for access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      400  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /auth/token [post]
func (h *UserHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, user, err := h.service.Login(c.Request().Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": err.Error()})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Actor:     user.Username,
		Action:    domain.AuditUserLogin,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
