package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per username. Implementations
// are expected to degrade open: a throttle backend outage must not lock
// users out.
type LoginThrottle interface {
	// Allow reports whether the username is still under the failure budget.
	Allow(ctx context.Context, username string) (bool, error)
	// RecordFailure counts one failed attempt against the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// UserService implements registration, listing, profile updates, deletion,
// and login. It owns the uniqueness checks (email first, then username —
// check-then-insert, no storage constraint) and never stores or logs a raw
// password.
type UserService struct {
	repo     ports.UserRepository
	hasher   *PasswordHasher
	tokens   *TokenService
	throttle LoginThrottle
	loginTTL time.Duration
	logger   zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	hasher *PasswordHasher,
	tokens *TokenService,
	throttle LoginThrottle,
	loginTTL time.Duration,
	logger zerolog.Logger,
) *UserService {
	if loginTTL <= 0 {
		loginTTL = 30 * time.Minute
	}
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		loginTTL: loginTTL,
		logger:   logger,
	}
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     in.IsActive,
		Role:         in.Role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update by id. Email and username are not
// re-checked for uniqueness here; a password, when present, is re-hashed
// before storage.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) error {
	fields := make(map[string]any)
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return err
		}
		fields["hashed_password"] = hash
	}
	if len(fields) == 0 {
		return nil
	}

	return s.repo.UpdateFields(ctx, id, fields)
}

// Delete removes a user by id. Deleting an unknown id is not an error.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Login authenticates username/password and issues a bearer token with the
// login TTL. Unknown user and wrong password are indistinguishable to the
// caller. Deleting or deactivating the account later does not revoke a
// token already issued.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueWithTTL(domain.TokenClaims{Subject: user.Username, Email: user.Email}, s.loginTTL)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}

func (s *UserService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
