package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service/auth"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
)

// UserService handles account registration and self-service operations.
// All read and write operations other than Register require the caller to
// be the account owner.
type UserService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a UserService with the given collaborators.
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, log *slog.Logger) (*UserService, error) {
	if userStore == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("password hasher cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserService{
		userStore: userStore,
		hasher:    hasher,
		logger:    log.With(slog.String("component", "user_service")),
	}, nil
}

// Register creates a new active account. The plaintext password is hashed
// before the record is persisted and never stored.
func (s *UserService) Register(ctx context.Context, email, firstName, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, firstName, password)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "account registered",
		slog.String("user_id", user.ID.String()))
	return user, nil
}

// Get returns the account identified by id. Callers may only read their
// own record.
func (s *UserService) Get(ctx context.Context, callerID, id uuid.UUID) (*domain.User, error) {
	if callerID != id {
		return nil, ErrNotSelf
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsOwner(user, callerID) {
		return nil, ErrNotSelf
	}
	return user, nil
}

// UserUpdate carries the optional fields of an account update. Nil fields
// are left unchanged.
type UserUpdate struct {
	Email     *string
	FirstName *string
	Password  *string
	IsActive  *bool
}

// Update applies the given changes to the account identified by id.
// Callers may only update their own record. A password change is hashed
// before storage.
func (s *UserService) Update(ctx context.Context, callerID, id uuid.UUID, update UserUpdate) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.Get(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		user.Email = domain.NormalizeEmail(*update.Email)
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	if update.Password != nil {
		if err := domain.ValidatePassword(*update.Password); err != nil {
			return nil, err
		}
		hashed, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "account updated",
		slog.String("user_id", user.ID.String()))
	return user, nil
}

// Delete removes the account identified by id along with its tasks and
// recovery tokens, which cascade at the database level. Callers may only
// delete their own record.
func (s *UserService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if callerID != id {
		return ErrNotSelf
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}

	log.InfoContext(ctx, "account deleted",
		slog.String("user_id", id.String()))
	return nil
}
