package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service/auth"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
)

const resetMailSubject = "Password reset - Projeto Checklist"

// PasswordResetService runs the two-step password recovery flow: issue a
// single-use token and mail it to the account holder, then exchange a
// valid token for a new password.
type PasswordResetService struct {
	db              *sql.DB
	userStore       store.UserStore
	tokenStore      store.RecoveryTokenStore
	hasher          auth.PasswordHasher
	mailer          Mailer
	frontendBaseURL string
	logger          *slog.Logger
	timeFunc        func() time.Time
	runInTx         func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewPasswordResetService creates a PasswordResetService. All collaborators
// except frontendBaseURL are required.
func NewPasswordResetService(
	db *sql.DB,
	userStore store.UserStore,
	tokenStore store.RecoveryTokenStore,
	hasher auth.PasswordHasher,
	mailer Mailer,
	frontendBaseURL string,
	log *slog.Logger,
) (*PasswordResetService, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	if userStore == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if tokenStore == nil {
		return nil, errors.New("recovery token store cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("password hasher cannot be nil")
	}
	if mailer == nil {
		return nil, errors.New("mailer cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PasswordResetService{
		db:              db,
		userStore:       userStore,
		tokenStore:      tokenStore,
		hasher:          hasher,
		mailer:          mailer,
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
		logger:          log.With(slog.String("component", "password_reset_service")),
		timeFunc:        func() time.Time { return time.Now().UTC() },
		runInTx:         store.RunInTransaction,
	}, nil
}

// Request starts a recovery flow for the account registered under email.
// It always returns nil for an unknown email so that the endpoint's
// response does not reveal whether an account exists. For a known
// account, any previously issued tokens are invalidated before a new one
// is created, and a mail delivery failure is logged but not reported to
// the caller: the token row already exists and support can recover it
// out of band.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.DebugContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.tokenStore.DeleteForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to invalidate previous tokens: %w", err)
	}

	token, err := domain.NewRecoveryToken(user.ID)
	if err != nil {
		return fmt.Errorf("failed to generate recovery token: %w", err)
	}
	if err := s.tokenStore.Create(ctx, token); err != nil {
		return fmt.Errorf("failed to save recovery token: %w", err)
	}

	if err := s.mailer.Send(ctx, user.Email, resetMailSubject, s.resetMailBody(token.Token)); err != nil {
		log.WarnContext(ctx, "failed to send password reset email",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return nil
	}

	log.InfoContext(ctx, "password reset token issued",
		slog.String("user_id", user.ID.String()))
	return nil
}

// Confirm exchanges a recovery token for a new password. The token is
// consumed on success and also when found expired, so no token value is
// ever accepted twice.
func (s *PasswordResetService) Confirm(ctx context.Context, token, newPassword, confirmPassword string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	rec, err := s.tokenStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrTokenInvalid
		}
		return fmt.Errorf("failed to look up recovery token: %w", err)
	}

	if rec.IsExpired(s.timeFunc()) {
		if err := s.tokenStore.Delete(ctx, rec.ID); err != nil && !errors.Is(err, store.ErrTokenNotFound) {
			log.WarnContext(ctx, "failed to delete expired recovery token",
				slog.String("token_id", rec.ID.String()),
				slog.String("error", err.Error()))
		}
		return ErrTokenExpired
	}

	user, err := s.userStore.GetByID(ctx, rec.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account for recovery token: %w", err)
	}

	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	user.HashedPassword = hashed

	err = s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userStore.WithTx(tx).Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := s.tokenStore.WithTx(tx).Delete(ctx, rec.ID); err != nil {
			return fmt.Errorf("failed to consume recovery token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "password reset completed",
		slog.String("user_id", user.ID.String()))
	return nil
}

func (s *PasswordResetService) resetMailBody(token string) string {
	var b strings.Builder
	b.WriteString("Hello,\r\n\r\n")
	b.WriteString("We received a request to reset the password for your account.\r\n")
	b.WriteString("Use the token below to choose a new password:\r\n\r\n")
	b.WriteString("    " + token + "\r\n\r\n")
	if s.frontendBaseURL != "" {
		b.WriteString("Or follow this link:\r\n\r\n")
		b.WriteString("    " + s.frontendBaseURL + "/reset-password?token=" + token + "\r\n\r\n")
	}
	b.WriteString("The token expires in one hour and can be used only once.\r\n")
	b.WriteString("If you did not request this, you can safely ignore this message.\r\n")
	return b.String()
}
