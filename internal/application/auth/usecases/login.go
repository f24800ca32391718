package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

// PasswordVerifier checks a plain password against the stored hash.
type PasswordVerifier interface {
	Verify(hashedPassword, password string) error
}

// TokenIssuer mints the access/refresh pair for an authenticated user.
type TokenIssuer interface {
	IssueTokens(userID uint, email, role string, condominiumID *uint) (accessToken, refreshToken string, err error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, verifier PasswordVerifier, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Same error for unknown email and bad password.
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.verifier.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if u.Status() == user.StatusBlocked {
		return nil, errors.NewForbiddenError("account is blocked")
	}

	access, refresh, err := uc.tokens.IssueTokens(u.ID(), u.Email(), string(u.Role()), u.CondominiumID())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{
		User:         u,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
