package commands

import (
	"context"
	"log/slog"

	"campreserve/internal/domain/user"
	"campreserve/internal/pkg/errs"
	"campreserve/internal/pkg/jwt"
	"campreserve/internal/pkg/password"
	"campreserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, emailVO.Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	// Placeholder accounts carry a random secret, so this fails for them
	// until the owner completes verification and sets a real password.
	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID)
	})
	if err != nil {
		// Not critical; the login itself succeeded
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      snap.ID,
		Role:        role,
		AccessToken: token,
	}, nil
}
