package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/salescrm/internal/auth"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/internal/repository"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

// AuthService provides authentication business logic
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Logout(ctx context.Context, tokenID string) error
	Refresh(ctx context.Context, tokenID, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
}

type authService struct {
	trx            transactor.Transactor
	userRepo       repository.UserRepository
	rfrTknRepo     repository.RefreshTokenRepository
	jwtIssuer      *auth.JwtIssuer
	rfrTokenIssuer *auth.RefreshTokenIssuer
}

// NewAuthService builds new AuthService
func NewAuthService(
	trx transactor.Transactor,
	jwtIssuer *auth.JwtIssuer,
	rfrTokenIssuer *auth.RefreshTokenIssuer,
	userRepo repository.UserRepository,
	rfrTknRepo repository.RefreshTokenRepository,
) AuthService {
	return &authService{
		trx:            trx,
		jwtIssuer:      jwtIssuer,
		rfrTokenIssuer: rfrTokenIssuer,
		userRepo:       userRepo,
		rfrTknRepo:     rfrTknRepo,
	}
}

// Signup registers new account, email must not be taken yet
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return storeErr(err)
		}

		if existing != nil {
			return errs.NewConflictErr("email", fmt.Sprintf("user with email %s already exists", email))
		}

		if err := s.userRepo.Create(ctx, u); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, storeErr(err)
	}

	if user == nil {
		return nil, nil, errs.NewUnauthorizedErr("invalid email or password")
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, errs.NewUnauthorizedErr("invalid email or password")
	}

	jwtToken, err := s.jwtIssuer.Sign(user.ID, user.Name, string(user.Role), at)
	if err != nil {
		return nil, nil, err
	}

	rfrToken := s.rfrTokenIssuer.Sign(user.ID, fingerprint, at)

	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		userTkns, err := s.rfrTknRepo.FindTokensByUserID(ctx, user.ID)
		if err != nil {
			return storeErr(err)
		}

		if len(userTkns) >= s.rfrTokenIssuer.TokensMaxCount() {
			if err := s.rfrTknRepo.DeleteByUserID(ctx, user.ID); err != nil {
				return storeErr(err)
			}
		}

		if err := s.rfrTknRepo.Create(ctx, rfrToken); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return jwtToken, rfrToken, nil
}

func (s *authService) Refresh(ctx context.Context, tokenID, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	var jwtToken *auth.Jwt
	var newRfrToken *model.RefreshToken

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		rfrToken, err := s.rfrTknRepo.FindByID(ctx, tokenID)
		if err != nil {
			return storeErr(err)
		}

		if rfrToken == nil {
			return errs.NewUnauthorizedErr("non-existent refresh token provided")
		}

		if err := s.rfrTknRepo.DeleteByID(ctx, rfrToken.ID); err != nil {
			return storeErr(err)
		}

		if err := auth.VerifyRefreshToken(rfrToken, fingerprint, at); err != nil {
			return errs.NewUnauthorizedErr(err.Error())
		}

		user, err := s.userRepo.FindByID(ctx, rfrToken.UserID)
		if err != nil {
			return storeErr(err)
		}

		if user == nil {
			return errs.NewUnauthorizedErr("user of refresh token no longer exists")
		}

		jwtToken, err = s.jwtIssuer.Sign(user.ID, user.Name, string(user.Role), at)
		if err != nil {
			return err
		}

		newRfrToken = s.rfrTokenIssuer.Sign(user.ID, fingerprint, at)
		if err := s.rfrTknRepo.Create(ctx, newRfrToken); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return jwtToken, newRfrToken, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string) error {
	if err := s.rfrTknRepo.DeleteByID(ctx, tokenID); err != nil {
		return storeErr(err)
	}
	return nil
}
