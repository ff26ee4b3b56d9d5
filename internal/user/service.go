package user

import (
	"context"
	"errors"

	"dmdstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, login, password string) (User, error)
	Login(ctx context.Context, login, password string) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates a new account. The role is always RoleUser; admin
// accounts exist only through first-boot seeding.
func (s *service) Register(ctx context.Context, login, password string) (User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, login, hashed, RoleUser)
	if err != nil {
		if !errors.Is(err, ErrLoginTaken) {
			log.Error("failed to create user", zap.String("login", login), zap.Error(err))
		}
		return User{}, err
	}

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("login", u.Login),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, login, password string) (User, error) {
	u, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
