package user

import (
	"context"
	"database/sql"
	"errors"

	"dmdstore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, login, passwordHash string, role Role) (User, error)
	FindByLogin(ctx context.Context, login string) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, login, passwordHash string, role Role) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, login, password_hash, role",
		login, passwordHash, role,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return User{}, ErrLoginTaken
		}
		log.Error("db: failed to insert user",
			zap.String("login", login),
			zap.Error(err),
		)
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByLogin(ctx context.Context, login string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, login, password_hash, role FROM users WHERE login = $1",
		login,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role)

	return u, err
}
