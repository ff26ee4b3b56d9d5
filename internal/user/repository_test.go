package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("bob", "hashed", "user").
			WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password_hash", "role"}).
				AddRow(1, "bob", "hashed", "user"))

		u, err := repo.Create(ctx, "bob", "hashed", RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("UniqueViolation_MapsToLoginTaken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_login_key"})

		_, err = repo.Create(ctx, "bob", "hashed", RoleUser)
		assert.ErrorIs(t, err, ErrLoginTaken)
	})

	t.Run("OtherError_PassesThrough", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err = repo.Create(ctx, "bob", "hashed", RoleUser)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrLoginTaken)
	})
}

func TestRepository_FindByLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM users WHERE login = \$1`).
			WithArgs("admin").
			WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password_hash", "role"}).
				AddRow(1, "admin", "hashed", "admin"))

		u, err := repo.FindByLogin(ctx, "admin")
		assert.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM users WHERE login = \$1`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err = repo.FindByLogin(ctx, "ghost")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
