package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dmdstore-be/internal/config"
	"dmdstore-be/internal/logger"
	"dmdstore-be/internal/user"

	"go.uber.org/zap"
)

type seedProduct struct {
	title       string
	price       int64
	image       string
	category    string
	description string
}

var sampleProducts = []seedProduct{
	{"Oak Table", 450, "images/p1.jpg", "Tables", "Solid oak table."},
	{"Modern Sofa", 900, "images/p2.jpg", "Sofas", "Comfortable modern sofa."},
	{"Dining Chair", 120, "images/p3.jpg", "Chairs", "Minimal chair for dining."},
}

// Seed inserts the default admin and sample products on first boot.
// Both steps are no-ops when the data already exists.
func Seed(ctx context.Context, db *sql.DB, cfg *config.Config) error {
	log := logger.FromCtx(ctx)

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count == 0 {
		for _, p := range sampleProducts {
			_, err := db.ExecContext(ctx, `
				INSERT INTO products (title, price, image, category, description)
				VALUES ($1, $2, $3, $4, $5)
			`, p.title, p.price, p.image, p.category, p.description)
			if err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.title, err)
			}
		}
		log.Info("seed products inserted", zap.Int("count", len(sampleProducts)))
	}

	var adminID int
	err := db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE login = $1`, cfg.AdminLogin,
	).Scan(&adminID)

	if errors.Is(err, sql.ErrNoRows) {
		hash, err := user.HashPassword(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			INSERT INTO users (login, password_hash, role)
			VALUES ($1, $2, $3)
		`, cfg.AdminLogin, hash, user.RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}

		log.Info("admin created", zap.String("login", cfg.AdminLogin))
		return nil
	}

	return err
}
