package product

import (
	"context"
	"strings"

	"dmdstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p Product) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if strings.TrimSpace(p.Title) == "" {
		log.Warn("create product rejected: empty title")
		return 0, ErrTitleRequired
	}
	if p.Price < 0 {
		return 0, ErrInvalidPrice
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}

	log.Info("product created", zap.Int64("product_id", id))
	return id, nil
}

func (s *service) Update(ctx context.Context, p Product) error {
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
