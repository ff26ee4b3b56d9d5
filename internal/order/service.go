package order

import (
	"context"
	"strings"
	"time"

	"dmdstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, userLogin string, input PlaceInput) (int64, error)
	ListWithItems(ctx context.Context) ([]Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Place validates the cart, computes the total from the submitted
// lines and persists the order header plus items in one transaction.
// The user login comes from the authenticated session, never from the
// request body.
func (s *service) Place(ctx context.Context, userLogin string, input PlaceInput) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("user_login", userLogin),
		zap.Int("item_count", len(input.Items)),
	)

	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Address) == "" ||
		len(input.Items) == 0 {
		log.Warn("order rejected: missing delivery fields or empty cart")
		return 0, ErrInvalidOrder
	}

	items := make([]OrderItem, 0, len(input.Items))
	var total int64

	for i, line := range input.Items {
		logItem := log.With(
			zap.Int("index", i),
			zap.Int64("product_id", line.ProductID),
		)

		qty := line.Qty
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			logItem.Warn("invalid quantity", zap.Int("qty", line.Qty))
			return 0, ErrInvalidOrder
		}
		if line.Price < 0 {
			logItem.Warn("invalid price", zap.Int64("price", line.Price))
			return 0, ErrInvalidOrder
		}

		title := line.Title
		if title == "" {
			title = "Product"
		}

		total += line.Price * int64(qty)

		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Title:     title,
			Price:     line.Price,
			Qty:       qty,
			Image:     line.Image,
		})
	}

	o := &Order{
		UserLogin: userLogin,
		FullName:  input.FullName,
		Phone:     input.Phone,
		Address:   input.Address,
		Comment:   input.Comment,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateTx(ctx, o, items); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return 0, err
	}

	log.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.Int64("total", total),
	)

	return o.ID, nil
}

func (s *service) ListWithItems(ctx context.Context) ([]Order, error) {
	return s.repo.ListWithItems(ctx)
}
