package order

import (
	"context"
	"database/sql"

	"dmdstore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateTx(ctx context.Context, o *Order, items []OrderItem) error
	ListWithItems(ctx context.Context) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateTx writes the order header and its items in a single
// transaction. Either everything commits or nothing does; a partial
// item write can never be reported as success.
func (r *repository) CreateTx(ctx context.Context, o *Order, items []OrderItem) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int("item_count", len(items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_login, full_name, phone, address, comment, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		o.UserLogin,
		o.FullName,
		o.Phone,
		o.Address,
		o.Comment,
		o.Total,
		o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i := range items {
		items[i].OrderID = o.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, title, price, qty, image)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			o.ID,
			items[i].ProductID,
			items[i].Title,
			items[i].Price,
			items[i].Qty,
			items[i].Image,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.Int64("product_id", items[i].ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	o.Items = items

	return nil
}

// ListWithItems loads every order newest-first, then fetches all items
// for the collected order ids in one batched query instead of one
// query per order.
func (r *repository) ListWithItems(ctx context.Context) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrdersWithItems"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_login, full_name, phone, address, comment, total, created_at
		FROM orders
		ORDER BY id DESC
	`)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	ids := []int64{}

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserLogin,
			&o.FullName,
			&o.Phone,
			&o.Address,
			&o.Comment,
			&o.Total,
			&o.CreatedAt,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, title, price, qty, image
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id DESC
	`, pq.Array(ids))
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer itemRows.Close()

	grouped := make(map[int64][]OrderItem, len(orders))
	for itemRows.Next() {
		var item OrderItem
		if err := itemRows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Title,
			&item.Price,
			&item.Qty,
			&item.Image,
		); err != nil {
			log.Error("failed to scan order item row", zap.Error(err))
			return nil, err
		}
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if items, ok := grouped[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}

	log.Debug("orders listed", zap.Int("count", len(orders)))

	return orders, nil
}
