package order

import "time"

type Order struct {
	ID        int64       `json:"id"`
	UserLogin string      `json:"user_login"`
	FullName  string      `json:"full_name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Comment   string      `json:"comment"`
	Total     int64       `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// OrderItem snapshots the cart line at order time. ProductID is kept
// for reference only, never as a live foreign key, so later catalog
// edits cannot alter a placed order.
type OrderItem struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	Image     string `json:"image"`
}

// CartLine is the client-supplied snapshot of one cart row. There is
// deliberately no total field anywhere in the input: the total is
// always recomputed server-side.
type CartLine struct {
	ProductID int64  `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	Image     string `json:"image"`
}

type PlaceInput struct {
	FullName string     `json:"fullName"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	Comment  string     `json:"comment"`
	Items    []CartLine `json:"items"`
}
