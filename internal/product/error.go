package product

import "errors"

var (
	ErrNotFound      = errors.New("product not found")
	ErrTitleRequired = errors.New("title required")
	ErrInvalidPrice  = errors.New("price must not be negative")
)
