package order

import "errors"

var ErrInvalidOrder = errors.New("invalid order data")
