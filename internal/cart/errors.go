package cart

import "errors"

var (
	// ErrOutOfStock rejects adding a product whose snapshot reports no stock.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrStockLimitReached rejects an increment that would push a line's
	// quantity past the stock captured on its product snapshot.
	ErrStockLimitReached = errors.New("stock limit reached")
)
