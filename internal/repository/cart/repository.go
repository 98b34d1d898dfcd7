package cart

import (
	"context"

	"sevencake/internal/domain"
)

type Repository interface {
	// AddItem inserts a line with quantity 1 or bumps the existing line
	// for the same (user, product) pair by 1, atomically.
	AddItem(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error)
	// UpdateQuantity sets the line's quantity; a quantity of zero or less
	// deletes the line. Unknown cart IDs are treated as already removed.
	UpdateQuantity(ctx context.Context, cartID int64, quantity int) error
	Remove(ctx context.Context, cartID int64) error
}
