package order

import (
	"context"

	"sevencake/internal/domain"
)

type Repository interface {
	// Checkout converts the user's cart into an order inside a single
	// transaction: it snapshots each line's current price into an order
	// item, stores the summed total, and clears the cart. An empty cart
	// returns domain.ErrEmptyCart with nothing written; any other failure
	// rolls the whole transaction back.
	Checkout(ctx context.Context, userID int64, phone, paymentMethod string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
}
