package order

import (
	"context"
	"errors"
	"strings"

	"sevencake/internal/domain"
)

type Service struct {
	repo repository
}

type repository interface {
	Checkout(ctx context.Context, userID int64, phone, paymentMethod string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

func New(repo repository) *Service {
	return &Service{repo: repo}
}

// CheckoutInput carries the fields the checkout form collects.
type CheckoutInput struct {
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
}

// Checkout places an order from the user's current cart. The repository
// runs the order insert, item snapshots and cart clear in one transaction;
// an empty cart surfaces as domain.ErrEmptyCart.
func (s *Service) Checkout(ctx context.Context, userID int64, in CheckoutInput) (*domain.Order, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, errors.New("phone required")
	}
	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		return nil, errors.New("payment method required")
	}
	return s.repo.Checkout(ctx, userID, phone, payment)
}

// History lists the user's orders, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// ItemsForUser returns the order's line items after checking the order
// belongs to the user. Other users' orders look like they do not exist.
func (s *Service) ItemsForUser(ctx context.Context, userID, orderID int64) ([]domain.OrderItem, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s.items(ctx, orderID)
}

// ListAll returns every order for the admin screen, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Items returns an order's line items without an ownership check (admin).
func (s *Service) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.items(ctx, orderID)
}

// UpdateStatus applies a status change guarded by the transition table:
// Pending may move to Completed or Canceled, terminal states only accept a
// repeat of themselves (a no-op).
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := o.Status.Transition(next); err != nil {
		return nil, err
	}
	if o.Status == next {
		return o, nil
	}
	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

func (s *Service) items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	items, err := s.repo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.OrderItem{}
	}
	return items, nil
}
