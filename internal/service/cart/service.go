package cart

import (
	"context"
	"errors"
	"fmt"

	"sevencake/internal/domain"
)

type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	AddItem(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, cartID int64, quantity int) error
	Remove(ctx context.Context, cartID int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// Cart is the user's cart with its display total.
type Cart struct {
	Lines []domain.CartLine `json:"items"`
	Total int64             `json:"total"`
}

// Add puts one unit of the product into the user's cart: a repeated add
// bumps the existing line's quantity.
func (s *Service) Add(ctx context.Context, userID, productID int64) error {
	if s.productRepo == nil {
		return errors.New("product repository unavailable")
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
		}
		return err
	}
	return s.repo.AddItem(ctx, userID, productID)
}

// Fetch returns the cart lines joined with product data, plus the total.
func (s *Service) Fetch(ctx context.Context, userID int64) (*Cart, error) {
	lines, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return &Cart{Lines: lines, Total: domain.CartTotal(lines)}, nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
// An unknown cart ID is treated as already removed.
func (s *Service) UpdateQuantity(ctx context.Context, cartID int64, quantity int) error {
	return s.repo.UpdateQuantity(ctx, cartID, quantity)
}

// Remove deletes the line outright.
func (s *Service) Remove(ctx context.Context, cartID int64) error {
	return s.repo.Remove(ctx, cartID)
}
