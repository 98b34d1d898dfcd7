package product

import (
	"context"

	"sevencake/internal/domain"
)

type CreateProductInput struct {
	Name       string
	Price      string
	Img        string
	CategoryID int64
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
