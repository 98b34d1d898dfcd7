package product

import (
	"context"
	"errors"
	"strings"

	"sevencake/internal/domain"
	productrepo "sevencake/internal/repository/product"
)

type Service struct {
	repo repository
}

type repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

func New(repo repository) *Service {
	return &Service{repo: repo}
}

// Input carries product fields supplied by the admin form.
type Input struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Img        string `json:"img"`
	CategoryID int64  `json:"categoryId"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.Price) == "" {
		return errors.New("price required")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, productrepo.CreateProductInput{
		Name:       strings.TrimSpace(in.Name),
		Price:      strings.TrimSpace(in.Price),
		Img:        strings.TrimSpace(in.Img),
		CategoryID: in.CategoryID,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := domain.Product{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		Price:      strings.TrimSpace(in.Price),
		Img:        strings.TrimSpace(in.Img),
		CategoryID: in.CategoryID,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
