package httpserver

import (
	"context"
	"errors"

	"sevencake/internal/domain"
	cartsvc "sevencake/internal/service/cart"
	ordersvc "sevencake/internal/service/order"
	productsvc "sevencake/internal/service/product"
	usersvc "sevencake/internal/service/user"
)

type stubUserService struct {
	sessions map[string]*domain.User
	revoked  []string
}

func newStubUserService() *stubUserService {
	return &stubUserService{sessions: map[string]*domain.User{
		"user-token":  {ID: 1, Username: "Chang", Role: domain.RoleUser},
		"admin-token": {ID: 2, Username: "admin", Role: domain.RoleAdmin},
	}}
}

func (s *stubUserService) Signup(_ context.Context, username, _ string) (*domain.User, error) {
	if username == "Chang" {
		return nil, usersvc.ErrUsernameTaken
	}
	return &domain.User{ID: 9, Username: username, Role: domain.RoleUser}, nil
}

func (s *stubUserService) Login(_ context.Context, username, password string) (*domain.User, string, error) {
	if username == "Chang" && password == "777" {
		return s.sessions["user-token"], "user-token", nil
	}
	return nil, "", usersvc.ErrInvalidCredentials
}

func (s *stubUserService) Logout(_ context.Context, token string) {
	s.revoked = append(s.revoked, token)
}

func (s *stubUserService) LookupByToken(_ context.Context, token string) (*domain.User, error) {
	u, ok := s.sessions[token]
	if !ok {
		return nil, usersvc.ErrInvalidToken
	}
	return u, nil
}

func (s *stubUserService) UpdateProfile(_ context.Context, id int64, username, _ string) (*domain.User, error) {
	return &domain.User{ID: id, Username: username, Role: domain.RoleUser}, nil
}

func (s *stubUserService) List(_ context.Context) ([]domain.User, error) {
	return []domain.User{*s.sessions["user-token"], *s.sessions["admin-token"]}, nil
}

func (s *stubUserService) Create(_ context.Context, username, _, role string) (*domain.User, error) {
	return &domain.User{ID: 10, Username: username, Role: role}, nil
}

func (s *stubUserService) Update(_ context.Context, _ domain.User) error { return nil }

func (s *stubUserService) Delete(_ context.Context, _ int64) error { return nil }

type stubCategoryService struct {
	categories []domain.Category
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryService) Get(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCategoryService) Create(_ context.Context, name string) (*domain.Category, error) {
	return &domain.Category{ID: 99, Name: name}, nil
}

func (s *stubCategoryService) Update(_ context.Context, id int64, name string) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: name}, nil
}

func (s *stubCategoryService) Delete(_ context.Context, _ int64) error { return nil }

type stubProductService struct {
	products []domain.Product
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductService) ListByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductService) Get(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductService) Create(_ context.Context, in productsvc.Input) (*domain.Product, error) {
	return &domain.Product{ID: 99, Name: in.Name, Price: in.Price, Img: in.Img, CategoryID: in.CategoryID}, nil
}

func (s *stubProductService) Update(_ context.Context, id int64, in productsvc.Input) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: in.Name, Price: in.Price, Img: in.Img, CategoryID: in.CategoryID}, nil
}

func (s *stubProductService) Delete(_ context.Context, _ int64) error { return nil }

type stubCartService struct {
	cart   *cartsvc.Cart
	addErr error
}

func (s *stubCartService) Add(_ context.Context, _, _ int64) error { return s.addErr }

func (s *stubCartService) Fetch(_ context.Context, _ int64) (*cartsvc.Cart, error) {
	if s.cart == nil {
		return &cartsvc.Cart{Lines: []domain.CartLine{}}, nil
	}
	return s.cart, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, _ int64, _ int) error { return nil }

func (s *stubCartService) Remove(_ context.Context, _ int64) error { return nil }

type stubOrderService struct {
	orders      map[int64]*domain.Order
	checkoutErr error
}

func (s *stubOrderService) Checkout(_ context.Context, userID int64, in ordersvc.CheckoutInput) (*domain.Order, error) {
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	return &domain.Order{ID: 1, UserID: userID, TotalPrice: 65000, Status: domain.StatusPending, Phone: in.Phone, PaymentMethod: in.PaymentMethod}, nil
}

func (s *stubOrderService) History(_ context.Context, userID int64) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *stubOrderService) ItemsForUser(_ context.Context, userID, orderID int64) ([]domain.OrderItem, error) {
	o, ok := s.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return o.Items, nil
}

func (s *stubOrderService) ListAll(_ context.Context) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (s *stubOrderService) Items(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o.Items, nil
}

func (s *stubOrderService) UpdateStatus(_ context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := o.Status.Transition(next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

var errBoom = errors.New("boom")
