package user

import (
	"context"

	"sevencake/internal/domain"
)

type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, u domain.User) error
	UpdateProfile(ctx context.Context, id int64, username, password string) error
	Delete(ctx context.Context, id int64) error
}
