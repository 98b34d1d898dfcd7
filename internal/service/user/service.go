package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"sevencake/internal/domain"
	userrepo "sevencake/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided session token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUsernameTaken is returned when signup hits an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)

// Service handles login/logout sessions and user CRUD. Sessions replace the
// original app's process-wide "logged-in user" with explicit bearer tokens.
type Service struct {
	repo       repository
	tokens     *tokenManager
	sessionTTL time.Duration
}

type repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	Create(ctx context.Context, in userrepo.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, u domain.User) error
	UpdateProfile(ctx context.Context, id int64, username, password string) error
	Delete(ctx context.Context, id int64) error
}

func New(repo repository, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 48 * time.Hour
	}
	return &Service{
		repo:       repo,
		tokens:     newTokenManager(),
		sessionTTL: sessionTTL,
	}
}

// Signup registers a storefront account with the user role.
func (s *Service) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username required")
	}
	if password == "" {
		return nil, errors.New("password required")
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.repo.Create(ctx, userrepo.CreateUserInput{
		Username: username,
		Password: password,
		Role:     domain.RoleUser,
	})
}

// Login checks the credentials against the store and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByCredentials(ctx, strings.TrimSpace(username), password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	token, err := s.tokens.Issue(u.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the session token. Revoking an unknown token is a no-op.
func (s *Service) Logout(_ context.Context, token string) {
	s.tokens.Revoke(token)
}

// LookupByToken resolves a session token to its user.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.GetByID(ctx, meta.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The account was deleted out from under the session.
			s.tokens.Revoke(token)
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile lets the session's own user change username and password.
func (s *Service) UpdateProfile(ctx context.Context, id int64, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username required")
	}
	if password == "" {
		return nil, errors.New("password required")
	}
	if err := s.repo.UpdateProfile(ctx, id, username, password); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// List, Create, Update and Delete back the admin user-management screen.

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, username, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username required")
	}
	if password == "" {
		return nil, errors.New("password required")
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, errors.New("role must be user or admin")
	}
	return s.repo.Create(ctx, userrepo.CreateUserInput{Username: username, Password: password, Role: role})
}

func (s *Service) Update(ctx context.Context, u domain.User) error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username required")
	}
	if u.Role != domain.RoleUser && u.Role != domain.RoleAdmin {
		return errors.New("role must be user or admin")
	}
	return s.repo.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
