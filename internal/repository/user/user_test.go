package user

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"sevencake/internal/db"
	"sevencake/internal/domain"
	"sevencake/internal/migrate"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	if err := migrate.Apply(sqlDB); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqlDB
}

func TestGetByCredentials(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLite(testDB(t))

	created, err := repo.Create(ctx, CreateUserInput{Username: "Chang", Password: "777", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByCredentials(ctx, "Chang", "777")
	if err != nil {
		t.Fatalf("get by credentials: %v", err)
	}
	if got.ID != created.ID || got.Role != domain.RoleUser {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := repo.GetByCredentials(ctx, "Chang", "wrong"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong password, got %v", err)
	}
	if _, err := repo.GetByCredentials(ctx, "nobody", "777"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestUsernameUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLite(testDB(t))

	if _, err := repo.Create(ctx, CreateUserInput{Username: "Chang", Password: "777", Role: domain.RoleUser}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, CreateUserInput{Username: "Chang", Password: "888", Role: domain.RoleUser}); err == nil {
		t.Fatal("expected unique constraint error for duplicate username")
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLite(testDB(t))

	created, err := repo.Create(ctx, CreateUserInput{Username: "Chang", Password: "777", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateProfile(ctx, created.ID, "ChangMoi", "999"); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "ChangMoi" || got.Password != "999" {
		t.Fatalf("unexpected user after profile update: %+v", got)
	}
	if got.Role != domain.RoleUser {
		t.Fatalf("profile update must not change role, got %s", got.Role)
	}

	if err := repo.UpdateProfile(ctx, 999, "x", "y"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
