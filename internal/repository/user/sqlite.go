package user

import (
	"context"
	"database/sql"
	"errors"

	"sevencake/internal/domain"
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

func (r *sqliteRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, password, role FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `SELECT id, username, password, role FROM users WHERE id = ?`, id)
}

func (r *sqliteRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, username, password, role FROM users WHERE username = ?`, username)
}

// GetByCredentials matches username and password exactly; the store keeps
// credentials in plain text.
func (r *sqliteRepo) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	return r.get(ctx,
		`SELECT id, username, password, role FROM users WHERE username = ? AND password = ?`,
		username, password)
}

func (r *sqliteRepo) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, role) VALUES (?, ?, ?)`,
		in.Username, in.Password, in.Role)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: in.Username, Password: in.Password, Role: in.Role}, nil
}

func (r *sqliteRepo) Update(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password = ?, role = ? WHERE id = ?`,
		u.Username, u.Password, u.Role, u.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) UpdateProfile(ctx context.Context, id int64, username, password string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password = ? WHERE id = ?`,
		username, password, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepo) get(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
