package product

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

const selectColumns = `id, name, price, img, COALESCE(category_id, 0)`

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *sqliteRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM products WHERE category_id = ? ORDER BY id ASC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Img, &p.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, price, img, category_id) VALUES (?, ?, ?, ?)`,
		in.Name, in.Price, in.Img, in.CategoryID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.Product{ID: id, Name: in.Name, Price: in.Price, Img: in.Img, CategoryID: in.CategoryID}, nil
}

func (r *sqliteRepo) Update(ctx context.Context, p domain.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, price = ?, img = ?, category_id = ? WHERE id = ?`,
		p.Name, p.Price, p.Img, p.CategoryID, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserts a product or, when a row with the same name already
// exists, updates its price, image and category. Used by the importer.
func (r *sqliteRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var existingID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM products WHERE name = ?`, p.Name).Scan(&existingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return r.Create(ctx, CreateProductInput{Name: p.Name, Price: p.Price, Img: p.Img, CategoryID: p.CategoryID})
	case err != nil:
		return nil, err
	}
	p.ID = existingID
	if err := r.Update(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Img, &p.CategoryID); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
