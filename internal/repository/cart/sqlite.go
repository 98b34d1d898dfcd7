package cart

import (
	"context"
	"database/sql"

	"sevencake/internal/domain"
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

func (r *sqliteRepo) AddItem(ctx context.Context, userID, productID int64) error {
	// The UNIQUE(user_id, product_id) constraint makes the upsert a single
	// atomic statement; there is no read-then-write window.
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart (user_id, product_id, quantity)
VALUES (?, ?, 1)
ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = quantity + 1
`, userID, productID)
	return err
}

func (r *sqliteRepo) ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT cart.id, cart.product_id, products.name, products.img, products.price, cart.quantity
FROM cart
JOIN products ON products.id = cart.product_id
WHERE cart.user_id = ?
ORDER BY cart.id ASC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.CartID, &l.ProductID, &l.Name, &l.Img, &l.Price, &l.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *sqliteRepo) UpdateQuantity(ctx context.Context, cartID int64, quantity int) error {
	if quantity <= 0 {
		return r.Remove(ctx, cartID)
	}
	// No rows-affected check: updating a line that no longer exists is a
	// no-op, the same outcome as removing it.
	_, err := r.db.ExecContext(ctx, `UPDATE cart SET quantity = ? WHERE id = ?`, quantity, cartID)
	return err
}

func (r *sqliteRepo) Remove(ctx context.Context, cartID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE id = ?`, cartID)
	return err
}
