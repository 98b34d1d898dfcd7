package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sevencake/internal/domain"
)

type sqliteRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db, now: time.Now}
}

func (r *sqliteRepo) Checkout(ctx context.Context, userID int64, phone, paymentMethod string) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	lines, err := cartLinesTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := domain.CartTotal(lines)
	orderDate := r.now().UTC().Truncate(time.Second)

	res, err := tx.ExecContext(ctx, `
INSERT INTO orders (user_id, total_price, status, order_date, phone, payment_method)
VALUES (?, ?, ?, ?, ?, ?)
`, userID, total, domain.StatusPending, orderDate.Format(time.RFC3339), phone, paymentMethod)
	if err != nil {
		return nil, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            orderID,
		UserID:        userID,
		TotalPrice:    total,
		Status:        domain.StatusPending,
		OrderDate:     orderDate,
		Phone:         phone,
		PaymentMethod: paymentMethod,
	}

	for _, line := range lines {
		itemRes, err := tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, price)
VALUES (?, ?, ?, ?)
`, orderID, line.ProductID, line.Quantity, line.Price)
		if err != nil {
			return nil, err
		}
		itemID, err := itemRes.LastInsertId()
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:          itemID,
			OrderID:     orderID,
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart WHERE user_id = ?`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

const selectOrder = `
SELECT id, user_id, total_price, status, order_date, phone, payment_method
FROM orders
`

func (r *sqliteRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		selectOrder+`WHERE user_id = ? ORDER BY order_date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *sqliteRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, selectOrder+`ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	var orderDate string
	err := r.db.QueryRowContext(ctx, selectOrder+`WHERE id = ?`, id).
		Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.Status, &orderDate, &o.Phone, &o.PaymentMethod)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.OrderDate = parseOrderDate(orderDate)
	return &o, nil
}

func (r *sqliteRepo) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = ?
ORDER BY oi.id ASC
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *sqliteRepo) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, orderID)
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

func cartLinesTx(ctx context.Context, tx *sql.Tx, userID int64) ([]domain.CartLine, error) {
	rows, err := tx.QueryContext(ctx, `
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

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var orderDate string
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.Status, &orderDate, &o.Phone, &o.PaymentMethod); err != nil {
			return nil, err
		}
		o.OrderDate = parseOrderDate(orderDate)
		result = append(result, o)
	}
	return result, rows.Err()
}

func parseOrderDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
