package order

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

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

func seedCatalog(t *testing.T, sqlDB *sql.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO users (id, username, password, role) VALUES (1, 'chang', '777', 'user')`,
		`INSERT INTO categories (id, name) VALUES (1, 'Pudding'), (2, 'Cup Cake')`,
		`INSERT INTO products (id, name, price, img, category_id) VALUES (1, 'Vanilla Pudding', '25.000', 'vanilla.jpg', 1)`,
		`INSERT INTO products (id, name, price, img, category_id) VALUES (2, 'Gourmet Red Velvet Cupcake', '15.000', 'velvet.jpg', 2)`,
	}
	for _, q := range stmts {
		if _, err := sqlDB.Exec(q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func fillCart(t *testing.T, sqlDB *sql.DB) {
	t.Helper()
	if _, err := sqlDB.Exec(`INSERT INTO cart (user_id, product_id, quantity) VALUES (1, 1, 2), (1, 2, 1)`); err != nil {
		t.Fatalf("fill cart: %v", err)
	}
}

func countRows(t *testing.T, sqlDB *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	sqlDB := testDB(t)
	seedCatalog(t, sqlDB)
	fillCart(t, sqlDB)
	repo := NewSQLite(sqlDB)

	order, err := repo.Checkout(ctx, 1, "0901234567", "COD")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.TotalPrice != 65000 {
		t.Fatalf("expected total 65000, got %d", order.TotalPrice)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].Price != "25.000" || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", order.Items[0])
	}
	if time.Since(order.OrderDate) > time.Minute {
		t.Fatalf("order date not set to now: %v", order.OrderDate)
	}

	if got := countRows(t, sqlDB, "cart"); got != 0 {
		t.Fatalf("expected cart cleared, got %d rows", got)
	}
	if got := countRows(t, sqlDB, "orders"); got != 1 {
		t.Fatalf("expected 1 order, got %d", got)
	}
	if got := countRows(t, sqlDB, "order_items"); got != 2 {
		t.Fatalf("expected 2 order items, got %d", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	sqlDB := testDB(t)
	seedCatalog(t, sqlDB)
	repo := NewSQLite(sqlDB)

	_, err := repo.Checkout(ctx, 1, "0901234567", "COD")
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if got := countRows(t, sqlDB, "orders"); got != 0 {
		t.Fatalf("expected no order created, got %d", got)
	}
}

func TestCheckoutRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	sqlDB := testDB(t)
	seedCatalog(t, sqlDB)
	fillCart(t, sqlDB)
	repo := NewSQLite(sqlDB)

	// Sabotage the item insert so the transaction fails after the order row
	// is written; the whole checkout must roll back.
	if _, err := sqlDB.Exec(`DROP TABLE order_items`); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if _, err := repo.Checkout(ctx, 1, "0901234567", "COD"); err == nil {
		t.Fatal("expected checkout to fail")
	}
	if got := countRows(t, sqlDB, "orders"); got != 0 {
		t.Fatalf("expected order insert rolled back, got %d rows", got)
	}
	if got := countRows(t, sqlDB, "cart"); got != 2 {
		t.Fatalf("expected cart untouched, got %d rows", got)
	}
}

func TestOrderItemPriceIsSnapshot(t *testing.T) {
	ctx := context.Background()
	sqlDB := testDB(t)
	seedCatalog(t, sqlDB)
	fillCart(t, sqlDB)
	repo := NewSQLite(sqlDB)

	order, err := repo.Checkout(ctx, 1, "0901234567", "COD")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if _, err := sqlDB.Exec(`UPDATE products SET price = '99.000' WHERE id = 1`); err != nil {
		t.Fatalf("reprice product: %v", err)
	}

	items, err := repo.ListItems(ctx, order.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if items[0].Price != "25.000" {
		t.Fatalf("expected snapshot price 25.000, got %s", items[0].Price)
	}

	reloaded, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.TotalPrice != 65000 {
		t.Fatalf("expected total unchanged at 65000, got %d", reloaded.TotalPrice)
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	sqlDB := testDB(t)
	seedCatalog(t, sqlDB)
	repo := NewSQLite(sqlDB)

	fillCart(t, sqlDB)
	first, err := repo.Checkout(ctx, 1, "0901234567", "COD")
	if err != nil {
		t.Fatalf("first checkout: %v", err)
	}
	fillCart(t, sqlDB)
	second, err := repo.Checkout(ctx, 1, "0901234567", "Card")
	if err != nil {
		t.Fatalf("second checkout: %v", err)
	}

	orders, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("expected newest order first, got ids %d, %d", orders[0].ID, orders[1].ID)
	}
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	sqlDB := testDB(t)
	seedCatalog(t, sqlDB)
	fillCart(t, sqlDB)
	repo := NewSQLite(sqlDB)

	order, err := repo.Checkout(ctx, 1, "0901234567", "COD")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if err := repo.UpdateStatus(ctx, order.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	reloaded, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Status != domain.StatusCompleted {
		t.Fatalf("expected Completed, got %s", reloaded.Status)
	}

	if err := repo.UpdateStatus(ctx, 999, domain.StatusCompleted); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown order, got %v", err)
	}
}
