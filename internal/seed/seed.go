package seed

import (
	"context"
	"database/sql"
	"fmt"

	"sevencake/internal/domain"
)

var categories = []domain.Category{
	{ID: 1, Name: "Pudding"},
	{ID: 2, Name: "Cup Cake"},
	{ID: 3, Name: "Macaron"},
	{ID: 4, Name: "Donuts"},
}

var products = []domain.Product{
	{ID: 1, Name: "Vanilla Pudding", Price: "25.000", Img: "Vanilla_Pudding.jpg", CategoryID: 1},
	{ID: 2, Name: "Gourmet Red Velvet Cupcake", Price: "15.000", Img: "Gourmet_Red_Velvet_Cupcake.jpg", CategoryID: 2},
	{ID: 3, Name: "Cherry Flan Pudding", Price: "50.000", Img: "Cherry_Flan_Pudding.jpg", CategoryID: 1},
	{ID: 4, Name: "Salted Caramel Macarons", Price: "20.000", Img: "Salted_Caramel_Macarons.jpg", CategoryID: 3},
}

var users = []domain.User{
	{ID: 1, Username: "Chang", Password: "777", Role: domain.RoleUser},
	{ID: 2, Username: "admin", Password: "admin", Role: domain.RoleAdmin},
}

// Apply inserts the storefront's initial rows. Rows whose primary keys are
// already present are left untouched (INSERT OR IGNORE), so repeated runs
// are harmless and user edits to seeded rows survive restarts.
func Apply(ctx context.Context, sqlDB *sql.DB) error {
	for _, c := range categories {
		if _, err := sqlDB.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (id, name) VALUES (?, ?)`,
			c.ID, c.Name,
		); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}

	for _, p := range products {
		if _, err := sqlDB.ExecContext(ctx,
			`INSERT OR IGNORE INTO products (id, name, price, img, category_id) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Price, p.Img, p.CategoryID,
		); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	for _, u := range users {
		if _, err := sqlDB.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (id, username, password, role) VALUES (?, ?, ?, ?)`,
			u.ID, u.Username, u.Password, u.Role,
		); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}

	return nil
}
