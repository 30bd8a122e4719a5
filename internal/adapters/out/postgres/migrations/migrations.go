// Package migrations provisions the database schema. The persistence core
// never creates schema itself; cmd/migrate and the integration tests call
// Migrate.
package migrations

import (
	"context"
	"fmt"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Constraints that struct tags cannot express. Every statement is safe to
// run again.
var statements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_products_name_lower ON products (lower(name))`,

	`ALTER TABLE orders DROP CONSTRAINT IF EXISTS fk_orders_user`,
	`ALTER TABLE orders ADD CONSTRAINT fk_orders_user
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT`,

	`ALTER TABLE products DROP CONSTRAINT IF EXISTS fk_products_owner`,
	`ALTER TABLE products ADD CONSTRAINT fk_products_owner
		FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE SET NULL`,
}

// Migrate creates or updates the users, products and orders tables in one
// transaction.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&userrepo.UserDTO{},
			&productrepo.ProductDTO{},
			&orderrepo.OrderDTO{},
		); err != nil {
			return fmt.Errorf("migrate: auto migrate: %w", err)
		}

		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		return nil
	})
}

// Tables lists the managed tables, children first.
func Tables() []string {
	return []string{"orders", "products", "users"}
}
