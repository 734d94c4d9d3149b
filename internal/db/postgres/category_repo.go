package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/categories"
)

type postgresCategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sql.DB) categories.Repository {
	return &postgresCategoryRepo{db: db}
}

// Insert stores a seed category.
// Idempotent: ON CONFLICT DO NOTHING, so seeding at every startup is safe.
func (r *postgresCategoryRepo) Insert(ctx context.Context, category *categories.Category) error {
	query := `
		INSERT INTO categories (id, name, icon)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Icon); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// List returns all categories in insertion order
func (r *postgresCategoryRepo) List(ctx context.Context) ([]*categories.Category, error) {
	query := `
		SELECT id, name, icon
		FROM categories
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var out []*categories.Category
	for rows.Next() {
		var c categories.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return out, nil
}
