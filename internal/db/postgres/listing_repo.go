package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/ids"
	"Agora/internal/core/listings"
)

type postgresListingRepo struct {
	db  *sql.DB
	gen ids.Generator
}

// NewListingRepository creates a new PostgreSQL listing repository
func NewListingRepository(db *sql.DB, gen ids.Generator) listings.Repository {
	return &postgresListingRepo{db: db, gen: gen}
}

// Create inserts a new listing into the listings table. The single INSERT
// is the whole create, so readers never observe a partial one; the category
// foreign key surfaces a missing parent as ErrCategoryNotFound.
func (r *postgresListingRepo) Create(ctx context.Context, listing *listings.Listing) error {
	id, err := r.gen.Next(ids.KindListing)
	if err != nil {
		return fmt.Errorf("failed to allocate listing id: %w", err)
	}

	query := `
		INSERT INTO listings (id, category_id, title, description, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	var price sql.NullFloat64
	if listing.Price != nil {
		price = sql.NullFloat64{Float64: *listing.Price, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, query, id, listing.CategoryID, listing.Title, listing.Description, price)
	if err != nil {
		if isForeignKeyViolation(err) {
			return listings.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	listing.ID = id
	return nil
}

// ListByCategory returns the category's listings in insertion order.
// Unknown categories simply match no rows.
func (r *postgresListingRepo) ListByCategory(ctx context.Context, categoryID string) ([]*listings.Listing, error) {
	query := `
		SELECT id, category_id, title, description, price
		FROM listings
		WHERE category_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var out []*listings.Listing
	for rows.Next() {
		var l listings.Listing
		var price sql.NullFloat64
		if err := rows.Scan(&l.ID, &l.CategoryID, &l.Title, &l.Description, &price); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		if price.Valid {
			v := price.Float64
			l.Price = &v
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	return out, nil
}
