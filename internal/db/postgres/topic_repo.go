package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/ids"
	"Agora/internal/core/topics"
)

type postgresTopicRepo struct {
	db  *sql.DB
	gen ids.Generator
}

// NewTopicRepository creates a new PostgreSQL topic repository
func NewTopicRepository(db *sql.DB, gen ids.Generator) topics.Repository {
	return &postgresTopicRepo{db: db, gen: gen}
}

// Create inserts a new topic into the topics table. CreatedAt is assigned
// by the database, never by the caller.
func (r *postgresTopicRepo) Create(ctx context.Context, topic *topics.Topic) error {
	id, err := r.gen.Next(ids.KindTopic)
	if err != nil {
		return fmt.Errorf("failed to allocate topic id: %w", err)
	}

	query := `
		INSERT INTO topics (id, category_id, title, content, author, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err = r.db.QueryRowContext(ctx, query, id, topic.CategoryID, topic.Title, topic.Content, topic.Author).
		Scan(&topic.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return topics.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to insert topic: %w", err)
	}

	topic.ID = id
	return nil
}

// ListByCategory returns the category's topics in insertion order
func (r *postgresTopicRepo) ListByCategory(ctx context.Context, categoryID string) ([]*topics.Topic, error) {
	query := `
		SELECT id, category_id, title, content, author, created_at
		FROM topics
		WHERE category_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var out []*topics.Topic
	for rows.Next() {
		var t topics.Topic
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Title, &t.Content, &t.Author, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topics: %w", err)
	}

	return out, nil
}
