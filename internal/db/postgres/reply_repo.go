package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/ids"
	"Agora/internal/core/replies"
)

type postgresReplyRepo struct {
	db  *sql.DB
	gen ids.Generator
}

// NewReplyRepository creates a new PostgreSQL reply repository
func NewReplyRepository(db *sql.DB, gen ids.Generator) replies.Repository {
	return &postgresReplyRepo{db: db, gen: gen}
}

// Create inserts a new reply into the replies table. CreatedAt is assigned
// by the database, never by the caller.
func (r *postgresReplyRepo) Create(ctx context.Context, reply *replies.Reply) error {
	id, err := r.gen.Next(ids.KindReply)
	if err != nil {
		return fmt.Errorf("failed to allocate reply id: %w", err)
	}

	query := `
		INSERT INTO replies (id, topic_id, content, author, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	err = r.db.QueryRowContext(ctx, query, id, reply.TopicID, reply.Content, reply.Author).
		Scan(&reply.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return replies.ErrTopicNotFound
		}
		return fmt.Errorf("failed to insert reply: %w", err)
	}

	reply.ID = id
	return nil
}

// ListByTopic returns the topic's replies in insertion order
func (r *postgresReplyRepo) ListByTopic(ctx context.Context, topicID string) ([]*replies.Reply, error) {
	query := `
		SELECT id, topic_id, content, author, created_at
		FROM replies
		WHERE topic_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	var out []*replies.Reply
	for rows.Next() {
		var rep replies.Reply
		if err := rows.Scan(&rep.ID, &rep.TopicID, &rep.Content, &rep.Author, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		out = append(out, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}

	return out, nil
}
