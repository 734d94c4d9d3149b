package topics

import "time"

// Topic is a forum discussion thread under a category. Author is the
// principal that made the creating call, stamped by the service from the
// request context, never from request content. CreatedAt is assigned by the
// store and is non-decreasing in creation order.
type Topic struct {
	ID         string    `json:"id" db:"id"`
	CategoryID string    `json:"categoryId" db:"category_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Author     string    `json:"author" db:"author"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
