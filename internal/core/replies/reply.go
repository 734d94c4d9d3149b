package replies

import "time"

// Reply is a response within a topic. Author is the principal that made the
// creating call, stamped by the service from the request context. CreatedAt
// is assigned by the store and is non-decreasing in creation order.
type Reply struct {
	ID        string    `json:"id" db:"id"`
	TopicID   string    `json:"topicId" db:"topic_id"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
