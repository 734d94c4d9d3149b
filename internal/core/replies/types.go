package replies

// CreateReplyRequest contains parameters for creating a reply.
// The author is not a request field; it comes from the caller identity in
// the request context.
type CreateReplyRequest struct {
	TopicID string `json:"topicId"`
	Content string `json:"content"`
}

// CreateReplyResponse contains the result of creating a reply
type CreateReplyResponse struct {
	ID string `json:"id"`
}
