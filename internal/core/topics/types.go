package topics

// CreateTopicRequest contains parameters for creating a topic.
// The author is not a request field; it comes from the caller identity in
// the request context.
type CreateTopicRequest struct {
	CategoryID string `json:"categoryId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// CreateTopicResponse contains the result of creating a topic
type CreateTopicResponse struct {
	ID string `json:"id"`
}
