package listings

// CreateListingRequest contains parameters for creating a listing
type CreateListingRequest struct {
	CategoryID  string   `json:"categoryId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
}

// CreateListingResponse contains the result of creating a listing
type CreateListingResponse struct {
	ID string `json:"id"`
}
