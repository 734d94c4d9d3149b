package listings

// Listing is a classifieds item for sale under a category. A nil Price means
// "price upon request". Listings are immutable once created; there is no
// edit or delete path.
type Listing struct {
	ID          string   `json:"id" db:"id"`
	CategoryID  string   `json:"categoryId" db:"category_id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Price       *float64 `json:"price,omitempty" db:"price"`
}
