package categories

// Category is a top-level grouping under which listings and topics are
// organized. Categories are fixed configuration seeded once at service
// startup; they are never created, mutated, or destroyed by callers.
type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Icon string `json:"icon" db:"icon"`
}
