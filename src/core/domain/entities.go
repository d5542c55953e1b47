package domain

import "time"

// Version is reported by the health endpoint.
const Version = "2.0.0"

// MaxTitleLength is the upper bound on a todo title, matching the
// VARCHAR(255) column.
const MaxTitleLength = 255

// Todo is the persisted todo item. The id is assigned by the store at
// insert and never changes; timestamps are set by the store.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoPatch carries a partial update. A nil field means the client did not
// send it and the stored value is kept.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

// IsEmpty reports whether the patch carries no fields.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}
