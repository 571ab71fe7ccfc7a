package domain

import "time"

type Todo struct {
	ID          int64     `db:"id" json:"id"`
	OwnerID     int64     `db:"owner_id" json:"owner_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// TodoPatch is a partial update. A nil field keeps the stored value.
type TodoPatch struct {
	Title       *string
	Description *string
}
