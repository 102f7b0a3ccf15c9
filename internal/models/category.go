package models

import "time"

// Category is an admin-curated label used both as a free-form tag and as a
// filterable facet on the listing screen.
type Category struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CategoryInput is the create/update payload for categories.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}
