package tips

import (
	"time"

	"github.com/google/uuid"
)

// Tip is a curated health article shown to every user. Tips are global
// content managed by the seed catalogue, not user data.
type Tip struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	Content           string    `db:"content" json:"content"`
	Category          string    `db:"category" json:"category"`
	AuthorName        string    `db:"author_name" json:"authorName"`
	AuthorCredentials *string   `db:"author_credentials" json:"authorCredentials,omitempty"`
	ImageURL          *string   `db:"image_url" json:"imageUrl,omitempty"`
	IsActive          bool      `db:"is_active" json:"isActive"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}
