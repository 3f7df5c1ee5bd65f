package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PostStatus values as stored in the posts.status column.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post is a raw stored blog record. Table: posts
// Records are authored elsewhere; this service only reads them.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID            string    `bun:"id,pk" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
	Slug          string    `bun:"slug,notnull,unique" json:"slug"`
	Excerpt       string    `bun:"excerpt" json:"excerpt"`
	Content       string    `bun:"content" json:"content"`
	Author        string    `bun:"author" json:"author"`
	Status        string    `bun:"status,notnull" json:"status"`
	CreatedAt     time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero" json:"updated_at"`
	FeaturedImage string    `bun:"featured_image" json:"featured_image"`
	DownloadLink  string    `bun:"download_link" json:"download_link"`

	// Categories are the post's taxonomy join rows, loaded on demand.
	Categories []*PostCategory `bun:"rel:has-many,join:id=post_id" json:"categories,omitempty"`
}
