package models

import "github.com/uptrace/bun"

// Category is a taxonomy entry. Table: categories
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID          string `bun:"id,pk" json:"id"`
	Name        string `bun:"name,notnull,unique" json:"name"`
	Slug        string `bun:"slug" json:"slug"`
	Description string `bun:"description" json:"description"`
	Active      bool   `bun:"active,notnull" json:"active"`
}

// PostCategory links a post to a category. Table: post_categories
type PostCategory struct {
	bun.BaseModel `bun:"table:post_categories,alias:pc"`

	PostID     string `bun:"post_id,pk" json:"post_id"`
	CategoryID string `bun:"category_id,pk" json:"category_id"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}
