package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"algotrading-site/models"
)

type PostRepository struct {
	db *bun.DB
}

func NewPostRepository(db *bun.DB) *PostRepository {
	return &PostRepository{db: db}
}

// sortJoinRows keeps the category-association order stable so the mapper's
// "first category" pick is deterministic.
func sortJoinRows(q *bun.SelectQuery) *bun.SelectQuery {
	return q.OrderExpr("pc.category_id ASC")
}

// FindPublished returns all published posts, newest first, with their
// category join rows loaded.
func (r *PostRepository) FindPublished(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.NewSelect().
		Model(&posts).
		Relation("Categories", sortJoinRows).
		Relation("Categories.Category").
		Where("p.status = ?", models.StatusPublished).
		OrderExpr("p.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindPublishedByCategory returns published posts linked to a category of
// exactly the given name, newest first.
func (r *PostRepository) FindPublishedByCategory(ctx context.Context, name string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.NewSelect().
		Model(&posts).
		Relation("Categories", sortJoinRows).
		Relation("Categories.Category").
		Where("p.status = ?", models.StatusPublished).
		Where("EXISTS (SELECT 1 FROM post_categories AS pc JOIN categories AS c ON c.id = pc.category_id WHERE pc.post_id = p.id AND c.name = ?)", name).
		OrderExpr("p.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindBySlug returns the published post with the given slug.
// Returns sql.ErrNoRows via bun when no such post exists.
func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post := new(models.Post)
	err := r.db.NewSelect().
		Model(post).
		Relation("Categories", sortJoinRows).
		Relation("Categories.Category").
		Where("p.status = ?", models.StatusPublished).
		Where("p.slug = ?", slug).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return post, nil
}
