package services

import (
	"context"
	"database/sql"
	"errors"

	"algotrading-site/dto"
	"algotrading-site/models"
	"algotrading-site/repositories"
)

// DefaultLatestLimit is used when a latest-posts request carries no limit.
const DefaultLatestLimit = 6

// PostService exposes the read operations over the catalog. Store failures
// are not recovered here; they propagate to the HTTP boundary.
type PostService struct {
	posts *repositories.PostRepository
}

func NewPostService(posts *repositories.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// GetAllPosts returns all published posts, newest first, mapped to the
// view model.
func (s *PostService) GetAllPosts(ctx context.Context) ([]dto.BlogPost, error) {
	records, err := s.posts.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	return mapPosts(records), nil
}

// GetPostsByCategory returns published posts whose taxonomy includes a
// category of exactly the given name. CategoryAll (or an empty name)
// behaves identically to GetAllPosts.
func (s *PostService) GetPostsByCategory(ctx context.Context, name string) ([]dto.BlogPost, error) {
	if name == "" || name == CategoryAll {
		return s.GetAllPosts(ctx)
	}
	records, err := s.posts.FindPublishedByCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	return mapPosts(records), nil
}

// GetPostBySlug returns the post with the given slug, or (nil, nil) when
// no such post exists. Absence is a result, not an error.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*dto.BlogPost, error) {
	record, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	mapped := MapPost(record)
	return &mapped, nil
}

// GetLatestPosts returns the newest posts truncated to limit.
func (s *PostService) GetLatestPosts(ctx context.Context, limit int) ([]dto.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// GetRelatedPosts returns other posts sharing the given post's display
// category, truncated to limit.
func (s *PostService) GetRelatedPosts(ctx context.Context, post dto.BlogPost, limit int) ([]dto.BlogPost, error) {
	candidates, err := s.GetPostsByCategory(ctx, post.Category)
	if err != nil {
		return nil, err
	}
	related := make([]dto.BlogPost, 0, limit)
	for _, p := range candidates {
		if p.ID == post.ID {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func mapPosts(records []*models.Post) []dto.BlogPost {
	out := make([]dto.BlogPost, 0, len(records))
	for _, r := range records {
		out = append(out, MapPost(r))
	}
	return out
}
