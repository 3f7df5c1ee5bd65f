package services

import (
	"context"

	"algotrading-site/internal/logger"
	"algotrading-site/repositories"
)

// CategoryAll is the synthetic entry prepended to every category listing.
const CategoryAll = "All"

// FallbackCategories is served when the taxonomy cannot be read. The
// category sidebar on the public site must always render something.
var FallbackCategories = []string{CategoryAll, "pre-built", "self-develop"}

type CategoryService struct {
	categories *repositories.CategoryRepository
}

func NewCategoryService(categories *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategories returns the active taxonomy ordered by name, with
// CategoryAll prepended. It never fails: a store error or an empty
// taxonomy is logged and the static fallback list is served instead.
func (s *CategoryService) ListCategories(ctx context.Context) []string {
	records, err := s.categories.FindActive(ctx)
	if err != nil {
		logger.Log.Errorf("category listing failed, serving fallback: %v", err)
		return append([]string(nil), FallbackCategories...)
	}
	if len(records) == 0 {
		logger.WarnWithFields("no active categories in store, serving fallback", logger.Fields{
			"fallback": FallbackCategories,
		})
		return append([]string(nil), FallbackCategories...)
	}

	out := make([]string, 0, len(records)+1)
	out = append(out, CategoryAll)
	for _, c := range records {
		out = append(out, c.Name)
	}
	return out
}
